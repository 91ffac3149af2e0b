package dict

import "fmt"

// WordWidth is the bit width of one dictionary index (log2(Size)).
const WordWidth = 12

// EncodeWords slices bits into consecutive WordWidth-bit big-endian
// chunks and maps each chunk to its dictionary word, in order. len(bits)
// must be an exact multiple of WordWidth.
func (d *Dictionary) EncodeWords(bits []bool) ([]string, error) {
	if len(bits)%WordWidth != 0 {
		return nil, fmt.Errorf("%w: %d bits is not a multiple of %d", ErrMalformed, len(bits), WordWidth)
	}
	n := len(bits) / WordWidth
	words := make([]string, n)
	for i := 0; i < n; i++ {
		var idx int
		for j := 0; j < WordWidth; j++ {
			idx <<= 1
			if bits[i*WordWidth+j] {
				idx |= 1
			}
		}
		w, err := d.Word(idx)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

// DecodeWords maps each word back to its 12-bit index and concatenates
// the indices MSB-first into a single bit slice.
func (d *Dictionary) DecodeWords(words []string) ([]bool, error) {
	bits := make([]bool, 0, len(words)*WordWidth)
	for _, w := range words {
		idx, err := d.Index(w)
		if err != nil {
			return nil, err
		}
		for j := WordWidth - 1; j >= 0; j-- {
			bits = append(bits, (idx>>uint(j))&1 == 1)
		}
	}
	return bits, nil
}
