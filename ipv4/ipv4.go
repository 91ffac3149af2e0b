// Package ipv4 implements the IPv4 Codec (spec C4): a 32-bit address
// and 16-bit port packed into a single 48-bit block, diffused through
// the Feistel network, and split into exactly 4 dictionary words.
package ipv4

import (
	"net/netip"

	wbinary "github.com/dirvine/three-word-networking/binary"
	"github.com/dirvine/three-word-networking/bitio"
	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/feistel"
)

// WordCount is the fixed number of words an IPv4 endpoint encodes to.
const WordCount = 4

const blockWidth = 48

// Encode converts an IPv4 endpoint to its 4-word sequence.
func Encode(d *dict.Dictionary, addr netip.Addr, port uint16) ([]string, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return nil, ErrNotIPv4
	}
	addrInt := wbinary.Msb.Uint32From4(addr.As4())

	w := bitio.NewWriter(blockWidth)
	if err := w.Append(uint64(addrInt), 32); err != nil {
		return nil, err
	}
	if err := w.Append(uint64(port), 16); err != nil {
		return nil, err
	}

	bits := feistel.Diffuse(w.Bits())
	return d.EncodeWords(bits)
}

// Decode converts a 4-word sequence back to its IPv4 endpoint.
func Decode(d *dict.Dictionary, words []string) (netip.Addr, uint16, error) {
	if len(words) != WordCount {
		return netip.Addr{}, 0, ErrWrongWordCount
	}

	bits, err := d.DecodeWords(words)
	if err != nil {
		return netip.Addr{}, 0, err
	}
	plain := feistel.Undiffuse(bits)

	r := bitio.NewReader(plain)
	addrInt, err := r.Read(32)
	if err != nil {
		return netip.Addr{}, 0, err
	}
	port, err := r.Read(16)
	if err != nil {
		return netip.Addr{}, 0, err
	}

	return netip.AddrFrom4(wbinary.Msb.PutUint32To4(uint32(addrInt))), uint16(port), nil
}
