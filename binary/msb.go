// Package binary provides the fixed MSB-first byte<->integer helpers used
// throughout the codec whenever a value must briefly leave bit-packed form
// (eg. converting a netip.Addr's raw bytes into the uint32/uint64 the bit
// packer expects). The codec itself is bit-granular, not byte-granular; this
// package only bridges the byte-oriented stdlib types at the edges.
package binary

import "encoding/binary"

// Msb is the single byte order used by this codec: most-significant-byte
// first, matching the MSB-first bit order mandated for word sequences.
var Msb = msb{binary.BigEndian}

type msb struct {
	binary.ByteOrder
}

// Uint32From4 reads a big-endian uint32 from a 4-byte array.
func (msb) Uint32From4(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// PutUint32To4 writes v as a 4-byte big-endian array.
func (msb) PutUint32To4(v uint32) (b [4]byte) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return b
}

// Uint64HiFrom16 reads the high 64 bits of a 16-byte array as big-endian.
func (msb) Uint64HiFrom16(b [16]byte) uint64 {
	return binary.BigEndian.Uint64(b[0:8])
}

// Uint64LoFrom16 reads the low 64 bits of a 16-byte array as big-endian.
func (msb) Uint64LoFrom16(b [16]byte) uint64 {
	return binary.BigEndian.Uint64(b[8:16])
}

// PutUint128To16 writes hi:lo as a 16-byte big-endian array.
func (msb) PutUint128To16(hi, lo uint64) (b [16]byte) {
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return b
}
