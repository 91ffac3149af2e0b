// Package ipv6 implements the IPv6 Codec (spec C7): the thin glue
// between a classified, compressed bit layout (category, ipv6compress)
// and the dictionary word sequence callers actually exchange.
package ipv6

import (
	"net/netip"

	wbinary "github.com/dirvine/three-word-networking/binary"
	"github.com/dirvine/three-word-networking/category"
	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/ipv6compress"
)

// Encode converts an IPv6 endpoint to its word sequence. flow must be
// zero; scope is the zone index (0 if the address carries none).
func Encode(d *dict.Dictionary, addr netip.Addr, port uint16, flow uint32, scope uint32) ([]string, error) {
	if flow != 0 {
		return nil, ErrFlowNotSupported
	}

	tag, fields := category.Classify(addr, port, scope)
	bits, err := ipv6compress.Compress(tag, fields)
	if err != nil {
		return nil, err
	}
	return d.EncodeWords(bits)
}

// Decode converts a word sequence back to its IPv6 endpoint. No flow
// label is returned, since Encode only accepts a zero flow (see
// ErrFlowNotSupported); scope is the zone index, non-zero only for a
// link-local address.
func Decode(d *dict.Dictionary, words []string) (addr netip.Addr, port uint16, scope uint32, err error) {
	switch len(words) {
	case 6, 9, 12:
	default:
		return netip.Addr{}, 0, 0, ErrWrongWordCount
	}

	bits, err := d.DecodeWords(words)
	if err != nil {
		return netip.Addr{}, 0, 0, err
	}

	_, fields, err := ipv6compress.Decompress(bits)
	if err != nil {
		return netip.Addr{}, 0, 0, err
	}

	b := wbinary.Msb.PutUint128To16(fields.AddrHi, fields.AddrLo)
	return netip.AddrFrom16(b), fields.Port, fields.Scope, nil
}
