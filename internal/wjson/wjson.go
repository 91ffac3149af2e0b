// Package wjson implements the append-style JSON marshaling the
// teacher's json package uses (dst []byte, grow-as-you-go) plus
// jsonparser-based unmarshaling, applied to endpoint/word-sequence
// data instead of BGP message fields.
//
// Endpoint here is deliberately its own lightweight type rather than
// wordaddr.Endpoint: the root package imports wjson for its
// Codec.EncodeJSON/DecodeJSON convenience methods, so wjson itself
// must not import the root package back.
package wjson

import (
	"errors"
	"net/netip"
	"strconv"

	jsp "github.com/buger/jsonparser"
)

// ErrValue is returned when a JSON field is missing or malformed.
var ErrValue = errors.New("wjson: invalid value")

// Endpoint is wjson's wire-level mirror of wordaddr.Endpoint: enough
// fields to round-trip either family, with Flow/Scope meaningful only
// for "ipv6".
type Endpoint struct {
	Family  string // "ipv4" or "ipv6"
	Address netip.Addr
	Port    uint16
	Flow    uint32
	Scope   uint32
}

// EndpointToJSON appends e's JSON representation to dst and returns
// the grown slice, in the style of json.Prefix/json.Prefixes.
func EndpointToJSON(dst []byte, e Endpoint) []byte {
	dst = append(dst, `{"family":"`...)
	dst = append(dst, e.Family...)
	dst = append(dst, `","address":"`...)
	dst = append(dst, e.Address.String()...)
	dst = append(dst, `","port":`...)
	dst = strconv.AppendUint(dst, uint64(e.Port), 10)
	if e.Family == "ipv6" {
		dst = append(dst, `,"flow":`...)
		dst = strconv.AppendUint(dst, uint64(e.Flow), 10)
		dst = append(dst, `,"scope":`...)
		dst = strconv.AppendUint(dst, uint64(e.Scope), 10)
	}
	return append(dst, '}')
}

// EndpointFromJSON parses the representation EndpointToJSON produces.
func EndpointFromJSON(src []byte) (Endpoint, error) {
	family, err := jsp.GetString(src, "family")
	if err != nil {
		return Endpoint{}, ErrValue
	}
	addrStr, err := jsp.GetString(src, "address")
	if err != nil {
		return Endpoint{}, ErrValue
	}
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Endpoint{}, ErrValue
	}
	portVal, err := jsp.GetInt(src, "port")
	if err != nil {
		return Endpoint{}, ErrValue
	}

	e := Endpoint{Family: family, Address: addr, Port: uint16(portVal)}
	switch family {
	case "ipv4":
	case "ipv6":
		flowVal, _ := jsp.GetInt(src, "flow")
		scopeVal, _ := jsp.GetInt(src, "scope")
		e.Flow = uint32(flowVal)
		e.Scope = uint32(scopeVal)
	default:
		return Endpoint{}, ErrValue
	}
	return e, nil
}

// SequenceToJSON appends words as a JSON array of lowercase strings,
// in the style of json.Prefixes.
func SequenceToJSON(dst []byte, words []string) []byte {
	dst = append(dst, '[')
	for i, w := range words {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = append(dst, w...)
		dst = append(dst, '"')
	}
	return append(dst, ']')
}

// SequenceFromJSON parses a JSON array of words, in the style of
// json.UnPrefixes / json.ArrayEach.
func SequenceFromJSON(src []byte) (words []string, reterr error) {
	defer func() {
		if r, ok := recover().(error); ok {
			reterr = r
		}
	}()

	_, err := jsp.ArrayEach(src, func(val []byte, _ jsp.ValueType, _ int, _ error) {
		words = append(words, string(val))
	})
	if err != nil {
		return nil, ErrValue
	}
	return words, nil
}
