// Package wordaddr implements the Facade (spec C8): the module's
// single entry point, dispatching an Endpoint or a canonical word
// string to the IPv4 or IPv6 path by shape, the way msg.Msg dispatches
// on its Type field.
package wordaddr

import "net/netip"

// Family identifies which variant of Endpoint is populated.
type Family uint8

const (
	FamilyIPv4 Family = iota
	FamilyIPv6
)

// IPv4Endpoint is a 32-bit address plus a 16-bit port.
type IPv4Endpoint struct {
	Address netip.Addr
	Port    uint16
}

// IPv6Endpoint is a 128-bit address plus a 16-bit port, an optional
// 20-bit flow label, and an optional zone/scope index. Flow is never
// representable by any compact category layout (see ipv6.ErrFlowNotSupported);
// Scope is only retained for link-local addresses.
type IPv6Endpoint struct {
	Address netip.Addr
	Port    uint16
	Flow    uint32
	Scope   uint32
}

// Endpoint is a tagged union of IPv4Endpoint and IPv6Endpoint
// (spec.md §3). Family selects which of IPv4/IPv6 is meaningful.
type Endpoint struct {
	Family Family
	IPv4   IPv4Endpoint
	IPv6   IPv6Endpoint
}

// NewIPv4Endpoint builds an Endpoint from an IPv4 address and port.
// addr must be an IPv4 (or 4-in-6 mapped) address.
func NewIPv4Endpoint(addr netip.Addr, port uint16) (Endpoint, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return Endpoint{}, ErrMalformedAddress
	}
	return Endpoint{Family: FamilyIPv4, IPv4: IPv4Endpoint{Address: addr, Port: port}}, nil
}

// NewIPv6Endpoint builds an Endpoint from an IPv6 address, port, flow
// label, and zone/scope index (0 for either if absent).
func NewIPv6Endpoint(addr netip.Addr, port uint16, flow, scope uint32) (Endpoint, error) {
	addr = addr.Unmap()
	if !addr.Is6() {
		return Endpoint{}, ErrMalformedAddress
	}
	return Endpoint{Family: FamilyIPv6, IPv6: IPv6Endpoint{
		Address: addr, Port: port, Flow: flow, Scope: scope,
	}}, nil
}
