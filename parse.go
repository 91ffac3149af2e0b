package wordaddr

import (
	"net"
	"net/netip"
	"strings"

	"github.com/spf13/cast"
)

// ParseEndpoint parses the external address grammar (spec.md §4.8/§6):
// dotted-quad with an optional ":port" for IPv4, or colon-hex with an
// optional "[...]:port" for IPv6. A missing port defaults to 0.
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Endpoint{}, ErrMalformedAddress
	}

	host, portStr, hasPort := splitHostPort(s)

	var port uint16
	if hasPort {
		p, err := cast.ToUint16E(portStr)
		if err != nil {
			return Endpoint{}, ErrMalformedAddress
		}
		port = p
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return Endpoint{}, ErrMalformedAddress
	}
	addr = addr.Unmap()

	if addr.Is4() {
		return NewIPv4Endpoint(addr, port)
	}
	return NewIPv6Endpoint(addr, port, 0, zoneIndex(addr))
}

// zoneIndex resolves a zone name (e.g. "eth0") to its numeric
// interface index, the form the compact link-local layout stores. An
// unresolvable or absent zone yields 0 (no scope).
func zoneIndex(addr netip.Addr) uint32 {
	zone := addr.Zone()
	if zone == "" {
		return 0
	}
	if iface, err := net.InterfaceByName(zone); err == nil {
		return uint32(iface.Index)
	}
	return 0
}

// splitHostPort splits "host:port" or "[host]:port" into host and
// port, reporting whether a port was present. A bare IPv6 literal
// without brackets (no port) is returned as-is.
func splitHostPort(s string) (host, port string, hasPort bool) {
	if strings.HasPrefix(s, "[") {
		if i := strings.Index(s, "]"); i >= 0 {
			host = s[1:i]
			rest := s[i+1:]
			if strings.HasPrefix(rest, ":") {
				return host, rest[1:], true
			}
			return host, "", false
		}
	}
	// IPv4:port or hostname:port - a single colon. A bare IPv6 literal
	// has more than one colon and no brackets, so it's left alone.
	if strings.Count(s, ":") == 1 {
		parts := strings.SplitN(s, ":", 2)
		return parts[0], parts[1], true
	}
	return s, "", false
}

// String formats e using the external address grammar: IPv4 as
// dotted-quad:port, IPv6 as [colon-hex]:port. The port is always
// written, even when it is 0.
func (e Endpoint) String() string {
	switch e.Family {
	case FamilyIPv4:
		return net.JoinHostPort(e.IPv4.Address.String(), itoa(e.IPv4.Port))
	case FamilyIPv6:
		return net.JoinHostPort(e.IPv6.Address.String(), itoa(e.IPv6.Port))
	default:
		return ""
	}
}

func itoa(port uint16) string {
	return cast.ToString(port)
}
