package category

import (
	"net/netip"

	wbinary "github.com/dirvine/three-word-networking/binary"
)

// Fields carries the endpoint data a Tag's compact layout needs. Not
// every field is meaningful for every tag: only Scope is tag-specific
// (link-local only); AddrHi/AddrLo/Port are always the caller's full,
// unmodified endpoint values, and the compressor (ipv6compress) decides
// exactly which bits of them to retain for the classified Tag.
type Fields struct {
	AddrHi, AddrLo uint64 // the full 128-bit address, big-endian split
	Port           uint16
	Scope          uint32 // zone index; only retained for TAG_LINK_LOCAL
}

// Bit-budget caps, derived from each category's fixed word-layout size
// (spec.md §4.6, resolved per DESIGN.md's Open Questions). A category
// only applies when the address' variable portion fits these caps;
// anything wider upgrades to TAG_GLOBAL_FULL, which has no cap because
// its 12-word/144-bit layout stores the address in full.
const (
	// scopeMax is the largest zone index TAG_LINK_LOCAL's 25-bit scope
	// field can carry.
	scopeMax = 1<<25 - 1

	// uniqueLocalIIDMax bounds TAG_UNIQUE_LOCAL's interface identifier
	// to the 32 bits left in its 9-word layout after the L bit, global
	// ID, subnet ID, tag, and port.
	uniqueLocalIIDMax = 1<<32 - 1

	// globalCommonIIDMax bounds TAG_GLOBAL_COMMON's interface
	// identifier to the 28 bits left in its 9-word layout after the
	// /64 network suffix, tag, and port.
	globalCommonIIDMax = 1<<28 - 1
)

var (
	docPrefix           = netip.MustParsePrefix("2001:db8::/32")
	linkLocalPrefix     = netip.MustParsePrefix("fe80::/10")
	uniqueLocalPrefix   = netip.MustParsePrefix("fc00::/7")
	globalUnicastPrefix = netip.MustParsePrefix("2000::/3")
	multicastPrefix     = netip.MustParsePrefix("ff00::/8")
)

// Classify implements spec.md §4.5's deterministic, first-match-wins
// rule table. scope is the zone index (0 if none). flow (the 20-bit
// IPv6 flow label) is not accepted here: no category's compact layout
// has room for it, tag6 included, so the ipv6 codec rejects a nonzero
// flow before Classify is ever called (see DESIGN.md).
func Classify(addr netip.Addr, port uint16, scope uint32) (Tag, Fields) {
	addr = addr.Unmap()
	b := addr.As16()
	hi := wbinary.Msb.Uint64HiFrom16(b)
	lo := wbinary.Msb.Uint64LoFrom16(b)

	f := Fields{AddrHi: hi, AddrLo: lo, Port: port}
	tag := classifyTag(addr, lo, scope)
	if tag == TAG_LINK_LOCAL {
		f.Scope = scope
	}
	return tag, f
}

func classifyTag(addr netip.Addr, lo uint64, scope uint32) Tag {
	switch {
	case addr == netip.IPv6Loopback():
		return TAG_LOOPBACK
	case addr == netip.IPv6Unspecified():
		return TAG_UNSPECIFIED
	case linkLocalPrefix.Contains(addr):
		// Bits 10-63 of a standard link-local address are reserved and
		// zero (RFC 4291 §2.5.6); a nonstandard address that violates
		// this can't use the fixed fe80::/iid layout losslessly.
		b := addr.As16()
		reserved := (uint64(b[1]&0x3f) << 48) | uint64(b[2])<<40 | uint64(b[3])<<32 |
			uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
		if reserved != 0 || scope > scopeMax {
			return TAG_GLOBAL_FULL
		}
		return TAG_LINK_LOCAL
	case uniqueLocalPrefix.Contains(addr):
		if lo > uniqueLocalIIDMax || scope != 0 {
			return TAG_GLOBAL_FULL
		}
		return TAG_UNIQUE_LOCAL
	case docPrefix.Contains(addr):
		if scope != 0 {
			return TAG_GLOBAL_FULL
		}
		return TAG_DOCUMENTATION
	case multicastPrefix.Contains(addr):
		if scope != 0 {
			return TAG_GLOBAL_FULL
		}
		return TAG_MULTICAST
	case globalUnicastPrefix.Contains(addr):
		if scope == 0 && lo <= globalCommonIIDMax {
			return TAG_GLOBAL_COMMON
		}
		return TAG_GLOBAL_FULL
	default:
		return TAG_GLOBAL_FULL
	}
}
