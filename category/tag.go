// Package category implements the IPv6 Categorizer (spec C5): classifying
// an IPv6 endpoint into one of eight structural categories and deciding
// the word layout (6, 9, or 12 words) the compressor must use.
package category

// Tag identifies the structural category of an IPv6 address (spec.md §3).
// The eight values are a closed set; every word layout's 3-bit tag field
// can name all of them directly (no 4-bit tag is needed, see DESIGN.md).
type Tag uint8

//go:generate go run github.com/dmarkham/enumer -type Tag -trimprefix TAG_
const (
	TAG_LOOPBACK      Tag = 0 // ::1
	TAG_UNSPECIFIED   Tag = 1 // ::
	TAG_LINK_LOCAL    Tag = 2 // fe80::/10
	TAG_UNIQUE_LOCAL  Tag = 3 // fc00::/7
	TAG_DOCUMENTATION Tag = 4 // 2001:db8::/32
	TAG_GLOBAL_COMMON Tag = 5 // 2000::/3, low-entropy interface id
	TAG_GLOBAL_FULL   Tag = 6 // the fallback: anything else
	TAG_MULTICAST     Tag = 7 // ff00::/8
)

// Width is the bit width of the tag field in every tagged word layout;
// the TAG_GLOBAL_FULL layout carries no tag field.
const Width = 3

// Layout returns the number of dictionary words the given tag's compact
// encoding occupies: 6, 9, or 12.
func Layout(t Tag) int {
	switch t {
	case TAG_LOOPBACK, TAG_UNSPECIFIED:
		return 6
	case TAG_LINK_LOCAL, TAG_UNIQUE_LOCAL, TAG_GLOBAL_COMMON:
		return 9
	case TAG_DOCUMENTATION, TAG_GLOBAL_FULL, TAG_MULTICAST:
		return 12
	default:
		return 12
	}
}
