package ipv6compress

import "errors"

// ErrUnknownCategory is returned by Decompress when the tag read from a
// 6-word (72-bit) or 9-word (108-bit) layout is not one of the tags that
// layout carries, and by Compress for a tag outside the defined set. A
// 12-word (144-bit) layout never yields it: any leading bits that are not
// a verified TAG_DOCUMENTATION or TAG_MULTICAST layout are read back as
// TAG_GLOBAL_FULL.
var ErrUnknownCategory = errors.New("ipv6compress: unrecognized category layout")

// ErrWrongBitWidth is returned when Compress/Decompress is given a bit
// slice whose length doesn't match any of the three fixed layouts.
var ErrWrongBitWidth = errors.New("ipv6compress: bit width matches no known layout")

// ErrPaddingNotZero is returned when a 6-word layout's 53 trailing pad
// bits are non-zero on decode. The 9-word layouts have no spare bits
// to check, and the 12-word layout's padding check instead drives the
// tag4/tag7-vs-tag6 disambiguation in decode12, so this only surfaces
// for TAG_LOOPBACK/TAG_UNSPECIFIED.
var ErrPaddingNotZero = errors.New("ipv6compress: padding bits not zero")
