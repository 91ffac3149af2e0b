package ipv6

import "errors"

// ErrWrongWordCount is returned by Decode when the given word slice's
// length is not one of the three fixed layouts (6, 9, or 12 words).
var ErrWrongWordCount = errors.New("ipv6: word count matches no known layout")

// ErrFlowNotSupported is returned by Encode when the endpoint carries a
// non-zero IPv6 flow label: no category's compact bit layout, tag6
// (the 144-bit, no-tag fallback) included, has a spare bit for it.
var ErrFlowNotSupported = errors.New("ipv6: flow label cannot be represented")
