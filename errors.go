package wordaddr

import "errors"

// Error kinds, a closed set (spec.md §7). Every exported Encode/Decode
// operation's errors satisfy errors.Is against exactly one of these,
// regardless of which internal package actually detected the problem.
var (
	// ErrMalformedDictionary is raised only during dictionary
	// construction (dict.Load / dict.Default).
	ErrMalformedDictionary = errors.New("wordaddr: malformed dictionary")

	// ErrWrongWordCount means a word count outside {4, 6, 9, 12}.
	ErrWrongWordCount = errors.New("wordaddr: wrong word count")

	// ErrNotInDictionary means a token is not a dictionary word.
	ErrNotInDictionary = errors.New("wordaddr: word not in dictionary")

	// ErrUnknownCategory means a decoded tag fell outside the category
	// set defined for the word count's layout.
	ErrUnknownCategory = errors.New("wordaddr: unknown category")

	// ErrPaddingNotZero means a layout's unused tail bits were non-zero
	// on decode.
	ErrPaddingNotZero = errors.New("wordaddr: padding bits not zero")

	// ErrMalformedAddress is a facade-level parse failure on an input
	// address string.
	ErrMalformedAddress = errors.New("wordaddr: malformed address")

	// ErrValueOutOfRange indicates a BitPacker misuse bug. Codec.Encode
	// also returns it for an IPv6 endpoint with a nonzero flow label
	// (ipv6.ErrFlowNotSupported) and for an IPv4 endpoint whose address
	// is not IPv4 (ipv4.ErrNotIPv4).
	ErrValueOutOfRange = errors.New("wordaddr: value out of range")
)
