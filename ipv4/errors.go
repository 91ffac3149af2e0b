package ipv4

import "errors"

// ErrWrongWordCount is returned by Decode when given anything other
// than exactly 4 words.
var ErrWrongWordCount = errors.New("ipv4: word count must be 4")

// ErrNotIPv4 is returned by Encode when given a non-IPv4 address.
var ErrNotIPv4 = errors.New("ipv4: address is not IPv4")
