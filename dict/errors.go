package dict

import "errors"

var (
	// ErrMalformed is returned by Load/LoadBytes when the asset does not
	// satisfy the dictionary's construction invariants (wrong entry
	// count, non-letter characters, bad length, or a duplicate).
	ErrMalformed = errors.New("dict: malformed dictionary")

	// ErrNotFound is returned by Word/Index when the index is out of
	// range or the word is not in the dictionary.
	ErrNotFound = errors.New("dict: not in dictionary")
)
