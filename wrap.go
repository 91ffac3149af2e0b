package wordaddr

import (
	"errors"
	"fmt"

	"github.com/dirvine/three-word-networking/bitio"
	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/internal/wjson"
	"github.com/dirvine/three-word-networking/ipv4"
	"github.com/dirvine/three-word-networking/ipv6"
	"github.com/dirvine/three-word-networking/ipv6compress"
)

// wrapErr maps every internal package's sentinel errors onto this
// package's closed error-kind set (spec.md §7), so callers only ever
// need to errors.Is against the wordaddr.Err* variables.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, dict.ErrMalformed):
		return fmt.Errorf("%w: %v", ErrMalformedDictionary, err)
	case errors.Is(err, dict.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotInDictionary, err)
	case errors.Is(err, ipv4.ErrWrongWordCount), errors.Is(err, ipv6.ErrWrongWordCount),
		errors.Is(err, ipv6compress.ErrWrongBitWidth):
		return fmt.Errorf("%w: %v", ErrWrongWordCount, err)
	case errors.Is(err, ipv6compress.ErrUnknownCategory):
		return fmt.Errorf("%w: %v", ErrUnknownCategory, err)
	case errors.Is(err, ipv6compress.ErrPaddingNotZero):
		return fmt.Errorf("%w: %v", ErrPaddingNotZero, err)
	case errors.Is(err, ipv4.ErrNotIPv4), errors.Is(err, ipv6.ErrFlowNotSupported):
		return fmt.Errorf("%w: %v", ErrValueOutOfRange, err)
	case errors.Is(err, bitio.ErrOverflow), errors.Is(err, bitio.ErrUnderflow), errors.Is(err, bitio.ErrValueTooWide):
		return fmt.Errorf("%w: %v", ErrValueOutOfRange, err)
	case errors.Is(err, wjson.ErrValue):
		return fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	default:
		return err
	}
}
