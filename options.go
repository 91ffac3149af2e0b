package wordaddr

import (
	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/stats"
	"github.com/rs/zerolog"
)

// Options configures a Codec. The zero value is valid: a nil Logger
// disables logging, a nil Stats disables counters, and a nil
// Dictionary falls back to dict.Default().
type Options struct {
	Logger     *zerolog.Logger // if nil, logging is disabled
	Stats      *stats.Stats    // if nil, counters are disabled
	Dictionary *dict.Dictionary
}

// DefaultOptions is the Options a zero-value Codec would use; kept as
// a named value for callers who want to start from it and override a
// field or two, matching the teacher's Options/DefaultOptions pairing.
var DefaultOptions = Options{}

func (o Options) dictionary() *dict.Dictionary {
	if o.Dictionary != nil {
		return o.Dictionary
	}
	return dict.Default()
}
