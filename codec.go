package wordaddr

import (
	"strings"

	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/internal/wjson"
	"github.com/dirvine/three-word-networking/ipv4"
	"github.com/dirvine/three-word-networking/ipv6"
)

// Codec is the module's stateless facade: construct once with
// NewCodec and share across any number of concurrent Encode/Decode
// calls. It carries no mutable state beyond its immutable Dictionary
// and the optional logger/stats sinks in Options.
type Codec struct {
	Options Options // codec options; Logger/Stats may be changed before first use, Dictionary is read once by NewCodec

	dict *dict.Dictionary
}

// NewCodec returns a ready-to-use Codec. Passing the zero Options
// loads the embedded default dictionary with logging and stats off.
func NewCodec(opts Options) *Codec {
	return &Codec{Options: opts, dict: opts.dictionary()}
}

// Encode converts e to its canonical word-sequence string (spec.md §6).
func (c *Codec) Encode(e Endpoint) (string, error) {
	words, err := c.encodeWords(e)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// EncodeJSON is Encode's JSON-transport convenience pair: the same
// word sequence, marshaled via internal/wjson instead of space-joined.
func (c *Codec) EncodeJSON(e Endpoint) ([]byte, error) {
	words, err := c.encodeWords(e)
	if err != nil {
		return nil, err
	}
	return wjson.SequenceToJSON(nil, words), nil
}

func (c *Codec) encodeWords(e Endpoint) ([]string, error) {
	var words []string
	var err error

	switch e.Family {
	case FamilyIPv4:
		words, err = ipv4.Encode(c.dict, e.IPv4.Address, e.IPv4.Port)
		c.countEncode("ipv4", err)
	case FamilyIPv6:
		words, err = ipv6.Encode(c.dict, e.IPv6.Address, e.IPv6.Port, e.IPv6.Flow, e.IPv6.Scope)
		c.countEncode(categoryLabel(len(words)), err)
	default:
		return nil, ErrMalformedAddress
	}
	if err != nil {
		c.logError("encode", err)
		return nil, wrapErr(err)
	}
	return words, nil
}

// Decode parses a canonical (or legacy dot-separated) word-sequence
// string back to an Endpoint.
func (c *Codec) Decode(s string) (Endpoint, error) {
	words := tokenize(s)

	var ep Endpoint
	var err error

	switch len(words) {
	case ipv4.WordCount:
		ep.Family = FamilyIPv4
		ep.IPv4.Address, ep.IPv4.Port, err = ipv4.Decode(c.dict, words)
		c.countDecode("ipv4", err)
	case 6, 9, 12:
		ep.Family = FamilyIPv6
		ep.IPv6.Address, ep.IPv6.Port, ep.IPv6.Scope, err = ipv6.Decode(c.dict, words)
		c.countDecode(categoryLabel(len(words)), err)
	default:
		err = ErrWrongWordCount
		c.Options.Stats.Inc("errors")
	}
	if err != nil {
		c.logError("decode", err)
		return Endpoint{}, wrapErr(err)
	}
	return ep, nil
}

// DecodeJSON is Decode's JSON-transport convenience pair: src must be
// the JSON word-sequence array EncodeJSON produces.
func (c *Codec) DecodeJSON(src []byte) (Endpoint, error) {
	words, err := wjson.SequenceFromJSON(src)
	if err != nil {
		c.logError("decode", err)
		c.Options.Stats.Inc("errors")
		return Endpoint{}, wrapErr(err)
	}
	return c.Decode(strings.Join(words, " "))
}

// tokenize implements the canonical-string grammar (spec.md §6):
// case-insensitive, dot or whitespace separated, with interior runs of
// whitespace collapsed and leading/trailing whitespace trimmed.
func tokenize(s string) []string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ".", " ")
	return strings.Fields(s)
}

// categoryLabel names the stats counter bucket for an IPv6 word count.
// It's a coarse label (by layout size, not exact tag) good enough for
// operational counters; Stats itself is optional and best-effort.
func categoryLabel(wordCount int) string {
	switch wordCount {
	case 6:
		return "ipv6:loopback_or_unspecified"
	case 9:
		return "ipv6:link_local_or_unique_local_or_global_common"
	case 12:
		return "ipv6:documentation_or_global_full_or_multicast"
	default:
		return "ipv6:unknown"
	}
}

func (c *Codec) countEncode(label string, err error) {
	if err != nil {
		c.Options.Stats.Inc("errors")
		return
	}
	c.Options.Stats.Inc("encode:" + label)
}

func (c *Codec) countDecode(label string, err error) {
	if err != nil {
		c.Options.Stats.Inc("errors")
		return
	}
	c.Options.Stats.Inc("decode:" + label)
}

func (c *Codec) logError(op string, err error) {
	if c.Options.Logger == nil {
		return
	}
	c.Options.Logger.Error().Str("op", op).Err(err).Msg("wordaddr: operation failed")
}
