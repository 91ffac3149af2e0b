// Package stats implements the Codec's optional operational counters:
// per-category encode/decode counts and a running error count.
// Attaching a *Stats to wordaddr.Options is the only way these are
// ever touched - a nil Stats (the zero value, and the default) costs
// nothing per call.
package stats

import "github.com/puzpuzpuz/xsync/v3"

// known is the fixed set of counter keys. Pre-populating the map with
// one entry per key at construction means Inc never races to create an
// entry - every key already exists before any caller can observe it.
var known = []string{
	"encode:ipv4", "decode:ipv4",
	"encode:ipv6:loopback_or_unspecified", "decode:ipv6:loopback_or_unspecified",
	"encode:ipv6:link_local_or_unique_local_or_global_common",
	"decode:ipv6:link_local_or_unique_local_or_global_common",
	"encode:ipv6:documentation_or_global_full_or_multicast",
	"decode:ipv6:documentation_or_global_full_or_multicast",
	"errors",
}

// Stats is a set of concurrent counters, safe for use by many encode
// and decode calls running in parallel over a shared *Codec.
type Stats struct {
	counts *xsync.MapOf[string, *xsync.Counter]
}

// New returns a Stats with every known counter initialized to zero.
func New() *Stats {
	s := &Stats{counts: xsync.NewMapOf[*xsync.Counter]()}
	for _, k := range known {
		s.counts.Store(k, xsync.NewCounter())
	}
	return s
}

// Inc increments the named counter by one. Unknown keys are silently
// ignored rather than growing the map at call time.
func (s *Stats) Inc(key string) {
	if s == nil {
		return
	}
	if c, ok := s.counts.Load(key); ok {
		c.Add(1)
	}
}

// Get returns the current value of the named counter, or 0 if unknown.
func (s *Stats) Get(key string) int64 {
	if s == nil {
		return 0
	}
	if c, ok := s.counts.Load(key); ok {
		return c.Value()
	}
	return 0
}

// Snapshot returns every counter's current value, keyed by name.
func (s *Stats) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(known))
	if s == nil {
		for _, k := range known {
			out[k] = 0
		}
		return out
	}
	s.counts.Range(func(k string, c *xsync.Counter) bool {
		out[k] = c.Value()
		return true
	})
	return out
}
