package ipv6_test

import (
	"net/netip"
	"testing"

	"github.com/dirvine/three-word-networking/dict"
	"github.com/dirvine/three-word-networking/ipv6"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	d := dict.Default()
	cases := []struct {
		addr  string
		port  uint16
		scope uint32
		words int
	}{
		{"::1", 443, 0, 6},
		{"::", 0, 0, 6},
		{"fe80::1", 80, 3, 9},
		{"fd00:1234:5678::1", 22, 0, 9},
		{"2400:cb00:abcd::5", 80, 0, 9},
		{"2001:db8::1", 443, 0, 12},
		{"2400:cb00:1234:5678:9abc:def0:1234:5678", 80, 0, 12},
		{"ff02::1", 0, 0, 12},
	}
	for _, c := range cases {
		addr, err := netip.ParseAddr(c.addr)
		require.NoError(t, err)

		words, err := ipv6.Encode(d, addr, c.port, 0, c.scope)
		require.NoError(t, err, c.addr)
		require.Len(t, words, c.words, c.addr)

		gotAddr, gotPort, gotScope, err := ipv6.Decode(d, words)
		require.NoError(t, err, c.addr)
		require.Equal(t, addr.Unmap(), gotAddr, c.addr)
		require.Equal(t, c.port, gotPort, c.addr)
		require.Equal(t, c.scope, gotScope, c.addr)
	}
}

func TestEncode_FlowRejected(t *testing.T) {
	d := dict.Default()
	addr := netip.MustParseAddr("2001:db8::1")
	_, err := ipv6.Encode(d, addr, 443, 12345, 0)
	require.ErrorIs(t, err, ipv6.ErrFlowNotSupported)
}

func TestDecode_WrongWordCount(t *testing.T) {
	d := dict.Default()
	_, _, _, err := ipv6.Decode(d, []string{"a", "b", "c"})
	require.ErrorIs(t, err, ipv6.ErrWrongWordCount)
}
