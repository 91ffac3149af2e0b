package category_test

import (
	"net/netip"
	"testing"

	"github.com/dirvine/three-word-networking/category"
	"github.com/stretchr/testify/require"
)

func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	a, err := netip.ParseAddr(s)
	require.NoError(t, err)
	return a
}

func TestClassify_Loopback(t *testing.T) {
	tag, f := category.Classify(mustAddr(t, "::1"), 443, 0)
	require.Equal(t, category.TAG_LOOPBACK, tag)
	require.Equal(t, uint16(443), f.Port)
}

func TestClassify_Unspecified(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "::"), 0, 0)
	require.Equal(t, category.TAG_UNSPECIFIED, tag)
}

func TestClassify_LinkLocal(t *testing.T) {
	tag, f := category.Classify(mustAddr(t, "fe80::1"), 80, 7)
	require.Equal(t, category.TAG_LINK_LOCAL, tag)
	require.Equal(t, uint32(7), f.Scope)
}

func TestClassify_LinkLocal_NonReservedBitsUpgrade(t *testing.T) {
	// fe80:1234:: has bits set in the reserved 10-63 range.
	tag, _ := category.Classify(mustAddr(t, "fe80:1234::1"), 80, 0)
	require.Equal(t, category.TAG_GLOBAL_FULL, tag)
}

func TestClassify_UniqueLocal(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "fd12:3456:789a::1"), 80, 0)
	require.Equal(t, category.TAG_UNIQUE_LOCAL, tag)
}

func TestClassify_UniqueLocal_WideIIDUpgrades(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "fd12:3456:789a::dead:beef:cafe:1234"), 80, 0)
	require.Equal(t, category.TAG_GLOBAL_FULL, tag)
}

func TestClassify_Documentation(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "2001:db8::dead:beef"), 80, 0)
	require.Equal(t, category.TAG_DOCUMENTATION, tag)
}

func TestClassify_Multicast(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "ff02::1"), 0, 0)
	require.Equal(t, category.TAG_MULTICAST, tag)
}

func TestClassify_GlobalCommon_NarrowIID(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "2400:cb00:abcd::5"), 80, 0)
	require.Equal(t, category.TAG_GLOBAL_COMMON, tag)
}

func TestClassify_GlobalFull_WideIID(t *testing.T) {
	tag, _ := category.Classify(mustAddr(t, "2400:cb00:1234:5678:9abc:def0:1234:5678"), 80, 0)
	require.Equal(t, category.TAG_GLOBAL_FULL, tag)
}

func TestClassify_4in6_TreatedAsGlobal(t *testing.T) {
	// ::ffff:192.0.2.1 is outside every named IPv6 prefix; falls to
	// the default case (TAG_GLOBAL_FULL), matching spec.md's rule that
	// 4-in-6 literals are not given special categorization.
	tag, _ := category.Classify(mustAddr(t, "::ffff:192.0.2.1"), 80, 0)
	require.Equal(t, category.TAG_GLOBAL_FULL, tag)
}

func TestClassify_FieldsPreserveFullAddress(t *testing.T) {
	addr := mustAddr(t, "2001:db8::dead:beef")
	_, f := category.Classify(addr, 1234, 0)
	want := addr.As16()
	var gotHi, gotLo [8]byte
	for i := 0; i < 8; i++ {
		gotHi[i] = byte(f.AddrHi >> uint(56-8*i))
		gotLo[i] = byte(f.AddrLo >> uint(56-8*i))
	}
	require.Equal(t, want[0:8], gotHi[:])
	require.Equal(t, want[8:16], gotLo[:])
}

func TestLayout_AllTagsCovered(t *testing.T) {
	for _, tag := range category.TagValues() {
		n := category.Layout(tag)
		require.Contains(t, []int{6, 9, 12}, n)
	}
}

func TestTagString_RoundTrip(t *testing.T) {
	for _, tag := range category.TagValues() {
		s := tag.String()
		got, err := category.TagString(s)
		require.NoError(t, err)
		require.Equal(t, tag, got)
	}
}
