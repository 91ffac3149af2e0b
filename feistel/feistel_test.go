package feistel_test

import (
	"math/rand"
	"testing"

	"github.com/dirvine/three-word-networking/feistel"
	"github.com/stretchr/testify/require"
)

const blockMask = (uint64(1) << 48) - 1

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []uint64{
		0,
		blockMask,
		0x0000000000001,
		0x800000000000 & blockMask,
		0xDEADBEEFCAFE & blockMask,
	}
	for _, b := range cases {
		enc := feistel.Encode(b)
		require.LessOrEqual(t, enc, blockMask)
		dec := feistel.Decode(enc)
		require.Equal(t, b, dec, "block %x", b)
	}
}

func TestEncodeDecode_RoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		b := rng.Uint64() & blockMask
		require.Equal(t, b, feistel.Decode(feistel.Encode(b)))
	}
}

func TestBijective(t *testing.T) {
	// Every distinct input in a sample must map to a distinct output.
	rng := rand.New(rand.NewSource(7))
	seen := make(map[uint64]bool)
	for i := 0; i < 5000; i++ {
		b := rng.Uint64() & blockMask
		enc := feistel.Encode(b)
		require.False(t, seen[enc], "collision at block %x", b)
		seen[enc] = true
	}
}

// TestDiffusion checks invariant 6 from spec.md: a single bit flip in the
// input changes at least 2 of the four 12-bit dictionary indices carved
// out of the 48-bit output.
func TestDiffusion(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		b := rng.Uint64() & blockMask
		bit := rng.Intn(48)
		flipped := b ^ (uint64(1) << uint(bit))

		e1 := feistel.Encode(b)
		e2 := feistel.Encode(flipped)

		diffWords := 0
		for w := 0; w < 4; w++ {
			shift := uint(36 - w*12)
			if (e1>>shift)&0xFFF != (e2>>shift)&0xFFF {
				diffWords++
			}
		}
		require.GreaterOrEqual(t, diffWords, 2, "block %x bit %d", b, bit)
	}
}

func TestHighBitsIgnored(t *testing.T) {
	// Bits above the 48-bit block must not leak into the result.
	a := feistel.Encode(0x123456789ABC & blockMask)
	b := feistel.Encode((0x123456789ABC & blockMask) | (0xFF << 48))
	require.Equal(t, a, b)
}
