package feistel_test

import (
	"testing"

	"github.com/dirvine/three-word-networking/feistel"
	"github.com/stretchr/testify/require"
)

func TestDiffuseUndiffuse_ExactMultiple(t *testing.T) {
	bits := make([]bool, 96) // two 48-bit blocks
	for i := range bits {
		bits[i] = i%5 == 0
	}
	d := feistel.Diffuse(bits)
	require.Equal(t, bits, feistel.Undiffuse(d))
}

func TestDiffuse_TailUntouched(t *testing.T) {
	bits := make([]bool, 72) // one block + 24-bit tail (6-word layout)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	d := feistel.Diffuse(bits)
	require.Equal(t, bits[48:], d[48:], "tail shorter than a block must pass through unchanged")
	require.Equal(t, bits, feistel.Undiffuse(d))
}

func TestDiffuse_ShorterThanOneBlock(t *testing.T) {
	bits := make([]bool, 30)
	for i := range bits {
		bits[i] = i%2 == 1
	}
	d := feistel.Diffuse(bits)
	require.Equal(t, bits, d)
}
