// Package feistel implements the Diffuser (spec C3): a reversible,
// non-cryptographic 8-round balanced Feistel permutation over a 48-bit
// block. It exists purely for usability - two endpoints differing by
// one bit should not produce word sequences sharing a long common
// prefix - and carries no secrecy guarantee (spec.md Non-goals).
//
// Wire-format note: rounds, the S-box, and the round-key schedule below
// are fixed. Changing any of them changes every Encode/Decode output
// and is a wire-format break requiring a codec version bump.
package feistel

import "math/bits"

// Rounds is the fixed number of Feistel rounds.
const Rounds = 8

// halfMask isolates the low 24 bits of a half-block.
const halfMask = 0x00FFFFFF

// roundKeys is the fixed, public round-key schedule: eight fixed 24-bit
// constants, one per round - not secret, just a fixed source of
// "random-looking" per-round constants.
var roundKeys = [Rounds]uint32{
	0x6A09E6, 0x67F3BC, 0xC6EF37, 0x2FE94F,
	0x3510E5, 0x27F27B, 0x9EC8ED, 0x5AC0D9,
}

// sbox is a fixed 8-bit substitution table providing the round
// function's non-linearity. Generated once as a fixed permutation of
// [0, 256) - any bijective, non-linear byte permutation satisfies the
// design requirement; this one has no other significance.
var sbox = buildSBox()

func buildSBox() [256]byte {
	var s [256]byte
	// A simple fixed bijection: multiply by an odd constant mod 256,
	// then rotate. Both steps are invertible, and the combination is
	// non-linear enough for diffusion purposes (not a cryptographic claim).
	for i := 0; i < 256; i++ {
		v := byte(i)*173 + 57
		v = bits.RotateLeft8(v, 3)
		s[i] = v
	}
	return s
}

// f is the non-linear round function over a 24-bit half-block and a
// 24-bit round key: three S-box substitutions (one per byte) followed
// by a 32-bit left rotation by 5, masked to the low 24 bits (the bits
// rotated above bit 23 are dropped, and the low 5 bits are zero).
func f(half uint32, key uint32) uint32 {
	x := half ^ key
	b0 := sbox[byte(x)]
	b1 := sbox[byte(x>>8)]
	b2 := sbox[byte(x>>16)]
	mixed := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
	return bits.RotateLeft32(mixed, 5) & halfMask
}

// Encode applies the forward 8-round Feistel permutation to the low 48
// bits of block; bits above 48 are ignored and zero in the result.
func Encode(block uint64) uint64 {
	left := uint32((block >> 24) & halfMask)
	right := uint32(block & halfMask)

	for round := 0; round < Rounds; round++ {
		newRight := left ^ f(right, roundKeys[round])
		left = right
		right = newRight
	}

	return uint64(left)<<24 | uint64(right)
}

// Decode applies the inverse permutation; Decode(Encode(b)) == b for
// every 48-bit value of b.
func Decode(block uint64) uint64 {
	left := uint32((block >> 24) & halfMask)
	right := uint32(block & halfMask)

	for round := Rounds - 1; round >= 0; round-- {
		newLeft := right ^ f(left, roundKeys[round])
		right = left
		left = newLeft
	}

	return uint64(left)<<24 | uint64(right)
}
