package keccak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad101LengthIsMultipleOfRate(t *testing.T) {
	rate := 136
	for _, n := range []int{0, 1, rate - 1, rate, rate + 1, 3 * rate} {
		out := pad101(make([]byte, n), rate)
		require.Zero(t, len(out)%rate)
		assert.Greater(t, len(out), n, "pad101 must always add at least one byte")
	}
}

func TestPad101SetsTopBit(t *testing.T) {
	out := pad101(make([]byte, 10), 136)
	assert.Equal(t, byte(0x80), out[len(out)-1]&0x80)
}

func TestAbsorbSqueezeRoundTripDeterministic(t *testing.T) {
	input := append([]byte("hello world"), 0x06)
	s1 := Absorb(input, 512)
	out1 := Squeeze(s1, 256, 1600-512)

	s2 := Absorb(input, 512)
	out2 := Squeeze(s2, 256, 1600-512)

	assert.Equal(t, out1, out2)
	assert.Len(t, out1, 32)
}

func TestSqueezeProducesRequestedLength(t *testing.T) {
	input := append([]byte("x"), 0x1f)
	for _, outBits := range []int{8, 128, 1344, 4096} {
		s := Absorb(input, 256)
		out := Squeeze(s, outBits, 1600-256)
		assert.Len(t, out, outBits/8)
	}
}

func TestAbsorbDiffersOnInput(t *testing.T) {
	a := Squeeze(Absorb(append([]byte("a"), 0x06), 512), 256, 1600-512)
	b := Squeeze(Absorb(append([]byte("b"), 0x06), 512), 256, 1600-512)
	assert.NotEqual(t, a, b)
}
