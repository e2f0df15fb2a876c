// Package keccak implements the Keccak-p[1600, 24] permutation (FIPS 202
// §3.3) and the sponge construction built on top of it (FIPS 202 §4). This
// is the one primitive in the toolkit that must match the standard
// bit-for-bit; no third-party substitute is used here on purpose (see
// DESIGN.md).
package keccak

// LaneCount is the number of 64-bit lanes in a Keccak-p[1600] state.
const LaneCount = 25

// StateBytes is the width of the state in bytes (1600 bits).
const StateBytes = LaneCount * 8

// State is the 5x5 array of 64-bit lanes, addressed state[x+5y] per the
// FIPS 202 reference layout.
type State [LaneCount]uint64

var rotationOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// Permute applies the 24-round Keccak-p[1600,24] permutation to state in
// place: theta, rho+pi, chi, iota, each round.
func Permute(state *State) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = state[i] ^ state[i+5] ^ state[i+10] ^ state[i+15] ^ state[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				state[j+i] ^= t
			}
		}

		// rho and pi
		t := state[1]
		for i := 0; i < 24; i++ {
			j := piLane[i]
			bc[0] = state[j]
			state[j] = rotl64(t, rotationOffsets[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = state[j+i]
			}
			for i := 0; i < 5; i++ {
				state[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		state[0] ^= roundConstants[round]
	}
}
