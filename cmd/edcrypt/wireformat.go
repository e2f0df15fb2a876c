package main

import (
	"math/big"

	"github.com/dustin-ray/edcrypt/internal/curve"
)

// zWidth returns the fixed byte width ⌈log2(r)/8⌉ that a scalar mod r must
// be encoded at when it crosses a file or display boundary (spec §6:
// "all integers crossing the boundary are big-endian with fixed field
// width"). Minimal-length big.Int.Bytes() must never be used here.
func zWidth(id curve.ID) int {
	r := curve.Get(id).R
	return (r.BitLen() + 7) / 8
}

// fixedWidthBytes big-endian encodes z into exactly width bytes, left-
// padding with zeros. z must be non-negative and fit in width bytes.
func fixedWidthBytes(z *big.Int, width int) []byte {
	out := make([]byte, width)
	z.FillBytes(out)
	return out
}
