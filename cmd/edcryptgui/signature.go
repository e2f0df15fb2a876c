package main

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/dustin-ray/edcrypt"
)

// parseSignatureText parses the "h:z" notation setSignature writes back
// into the notepad: h hex-encoded, z base-16.
func parseSignatureText(s string) (*edcrypt.Signature, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return nil, false
	}
	h, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, false
	}
	z, ok := new(big.Int).SetString(parts[1], 16)
	if !ok {
		return nil, false
	}
	return &edcrypt.Signature{H: h, Z: z}, true
}
