package edcrypt

import (
	"math/big"

	"github.com/dustin-ray/edcrypt/internal/curve"
)

// Signature is a Schnorr signature (h, z): h is the KMAC-XOF tag over the
// ephemeral nonce point's x-coordinate and the message, z is the response
// scalar reduced mod the signing curve's subgroup order.
type Signature struct {
	H []byte
	Z *big.Int
}

// Message is the mutable façade every core operation reads and writes in
// place (spec §4.6). No operation allocates a new Message and no operation
// clears a field other than the one it is defined to produce.
//
// A single *Message must not be mutated concurrently by two operations;
// callers serialize access to it. Distinct Messages are fully independent
// and may be processed by independent goroutines.
type Message struct {
	Data      []byte
	Digest    []byte
	SymNonce  []byte
	AsymNonce *AsymNonce
	Sig       *Signature
	OpResult  *bool
}

// AsymNonce carries the ephemeral public point Z produced by key-based
// encryption, along with the curve it was generated on so decryption can
// select the matching generator and subgroup order.
type AsymNonce struct {
	CurveID curve.ID
	X, Y    *big.Int
}

// NewMessage wraps data as a fresh Message with no digest, nonce, signature,
// or verification result set.
func NewMessage(data []byte) *Message {
	return &Message{Data: data}
}
