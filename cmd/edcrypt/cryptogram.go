package main

import (
	"fmt"

	"github.com/dustin-ray/edcrypt"
)

// A cryptogram written by "encrypt" is SymNonce (64 bytes) || Digest (64
// bytes) || ciphertext, matching the fixed-width fields PwEncrypt always
// produces (spec §6's wire layout for the symmetric cryptogram).
const (
	symNonceLen = 64
	digestLen   = 64
)

func encodeCryptogram(msg *edcrypt.Message) []byte {
	out := make([]byte, 0, symNonceLen+digestLen+len(msg.Data))
	out = append(out, msg.SymNonce...)
	out = append(out, msg.Digest...)
	out = append(out, msg.Data...)
	return out
}

func decodeCryptogram(raw []byte) (*edcrypt.Message, error) {
	if len(raw) < symNonceLen+digestLen {
		return nil, fmt.Errorf("cryptogram too short: %d bytes", len(raw))
	}
	msg := edcrypt.NewMessage(raw[symNonceLen+digestLen:])
	msg.SymNonce = raw[:symNonceLen]
	msg.Digest = raw[symNonceLen : symNonceLen+digestLen]
	return msg, nil
}
