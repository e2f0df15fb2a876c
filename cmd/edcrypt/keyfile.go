package main

import (
	"encoding/hex"
	"encoding/json"
	"math/big"
	"os"

	"github.com/dustin-ray/edcrypt"
	"github.com/dustin-ray/edcrypt/internal/curve"
)

// keyFile is the on-disk JSON layout for a public keyfile (spec §6): it
// never carries the private scalar, only what a verifier or encryptor
// needs plus the metadata a collaborator displays. Signature is a
// self-signature over owner+pub_x+pub_y+created_at under the same
// keypair, letting a holder of the keyfile detect tampering without
// trusting whoever handed it to them.
type keyFile struct {
	Owner     string `json:"owner"`
	Curve     string `json:"curve"`
	PubX      string `json:"pub_x"`
	PubY      string `json:"pub_y"`
	CreatedAt string `json:"created_at"`
	Signature string `json:"signature"`
}

func writeKeyFile(path string, kp *edcrypt.KeyPair, d int) error {
	kf := keyFile{
		Owner:     kp.Owner,
		Curve:     kp.Curve.String(),
		PubX:      kp.Pub.X.Text(16),
		PubY:      kp.Pub.Y.Text(16),
		CreatedAt: kp.CreatedAt,
	}

	selfMsg := edcrypt.NewMessage([]byte(kf.Owner + kf.PubX + kf.PubY + kf.CreatedAt))
	if err := edcrypt.Sign(selfMsg, kp, d); err != nil {
		return err
	}
	zBytes := fixedWidthBytes(selfMsg.Sig.Z, zWidth(kp.Curve))
	kf.Signature = hex.EncodeToString(selfMsg.Sig.H) + ":" + hex.EncodeToString(zBytes)

	out, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func readKeyFile(path string) (*keyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var kf keyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, err
	}
	return &kf, nil
}

func (kf *keyFile) publicKey() edcrypt.PublicKey {
	id, err := parseCurve(kf.Curve)
	if err != nil {
		panic(err)
	}
	x, _ := new(big.Int).SetString(kf.PubX, 16)
	y, _ := new(big.Int).SetString(kf.PubY, 16)
	return edcrypt.PublicKey{Curve: id, V: curve.NewPoint(id, x, y)}
}
