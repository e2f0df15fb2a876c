package edcrypt

import (
	"math/big"

	"github.com/dustin-ray/edcrypt/internal/curve"
	"github.com/dustin-ray/edcrypt/internal/sha3x"
)

// KeyPair is a (passphrase-derived) Schnorr/ECDHIES keypair: a private
// scalar S, a public point V = S*G, and the metadata a collaborator's
// keyfile would persist. The private scalar is only ever held in memory;
// nothing in this package writes it to disk (spec §6's keyfile layout).
type KeyPair struct {
	Owner     string
	Curve     curve.ID
	Priv      *big.Int
	Pub       curve.Point
	CreatedAt string
	SecurityD int
}

// PublicKey is the subset of a KeyPair a verifier needs: the curve and the
// public point V.
type PublicKey struct {
	Curve curve.ID
	V     curve.Point
}

// Public returns the verifier-facing half of kp.
func (kp *KeyPair) Public() PublicKey {
	return PublicKey{Curve: kp.Curve, V: kp.Pub}
}

// deriveScalar computes s <- 4 * bytes_to_int(KMAC-XOF(pw, "", 512, "K", d))
// mod r, the cofactor-clearing derivation shared by keypair generation,
// key-based decryption, and Schnorr signing (spec §4.5.2). The multiply by
// 4 must happen before the reduction mod r, not after, to match existing
// ciphertexts (spec §9).
func deriveScalar(pw []byte, c *curve.Curve, d int) (*big.Int, error) {
	kn, err := sha3x.KmacXOF(pw, nil, 512, "K", d)
	if err != nil {
		return nil, err
	}
	defer zeroize(kn)

	s := new(big.Int).SetBytes(kn)
	s.Mul(s, big.NewInt(curve.Cofactor))
	s.Mod(s, c.R)
	return s, nil
}

// KeyPairNew derives a deterministic (Schnorr/ECDHIES) keypair from a
// passphrase: s <- 4*KMAC-XOF(pw, "", 512, "K") mod r, V <- s*G (spec
// §4.5.2). The same passphrase always yields the same keypair.
func KeyPairNew(pw []byte, owner string, id curve.ID, d int) (*KeyPair, error) {
	c := curve.Get(id)
	s, err := deriveScalar(pw, c, d)
	if err != nil {
		return nil, err
	}
	v := curve.ScalarMul(curve.Generator(id, false), s)

	return &KeyPair{
		Owner:     owner,
		Curve:     id,
		Priv:      s,
		Pub:       v,
		CreatedAt: nowAsString(),
		SecurityD: d,
	}, nil
}
