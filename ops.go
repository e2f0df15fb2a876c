// Package edcrypt is a self-contained cryptographic toolkit built on a
// from-scratch Keccak-p[1600,24] sponge (internal/keccak, internal/sha3x)
// and Edwards-curve scalar multiplication (internal/curve). It exposes
// password-based authenticated encryption, public-key (ECDHIES-style)
// encryption, and Schnorr signatures, all as in-place operations on a
// Message (see message.go).
package edcrypt

import (
	"crypto/subtle"
	"math/big"

	"github.com/dustin-ray/edcrypt/internal/codec"
	"github.com/dustin-ray/edcrypt/internal/curve"
	"github.com/dustin-ray/edcrypt/internal/sha3x"
)

func validSecurityStrength(d int) bool {
	switch d {
	case 224, 256, 384, 512:
		return true
	default:
		return false
	}
}

// Hash computes hash(data, d) = SHAKE-d(data), the unkeyed digest operation
// exposed to collaborators (spec §6).
func Hash(data []byte, d int) ([]byte, error) {
	if !validSecurityStrength(d) {
		return nil, paramError("hash", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	return sha3x.Shake(data, d)
}

// TaggedHash computes tagged_hash(key, data, domain, d) = KMAC-XOF(key,
// data, 512, domain, d), the keyed digest operation exposed to
// collaborators (spec §6).
func TaggedHash(key, data []byte, domain string, d int) ([]byte, error) {
	return sha3x.KmacXOF(key, data, 512, domain, d)
}

// constantTimeEqual compares two byte slices without leaking which byte (if
// any) first differs; unequal lengths always compare unequal in constant
// time for fixed-size inputs (spec §9's "tag equality must be
// constant-time" design note).
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// PwEncrypt encrypts Message.Data in place under passphrase pw (spec
// §4.5.1): z <- Random(64 bytes); (ke||ka) <- KMAC-XOF(z||pw, "", 1024,
// "S"); t <- KMAC-XOF(ka, m, 512, "SKA") computed over the plaintext; c <-
// m XOR KMAC-XOF(ke, "", 8|m|, "SKE"). On return, Data holds the
// ciphertext, Digest holds t, and SymNonce holds z.
func PwEncrypt(msg *Message, pw []byte, d int) error {
	if !validSecurityStrength(d) {
		return paramError("pw_encrypt", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	z, err := randomBytes("pw_encrypt", 64)
	if err != nil {
		return err
	}

	zPw := append(append([]byte{}, z...), pw...)
	keKa, err := sha3x.KmacXOF(zPw, nil, 1024, "S", d)
	if err != nil {
		return err
	}
	defer zeroize(keKa)
	ke, ka := keKa[:64], keKa[64:]

	t, err := sha3x.KmacXOF(ka, msg.Data, 512, "SKA", d)
	if err != nil {
		return err
	}

	ksBits := len(msg.Data) * 8
	ks, err := sha3x.KmacXOF(ke, nil, ksBits, "SKE", d)
	if err != nil {
		return err
	}
	defer zeroize(ks)

	c := make([]byte, len(msg.Data))
	codec.XorBytes(c, msg.Data, ks)

	msg.Data = c
	msg.Digest = t
	msg.SymNonce = z
	return nil
}

// PwDecrypt decrypts Message.Data in place under passphrase pw (spec
// §4.5.1): recomputes (ke||ka) from a *copy* of SymNonce||pw (so a second
// decrypt attempt on the same cryptogram still works — spec §9), recovers
// m, recomputes t', and sets OpResult to the constant-time tag comparison.
// Data is overwritten with the candidate plaintext even when verification
// fails; callers must not trust Data unless OpResult is true.
func PwDecrypt(msg *Message, pw []byte, d int) error {
	if !validSecurityStrength(d) {
		return paramError("pw_decrypt", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}

	zPw := make([]byte, len(msg.SymNonce), len(msg.SymNonce)+len(pw))
	copy(zPw, msg.SymNonce)
	zPw = append(zPw, pw...)

	keKa, err := sha3x.KmacXOF(zPw, nil, 1024, "S", d)
	if err != nil {
		return err
	}
	defer zeroize(keKa)
	ke, ka := keKa[:64], keKa[64:]

	ksBits := len(msg.Data) * 8
	ks, err := sha3x.KmacXOF(ke, nil, ksBits, "SKE", d)
	if err != nil {
		return err
	}
	defer zeroize(ks)

	m := make([]byte, len(msg.Data))
	codec.XorBytes(m, msg.Data, ks)
	msg.Data = m

	tPrime, err := sha3x.KmacXOF(ka, msg.Data, 512, "SKA", d)
	if err != nil {
		return err
	}

	ok := constantTimeEqual(msg.Digest, tPrime)
	msg.OpResult = &ok
	return nil
}

// KeyEncrypt encrypts Message.Data in place under the recipient's public
// point V (spec §4.5.3, ECDHIES): k <- 4*Random(64 bytes) mod r; W <- k*V;
// Z <- k*G; (ke||ka) <- KMAC-XOF(bytes(W.x), "", 1024, "PK"); t <-
// KMAC-XOF(ka, m, 512, "PKA"); c <- m XOR KMAC-XOF(ke, "", 8|m|, "PKE").
func KeyEncrypt(msg *Message, pub PublicKey, d int) error {
	if !validSecurityStrength(d) {
		return paramError("key_encrypt", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	c := curve.Get(pub.Curve)

	kb, err := randomBytes("key_encrypt", 64)
	if err != nil {
		return err
	}
	k := new(big.Int).SetBytes(kb)
	k.Mul(k, big.NewInt(curve.Cofactor))
	k.Mod(k, c.R)
	defer zeroizeBigInt(k)

	w := curve.ScalarMul(pub.V, k)
	z := curve.ScalarMul(curve.Generator(pub.Curve, false), k)

	keKa, err := sha3x.KmacXOF(w.X.Bytes(), nil, 1024, "PK", d)
	if err != nil {
		return err
	}
	defer zeroize(keKa)
	ke, ka := keKa[:64], keKa[64:]

	t, err := sha3x.KmacXOF(ka, msg.Data, 512, "PKA", d)
	if err != nil {
		return err
	}

	ksBits := len(msg.Data) * 8
	ks, err := sha3x.KmacXOF(ke, nil, ksBits, "PKE", d)
	if err != nil {
		return err
	}
	defer zeroize(ks)

	cOut := make([]byte, len(msg.Data))
	codec.XorBytes(cOut, msg.Data, ks)

	msg.Data = cOut
	msg.Digest = t
	msg.AsymNonce = &AsymNonce{CurveID: pub.Curve, X: z.X, Y: z.Y}
	return nil
}

// KeyDecrypt decrypts Message.Data in place under passphrase pw (spec
// §4.5.3): rederives s from pw, computes W <- s*Z (equal to the
// encryptor's k*V since s*Z = s*(k*G) = k*(s*G) = k*V), rederives (ke,ka),
// decrypts, recomputes t', and sets OpResult.
func KeyDecrypt(msg *Message, pw []byte, d int) error {
	if !validSecurityStrength(d) {
		return paramError("key_decrypt", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	if msg.AsymNonce == nil {
		return paramError("key_decrypt", "message has no asymmetric nonce to decrypt against")
	}
	c := curve.Get(msg.AsymNonce.CurveID)

	s, err := deriveScalar(pw, c, d)
	if err != nil {
		return err
	}
	defer zeroizeBigInt(s)

	z := curve.Point{Curve: msg.AsymNonce.CurveID, X: msg.AsymNonce.X, Y: msg.AsymNonce.Y}
	w := curve.ScalarMul(z, s)

	keKa, err := sha3x.KmacXOF(w.X.Bytes(), nil, 1024, "PK", d)
	if err != nil {
		return err
	}
	defer zeroize(keKa)
	ke, ka := keKa[:64], keKa[64:]

	ksBits := len(msg.Data) * 8
	ks, err := sha3x.KmacXOF(ke, nil, ksBits, "PKE", d)
	if err != nil {
		return err
	}
	defer zeroize(ks)

	m := make([]byte, len(msg.Data))
	codec.XorBytes(m, msg.Data, ks)
	msg.Data = m

	tPrime, err := sha3x.KmacXOF(ka, msg.Data, 512, "PKA", d)
	if err != nil {
		return err
	}

	ok := constantTimeEqual(msg.Digest, tPrime)
	msg.OpResult = &ok
	return nil
}

// Sign computes a Schnorr signature over Message.Data under key.Priv (spec
// §4.5.4): s is key.Priv, already 4*KMAC-XOF(pw,"",512,"K") mod r from
// KeyPairNew/deriveScalar; k <- 4*KMAC-XOF(bytes(s), m, 512, "N"); U <-
// k*G; h <- KMAC-XOF(bytes(U.x), m, 512, "T"); z <- ((k - h*s) mod r + r)
// mod r. Sets Message.Sig.
func Sign(msg *Message, key *KeyPair, d int) error {
	if !validSecurityStrength(d) {
		return paramError("sign", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	c := curve.Get(key.Curve)

	s := new(big.Int).Set(key.Priv)
	defer zeroizeBigInt(s)

	kn, err := sha3x.KmacXOF(s.Bytes(), msg.Data, 512, "N", d)
	if err != nil {
		return err
	}
	k := new(big.Int).SetBytes(kn)
	k.Mul(k, big.NewInt(curve.Cofactor))
	defer zeroizeBigInt(k)

	u := curve.ScalarMul(curve.Generator(key.Curve, false), k)
	h, err := sha3x.KmacXOF(u.X.Bytes(), msg.Data, 512, "T", d)
	if err != nil {
		return err
	}

	hBig := new(big.Int).SetBytes(h)
	z := new(big.Int).Mul(hBig, s)
	z.Sub(k, z)
	z.Mod(z, c.R)
	z.Add(z, c.R)
	z.Mod(z, c.R)

	msg.Sig = &Signature{H: h, Z: z}
	return nil
}

// Verify checks Message.Sig against public key pub over Message.Data (spec
// §4.5.4): U' <- z*G + h*V; h' <- KMAC-XOF(bytes(U'.x), m, 512, "T");
// accept iff h' = h. Sets Message.OpResult; never returns a non-nil error
// for a verification mismatch, only for a parameter error.
func Verify(msg *Message, pub PublicKey, d int) error {
	if !validSecurityStrength(d) {
		return paramError("verify", "security strength must be one of 224, 256, 384, 512, got %d", d)
	}
	if msg.Sig == nil {
		return paramError("verify", "message has no signature to verify")
	}

	hBig := new(big.Int).SetBytes(msg.Sig.H)
	uPrime := curve.ScalarMul(curve.Generator(pub.Curve, false), msg.Sig.Z)
	hv := curve.ScalarMul(pub.V, hBig)
	uPrime = curve.Add(uPrime, hv)

	hPrime, err := sha3x.KmacXOF(uPrime.X.Bytes(), msg.Data, 512, "T", d)
	if err != nil {
		return err
	}

	ok := constantTimeEqual(msg.Sig.H, hPrime)
	msg.OpResult = &ok
	return nil
}
