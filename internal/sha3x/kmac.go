package sha3x

import "github.com/dustin-ray/edcrypt/internal/codec"

// KmacXOF implements NIST SP 800-185 §4.3.1's KMAC-XOF: a keyed, extendable-
// output MAC built by bytepadding the key and appending the XOF marker
// right_encode(0) ahead of a cSHAKE call domain-separated by the literal
// function name "KMAC" and the caller's customization string S.
func KmacXOF(k, x []byte, outputBits int, s string, d int) ([]byte, error) {
	w, err := bytepadWidth(d)
	if err != nil {
		return nil, err
	}
	newK := codec.BytePad(codec.EncodeString(k), w)
	newK = append(newK, x...)
	newK = append(newK, codec.RightEncode(0)...)
	return CShake(newK, outputBits, "KMAC", s, d)
}
