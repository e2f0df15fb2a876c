package sha3x

import "github.com/dustin-ray/edcrypt/internal/codec"

// CShake implements NIST SP 800-185 §3's customizable SHAKE. When both N
// and S are empty it degrades to the plain SHAKE XOF at the requested
// output length L (capacity 2d, matching Shake); otherwise it frames a
// function-name/customization prefix ahead of x and absorbs under domain
// byte 0x04 at capacity d — the two branches deliberately use different
// capacities (spec §4.3 step 3; ground truth ops.rs's shake/cshake).
func CShake(x []byte, outputBits int, n, s string, d int) ([]byte, error) {
	if n == "" && s == "" {
		if !validSecurityStrength(d) {
			return nil, newParamError("cshake", "security strength must be one of 224, 256, 384, 512, got %d", d)
		}
		return shakeXOF(x, outputBits, 2*d), nil
	}

	w, err := bytepadWidth(d)
	if err != nil {
		return nil, err
	}

	prefix := codec.EncodeString([]byte(n))
	prefix = append(prefix, codec.EncodeString([]byte(s))...)
	prefix = codec.BytePad(prefix, w)
	prefix = append(prefix, x...)

	return absorbSqueeze(prefix, 0x04, d, outputBits), nil
}
