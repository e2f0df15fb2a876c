package edcrypt

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dustin-ray/edcrypt/internal/curve"
)

func TestHashRejectsBadStrength(t *testing.T) {
	_, err := Hash([]byte("x"), 100)
	assert.Error(t, err)
	var pe *ParamError
	assert.ErrorAs(t, err, &pe)
}

func TestHashIsDeterministic(t *testing.T) {
	a, err := Hash([]byte("data"), 256)
	require.NoError(t, err)
	b, err := Hash([]byte("data"), 256)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHashEmptyMessage(t *testing.T) {
	out, err := Hash(nil, 512)
	require.NoError(t, err)
	assert.Len(t, out, 64)
}

func TestTaggedHashKeySensitivity(t *testing.T) {
	a, err := TaggedHash([]byte("k1"), []byte("x"), "D", 256)
	require.NoError(t, err)
	b, err := TaggedHash([]byte("k2"), []byte("x"), "D", 256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPwEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	msg := NewMessage(append([]byte{}, plaintext...))
	pw := []byte("hunter2")

	require.NoError(t, PwEncrypt(msg, pw, 512))
	assert.NotEqual(t, plaintext, msg.Data)
	require.NotNil(t, msg.Digest)
	require.NotNil(t, msg.SymNonce)

	require.NoError(t, PwDecrypt(msg, pw, 512))
	require.NotNil(t, msg.OpResult)
	assert.True(t, *msg.OpResult)
	assert.Equal(t, plaintext, msg.Data)
}

func TestPwEncryptDecryptEmptyMessage(t *testing.T) {
	msg := NewMessage(nil)
	pw := []byte("hunter2")

	require.NoError(t, PwEncrypt(msg, pw, 512))
	require.NoError(t, PwDecrypt(msg, pw, 512))
	require.NotNil(t, msg.OpResult)
	assert.True(t, *msg.OpResult)
	assert.Empty(t, msg.Data)
}

func TestPwDecryptFailsOnWrongPassword(t *testing.T) {
	msg := NewMessage([]byte("secret payload"))
	require.NoError(t, PwEncrypt(msg, []byte("correct-password"), 512))

	require.NoError(t, PwDecrypt(msg, []byte("wrong-password"), 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestPwDecryptFailsOnTamperedCiphertext(t *testing.T) {
	msg := NewMessage([]byte("secret payload"))
	pw := []byte("hunter2")
	require.NoError(t, PwEncrypt(msg, pw, 512))

	msg.Data[0] ^= 0x01

	require.NoError(t, PwDecrypt(msg, pw, 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestPwDecryptFailsOnTamperedDigest(t *testing.T) {
	msg := NewMessage([]byte("secret payload"))
	pw := []byte("hunter2")
	require.NoError(t, PwEncrypt(msg, pw, 512))

	msg.Digest[0] ^= 0x01

	require.NoError(t, PwDecrypt(msg, pw, 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestPwEncryptRejectsBadStrength(t *testing.T) {
	msg := NewMessage([]byte("x"))
	err := PwEncrypt(msg, []byte("pw"), 100)
	assert.Error(t, err)
}

func TestPwEncryptLargePayloadRoundTrip(t *testing.T) {
	payload := make([]byte, 5*1024*1024)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	msg := NewMessage(append([]byte{}, payload...))
	pw := []byte("a passphrase for a large payload")

	require.NoError(t, PwEncrypt(msg, pw, 256))
	require.NoError(t, PwDecrypt(msg, pw, 256))
	require.NotNil(t, msg.OpResult)
	assert.True(t, *msg.OpResult)
	assert.Equal(t, payload, msg.Data)
}

func TestKeyEncryptDecryptRoundTrip(t *testing.T) {
	pw := []byte("recipient passphrase")
	kp, err := KeyPairNew(pw, "bob", curve.E521, 512)
	require.NoError(t, err)

	plaintext := []byte("a message for bob's public key")
	msg := NewMessage(append([]byte{}, plaintext...))

	require.NoError(t, KeyEncrypt(msg, kp.Public(), 512))
	assert.NotEqual(t, plaintext, msg.Data)
	require.NotNil(t, msg.AsymNonce)

	require.NoError(t, KeyDecrypt(msg, pw, 512))
	require.NotNil(t, msg.OpResult)
	assert.True(t, *msg.OpResult)
	assert.Equal(t, plaintext, msg.Data)
}

func TestKeyDecryptFailsOnWrongPassphrase(t *testing.T) {
	kp, err := KeyPairNew([]byte("real passphrase"), "bob", curve.E521, 512)
	require.NoError(t, err)

	msg := NewMessage([]byte("confidential"))
	require.NoError(t, KeyEncrypt(msg, kp.Public(), 512))

	require.NoError(t, KeyDecrypt(msg, []byte("wrong passphrase"), 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestKeyDecryptRequiresAsymNonce(t *testing.T) {
	msg := NewMessage([]byte("x"))
	err := KeyDecrypt(msg, []byte("pw"), 512)
	assert.Error(t, err)
	var pe *ParamError
	assert.ErrorAs(t, err, &pe)
}

func TestKeyEncryptAcrossCurves(t *testing.T) {
	for _, id := range []curve.ID{curve.E521, curve.E448} {
		d := curve.Get(id).SecurityD
		pw := []byte("passphrase-" + id.String())
		kp, err := KeyPairNew(pw, "owner", id, d)
		require.NoError(t, err)

		msg := NewMessage([]byte("payload for " + id.String()))
		require.NoError(t, KeyEncrypt(msg, kp.Public(), d))
		require.NoError(t, KeyDecrypt(msg, pw, d))
		require.NotNil(t, msg.OpResult)
		assert.True(t, *msg.OpResult, "curve %s", id)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := KeyPairNew([]byte("signer passphrase"), "dave", curve.E521, 512)
	require.NoError(t, err)

	msg := NewMessage([]byte("a message to sign"))
	require.NoError(t, Sign(msg, kp, 512))
	require.NotNil(t, msg.Sig)

	require.NoError(t, Verify(msg, kp.Public(), 512))
	require.NotNil(t, msg.OpResult)
	assert.True(t, *msg.OpResult)
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	kp, err := KeyPairNew([]byte("signer passphrase"), "dave", curve.E521, 512)
	require.NoError(t, err)

	msg := NewMessage([]byte("a message to sign"))
	require.NoError(t, Sign(msg, kp, 512))

	msg.Data = []byte("a tampered message")
	require.NoError(t, Verify(msg, kp.Public(), 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestVerifyFailsOnWrongKey(t *testing.T) {
	kp, err := KeyPairNew([]byte("signer passphrase"), "dave", curve.E521, 512)
	require.NoError(t, err)
	other, err := KeyPairNew([]byte("different passphrase"), "eve", curve.E521, 512)
	require.NoError(t, err)

	msg := NewMessage([]byte("a message to sign"))
	require.NoError(t, Sign(msg, kp, 512))

	require.NoError(t, Verify(msg, other.Public(), 512))
	require.NotNil(t, msg.OpResult)
	assert.False(t, *msg.OpResult)
}

func TestVerifyRequiresSignature(t *testing.T) {
	kp, err := KeyPairNew([]byte("pw"), "dave", curve.E521, 512)
	require.NoError(t, err)

	msg := NewMessage([]byte("unsigned"))
	err = Verify(msg, kp.Public(), 512)
	assert.Error(t, err)
	var pe *ParamError
	assert.ErrorAs(t, err, &pe)
}

func TestSignIsDeterministicInPassphrase(t *testing.T) {
	kp, err := KeyPairNew([]byte("signer passphrase"), "dave", curve.E521, 512)
	require.NoError(t, err)

	data := []byte("repeatable message")
	m1 := NewMessage(append([]byte{}, data...))
	m2 := NewMessage(append([]byte{}, data...))

	require.NoError(t, Sign(m1, kp, 512))
	require.NoError(t, Sign(m2, kp, 512))

	assert.Equal(t, m1.Sig.H, m2.Sig.H)
	assert.Equal(t, 0, m1.Sig.Z.Cmp(m2.Sig.Z))
}
