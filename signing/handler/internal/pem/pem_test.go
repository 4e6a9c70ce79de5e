package pem

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SignaturePEM(t *testing.T) {
	sig := []byte{0x00, 0x00, 0x12, 0x34}

	data := SignatureBytesToPem("RSASSA-PKCS1-V1_5", sig)
	assert.Contains(t, string(data), "-----BEGIN SIGNATURE-----")
	assert.Contains(t, string(data), "Signature Algorithm: RSASSA-PKCS1-V1_5")

	got, algo, err := GetSignatureFromPem(data)
	require.NoError(t, err)
	assert.Equal(t, sig, got)
	assert.Equal(t, "RSASSA-PKCS1-V1_5", algo)

	t.Run("without algorithm header", func(t *testing.T) {
		got, algo, err := GetSignatureFromPem(SignatureBytesToPem("", sig))
		require.NoError(t, err)
		assert.Equal(t, sig, got)
		assert.Empty(t, algo)
	})

	t.Run("no pem", func(t *testing.T) {
		_, _, err := GetSignatureFromPem([]byte("deadbeef"))
		require.ErrorIs(t, err, ErrNoPEM)
		_, _, err = GetSignatureFromPem(nil)
		require.ErrorIs(t, err, ErrNoPEM)
	})

	t.Run("wrong block type", func(t *testing.T) {
		other := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{0x01}})
		_, _, err := GetSignatureFromPem(other)
		require.ErrorIs(t, err, ErrNoSignature)
	})
}

func Test_ParseKeys(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pkix, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	encode := func(typ string, der []byte) []byte {
		return pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der})
	}

	for name, data := range map[string][]byte{
		"pkcs1": encode("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key)),
		"pkcs8": encode("PRIVATE KEY", pkcs8),
		"after unrelated block": append(
			encode("CERTIFICATE", []byte{0x01}),
			encode("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key))...,
		),
	} {
		t.Run("private "+name, func(t *testing.T) {
			got := ParseRSAPrivateKeyPEM(data)
			require.NotNil(t, got)
			assert.True(t, key.Equal(got))
		})
	}

	for name, data := range map[string][]byte{
		"pkix":  encode("PUBLIC KEY", pkix),
		"pkcs1": encode("RSA PUBLIC KEY", x509.MarshalPKCS1PublicKey(&key.PublicKey)),
	} {
		t.Run("public "+name, func(t *testing.T) {
			got := ParseRSAPublicKeyPEM(data)
			require.NotNil(t, got)
			assert.True(t, key.PublicKey.Equal(got))
		})
	}

	assert.Nil(t, ParseRSAPrivateKeyPEM([]byte("garbage")))
	assert.Nil(t, ParseRSAPublicKeyPEM(encode("PUBLIC KEY", []byte{0x30, 0x00})))
}
