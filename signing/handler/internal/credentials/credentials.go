package credentials

import (
	"crypto/rsa"
	"os"

	rsapem "ocm.software/open-component-model/bindings/go/rsapkcs1/signing/handler/internal/pem"
	"ocm.software/open-component-model/bindings/go/runtime"
)

var IdentityTypeRSA = runtime.NewVersionedType("RSA", "v1alpha1")

// Credential keys.
//
//nolint:gosec // these are not secrets
const (
	CredentialKeyPublicKeyPEM      = "public_key_pem" // inline PEM
	CredentialKeyPublicKeyPEMFile  = CredentialKeyPublicKeyPEM + "_file"
	CredentialKeyPrivateKeyPEM     = "private_key_pem" // inline PEM
	CredentialKeyPrivateKeyPEMFile = CredentialKeyPrivateKeyPEM + "_file"
)

// PrivateKeyFromCredentials returns the RSA private key held in credentials,
// or nil if there is none.
func PrivateKeyFromCredentials(credentials map[string]string) *rsa.PrivateKey {
	b, err := loadBytes(credentials[CredentialKeyPrivateKeyPEM], CredentialKeyPrivateKeyPEMFile, credentials)
	if err != nil || len(b) == 0 {
		return nil
	}
	return rsapem.ParseRSAPrivateKeyPEM(b)
}

// PublicKeyFromCredentials returns the RSA public key held in credentials.
// Without an explicit public key it falls back to the public half of the
// private key. It returns nil if neither is present.
func PublicKeyFromCredentials(credentials map[string]string) *rsa.PublicKey {
	b, err := loadBytes(credentials[CredentialKeyPublicKeyPEM], CredentialKeyPublicKeyPEMFile, credentials)
	if err != nil || len(b) == 0 {
		if pk := PrivateKeyFromCredentials(credentials); pk != nil {
			return &pk.PublicKey
		}
		return nil
	}
	return rsapem.ParseRSAPublicKeyPEM(b)
}

// loadBytes loads from file or inline PEM
func loadBytes(val string, fileKey string, credentials map[string]string) ([]byte, error) {
	if val != "" {
		return []byte(val), nil
	}
	if path := credentials[fileKey]; path != "" {
		return os.ReadFile(path)
	}
	return nil, nil
}
