package handler

import (
	"crypto"
	"crypto/rsa"
	"encoding/hex"
	"fmt"

	"ocm.software/open-component-model/bindings/go/rsapkcs1/signing/handler/internal/pem"
	"ocm.software/open-component-model/bindings/go/rsapkcs1/signing/pkcs1v15"
	"ocm.software/open-component-model/bindings/go/rsapkcs1/signing/v1alpha1"
)

// signRSA signs dig with priv and returns the fixed-width signature value.
func signRSA(priv *rsa.PrivateKey, h crypto.Hash, dig []byte) (*pkcs1v15.Signature, error) {
	key, err := pkcs1v15.NewSigningKey(priv, h)
	if err != nil {
		return nil, err
	}
	return key.SignPrehash(dig)
}

// verifyRSA verifies sig over dig with pub.
func verifyRSA(pub *rsa.PublicKey, h crypto.Hash, dig []byte, sig *pkcs1v15.Signature) error {
	key, err := pkcs1v15.NewVerifyingKey(pub, h)
	if err != nil {
		return err
	}
	return key.VerifyPrehash(dig, sig)
}

// encodeSignature renders sig according to the encoding policy and returns
// the value together with its media type.
func encodeSignature(policy v1alpha1.SignatureEncodingPolicy, sig *pkcs1v15.Signature) (value, mediaType string, err error) {
	switch policy {
	case v1alpha1.SignatureEncodingPolicyPlain:
		return sig.Hex(false), v1alpha1.MediaTypePlainRSASSAPKCS1V15, nil
	case v1alpha1.SignatureEncodingPolicyPEM:
		return string(pem.SignatureBytesToPem(v1alpha1.AlgorithmRSASSAPKCS1V15, sig.Bytes())), v1alpha1.MediaTypePEM, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidEncodingPolicy, policy)
	}
}

// decodeSignature parses a stored signature value of the given media type.
func decodeSignature(mediaType, value string) (*pkcs1v15.Signature, error) {
	var raw []byte
	switch mediaType {
	case v1alpha1.MediaTypePlainRSASSAPKCS1V15:
		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("decode hex signature: %w", err)
		}
		raw = b
	case v1alpha1.MediaTypePEM:
		b, algo, err := pem.GetSignatureFromPem([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("parse pem signature: %w", err)
		}
		if algo != "" && algo != v1alpha1.AlgorithmRSASSAPKCS1V15 {
			return nil, fmt.Errorf("%w: pem declares %q", ErrInvalidAlgorithm, algo)
		}
		raw = b
	default:
		return nil, fmt.Errorf("unsupported media type %q", mediaType)
	}
	sig, err := pkcs1v15.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	return sig, nil
}
