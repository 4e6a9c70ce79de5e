// Package handler implements RSASSA-PKCS1-v1_5 signing and verification for OCM.
// It supports two encodings of the signature value:
//  1. Plain: lowercase hex of the fixed-width signature octets.
//  2. PEM: a SIGNATURE PEM block carrying the same octets.
//
// The public key used for verification always comes from credentials.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	descruntime "ocm.software/open-component-model/bindings/go/descriptor/runtime"
	rsacredentials "ocm.software/open-component-model/bindings/go/rsapkcs1/signing/handler/internal/credentials"
	"ocm.software/open-component-model/bindings/go/rsapkcs1/signing/v1alpha1"
	"ocm.software/open-component-model/bindings/go/runtime"
	"ocm.software/open-component-model/bindings/go/signing"
)

// Identity attribute keys used for credential consumer identities.
const (
	IdentityAttributeAlgorithm = "algorithm"
	IdentityAttributeSignature = "signature"
)

// Common errors for callers to test.
var (
	ErrInvalidAlgorithm      = errors.New("invalid algorithm")
	ErrInvalidEncodingPolicy = errors.New("invalid signature encoding policy")
	ErrMissingPrivateKey     = errors.New("private key not found")
	ErrMissingPublicKey      = errors.New("missing public key, required for RSA signature verification")
)

var _ signing.Handler = (*Handler)(nil)

// Handler signs and verifies component descriptor digests with RSASSA-PKCS1-v1_5.
// It holds no state and is safe for concurrent use.
type Handler struct{}

// New returns a Handler.
func New() *Handler {
	return &Handler{}
}

// ---- SPI ----

// Sign produces a signature for the given digest using the private key from
// credentials and encodes it according to the configured encoding policy.
func (*Handler) Sign(
	ctx context.Context,
	unsigned descruntime.Digest,
	rawCfg runtime.Typed,
	creds map[string]string,
) (descruntime.SignatureInfo, error) {
	cfg, err := convertConfig(rawCfg)
	if err != nil {
		return descruntime.SignatureInfo{}, err
	}
	if alg := cfg.GetSignatureAlgorithm(); alg != v1alpha1.AlgorithmRSASSAPKCS1V15 {
		return descruntime.SignatureInfo{}, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}

	priv := rsacredentials.PrivateKeyFromCredentials(creds)
	if priv == nil {
		return descruntime.SignatureInfo{}, ErrMissingPrivateKey
	}

	hash, dig, err := parseDigest(unsigned)
	if err != nil {
		return descruntime.SignatureInfo{}, err
	}

	sig, err := signRSA(priv, hash, dig)
	if err != nil {
		return descruntime.SignatureInfo{}, fmt.Errorf("rsa sign: %w", err)
	}

	policy := cfg.GetSignatureEncodingPolicy()
	if policy == v1alpha1.SignatureEncodingPolicyPEM {
		slog.WarnContext(ctx, "signing with PEM encoding is experimental")
	}
	value, mediaType, err := encodeSignature(policy, sig)
	if err != nil {
		return descruntime.SignatureInfo{}, err
	}
	slog.DebugContext(ctx, "signed digest",
		"algorithm", v1alpha1.AlgorithmRSASSAPKCS1V15,
		"hash", hash.String(),
		"mediaType", mediaType,
		"signature", sig,
	)

	return descruntime.SignatureInfo{
		Algorithm: v1alpha1.AlgorithmRSASSAPKCS1V15,
		MediaType: mediaType,
		Value:     value,
	}, nil
}

// Verify validates an OCM signature against the public key in credentials.
// A signature value that cannot be decoded yields an error wrapping
// pkcs1v15.ErrInvalidEncoding; a signature that does not match yields an
// error wrapping pkcs1v15.ErrVerification.
func (*Handler) Verify(
	ctx context.Context,
	signed descruntime.Signature,
	// we use hints from the signature to determine the correct settings, so no additional config is needed
	_ runtime.Typed,
	creds map[string]string,
) error {
	if alg := signed.Signature.Algorithm; alg != "" && alg != v1alpha1.AlgorithmRSASSAPKCS1V15 {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}

	hash, dig, err := parseDigest(signed.Digest)
	if err != nil {
		return err
	}

	if signed.Signature.MediaType == v1alpha1.MediaTypePEM {
		slog.WarnContext(ctx, "verifying signatures with PEM encoding is experimental")
	}
	sig, err := decodeSignature(signed.Signature.MediaType, signed.Signature.Value)
	if err != nil {
		return err
	}

	pub := rsacredentials.PublicKeyFromCredentials(creds)
	if pub == nil {
		return ErrMissingPublicKey
	}

	if err := verifyRSA(pub, hash, dig, sig); err != nil {
		return err
	}
	slog.DebugContext(ctx, "verified signature", "name", signed.Name, "signature", sig)
	return nil
}

// GetSigningCredentialConsumerIdentity requests credentials for signing.
// It encodes the algorithm and the logical signature name.
func (*Handler) GetSigningCredentialConsumerIdentity(
	_ context.Context,
	name string,
	_ descruntime.Digest,
	rawCfg runtime.Typed,
) (runtime.Identity, error) {
	cfg, err := convertConfig(rawCfg)
	if err != nil {
		return nil, err
	}
	if alg := cfg.GetSignatureAlgorithm(); alg != v1alpha1.AlgorithmRSASSAPKCS1V15 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}
	id := baseIdentity()
	id[IdentityAttributeSignature] = name
	return id, nil
}

// GetVerifyingCredentialConsumerIdentity requests credentials for verification.
// The declared algorithm, if any, must be AlgorithmRSASSAPKCS1V15, and the
// media type must be one the handler can decode.
func (*Handler) GetVerifyingCredentialConsumerIdentity(
	_ context.Context,
	signature descruntime.Signature,
	_ runtime.Typed,
) (runtime.Identity, error) {
	if alg := signature.Signature.Algorithm; alg != "" && alg != v1alpha1.AlgorithmRSASSAPKCS1V15 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, alg)
	}
	switch signature.Signature.MediaType {
	case v1alpha1.MediaTypePlainRSASSAPKCS1V15, v1alpha1.MediaTypePEM:
	default:
		return nil, fmt.Errorf("unsupported media type %q", signature.Signature.MediaType)
	}

	id := baseIdentity()
	id[IdentityAttributeSignature] = signature.Name
	return id, nil
}

// ---- internal helpers ----

// convertConfig converts rawCfg into the supported configuration. A nil
// configuration yields the defaults.
func convertConfig(rawCfg runtime.Typed) (*v1alpha1.Config, error) {
	var supported v1alpha1.Config
	if rawCfg == nil {
		return &supported, nil
	}
	if err := v1alpha1.Scheme.Convert(rawCfg, &supported); err != nil {
		return nil, fmt.Errorf("convert config: %w", err)
	}
	return &supported, nil
}

// baseIdentity builds a credential consumer identity for the handler.
func baseIdentity() runtime.Identity {
	id := runtime.Identity{IdentityAttributeAlgorithm: v1alpha1.AlgorithmRSASSAPKCS1V15}
	id.SetType(rsacredentials.IdentityTypeRSA)
	return id
}
