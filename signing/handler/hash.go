package handler

import (
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	descruntime "ocm.software/open-component-model/bindings/go/descriptor/runtime"
)

var (
	ErrMissingHashAlg     = errors.New("missing hash algorithm")
	ErrMissingDigestValue = errors.New("missing digest value")
)

// parseDigest extracts hash function and raw digest bytes from a descriptor digest.
func parseDigest(d descruntime.Digest) (crypto.Hash, []byte, error) {
	if d.HashAlgorithm == "" {
		return 0, nil, ErrMissingHashAlg
	}
	if d.Value == "" {
		return 0, nil, ErrMissingDigestValue
	}
	h, err := hashFromString(d.HashAlgorithm)
	if err != nil {
		return 0, nil, err
	}
	b, err := hex.DecodeString(d.Value)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid hex digest: %w", err)
	}
	if len(b) != h.Size() {
		return 0, nil, fmt.Errorf("invalid %s digest: got %d bytes, want %d", h, len(b), h.Size())
	}
	return h, b, nil
}

// hashFromString maps crypto.Hash.String() values and the lowercase names
// used in component descriptors to crypto.Hash.
func hashFromString(hashAlgorithm string) (crypto.Hash, error) {
	switch hashAlgorithm {
	case crypto.SHA256.String(), "sha256":
		return crypto.SHA256, nil
	case crypto.SHA384.String(), "sha384":
		return crypto.SHA384, nil
	case crypto.SHA512.String(), "sha512":
		return crypto.SHA512, nil
	}
	return 0, fmt.Errorf("unsupported hash algorithm %q", hashAlgorithm)
}
