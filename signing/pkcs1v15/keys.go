package pkcs1v15

import (
	"crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Common errors for callers to test.
var (
	ErrMissingKey      = errors.New("missing RSA key")
	ErrUnsupportedHash = errors.New("unsupported hash function")
	ErrDigestLength    = errors.New("digest length does not match hash function")
	// ErrVerification is the error returned for a signature that does not
	// verify against the key and digest.
	ErrVerification = rsa.ErrVerification
)

// Signer computes the digest of a message and signs it.
type Signer interface {
	Sign(msg []byte) (*Signature, error)
}

// PrehashSigner signs a digest that was computed by the caller.
type PrehashSigner interface {
	SignPrehash(digest []byte) (*Signature, error)
}

// RandomizedSigner signs a message with caller supplied randomness.
type RandomizedSigner interface {
	SignWithRand(rand io.Reader, msg []byte) (*Signature, error)
}

// Verifier computes the digest of a message and verifies a signature over it.
type Verifier interface {
	Verify(msg []byte, sig *Signature) error
}

// PrehashVerifier verifies a signature over a digest computed by the caller.
type PrehashVerifier interface {
	VerifyPrehash(digest []byte, sig *Signature) error
}

var (
	_ Signer           = (*SigningKey)(nil)
	_ PrehashSigner    = (*SigningKey)(nil)
	_ RandomizedSigner = (*SigningKey)(nil)
	_ Verifier         = (*VerifyingKey)(nil)
	_ PrehashVerifier  = (*VerifyingKey)(nil)
)

// SigningKey signs with an RSA private key and a fixed hash function.
type SigningKey struct {
	key  *rsa.PrivateKey
	hash crypto.Hash
}

// NewSigningKey binds key to hash. The hash function must be linked into the
// binary.
func NewSigningKey(key *rsa.PrivateKey, hash crypto.Hash) (*SigningKey, error) {
	if key == nil {
		return nil, ErrMissingKey
	}
	if err := checkHash(hash); err != nil {
		return nil, err
	}
	return &SigningKey{key: key, hash: hash}, nil
}

// Hash returns the hash function the key signs with.
func (k *SigningKey) Hash() crypto.Hash {
	return k.hash
}

// Size returns the modulus size in octets, which is the width of every
// signature the key produces.
func (k *SigningKey) Size() int {
	return k.key.Size()
}

// VerifyingKey returns the public counterpart of k.
func (k *SigningKey) VerifyingKey() *VerifyingKey {
	return &VerifyingKey{key: &k.key.PublicKey, hash: k.hash}
}

// Sign hashes msg and signs the digest.
func (k *SigningKey) Sign(msg []byte) (*Signature, error) {
	return k.SignPrehash(digest(k.hash, msg))
}

// SignWithRand hashes msg and signs the digest. PKCS #1 v1.5 signatures are
// deterministic; rand is handed to crypto/rsa, which does not draw from it.
func (k *SigningKey) SignWithRand(rand io.Reader, msg []byte) (*Signature, error) {
	return k.sign(rand, digest(k.hash, msg))
}

// SignPrehash signs a digest of the key's hash function.
func (k *SigningKey) SignPrehash(digest []byte) (*Signature, error) {
	return k.sign(nil, digest)
}

func (k *SigningKey) sign(rand io.Reader, digest []byte) (*Signature, error) {
	if len(digest) != k.hash.Size() {
		return nil, fmt.Errorf("%w: got %d bytes, %s requires %d", ErrDigestLength, len(digest), k.hash, k.hash.Size())
	}
	raw, err := rsa.SignPKCS1v15(rand, k.key, k.hash, digest)
	if err != nil {
		return nil, fmt.Errorf("rsa sign: %w", err)
	}
	return FromInt(new(big.Int).SetBytes(raw), k.key.Size()), nil
}

// VerifyingKey verifies with an RSA public key and a fixed hash function.
type VerifyingKey struct {
	key  *rsa.PublicKey
	hash crypto.Hash
}

// NewVerifyingKey binds key to hash. The hash function must be linked into
// the binary.
func NewVerifyingKey(key *rsa.PublicKey, hash crypto.Hash) (*VerifyingKey, error) {
	if key == nil {
		return nil, ErrMissingKey
	}
	if err := checkHash(hash); err != nil {
		return nil, err
	}
	return &VerifyingKey{key: key, hash: hash}, nil
}

// Hash returns the hash function the key verifies with.
func (k *VerifyingKey) Hash() crypto.Hash {
	return k.hash
}

// Size returns the modulus size in octets.
func (k *VerifyingKey) Size() int {
	return k.key.Size()
}

// Verify hashes msg and verifies sig over the digest.
func (k *VerifyingKey) Verify(msg []byte, sig *Signature) error {
	return k.VerifyPrehash(digest(k.hash, msg), sig)
}

// VerifyPrehash verifies sig over a digest of the key's hash function.
// A signature whose width differs from the modulus size never verifies.
func (k *VerifyingKey) VerifyPrehash(digest []byte, sig *Signature) error {
	if sig == nil {
		return fmt.Errorf("missing signature: %w", ErrInvalidEncoding)
	}
	if len(digest) != k.hash.Size() {
		return fmt.Errorf("%w: got %d bytes, %s requires %d", ErrDigestLength, len(digest), k.hash, k.hash.Size())
	}
	if sig.Size() != k.key.Size() {
		return fmt.Errorf("signature is %d bytes, modulus is %d bytes: %w", sig.Size(), k.key.Size(), ErrVerification)
	}
	if err := rsa.VerifyPKCS1v15(k.key, k.hash, digest, sig.Bytes()); err != nil {
		return fmt.Errorf("rsa verify: %w", err)
	}
	return nil
}

func checkHash(h crypto.Hash) error {
	if h == 0 || !h.Available() {
		return fmt.Errorf("%w: %s", ErrUnsupportedHash, h)
	}
	return nil
}

func digest(h crypto.Hash, msg []byte) []byte {
	d := h.New()
	// hash.Hash never returns an error on write
	_, _ = d.Write(msg)
	return d.Sum(nil)
}
