// Package pkcs1v15 implements the signature value of RSASSA-PKCS1-v1_5 as
// described in RFC 8017 § 8.2.
//
// A Signature couples the integer s = m^d mod n with the width, in octets,
// that its encoded form must occupy. The width is part of the value: decoding
// never strips leading zero octets, so Decode and Bytes round-trip every
// non-empty input exactly.
//
// The modular exponentiation, the EMSA-PKCS1-v1_5 padding and the digest
// computation are delegated to crypto/rsa and the crypto hash registry.
package pkcs1v15

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxSize is the widest encoded signature, in octets, that Decode accepts.
// It corresponds to a 16384-bit modulus.
const MaxSize = 2048

// ErrInvalidEncoding is returned when raw octets cannot be interpreted as a
// signature value.
var ErrInvalidEncoding = errors.New("invalid RSASSA-PKCS1-v1_5 signature encoding")

// Signature is an RSASSA-PKCS1-v1_5 signature value.
//
// A Signature is immutable once constructed and safe for concurrent use.
// Construct one with Decode or FromInt.
type Signature struct {
	s    *big.Int
	size int
}

// Decode interprets b as a big-endian signature value. The resulting
// signature occupies exactly len(b) octets, including any leading zeros.
//
// Decode does not compare the value against a modulus; that is part of
// verification.
func Decode(b []byte) (*Signature, error) {
	switch {
	case len(b) == 0:
		return nil, fmt.Errorf("empty signature: %w", ErrInvalidEncoding)
	case len(b) > MaxSize:
		return nil, fmt.Errorf("signature of %d bytes exceeds %d bytes: %w", len(b), MaxSize, ErrInvalidEncoding)
	}
	return &Signature{
		s:    new(big.Int).SetBytes(b),
		size: len(b),
	}, nil
}

// FromInt builds a signature from the output of the signing primitive and
// the modulus size in octets. s is copied.
//
// The caller guarantees 0 <= s < 2^(8*size). A value violating that bound is
// a programming error and makes Bytes panic.
func FromInt(s *big.Int, size int) *Signature {
	return &Signature{
		s:    new(big.Int).Set(s),
		size: size,
	}
}

// Bytes returns the canonical encoding: exactly Size octets, big-endian,
// zero padded on the left.
func (sig *Signature) Bytes() []byte {
	s := sig.magnitude()
	if s.Sign() < 0 || sig.size < 0 || s.BitLen() > 8*sig.size {
		panic(fmt.Sprintf("pkcs1v15: signature value of %d bits does not fit in %d bytes", s.BitLen(), sig.size))
	}
	return s.FillBytes(make([]byte, sig.size))
}

// Size returns the width of the encoded signature in octets.
func (sig *Signature) Size() int {
	return sig.size
}

// Int returns a copy of the integer value of the signature.
func (sig *Signature) Int() *big.Int {
	return new(big.Int).Set(sig.magnitude())
}

// Equal reports whether sig and o hold the same value at the same width.
// Numerically equal values of different widths are not equal.
func (sig *Signature) Equal(o *Signature) bool {
	if sig == nil || o == nil {
		return sig == o
	}
	return sig.size == o.size && sig.magnitude().Cmp(o.magnitude()) == 0
}

func (sig *Signature) magnitude() *big.Int {
	if sig.s == nil {
		return new(big.Int)
	}
	return sig.s
}
