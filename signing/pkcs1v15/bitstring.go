package pkcs1v15

import (
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// BitString wraps the encoded signature as an ASN.1 BIT STRING, ready to be
// embedded in a structure marshalled with encoding/asn1. The unused bit
// count is always zero.
func (sig *Signature) BitString() asn1.BitString {
	b := sig.Bytes()
	return asn1.BitString{
		Bytes:     b,
		BitLength: 8 * len(b),
	}
}

// MarshalBitString returns the DER encoding of the signature as a BIT STRING.
func (sig *Signature) MarshalBitString() ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1BitString(sig.Bytes())
	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal bit string: %w", err)
	}
	return der, nil
}

// ParseBitString decodes a DER BIT STRING produced by MarshalBitString.
// The input must consist of exactly one BIT STRING with no unused bits.
func ParseBitString(der []byte) (*Signature, error) {
	var (
		in  = cryptobyte.String(der)
		out []byte
	)
	if !in.ReadASN1BitStringAsBytes(&out) {
		return nil, fmt.Errorf("malformed DER bit string: %w", ErrInvalidEncoding)
	}
	if !in.Empty() {
		return nil, fmt.Errorf("%d trailing bytes after DER bit string: %w", len(in), ErrInvalidEncoding)
	}
	return Decode(out)
}
