package pem

import (
	"encoding/pem"
	"errors"
	"fmt"
)

// SignaturePEMBlockType is the PEM block type for raw signature bytes.
const SignaturePEMBlockType = "SIGNATURE"

// SignaturePEMBlockAlgorithmHeader is an optional PEM header that records the
// signature algorithm used for the SIGNATURE block, for example "RSASSA-PKCS1-V1_5".
const SignaturePEMBlockAlgorithmHeader = "Signature Algorithm"

var (
	// ErrNoPEM indicates the input contained no PEM blocks at all.
	ErrNoPEM = errors.New("pem: no data")
	// ErrNoSignature indicates the first PEM block is not a SIGNATURE block.
	ErrNoSignature = errors.New("pem: no signature block")
)

// SignatureBytesToPem encodes signature octets as a single SIGNATURE block.
// If algo is non-empty it is written into the block headers using
// SignaturePEMBlockAlgorithmHeader.
func SignatureBytesToPem(algo string, data []byte) []byte {
	block := &pem.Block{Type: SignaturePEMBlockType, Bytes: data}
	if algo != "" {
		block.Headers = map[string]string{SignaturePEMBlockAlgorithmHeader: algo}
	}
	return pem.EncodeToMemory(block)
}

// GetSignatureFromPem extracts the leading SIGNATURE block and its optional
// algorithm header. The octets are returned as stored, leading zeros included.
// Anything after the first block is ignored.
func GetSignatureFromPem(pemData []byte) (sig []byte, algo string, err error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, "", ErrNoPEM
	}
	if block.Type != SignaturePEMBlockType {
		return nil, "", fmt.Errorf("%w: found %q", ErrNoSignature, block.Type)
	}
	return block.Bytes, block.Headers[SignaturePEMBlockAlgorithmHeader], nil
}
