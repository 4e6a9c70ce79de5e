package v1alpha1

const (
	// MediaTypePEM is the media type for a PEM-encoded RSA signature.
	// It represents a signature encoded via SignatureEncodingPolicyPEM.
	MediaTypePEM = "application/x-pem-file"

	// SignatureEncodingPolicyPEM encodes the signature in a single PEM block.
	//
	// Encoding procedure:
	//   1. Create a PEM block with type "SIGNATURE".
	//   2. Insert the fixed-width signature octets into the block.
	//   3. Add the signing algorithm (AlgorithmRSASSAPKCS1V15) as the "Signature Algorithm" header.
	//   4. Encode the block into PEM format.
	//
	// Verification rules:
	//   1. The public key is always taken from credentials.
	//   2. Blocks following the SIGNATURE block are ignored.
	//
	// Experimental: This encoding policy is experimental and may change or be deprecated in the future.
	SignatureEncodingPolicyPEM SignatureEncodingPolicy = "PEM"
)
