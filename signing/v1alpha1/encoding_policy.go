package v1alpha1

// SignatureEncodingPolicy defines how signatures are serialized and stored.
type SignatureEncodingPolicy string

const (
	// SignatureEncodingPolicyDefault points to the default encoding policy.
	SignatureEncodingPolicyDefault = SignatureEncodingPolicyPlain

	// SignatureEncodingPolicyPlain encodes the signature as a plain lowercase hex string
	// of exactly two digits per octet of the modulus.
	//
	// Characteristics:
	//   - Most compact representation.
	//   - Not self-contained: verification requires the public key to be supplied
	//     from an external source (e.g. configuration, key management system).
	SignatureEncodingPolicyPlain SignatureEncodingPolicy = "Plain"
)
