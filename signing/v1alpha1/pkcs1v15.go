package v1alpha1

const (
	// MediaTypePlainRSASSAPKCS1V15 is the media type for a plain signature based on AlgorithmRSASSAPKCS1V15 encoded as a hex string.
	MediaTypePlainRSASSAPKCS1V15 = "application/vnd.ocm.signature.rsa"

	// AlgorithmRSASSAPKCS1V15 is the identifier for the RSA signature scheme with PKCS #1 v1.5 padding,
	// defined in RFC 8017 § 8.2: https://datatracker.ietf.org/doc/html/rfc8017#section-8.2
	//
	// Signature values:
	//   - A signature is the integer s = m^d mod n rendered as an octet string of exactly k octets,
	//     where k is the length of the modulus n in octets (I2OSP with xLen = k).
	//   - Leading zero octets are part of the value and are never stripped.
	//   - Deterministic: the same digest always produces the same signature with the same key.
	//
	// Verification flow:
	//   1. Reject signatures whose length differs from k.
	//   2. Perform the RSA public key operation on the signature.
	//   3. Compare the result against the expected ASN.1 DigestInfo structure of the message digest.
	//
	// Parameters:
	//   - Hash function: SHA-256, SHA-384, or SHA-512 based on digest specification for the signing handler.
	//   - Padding: fixed PKCS #1 v1.5 encoding (non-probabilistic, non-configurable).
	AlgorithmRSASSAPKCS1V15 = "RSASSA-PKCS1-V1_5"
)
