// Package v1alpha1 contains the configuration types of the RSASSA-PKCS1-v1_5
// signing handler.
package v1alpha1

import (
	"ocm.software/open-component-model/bindings/go/runtime"
)

const (
	Version    = "v1alpha1"
	ConfigType = "RSAPKCS1V15SigningConfiguration"
)

var Scheme = runtime.NewScheme()

func init() {
	Scheme.MustRegisterWithAlias(&Config{},
		runtime.NewUnversionedType(ConfigType),
		runtime.NewVersionedType(ConfigType, Version),
	)
}

// Config defines configuration for signing based on AlgorithmRSASSAPKCS1V15.
//
// +k8s:deepcopy-gen:interfaces=ocm.software/open-component-model/bindings/go/runtime.Typed
// +k8s:deepcopy-gen=true
// +ocm:typegen=true
type Config struct {
	// Type identifies this configuration object’s runtime type.
	Type runtime.Type `json:"type"`

	// SignatureEncodingPolicy selects how signature values are serialized.
	// Defaults to SignatureEncodingPolicyDefault.
	SignatureEncodingPolicy SignatureEncodingPolicy `json:"signatureEncodingPolicy,omitempty"`

	// SignatureAlgorithm is accepted so that configurations written for generic
	// RSA handlers keep working. Only AlgorithmRSASSAPKCS1V15 is supported.
	SignatureAlgorithm string `json:"signatureAlgorithm,omitempty"`
}

// NewConfig returns a typed Config for the given encoding policy.
func NewConfig(policy SignatureEncodingPolicy) *Config {
	return &Config{
		Type:                    runtime.NewVersionedType(ConfigType, Version),
		SignatureEncodingPolicy: policy,
		SignatureAlgorithm:      AlgorithmRSASSAPKCS1V15,
	}
}

func (cfg *Config) GetSignatureEncodingPolicy() SignatureEncodingPolicy {
	if cfg == nil || cfg.SignatureEncodingPolicy == "" {
		return SignatureEncodingPolicyDefault
	}
	return cfg.SignatureEncodingPolicy
}

func (cfg *Config) GetSignatureAlgorithm() string {
	if cfg == nil || cfg.SignatureAlgorithm == "" {
		return AlgorithmRSASSAPKCS1V15
	}
	return cfg.SignatureAlgorithm
}

// GetDefaultMediaType returns the media type of signatures produced with cfg.
func (cfg *Config) GetDefaultMediaType() string {
	switch cfg.GetSignatureEncodingPolicy() {
	case SignatureEncodingPolicyPEM:
		return MediaTypePEM
	case SignatureEncodingPolicyPlain:
		return MediaTypePlainRSASSAPKCS1V15
	default:
		return ""
	}
}
