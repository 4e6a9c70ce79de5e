// Package pem contains low-level PEM helpers used by the RSASSA-PKCS1-v1_5
// handler to load keys and to frame signatures.
package pem

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
)

// PEM block types used across helpers.
const (
	pemPKCS1PrivateKey = "RSA PRIVATE KEY"
	pemPKCS8PrivateKey = "PRIVATE KEY"
	pemPKIXPublicKey   = "PUBLIC KEY"
	pemPKCS1PublicKey  = "RSA PUBLIC KEY"
)

// ParseRSAPrivateKeyPEM scans concatenated PEM data and returns the first RSA
// private key found. It supports PKCS#1 ("RSA PRIVATE KEY") and PKCS#8
// ("PRIVATE KEY") containers. It returns nil if no RSA key can be parsed.
func ParseRSAPrivateKeyPEM(pemBytes []byte) *rsa.PrivateKey {
	for len(pemBytes) > 0 {
		block, rest := pem.Decode(pemBytes)
		if block == nil {
			break
		}
		switch block.Type {
		case pemPKCS1PrivateKey:
			if k, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
				return k
			}
		case pemPKCS8PrivateKey:
			if anyKey, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
				if k, ok := anyKey.(*rsa.PrivateKey); ok {
					return k
				}
			}
		}
		pemBytes = rest
	}
	return nil
}

// ParseRSAPublicKeyPEM scans concatenated PEM data and returns the first RSA
// public key found. It supports PKIX ("PUBLIC KEY") and PKCS#1
// ("RSA PUBLIC KEY") containers. It returns nil if no RSA key can be parsed.
func ParseRSAPublicKeyPEM(pemBytes []byte) *rsa.PublicKey {
	for len(pemBytes) > 0 {
		block, rest := pem.Decode(pemBytes)
		if block == nil {
			break
		}
		switch block.Type {
		case pemPKIXPublicKey:
			if k, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
				if pk, ok := k.(*rsa.PublicKey); ok {
					return pk
				}
			}
		case pemPKCS1PublicKey:
			if pk, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
				return pk
			}
		}
		pemBytes = rest
	}
	return nil
}
