/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
	"github.com/patrickmn/go-cache"
)

const defaultCurve = "P-256"

// PublicKeyDescriptor is the verification key of an active certificate. Exactly one of
// RSA and EC is set, matching Algorithm.
type PublicKeyDescriptor struct {
	KeyID     string
	Algorithm string
	RSA       *rsa.PublicKey
	EC        *ecdsa.PublicKey
}

// PublicKey returns the key as a crypto.PublicKey.
func (d PublicKeyDescriptor) PublicKey() crypto.PublicKey {
	if d.RSA != nil {
		return d.RSA
	}

	return d.EC
}

type jwkFields struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	N   string `json:"n,omitempty"`
	E   string `json:"e,omitempty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// describe maps c to a descriptor. Decoded keys are memoized by their material.
func (s *Store) describe(c ActiveCertificate) (PublicKeyDescriptor, error) {
	d := PublicKeyDescriptor{KeyID: c.KeyID, Algorithm: c.Alg}

	var fields jwkFields

	switch c.Alg {
	case AlgorithmRS256:
		fields = jwkFields{Kty: "RSA", Alg: c.Alg, N: rawURL(c.N), E: rawURL(c.E)}
	case AlgorithmES256:
		crv := c.Crv
		if crv == "" {
			crv = defaultCurve
		}

		fields = jwkFields{Kty: "EC", Alg: c.Alg, Crv: crv, X: rawURL(c.X), Y: rawURL(c.Y)}
	default:
		return d, fmt.Errorf("unsupported algorithm %q", c.Alg)
	}

	memoKey := strings.Join([]string{fields.Alg, fields.N, fields.E, fields.Crv, fields.X, fields.Y}, "|")

	key, ok := s.keys.Get(memoKey)
	if !ok {
		decoded, err := decodeJWK(fields)
		if err != nil {
			return d, err
		}

		s.keys.Set(memoKey, decoded, cache.DefaultExpiration)
		key = decoded
	}

	switch k := key.(type) {
	case *rsa.PublicKey:
		d.RSA = k
	case *ecdsa.PublicKey:
		d.EC = k
	}

	return d, nil
}

func decodeJWK(fields jwkFields) (interface{}, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var jwk jose.JSONWebKey
	if err = jwk.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("decode key material: %w", err)
	}

	switch k := jwk.Key.(type) {
	case *rsa.PublicKey:
		return k, nil
	case *ecdsa.PublicKey:
		return k, nil
	default:
		return nil, errors.New("not a public key")
	}
}

// rawURL converts standard or URL base64, padded or not, to unpadded URL base64.
func rawURL(s string) string {
	s = strings.TrimRight(s, "=")
	s = strings.ReplaceAll(s, "+", "-")

	return strings.ReplaceAll(s, "/", "_")
}
