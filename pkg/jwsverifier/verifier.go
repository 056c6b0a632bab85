/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwsverifier verifies compact JWS envelopes against a trusted JWK set.
package jwsverifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
)

var (
	// ErrUnknownKey is returned when the envelope names a key that is not trusted.
	ErrUnknownKey = errors.New("unknown signing key")

	// ErrSignature is returned when no trusted key verifies the envelope.
	ErrSignature = errors.New("invalid signature")
)

type Verifier struct {
	keys jose.JSONWebKeySet
}

func New(keys jose.JSONWebKeySet) *Verifier {
	return &Verifier{keys: keys}
}

// NewFromJWKS parses a JSON Web Key Set document.
func NewFromJWKS(raw []byte) (*Verifier, error) {
	var keys jose.JSONWebKeySet
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("parse jwks: %w", err)
	}

	if len(keys.Keys) == 0 {
		return nil, errors.New("jwks has no keys")
	}

	return New(keys), nil
}

// VerifyAndDecode checks the single signature of a compact JWS and returns its payload.
// When the protected header carries a kid only keys with that id are tried.
func (v *Verifier) VerifyAndDecode(_ context.Context, envelope []byte) ([]byte, error) {
	jws, err := jose.ParseSigned(strings.TrimSpace(string(envelope)))
	if err != nil {
		return nil, fmt.Errorf("parse jws: %w", err)
	}

	if len(jws.Signatures) != 1 {
		return nil, fmt.Errorf("expected one signature, got %d", len(jws.Signatures))
	}

	candidates := v.keys.Keys

	if kid := jws.Signatures[0].Header.KeyID; kid != "" {
		candidates = v.keys.Key(kid)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
		}
	}

	for _, key := range candidates {
		payload, verifyErr := jws.Verify(key.Public())
		if verifyErr == nil {
			return payload, nil
		}
	}

	return nil, ErrSignature
}
