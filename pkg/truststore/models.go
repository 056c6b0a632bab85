/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"encoding/json"
	"strings"
)

// Signing algorithms that map to public key descriptors. Other values are kept in
// the store but never returned by ActiveCertificatePublicKeys.
const (
	AlgorithmRS256 = "RS256"
	AlgorithmES256 = "ES256"
)

// Usage scopes of an active certificate.
const (
	UsageTest     = "t"
	UsageVaccine  = "v"
	UsageRecovery = "r"
)

// ActiveCertificate is a trusted signing key as published by the trust list.
// RSA keys carry N and E, EC keys carry Crv, X and Y, all base64 encoded.
type ActiveCertificate struct {
	KeyID string `json:"keyId"`
	Use   string `json:"use"`
	Alg   string `json:"alg"`
	N     string `json:"n,omitempty"`
	E     string `json:"e,omitempty"`
	Crv   string `json:"crv,omitempty"`
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
}

// UsageScopes splits Use into single-letter scopes, so "tv" yields ["t", "v"].
func (c ActiveCertificate) UsageScopes() []string {
	return strings.Split(c.Use, "")
}

// CertificateListUpdate is one page of the incremental key download.
type CertificateListUpdate struct {
	Certs []ActiveCertificate `json:"certs"`
}

// ActiveKeyIDsSnapshot is the authoritative list of currently trusted key ids.
type ActiveKeyIDsSnapshot struct {
	ActiveKeyIDs  []string `json:"activeKeyIds"`
	ValidDuration int64    `json:"validDuration"`
}

// RevocationListUpdate is a delta of revoked certificate identifiers.
type RevocationListUpdate struct {
	RevokedCerts  []string `json:"revokedCerts"`
	ValidDuration int64    `json:"validDuration"`
	NextSince     string   `json:"nextSince,omitempty"`
}

// NationalRuleSet is a jurisdiction's rule document and value sets, replaced as a whole.
type NationalRuleSet struct {
	Rules         json.RawMessage     `json:"rules"`
	ValueSets     map[string][]string `json:"valueSets"`
	ValidDuration int64               `json:"validDuration"`
}

type certificatesRecord struct {
	Certs []ActiveCertificate `json:"certs"`
	Since string              `json:"sinceCursor,omitempty"`
	ValidityWindow
}

type revocationRecord struct {
	RevokedCerts []string `json:"revokedCerts"`
	Since        string   `json:"sinceCursor,omitempty"`
	ValidityWindow
}

type rulesRecord struct {
	Rules     json.RawMessage     `json:"rules"`
	ValueSets map[string][]string `json:"valueSets"`
	ValidityWindow
}
