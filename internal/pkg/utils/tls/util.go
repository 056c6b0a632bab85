/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package tls

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// NewClientConfig returns a client TLS config trusting the PEM certificates at caCertPaths,
// on top of the system pool when useSystemCertPool is set.
func NewClientConfig(useSystemCertPool bool, caCertPaths []string) (*tls.Config, error) {
	pool, err := certPool(useSystemCertPool)
	if err != nil {
		return nil, err
	}

	for _, p := range caCertPaths {
		raw, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			return nil, fmt.Errorf("read cert %s: %w", p, err)
		}

		block, _ := pem.Decode(raw)
		if block == nil {
			return nil, fmt.Errorf("decode pem %s", p)
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse cert %s: %w", p, err)
		}

		pool.AddCert(cert)
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}

func certPool(useSystemCertPool bool) (*x509.CertPool, error) {
	if !useSystemCertPool {
		return x509.NewCertPool(), nil
	}

	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("load system cert pool: %w", err)
	}

	return pool, nil
}
