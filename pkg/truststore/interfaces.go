/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import "context"

//go:generate mockgen -destination interfaces_mocks_test.go -package truststore_test -source=interfaces.go

// EnvelopeVerifier checks the signature of a signed envelope and returns its payload.
type EnvelopeVerifier interface {
	VerifyAndDecode(ctx context.Context, envelope []byte) ([]byte, error)
}

type secureStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, blob []byte) error
}

type metricsProvider interface {
	TrustStoreUpdate(resource string, persisted bool)
	BootstrapEntries(accepted, rejected int)
}
