/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package storage

import (
	"context"
	"errors"
)

// ErrDataNotFound is returned by ScopedStore.Load when no record is stored under the name.
var ErrDataNotFound = errors.New("data not found")

// ScopedStore persists opaque blobs under a name inside a single scope.
// Each Load and Save call is atomic.
type ScopedStore interface {
	// Load returns the blob stored under name or ErrDataNotFound.
	Load(ctx context.Context, name string) ([]byte, error)
	// Save replaces the blob stored under name.
	Save(ctx context.Context, name string, blob []byte) error
}
