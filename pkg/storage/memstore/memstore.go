/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/trustbloc/hcert/pkg/storage"
)

// Store is an in-memory storage.ScopedStore. Blobs are copied on the way in and out.
type Store struct {
	mu    sync.RWMutex
	scope string
	data  map[string][]byte
}

// New returns an empty store for the given scope.
func New(scope string) *Store {
	return &Store{
		scope: scope,
		data:  make(map[string][]byte),
	}
}

// Scope returns the scope of the store.
func (s *Store) Scope() string {
	return s.scope
}

// Load returns the blob stored under name.
func (s *Store) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.data[name]
	if !ok {
		return nil, storage.ErrDataNotFound
	}

	return slices.Clone(blob), nil
}

// Save replaces the blob stored under name.
func (s *Store) Save(_ context.Context, name string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[name] = slices.Clone(blob)

	return nil
}
