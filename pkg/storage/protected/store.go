/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package protected decorates a storage.ScopedStore so that every record is
// compressed and sealed before it leaves the process.
package protected

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trustbloc/hcert/pkg/dataprotect"
	"github.com/trustbloc/hcert/pkg/storage"
)

type Store struct {
	inner      storage.ScopedStore
	protector  dataprotect.Protector
	compressor dataprotect.Compressor
}

func New(
	inner storage.ScopedStore,
	protector dataprotect.Protector,
	compressor dataprotect.Compressor,
) *Store {
	return &Store{
		inner:      inner,
		protector:  protector,
		compressor: compressor,
	}
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	blob, err := s.inner.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	var sealed dataprotect.EncryptedData
	if err = json.Unmarshal(blob, &sealed); err != nil {
		return nil, fmt.Errorf("decode envelope %q: %w", name, err)
	}

	compressed, err := s.protector.Decrypt(ctx, &sealed)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}

	data, err := s.compressor.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress %q: %w", name, err)
	}

	return data, nil
}

func (s *Store) Save(ctx context.Context, name string, blob []byte) error {
	compressed, err := s.compressor.Compress(blob)
	if err != nil {
		return fmt.Errorf("compress %q: %w", name, err)
	}

	sealed, err := s.protector.Encrypt(ctx, compressed)
	if err != nil {
		return fmt.Errorf("seal %q: %w", name, err)
	}

	envelope, err := json.Marshal(sealed)
	if err != nil {
		return fmt.Errorf("encode envelope %q: %w", name, err)
	}

	return s.inner.Save(ctx, name, envelope)
}
