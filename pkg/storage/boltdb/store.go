/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package boltdb

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/trustbloc/hcert/pkg/storage"
)

const fileMode = 0600

// Store is a file-backed storage.ScopedStore. Every scope maps to its own bucket,
// so several scopes can share one database file.
type Store struct {
	db     *bbolt.DB
	bucket []byte
}

// New opens (or creates) the database at path and prepares the bucket for scope.
func New(path, scope string, opts *bbolt.Options) (*Store, error) {
	if scope == "" {
		return nil, errors.New("scope is required")
	}

	db, err := bbolt.Open(path, fileMode, opts)
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	bucket := []byte(scope)

	if err = db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucket)
		return e
	}); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create bucket %q: %w", scope, err)
	}

	return &Store{
		db:     db,
		bucket: bucket,
	}, nil
}

// Load returns the blob stored under name.
func (s *Store) Load(_ context.Context, name string) ([]byte, error) {
	var blob []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(name))
		if v == nil {
			return storage.ErrDataNotFound
		}

		// v is only valid for the lifetime of the transaction.
		blob = slices.Clone(v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blob, nil
}

// Save replaces the blob stored under name.
func (s *Store) Save(_ context.Context, name string, blob []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(name), blob)
	}); err != nil {
		return fmt.Errorf("bolt save %q: %w", name, err)
	}

	return nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
