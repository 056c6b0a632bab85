/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package boltdb_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/trustbloc/hcert/pkg/storage"
	"github.com/trustbloc/hcert/pkg/storage/boltdb"
	"github.com/trustbloc/hcert/pkg/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T, scope string) storage.ScopedStore {
		s, err := boltdb.New(filepath.Join(t.TempDir(), "trust.db"), scope, nil)
		require.NoError(t, err)

		t.Cleanup(func() {
			require.NoError(t, s.Close())
		})

		return s
	})
}

func TestNew(t *testing.T) {
	t.Run("scope required", func(t *testing.T) {
		s, err := boltdb.New(filepath.Join(t.TempDir(), "trust.db"), "", nil)
		require.Nil(t, s)
		require.EqualError(t, err, "scope is required")
	})

	t.Run("invalid path", func(t *testing.T) {
		s, err := boltdb.New(filepath.Join(t.TempDir(), "missing", "trust.db"), "scope", nil)
		require.Nil(t, s)
		require.ErrorContains(t, err, "open bolt db")
	})

	t.Run("shared file keeps scopes apart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trust.db")
		ctx := context.Background()

		a, err := boltdb.New(path, "scope-a", &bbolt.Options{Timeout: time.Second})
		require.NoError(t, err)
		require.NoError(t, a.Save(ctx, "revocation_list", []byte("a")))
		require.NoError(t, a.Close())

		b, err := boltdb.New(path, "scope-b", &bbolt.Options{Timeout: time.Second})
		require.NoError(t, err)

		_, err = b.Load(ctx, "revocation_list")
		require.ErrorIs(t, err, storage.ErrDataNotFound)
		require.NoError(t, b.Close())

		a, err = boltdb.New(path, "scope-a", &bbolt.Options{Timeout: time.Second})
		require.NoError(t, err)

		blob, err := a.Load(ctx, "revocation_list")
		require.NoError(t, err)
		require.Equal(t, []byte("a"), blob)
		require.NoError(t, a.Close())
	})
}
