/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storagetest is a conformance suite for storage.ScopedStore implementations.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/hcert/pkg/storage"
)

// DefaultTimeout is the default timeout for a single test case.
var DefaultTimeout = 5 * time.Second //nolint:gochecknoglobals

// Factory returns a new, empty store for the given scope. Cleanup is registered on t.
type Factory func(t *testing.T, scope string) storage.ScopedStore

// Run should be used to test any implementation of storage.ScopedStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := map[string]func(*testing.T, Factory){
		"missing record":          testMissing,
		"save and load":           testSaveLoad,
		"overwrite":               testOverwrite,
		"scopes are isolated":     testScopes,
		"returned blob is a copy": testCopy,
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test(t, newStore)
		})
	}
}

func testMissing(t *testing.T, newStore Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	s := newStore(t, "missing")

	blob, err := s.Load(ctx, "revocation_list")
	require.ErrorIs(t, err, storage.ErrDataNotFound)
	require.Nil(t, blob)
}

func testSaveLoad(t *testing.T, newStore Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	s := newStore(t, "save-load")

	require.NoError(t, s.Save(ctx, "national_rules", []byte(`{"rules":[]}`)))

	blob, err := s.Load(ctx, "national_rules")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"rules":[]}`), blob)
}

func testOverwrite(t *testing.T, newStore Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	s := newStore(t, "overwrite")

	require.NoError(t, s.Save(ctx, "active_certificates", []byte("first")))
	require.NoError(t, s.Save(ctx, "active_certificates", []byte("second")))

	blob, err := s.Load(ctx, "active_certificates")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), blob)
}

func testScopes(t *testing.T, newStore Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	a := newStore(t, "scope-a")
	b := newStore(t, "scope-b")

	require.NoError(t, a.Save(ctx, "revocation_list", []byte("a")))

	_, err := b.Load(ctx, "revocation_list")
	require.ErrorIs(t, err, storage.ErrDataNotFound)
}

func testCopy(t *testing.T, newStore Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	s := newStore(t, "copy")

	in := []byte("abc")
	require.NoError(t, s.Save(ctx, "name", in))
	in[0] = 'x'

	out, err := s.Load(ctx, "name")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)

	out[0] = 'y'

	again, err := s.Load(ctx, "name")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}
