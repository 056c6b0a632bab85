/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/hcert/pkg/dataprotect"
	"github.com/trustbloc/hcert/pkg/storage"
)

func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{
		Use: "test",
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}

	StoreFlags(cmd)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return cmd
}

func TestStoreParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		params, err := StoreParams(parsedCommand(t))
		require.NoError(t, err)
		require.Equal(t, &StoreParameters{
			Type:        StoreTypeBolt,
			URL:         "hcert-trust.db",
			Scope:       "default",
			Compression: "zstd",
			Timeout:     30 * time.Second,
		}, params)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(StoreTypeEnvKey, StoreTypeRedis)
		t.Setenv(StoreURLEnvKey, "redis-1:6379,redis-2:6379")
		t.Setenv(StoreScopeEnvKey, "device-7")
		t.Setenv(StoreTimeoutEnvKey, "5s")
		t.Setenv(StoreTLSCACertsEnvKey, "/etc/ca.pem")
		t.Setenv(StoreTLSSystemCertPoolEnvKey, "true")

		params, err := StoreParams(parsedCommand(t))
		require.NoError(t, err)
		require.Equal(t, StoreTypeRedis, params.Type)
		require.Equal(t, "redis-1:6379,redis-2:6379", params.URL)
		require.Equal(t, "device-7", params.Scope)
		require.Equal(t, 5*time.Second, params.Timeout)
		require.Equal(t, []string{"/etc/ca.pem"}, params.TLSCACerts)
		require.True(t, params.TLSSystemCertPool)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv(StoreTypeEnvKey, StoreTypeRedis)

		params, err := StoreParams(parsedCommand(t, "--"+StoreTypeFlagName, StoreTypeMem))
		require.NoError(t, err)
		require.Equal(t, StoreTypeMem, params.Type)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := StoreParams(parsedCommand(t, "--"+StoreTypeFlagName, "couchdb"))
		require.EqualError(t, err, "unsupported store type: couchdb")
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := StoreParams(parsedCommand(t, "--"+StoreTypeFlagName, StoreTypeMongoDB, "--"+StoreURLFlagName, ""))
		require.EqualError(t, err, "mongodb store requires store-url")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := StoreParams(parsedCommand(t, "--"+StoreTimeoutFlagName, "later"))
		require.ErrorContains(t, err, "failed to configure store timeout")
	})

	t.Run("invalid tls flag", func(t *testing.T) {
		t.Setenv(StoreTLSSystemCertPoolEnvKey, "sometimes")

		_, err := StoreParams(parsedCommand(t))
		require.ErrorContains(t, err, "failed to configure store tls")
	})
}

func writeKeyset(t *testing.T) string {
	t.Helper()

	kh, err := dataprotect.NewKeyset()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keyset.json")

	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, dataprotect.WriteKeyset(kh, f))
	require.NoError(t, f.Close())

	return path
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("mem", func(t *testing.T) {
		s, closer, err := OpenStore(&StoreParameters{Type: StoreTypeMem, Scope: "s"}, logger)
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, "revocation_list", []byte("x")))

		blob, err := s.Load(ctx, "revocation_list")
		require.NoError(t, err)
		require.Equal(t, []byte("x"), blob)
		require.NoError(t, closer.Close())
	})

	t.Run("protected bolt", func(t *testing.T) {
		params := &StoreParameters{
			Type:        StoreTypeBolt,
			URL:         filepath.Join(t.TempDir(), "trust.db"),
			Scope:       "s",
			Keyset:      writeKeyset(t),
			Compression: "zstd",
			Timeout:     time.Second,
		}

		s, closer, err := OpenStore(params, logger)
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, "national_rules", []byte(`{"rules":[]}`)))

		blob, err := s.Load(ctx, "national_rules")
		require.NoError(t, err)
		require.Equal(t, []byte(`{"rules":[]}`), blob)
		require.NoError(t, closer.Close())

		params.Keyset = ""

		raw, closer, err := OpenStore(params, logger)
		require.NoError(t, err)

		defer func() {
			require.NoError(t, closer.Close())
		}()

		sealed, err := raw.Load(ctx, "national_rules")
		require.NoError(t, err)
		require.NotContains(t, string(sealed), "rules")
		require.Contains(t, string(sealed), "encrypted_key")

		_, err = raw.Load(ctx, "revocation_list")
		require.ErrorIs(t, err, storage.ErrDataNotFound)
	})

	t.Run("missing keyset", func(t *testing.T) {
		_, _, err := OpenStore(&StoreParameters{Type: StoreTypeMem, Scope: "s", Keyset: "missing.json"}, logger)
		require.ErrorContains(t, err, "open keyset")
	})

	t.Run("invalid keyset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keyset.json")
		require.NoError(t, os.WriteFile(path, []byte("not a keyset"), 0o600))

		_, _, err := OpenStore(&StoreParameters{Type: StoreTypeMem, Scope: "s", Keyset: path}, logger)
		require.Error(t, err)
	})

	t.Run("bolt open failure", func(t *testing.T) {
		_, _, err := OpenStore(&StoreParameters{
			Type:  StoreTypeBolt,
			URL:   filepath.Join(t.TempDir(), "missing-dir", "trust.db"),
			Scope: "s",
		}, logger)
		require.ErrorContains(t, err, "open bolt db")
	})

	t.Run("unreachable redis", func(t *testing.T) {
		_, _, err := OpenStore(&StoreParameters{
			Type:    StoreTypeRedis,
			URL:     "localhost:1",
			Scope:   "s",
			Timeout: 100 * time.Millisecond,
		}, logger)
		require.Error(t, err)
	})

	t.Run("redis tls misconfigured", func(t *testing.T) {
		_, _, err := OpenStore(&StoreParameters{
			Type:       StoreTypeRedis,
			URL:        "localhost:1",
			Scope:      "s",
			TLSCACerts: []string{"missing.pem"},
		}, logger)
		require.ErrorContains(t, err, "redis tls")
	})
}
