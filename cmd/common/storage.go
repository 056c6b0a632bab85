/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"crypto/tls"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"

	"github.com/trustbloc/hcert/internal/logfields"
	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
	tlsutils "github.com/trustbloc/hcert/internal/pkg/utils/tls"
	"github.com/trustbloc/hcert/pkg/dataprotect"
	"github.com/trustbloc/hcert/pkg/storage"
	"github.com/trustbloc/hcert/pkg/storage/boltdb"
	"github.com/trustbloc/hcert/pkg/storage/memstore"
	"github.com/trustbloc/hcert/pkg/storage/mongodb"
	mongostore "github.com/trustbloc/hcert/pkg/storage/mongodb/securestore"
	"github.com/trustbloc/hcert/pkg/storage/protected"
	"github.com/trustbloc/hcert/pkg/storage/redis"
	redisstore "github.com/trustbloc/hcert/pkg/storage/redis/securestore"
)

// Store types.
const (
	StoreTypeMem     = "mem"
	StoreTypeBolt    = "bolt"
	StoreTypeRedis   = "redis"
	StoreTypeMongoDB = "mongodb"
)

const (
	StoreTypeFlagName  = "store-type"
	StoreTypeEnvKey    = "HCERT_STORE_TYPE"
	StoreTypeFlagUsage = "Trust store backend: mem, bolt, redis or mongodb. Defaults to bolt." +
		EnvVarUsageText + StoreTypeEnvKey

	StoreURLFlagName  = "store-url"
	StoreURLEnvKey    = "HCERT_STORE_URL"
	StoreURLFlagUsage = "Backend location: a file path for bolt, comma-separated addresses for redis," +
		" a connection string for mongodb. Ignored for mem." + EnvVarUsageText + StoreURLEnvKey

	StoreScopeFlagName  = "store-scope"
	StoreScopeEnvKey    = "HCERT_STORE_SCOPE"
	StoreScopeFlagUsage = "Namespace of the trust store records, usually one per device or tenant." +
		EnvVarUsageText + StoreScopeEnvKey

	StoreKeysetFlagName  = "store-keyset"
	StoreKeysetEnvKey    = "HCERT_STORE_KEYSET" //nolint:gosec
	StoreKeysetFlagUsage = "Path to a cleartext tink keyset (JSON). When set, every record is compressed and" +
		" envelope-encrypted before it reaches the backend." + EnvVarUsageText + StoreKeysetEnvKey

	StoreCompressionFlagName  = "store-compression"
	StoreCompressionEnvKey    = "HCERT_STORE_COMPRESSION"
	StoreCompressionFlagUsage = "Compression of protected records: zstd, gzip or none. Defaults to zstd." +
		EnvVarUsageText + StoreCompressionEnvKey

	StoreTimeoutFlagName  = "store-timeout"
	StoreTimeoutEnvKey    = "HCERT_STORE_TIMEOUT"
	StoreTimeoutFlagUsage = "Time to wait for the backend, e.g. 10s. Defaults to 30s." +
		EnvVarUsageText + StoreTimeoutEnvKey

	StoreTLSCACertsFlagName  = "store-tls-cacerts"
	StoreTLSCACertsEnvKey    = "HCERT_STORE_TLS_CACERTS"
	StoreTLSCACertsFlagUsage = "Comma-separated PEM CA certificates trusted for the redis connection." +
		EnvVarUsageText + StoreTLSCACertsEnvKey

	StoreTLSSystemCertPoolFlagName  = "store-tls-systemcertpool"
	StoreTLSSystemCertPoolEnvKey    = "HCERT_STORE_TLS_SYSTEMCERTPOOL"
	StoreTLSSystemCertPoolFlagUsage = "Trust the system cert pool for the redis connection." +
		EnvVarUsageText + StoreTLSSystemCertPoolEnvKey
)

const (
	defaultStoreTimeout = 30 * time.Second
	defaultScope        = "default"
	defaultCompression  = "zstd"
	defaultBoltFile     = "hcert-trust.db"
	mongoDatabaseName   = "hcert"
	storeKeyID          = "hcert-store"
)

// StoreParameters holds the trust store backend configuration.
type StoreParameters struct {
	Type              string
	URL               string
	Scope             string
	Keyset            string
	Compression       string
	Timeout           time.Duration
	TLSCACerts        []string
	TLSSystemCertPool bool
}

// StoreFlags registers the trust store flags.
func StoreFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(StoreTypeFlagName, StoreTypeBolt, StoreTypeFlagUsage)
	cmd.PersistentFlags().String(StoreURLFlagName, defaultBoltFile, StoreURLFlagUsage)
	cmd.PersistentFlags().String(StoreScopeFlagName, defaultScope, StoreScopeFlagUsage)
	cmd.PersistentFlags().String(StoreKeysetFlagName, "", StoreKeysetFlagUsage)
	cmd.PersistentFlags().String(StoreCompressionFlagName, defaultCompression, StoreCompressionFlagUsage)
	cmd.PersistentFlags().String(StoreTimeoutFlagName, "", StoreTimeoutFlagUsage)
	cmd.PersistentFlags().StringSlice(StoreTLSCACertsFlagName, nil, StoreTLSCACertsFlagUsage)
	cmd.PersistentFlags().Bool(StoreTLSSystemCertPoolFlagName, false, StoreTLSSystemCertPoolFlagUsage)
}

// StoreParams fetches the trust store parameters configured for this command.
func StoreParams(cmd *cobra.Command) (*StoreParameters, error) {
	params := &StoreParameters{
		Type:        cmdutils.GetOptionalString(cmd, StoreTypeFlagName, StoreTypeEnvKey),
		URL:         cmdutils.GetOptionalString(cmd, StoreURLFlagName, StoreURLEnvKey),
		Scope:       cmdutils.GetOptionalString(cmd, StoreScopeFlagName, StoreScopeEnvKey),
		Keyset:      cmdutils.GetOptionalString(cmd, StoreKeysetFlagName, StoreKeysetEnvKey),
		Compression: cmdutils.GetOptionalString(cmd, StoreCompressionFlagName, StoreCompressionEnvKey),
		TLSCACerts:  cmdutils.GetOptionalCSV(cmd, StoreTLSCACertsFlagName, StoreTLSCACertsEnvKey),
	}

	var err error

	params.Timeout, err = cmdutils.GetDuration(cmd, StoreTimeoutFlagName, StoreTimeoutEnvKey, defaultStoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to configure store timeout: %w", err)
	}

	params.TLSSystemCertPool, err = cmdutils.GetOptionalBool(cmd, StoreTLSSystemCertPoolFlagName,
		StoreTLSSystemCertPoolEnvKey)
	if err != nil {
		return nil, fmt.Errorf("failed to configure store tls: %w", err)
	}

	switch params.Type {
	case StoreTypeMem, StoreTypeBolt, StoreTypeRedis, StoreTypeMongoDB:
	default:
		return nil, fmt.Errorf("unsupported store type: %s", params.Type)
	}

	if params.Type != StoreTypeMem && params.URL == "" {
		return nil, fmt.Errorf("%s store requires %s", params.Type, StoreURLFlagName)
	}

	return params, nil
}

// TLSConfig returns the client TLS configuration for the backend, or nil when none is configured.
func (p *StoreParameters) TLSConfig() (*tls.Config, error) {
	if len(p.TLSCACerts) == 0 && !p.TLSSystemCertPool {
		return nil, nil //nolint:nilnil
	}

	return tlsutils.NewClientConfig(p.TLSSystemCertPool, p.TLSCACerts)
}

// OpenStore opens the configured backend, wrapped in the protected store when a keyset is configured.
// The returned closer releases the backend.
func OpenStore(params *StoreParameters, logger *log.Log) (storage.ScopedStore, io.Closer, error) {
	store, closer, err := openBackend(params)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Trust store backend opened", logfields.WithStoreType(params.Type),
		logfields.WithScope(params.Scope))

	if params.Keyset == "" {
		return store, closer, nil
	}

	protector, err := newProtector(params.Keyset)
	if err != nil {
		_ = closer.Close()

		return nil, nil, err
	}

	return protected.New(store, protector, dataprotect.NewCompressor(params.Compression)), closer, nil
}

func openBackend(params *StoreParameters) (storage.ScopedStore, io.Closer, error) {
	switch params.Type {
	case StoreTypeMem:
		return memstore.New(params.Scope), nopCloser{}, nil
	case StoreTypeBolt:
		s, err := boltdb.New(params.URL, params.Scope, &bbolt.Options{Timeout: params.Timeout})
		if err != nil {
			return nil, nil, err
		}

		return s, s, nil
	case StoreTypeRedis:
		opts := []redis.ClientOpt{
			redis.WithTimeout(params.Timeout),
			redis.WithTraceProvider(otel.GetTracerProvider()),
		}

		tlsConfig, err := params.TLSConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("redis tls: %w", err)
		}

		if tlsConfig != nil {
			opts = append(opts, redis.WithTLSConfig(tlsConfig))
		}

		client, err := redis.New(strings.Split(params.URL, ","), opts...)
		if err != nil {
			return nil, nil, err
		}

		return redisstore.New(client.API(), params.Scope), client, nil
	case StoreTypeMongoDB:
		client, err := mongodb.New(params.URL, mongoDatabaseName,
			mongodb.WithTimeout(params.Timeout),
			mongodb.WithTraceProvider(otel.GetTracerProvider()),
		)
		if err != nil {
			return nil, nil, err
		}

		return mongostore.New(client, params.Scope), client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store type: %s", params.Type)
	}
}

func newProtector(keysetPath string) (*dataprotect.DataProtector, error) {
	f, err := os.Open(filepath.Clean(keysetPath))
	if err != nil {
		return nil, fmt.Errorf("open keyset: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	kh, err := dataprotect.ReadKeyset(f)
	if err != nil {
		return nil, err
	}

	keyProtector := dataprotect.NewKeyProtector()

	if err = keyProtector.Add(storeKeyID, kh); err != nil {
		return nil, err
	}

	return dataprotect.NewDataProtector(keyProtector, storeKeyID, dataprotect.NewAES(dataprotect.DefaultKeyLength)), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
