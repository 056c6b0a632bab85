/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trustbloc/hcert/cmd/common"
	"github.com/trustbloc/hcert/internal/logfields"
	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
	"github.com/trustbloc/hcert/pkg/jwsverifier"
	"github.com/trustbloc/hcert/pkg/observability/metrics"
	"github.com/trustbloc/hcert/pkg/observability/metrics/noop"
	"github.com/trustbloc/hcert/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/hcert/pkg/truststore"
)

const serviceName = "hcert-trust"

// environment is what every command runs against: an opened trust store plus
// the metrics it reports to.
type environment struct {
	trust   *truststore.Store
	metrics metrics.Metrics

	closer          io.Closer
	metricsProvider metrics.Provider
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	storeParams, err := common.StoreParams(cmd)
	if err != nil {
		return nil, err
	}

	provider, err := newMetricsProvider(cmd)
	if err != nil {
		return nil, err
	}

	opts := []truststore.Opt{truststore.WithMetrics(provider.Metrics())}

	bootstrapOpt, err := bootstrapOption(cmd)
	if err != nil {
		return nil, err
	}

	if bootstrapOpt != nil {
		opts = append(opts, bootstrapOpt)
	}

	store, closer, err := common.OpenStore(storeParams, logger)
	if err != nil {
		return nil, err
	}

	trust, err := truststore.New(cmd.Context(), store, opts...)
	if err != nil {
		_ = closer.Close()

		return nil, fmt.Errorf("open trust store: %w", err)
	}

	return &environment{
		trust:           trust,
		metrics:         provider.Metrics(),
		closer:          closer,
		metricsProvider: provider,
	}, nil
}

// Close releases the store and flushes metrics.
func (e *environment) Close() error {
	return errors.Join(e.closer.Close(), e.metricsProvider.Destroy())
}

func newMetricsProvider(cmd *cobra.Command) (metrics.Provider, error) {
	textfile := cmdutils.GetOptionalString(cmd, metricsTextfileFlagName, metricsTextfileEnvKey)
	if textfile == "" {
		return noopProvider{}, nil
	}

	provider := prometheus.NewPrometheusProvider(textfile)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider, nil
}

func bootstrapOption(cmd *cobra.Command) (truststore.Opt, error) {
	archivePath := cmdutils.GetOptionalString(cmd, bootstrapArchiveFlagName, bootstrapArchiveEnvKey)
	if archivePath == "" {
		return nil, nil //nolint:nilnil
	}

	jwksPath, err := cmdutils.GetString(cmd, bootstrapJWKSFlagName, bootstrapJWKSEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("bootstrap archive requires trusted keys: %w", err)
	}

	archive, err := os.ReadFile(filepath.Clean(archivePath))
	if err != nil {
		return nil, fmt.Errorf("read bootstrap archive: %w", err)
	}

	jwks, err := os.ReadFile(filepath.Clean(jwksPath))
	if err != nil {
		return nil, fmt.Errorf("read bootstrap jwks: %w", err)
	}

	verifier, err := jwsverifier.NewFromJWKS(jwks)
	if err != nil {
		return nil, err
	}

	logger.Debug("Bootstrap archive configured", logfields.WithPath(archivePath))

	return truststore.WithBootstrap(archive, verifier), nil
}

type noopProvider struct{}

func (noopProvider) Create() error            { return nil }
func (noopProvider) Destroy() error           { return nil }
func (noopProvider) Metrics() metrics.Metrics { return noop.GetMetrics() }
