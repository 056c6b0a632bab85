/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexliesenfeld/health"
	"github.com/spf13/cobra"

	"github.com/trustbloc/hcert/cmd/common"
	"github.com/trustbloc/hcert/pkg/observability/health/healthutil"
	mongocheck "github.com/trustbloc/hcert/pkg/observability/health/mongo"
	redischeck "github.com/trustbloc/hcert/pkg/observability/health/redis"
	"github.com/trustbloc/hcert/pkg/truststore"
)

// errUnhealthy makes the process exit non-zero once the report has been printed.
var errUnhealthy = errors.New("trust store is not healthy")

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the store backend and the freshness of every trust resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := common.StoreParams(cmd)
			if err != nil {
				return err
			}

			checks, err := backendChecks(params)
			if err != nil {
				return err
			}

			// An unreachable backend is reported without trying to open the store.
			report := healthutil.Check(cmd.Context(), params.Timeout, checks...)

			if report.Up() {
				env, envErr := newEnvironment(cmd)
				if envErr != nil {
					return envErr
				}
				defer closeEnvironment(env)

				report = healthutil.Check(cmd.Context(), params.Timeout,
					append(checks, freshnessChecks(env.trust)...)...)
			}

			if err = writeJSON(cmd, report); err != nil {
				return err
			}

			if !report.Up() {
				return errUnhealthy
			}

			return nil
		},
	}
}

// backendChecks pings remote backends. Local backends are covered by opening the store.
func backendChecks(params *common.StoreParameters) ([]health.Check, error) {
	var check func(ctx context.Context) error

	switch params.Type {
	case common.StoreTypeRedis:
		tlsConfig, err := params.TLSConfig()
		if err != nil {
			return nil, fmt.Errorf("redis tls: %w", err)
		}

		check = redischeck.New(strings.Split(params.URL, ","), redischeck.WithTLSConfig(tlsConfig))
	case common.StoreTypeMongoDB:
		check = mongocheck.New(params.URL)
	default:
		return nil, nil
	}

	return []health.Check{{Name: params.Type, Check: check}}, nil
}

func freshnessChecks(trust *truststore.Store) []health.Check {
	fresh := func(resource string, isValid func() bool) health.Check {
		return health.Check{
			Name: resource,
			Check: func(context.Context) error {
				if !isValid() {
					return fmt.Errorf("%s must be refreshed", resource)
				}

				return nil
			},
		}
	}

	return []health.Check{
		fresh(truststore.ResourceActiveCertificates, trust.CertificateListIsValid),
		fresh(truststore.ResourceRevocationList, trust.RevocationListIsValid),
		fresh(truststore.ResourceNationalRules, trust.NationalRulesListIsValid),
	}
}
