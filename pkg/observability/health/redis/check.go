/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New returns a health check that pings the redis deployment holding the trust store.
func New(addrs []string, opts ...ClientOpt) func(ctx context.Context) error {
	opt := &clientOpts{}

	for _, f := range opts {
		f(opt)
	}

	return func(ctx context.Context) error {
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:                 addrs,
			ContextTimeoutEnabled: true,
			TLSConfig:             opt.tlsConfig,
		})

		defer func() {
			_ = client.Close()
		}()

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		return nil
	}
}

type clientOpts struct {
	tlsConfig *tls.Config
}

// ClientOpt configures the redis client used by the check.
type ClientOpt func(opts *clientOpts)

// WithTLSConfig sets the client TLS configuration.
func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}
