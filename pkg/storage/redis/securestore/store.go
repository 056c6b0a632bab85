/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package securestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/hcert/pkg/storage"
)

//go:generate mockgen -destination store_mocks_test.go -package securestore_test -source=store.go

const (
	keyPrefix = "hcert_trust"
)

type redisAPI interface {
	Get(ctx context.Context, key string) *redisapi.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redisapi.StatusCmd
}

// Store keeps trust-store records of one scope in redis. Records never expire.
type Store struct {
	api   redisAPI
	scope string
}

// New returns a store for scope. Pass redis.Client.API() as api.
func New(api redisAPI, scope string) *Store {
	return &Store{
		api:   api,
		scope: scope,
	}
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	b, err := s.api.Get(ctx, s.resolveRedisKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, storage.ErrDataNotFound
		}

		return nil, fmt.Errorf("redis get %q: %w", name, err)
	}

	return b, nil
}

func (s *Store) Save(ctx context.Context, name string, blob []byte) error {
	if err := s.api.Set(ctx, s.resolveRedisKey(name), blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", name, err)
	}

	return nil
}

func (s *Store) resolveRedisKey(name string) string {
	return fmt.Sprintf("%s-%s-%s", keyPrefix, s.scope, name)
}
