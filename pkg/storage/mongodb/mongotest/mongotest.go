/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mongotest starts a disposable MongoDB container for package tests.
package mongotest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	dctest "github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dockerMongoDBImage = "mongo"
	dockerMongoDBTag   = "4.0.0"
)

// StartContainer runs MongoDB on a random host port, waits until it answers pings
// and returns its connection string. The container is purged on test cleanup.
func StartContainer(t *testing.T) string {
	t.Helper()

	pool, err := dctest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dctest.RunOptions{
		Repository: dockerMongoDBImage,
		Tag:        dockerMongoDBTag,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pool.Purge(resource), "failed to purge MongoDB resource")
	})

	connString := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))

	require.NoError(t, backoff.Retry(func() error {
		return ping(connString)
	}, backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 30)))

	return connString
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	return client.Ping(ctx, nil)
}
