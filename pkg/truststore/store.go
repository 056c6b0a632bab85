/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
	"github.com/trustbloc/hcert/pkg/observability/metrics/noop"
	"github.com/trustbloc/hcert/pkg/storage"
)

var logger = log.New("truststore")

// Record names in the scoped store, also used as resource labels in logs and metrics.
const (
	ResourceActiveCertificates = "active_certificates"
	ResourceRevocationList     = "revocation_list"
	ResourceNationalRules      = "national_rules"
)

const (
	stateRestored     = "restored"
	stateDefaulted    = "defaulted"
	stateBootstrapped = "bootstrapped"

	keyCacheExpiration = time.Hour
	keyCacheCleanup    = 10 * time.Minute
)

// Store holds the active certificates, the revocation list and the national rules.
// Each resource has its own lock: operations on one resource are serialized and never
// wait on another resource.
type Store struct {
	store   secureStore
	clock   func() time.Time
	metrics metricsProvider
	keys    *cache.Cache

	certs struct {
		sync.Mutex
		record certificatesRecord
	}

	revocations struct {
		sync.Mutex
		revoked map[string]struct{}
		since   string
		window  ValidityWindow
	}

	rules struct {
		sync.Mutex
		record rulesRecord
	}

	bootstrapped bool
}

type options struct {
	clock     func() time.Time
	metrics   metricsProvider
	archive   []byte
	verifier  EnvelopeVerifier
	bootstrap bool
}

// Opt configures a Store.
type Opt func(opts *options)

// WithClock replaces time.Now as the source of refresh and validity timestamps.
func WithClock(clock func() time.Time) Opt {
	return func(opts *options) {
		opts.clock = clock
	}
}

// WithMetrics reports update and bootstrap outcomes to m.
func WithMetrics(m metricsProvider) Opt {
	return func(opts *options) {
		opts.metrics = m
	}
}

// WithBootstrap seeds the revocation list from a signed archive when the store holds no
// revocation record yet. Entries are checked with verifier.
func WithBootstrap(archive []byte, verifier EnvelopeVerifier) Opt {
	return func(opts *options) {
		opts.archive = archive
		opts.verifier = verifier
		opts.bootstrap = true
	}
}

// New restores all three resources from store. A missing or undecodable record starts
// empty and expired. When the revocation record is missing and a bootstrap archive is
// configured, the archive is loaded and persisted before New returns.
func New(ctx context.Context, store secureStore, opts ...Opt) (*Store, error) {
	op := &options{
		clock:   time.Now,
		metrics: noop.GetMetrics(),
	}

	for _, fn := range opts {
		fn(op)
	}

	s := &Store{
		store:   store,
		clock:   op.clock,
		metrics: op.metrics,
		keys:    cache.New(keyCacheExpiration, keyCacheCleanup),
	}

	certs, certsState, err := restore[certificatesRecord](ctx, store, ResourceActiveCertificates)
	if err != nil {
		return nil, err
	}

	revocation, revocationState, err := restore[revocationRecord](ctx, store, ResourceRevocationList)
	if err != nil {
		return nil, err
	}

	rules, rulesState, err := restore[rulesRecord](ctx, store, ResourceNationalRules)
	if err != nil {
		return nil, err
	}

	s.certs.record = certs
	s.revocations.revoked = toSet(revocation.RevokedCerts)
	s.revocations.since = revocation.Since
	s.revocations.window = revocation.ValidityWindow
	s.rules.record = rules

	if revocationState == stateDefaulted && op.bootstrap {
		if err = s.bootstrap(ctx, op.archive, op.verifier); err != nil {
			return nil, err
		}

		revocationState = stateBootstrapped
	}

	logger.Info("Trust store resource ready",
		logfields.WithResource(ResourceActiveCertificates), logfields.WithState(certsState))
	logger.Info("Trust store resource ready",
		logfields.WithResource(ResourceRevocationList), logfields.WithState(revocationState))
	logger.Info("Trust store resource ready",
		logfields.WithResource(ResourceNationalRules), logfields.WithState(rulesState))

	return s, nil
}

// Bootstrapped reports whether New seeded the revocation list from the bootstrap archive.
func (s *Store) Bootstrapped() bool {
	return s.bootstrapped
}

func restore[T any](ctx context.Context, store secureStore, name string) (T, string, error) {
	var record T

	blob, err := store.Load(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return record, stateDefaulted, nil
		}

		return record, "", fmt.Errorf("load %s: %w", name, err)
	}

	if err = json.Unmarshal(blob, &record); err != nil {
		logger.Warn("Corrupt trust store record reset to default",
			logfields.WithResource(name), log.WithError(err))

		var empty T

		return empty, stateDefaulted, nil
	}

	return record, stateRestored, nil
}

// persist writes record under name. The caller holds the resource lock.
func (s *Store) persist(ctx context.Context, name string, record interface{}) error {
	blob, err := json.Marshal(record)
	if err == nil {
		err = s.store.Save(ctx, name, blob)
	}

	s.metrics.TrustStoreUpdate(name, err == nil)

	if err != nil {
		logger.Warn("Trust store update kept in memory but not persisted",
			logfields.WithResource(name), log.WithError(err))

		return fmt.Errorf("%w: %s: %w", ErrPersistence, name, err)
	}

	return nil
}
