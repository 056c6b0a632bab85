/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/trustbloc/hcert/internal/logfields"
)

// RevokedCertificates returns the revoked identifiers, sorted.
func (s *Store) RevokedCertificates() []string {
	s.revocations.Lock()
	defer s.revocations.Unlock()

	return sortedKeys(s.revocations.revoked)
}

// UpdateRevocationList unions delta into the revoked set, restarts the validity window
// with the delta's duration and advances the cursor when the delta carries one.
// An error wrapping ErrPersistence leaves the in-memory update in place.
func (s *Store) UpdateRevocationList(ctx context.Context, delta RevocationListUpdate) error {
	s.revocations.Lock()
	defer s.revocations.Unlock()

	for _, id := range delta.RevokedCerts {
		s.revocations.revoked[id] = struct{}{}
	}

	s.revocations.window = NewValidityWindow(s.clock(), delta.ValidDuration)

	if delta.NextSince != "" {
		s.revocations.since = delta.NextSince
	}

	logger.Debug("Revocation list updated",
		logfields.WithCount(len(delta.RevokedCerts)), logfields.WithSince(s.revocations.since))

	return s.persistRevocations(ctx)
}

// RevocationListIsValid reports whether the revocation list is within its validity window.
func (s *Store) RevocationListIsValid() bool {
	s.revocations.Lock()
	defer s.revocations.Unlock()

	return s.revocations.window.IsValid(s.clock())
}

// RevocationListSince returns the cursor of the last applied revocation delta.
func (s *Store) RevocationListSince() string {
	s.revocations.Lock()
	defer s.revocations.Unlock()

	return s.revocations.since
}

// persistRevocations writes the revocation resource. The caller holds its lock.
func (s *Store) persistRevocations(ctx context.Context) error {
	return s.persist(ctx, ResourceRevocationList, &revocationRecord{
		RevokedCerts:   sortedKeys(s.revocations.revoked),
		Since:          s.revocations.since,
		ValidityWindow: s.revocations.window,
	})
}

func toSet(ids []string) map[string]struct{} {
	return lo.Associate(ids, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
}

func sortedKeys(set map[string]struct{}) []string {
	keys := lo.Keys(set)
	sort.Strings(keys)

	return keys
}
