/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
)

// UpdateCertificateList appends update.Certs to the stored certificates and records since
// as the certificate cursor. Duplicates are kept until the next UpdateActiveCertificates.
func (s *Store) UpdateCertificateList(ctx context.Context, update CertificateListUpdate, since string) error {
	s.certs.Lock()
	defer s.certs.Unlock()

	s.certs.record.Certs = append(s.certs.record.Certs, update.Certs...)
	s.certs.record.Since = since

	logger.Debug("Certificates appended",
		logfields.WithCount(len(update.Certs)), logfields.WithSince(since))

	return s.persist(ctx, ResourceActiveCertificates, &s.certs.record)
}

// UpdateActiveCertificates keeps exactly the certificates whose key id is listed in the
// snapshot and restarts the validity window. When a key id was appended more than once,
// the most recent entry wins.
func (s *Store) UpdateActiveCertificates(ctx context.Context, snapshot ActiveKeyIDsSnapshot) error {
	s.certs.Lock()
	defer s.certs.Unlock()

	active := toSet(snapshot.ActiveKeyIDs)

	latest := lo.UniqBy(lo.Reverse(slices.Clone(s.certs.record.Certs)), func(c ActiveCertificate) string {
		return c.KeyID
	})

	kept := lo.Filter(lo.Reverse(latest), func(c ActiveCertificate, _ int) bool {
		_, ok := active[c.KeyID]
		return ok
	})

	logger.Debug("Active certificates reconciled",
		logfields.WithCount(len(kept)))

	s.certs.record.Certs = kept
	s.certs.record.ValidityWindow = NewValidityWindow(s.clock(), snapshot.ValidDuration)

	s.keys.Flush()

	return s.persist(ctx, ResourceActiveCertificates, &s.certs.record)
}

// CertificateSince returns the cursor of the last appended certificate page.
func (s *Store) CertificateSince() string {
	s.certs.Lock()
	defer s.certs.Unlock()

	return s.certs.record.Since
}

// CertificateListIsValid reports whether the active certificates are within their validity window.
func (s *Store) CertificateListIsValid() bool {
	s.certs.Lock()
	defer s.certs.Unlock()

	return s.certs.record.IsValid(s.clock())
}

// ActiveCertificatePublicKeys returns, in stored order, a descriptor for each certificate
// whose usage scopes intersect usageFilters. Certificates with an unsupported algorithm
// or unusable key material are left out.
func (s *Store) ActiveCertificatePublicKeys(usageFilters ...string) []PublicKeyDescriptor {
	s.certs.Lock()
	defer s.certs.Unlock()

	var descriptors []PublicKeyDescriptor

	for _, c := range s.certs.record.Certs {
		if len(lo.Intersect(c.UsageScopes(), usageFilters)) == 0 {
			continue
		}

		d, err := s.describe(c)
		if err != nil {
			logger.Debug("Certificate excluded from public keys",
				logfields.WithKeyID(c.KeyID), logfields.WithAlgorithm(c.Alg), log.WithError(err))

			continue
		}

		descriptors = append(descriptors, d)
	}

	return descriptors
}
