/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
)

// ManifestEntry is the unsigned archive entry that carries the continuation cursor.
const ManifestEntry = "manifest.json"

type bootstrapManifest struct {
	Since string `json:"since"`
}

// bootstrap seeds the revocation resource from archive. Entries are verified one at a time
// in archive order; an entry that fails to read, verify or decode is skipped. The seeded
// record is persisted right away with an expired window so callers sync before relying on it.
func (s *Store) bootstrap(ctx context.Context, archive []byte, verifier EnvelopeVerifier) error {
	if verifier == nil {
		return fmt.Errorf("%w: no envelope verifier", ErrBootstrapArchive)
	}

	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrapArchive, err)
	}

	s.revocations.Lock()
	defer s.revocations.Unlock()

	var accepted, rejected int

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		content, readErr := readEntry(f)
		if readErr != nil {
			rejected++

			logger.Debug("Bootstrap entry skipped", logfields.WithEntry(f.Name), log.WithError(readErr))

			continue
		}

		if f.Name == ManifestEntry {
			var manifest bootstrapManifest
			if err = json.Unmarshal(content, &manifest); err != nil {
				logger.Warn("Bootstrap manifest ignored", logfields.WithEntry(f.Name), log.WithError(err))

				continue
			}

			s.revocations.since = manifest.Since

			continue
		}

		ids, verifyErr := verifyEntry(ctx, verifier, content)
		if verifyErr != nil {
			rejected++

			logger.Debug("Bootstrap entry skipped", logfields.WithEntry(f.Name), log.WithError(verifyErr))

			continue
		}

		accepted++

		for _, id := range ids {
			s.revocations.revoked[id] = struct{}{}
		}
	}

	s.revocations.window = NewValidityWindow(s.clock(), 0)
	s.bootstrapped = true

	s.metrics.BootstrapEntries(accepted, rejected)

	logger.Info("Revocation list bootstrapped",
		logfields.WithCount(len(s.revocations.revoked)), logfields.WithSince(s.revocations.since))

	// A failed write is logged by persist; the archive is loaded again on next start.
	_ = s.persistRevocations(ctx)

	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = rc.Close()
	}()

	return io.ReadAll(rc)
}

func verifyEntry(ctx context.Context, verifier EnvelopeVerifier, envelope []byte) ([]string, error) {
	payload, err := verifier.VerifyAndDecode(ctx, envelope)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	var update RevocationListUpdate
	if err = json.Unmarshal(payload, &update); err != nil {
		return nil, fmt.Errorf("decode revocation list: %w", err)
	}

	return update.RevokedCerts, nil
}
