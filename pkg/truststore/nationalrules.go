/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
)

// UpdateNationalRules replaces the rule document and value sets as a whole and restarts
// the validity window.
func (s *Store) UpdateNationalRules(ctx context.Context, update NationalRuleSet) error {
	s.rules.Lock()
	defer s.rules.Unlock()

	s.rules.record = rulesRecord{
		Rules:          update.Rules,
		ValueSets:      update.ValueSets,
		ValidityWindow: NewValidityWindow(s.clock(), update.ValidDuration),
	}

	return s.persist(ctx, ResourceNationalRules, &s.rules.record)
}

// NationalRules returns a deep copy of the current rule set. ValidDuration is the
// duration of the current validity window.
func (s *Store) NationalRules() NationalRuleSet {
	s.rules.Lock()
	defer s.rules.Unlock()

	var out NationalRuleSet

	if err := copier.CopyWithOption(&out, &s.rules.record, copier.Option{DeepCopy: true}); err != nil {
		logger.Error("Copy national rules", logfields.WithResource(ResourceNationalRules), log.WithError(err))
	}

	out.ValidDuration = s.rules.record.ValidDurationMillis

	return out
}

// NationalRulesListIsValid reports whether the national rules are within their validity window.
func (s *Store) NationalRulesListIsValid() bool {
	s.rules.Lock()
	defer s.rules.Unlock()

	return s.rules.record.IsValid(s.clock())
}
