/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "hcert"

	// TrustStore update and bootstrap operations.
	TrustStore                = "truststore"
	TrustStoreUpdatesMetric   = "updates_total"
	TrustStoreBootstrapMetric = "bootstrap_entries_total"

	// Rules engine operations.
	Rules                 = "rules"
	RulesEvaluationMetric = "evaluation_seconds"
	RulesVerdictMetric    = "verdicts_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	TrustStoreUpdate(resource string, persisted bool)
	BootstrapEntries(accepted, rejected int)
	RuleEvaluationTime(value time.Duration)
	RuleVerdict(verdict string)
}
