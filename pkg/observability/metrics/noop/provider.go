/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/hcert/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the Metrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) TrustStoreUpdate(_ string, _ bool)  {}
func (n *NoMetrics) BootstrapEntries(_, _ int)          {}
func (n *NoMetrics) RuleEvaluationTime(_ time.Duration) {}
func (n *NoMetrics) RuleVerdict(_ string)               {}
