/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trustbloc/hcert/internal/logfields"
	"github.com/trustbloc/hcert/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	textfile string
	gatherer prometheus.Gatherer
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When textfile is
// set, Destroy writes the gathered metrics there in the text exposition format, ready for a
// node-exporter textfile collector.
func NewPrometheusProvider(textfile string) metrics.Provider {
	return &promProvider{
		textfile: textfile,
		gatherer: prometheus.DefaultGatherer,
	}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	GetMetrics()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy flushes the collected metrics to the textfile, if any.
func (pp *promProvider) Destroy() error {
	if pp.textfile == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(pp.textfile, pp.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the trust core metrics.
type PromMetrics struct {
	updates        *prometheus.CounterVec
	bootstrap      *prometheus.CounterVec
	evaluationTime prometheus.Histogram
	verdicts       *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		updates:        newUpdates(),
		bootstrap:      newBootstrapEntries(),
		evaluationTime: newEvaluationTime(),
		verdicts:       newVerdicts(),
	}

	registerMetrics(pm)

	return pm
}

// TrustStoreUpdate counts an applied update of resource and whether it reached durable storage.
func (pm *PromMetrics) TrustStoreUpdate(resource string, persisted bool) {
	pm.updates.WithLabelValues(resource, strconv.FormatBool(persisted)).Inc()

	logger.Debug("trust store update", logfields.WithResource(resource), logfields.WithPersisted(persisted))
}

// BootstrapEntries counts archive entries accepted and rejected by the bootstrap loader.
func (pm *PromMetrics) BootstrapEntries(accepted, rejected int) {
	pm.bootstrap.WithLabelValues("accepted").Add(float64(accepted))
	pm.bootstrap.WithLabelValues("rejected").Add(float64(rejected))
}

// RuleEvaluationTime records the time to evaluate a credential against the loaded rules.
func (pm *PromMetrics) RuleEvaluationTime(value time.Duration) {
	pm.evaluationTime.Observe(value.Seconds())

	logger.Debug("rule evaluation time", logfields.WithDuration(value))
}

// RuleVerdict counts evaluation outcomes.
func (pm *PromMetrics) RuleVerdict(verdict string) {
	pm.verdicts.WithLabelValues(verdict).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.updates, pm.bootstrap, pm.evaluationTime, pm.verdicts,
	)
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newUpdates() *prometheus.CounterVec {
	return newCounterVec(
		metrics.TrustStore, metrics.TrustStoreUpdatesMetric,
		"The number of trust store updates applied, by resource and persistence outcome.",
		"resource", "persisted",
	)
}

func newBootstrapEntries() *prometheus.CounterVec {
	return newCounterVec(
		metrics.TrustStore, metrics.TrustStoreBootstrapMetric,
		"The number of bootstrap archive entries, by signature check outcome.",
		"outcome",
	)
}

func newEvaluationTime() prometheus.Histogram {
	return newHistogram(
		metrics.Rules, metrics.RulesEvaluationMetric,
		"The time (in seconds) it takes to evaluate a credential against the national rules.",
		nil,
	)
}

func newVerdicts() *prometheus.CounterVec {
	return newCounterVec(
		metrics.Rules, metrics.RulesVerdictMetric,
		"The number of rule evaluations, by verdict.",
		"verdict",
	)
}
