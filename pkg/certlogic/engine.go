/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination engine_mocks_test.go -package certlogic_test -source=engine.go

package certlogic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
	"github.com/trustbloc/hcert/pkg/doc/validator/jsonschema"
	"github.com/trustbloc/hcert/pkg/truststore"
)

var logger = log.New("certlogic")

// Verdicts reported to metrics.
const (
	VerdictPassed        = "passed"
	VerdictTestsFailed   = "tests_failed"
	VerdictNotPerformed  = "not_performed"
	VerdictJSONError     = "json_error"
	VerdictRulesNotReady = "rules_not_ready"
)

type ruleSetValidator interface {
	ValidateRuleSet(doc []byte) error
}

type metricsProvider interface {
	RuleEvaluationTime(value time.Duration)
	RuleVerdict(verdict string)
}

// Rule is a single jurisdiction rule. Logic holds the raw expression document.
type Rule struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Logic       json.RawMessage `json:"logic"`
}

type compiledRule struct {
	id          string
	description string
	logic       *node
}

type ruleSet struct {
	rules     []compiledRule
	valueSets map[string][]string
}

type evaluationData struct {
	External externalParameters `json:"external"`
	Payload  json.RawMessage    `json:"payload"`
}

type externalParameters struct {
	ValidationClock string              `json:"validationClock"`
	StartOfDayClock string              `json:"startOfDayClock"`
	ValueSets       map[string][]string `json:"valueSets"`
}

// Engine evaluates the currently loaded rule set against credentials.
type Engine struct {
	current   atomic.Pointer[ruleSet]
	location  *time.Location
	validator ruleSetValidator
	metrics   metricsProvider
}

type Opt func(e *Engine)

// WithLocation sets the location used to derive the start of the validation day. Default is time.Local.
func WithLocation(loc *time.Location) Opt {
	return func(e *Engine) {
		e.location = loc
	}
}

// WithSchemaValidator replaces the rule document shape check.
func WithSchemaValidator(v ruleSetValidator) Opt {
	return func(e *Engine) {
		e.validator = v
	}
}

func WithMetrics(m metricsProvider) Opt {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New returns an engine with no rules loaded.
func New(opts ...Opt) *Engine {
	e := &Engine{
		location:  time.Local,
		validator: jsonschema.NewCachingValidator(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// LoadRules replaces the rule set. On failure the previously loaded rules stay in effect.
func (e *Engine) LoadRules(rules json.RawMessage, valueSets map[string][]string) error {
	if err := e.validator.ValidateRuleSet(rules); err != nil {
		return fmt.Errorf("%w: %w", ErrRuleParsing, err)
	}

	var parsed []Rule

	if err := json.Unmarshal(rules, &parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrRuleParsing, err)
	}

	set := &ruleSet{
		rules:     make([]compiledRule, 0, len(parsed)),
		valueSets: valueSets,
	}

	for _, r := range parsed {
		var expr interface{}

		if err := json.Unmarshal(r.Logic, &expr); err != nil {
			return fmt.Errorf("%w: rule %s: %w", ErrRuleParsing, r.ID, err)
		}

		set.rules = append(set.rules, compiledRule{
			id:          r.ID,
			description: r.Description,
			logic:       compile(expr),
		})
	}

	e.current.Store(set)

	logger.Debug("Rules loaded", logfields.WithCount(len(set.rules)))

	return nil
}

// LoadNationalRules loads the rule set and value sets kept by the trust store.
func (e *Engine) LoadNationalRules(rules truststore.NationalRuleSet) error {
	return e.LoadRules(rules.Rules, rules.ValueSets)
}

// Evaluate runs every rule in order against the credential at the given clock. It returns nil when
// all rules pass, *TestsFailedError for the first rule that does not hold, *TestCouldNotBePerformedError
// when a rule cannot be evaluated and *JSONError when the credential cannot be serialized.
func (e *Engine) Evaluate(_ context.Context, credential interface{}, clock time.Time) error {
	start := time.Now()

	err := e.evaluate(credential, clock)

	if e.metrics != nil {
		e.metrics.RuleEvaluationTime(time.Since(start))
		e.metrics.RuleVerdict(VerdictOf(err))
	}

	return err
}

func (e *Engine) evaluate(credential interface{}, clock time.Time) error {
	set := e.current.Load()
	if set == nil {
		return ErrNoRules
	}

	payload, err := json.Marshal(credential)
	if err != nil {
		return &JSONError{Err: err}
	}

	local := clock.In(e.location)
	y, m, d := local.Date()

	data, err := json.Marshal(&evaluationData{
		External: externalParameters{
			ValidationClock: local.Format(time.RFC3339),
			StartOfDayClock: time.Date(y, m, d, 0, 0, 0, 0, e.location).Format(time.RFC3339),
			ValueSets:       set.valueSets,
		},
		Payload: payload,
	})
	if err != nil {
		return &JSONError{Err: err}
	}

	for _, r := range set.rules {
		result, evalErr := eval(r.logic, data)
		if evalErr != nil {
			logger.Debug("Rule could not be evaluated", logfields.WithRuleID(r.id), log.WithError(evalErr))

			return &TestCouldNotBePerformedError{RuleID: r.id, Err: evalErr}
		}

		switch result {
		case true:
			continue
		case false:
			logger.Debug("Rule failed", logfields.WithRuleID(r.id))

			return &TestsFailedError{Failures: map[string]string{r.id: r.description}}
		default:
			return &TestCouldNotBePerformedError{
				RuleID: r.id,
				Err:    fmt.Errorf("expected boolean result, got %s", typeName(result)),
			}
		}
	}

	return nil
}

// VerdictOf classifies the result of Evaluate.
func VerdictOf(err error) string {
	var (
		failed  *TestsFailedError
		jsonErr *JSONError
	)

	switch {
	case err == nil:
		return VerdictPassed
	case errors.As(err, &failed):
		return VerdictTestsFailed
	case errors.As(err, &jsonErr):
		return VerdictJSONError
	case errors.Is(err, ErrNoRules):
		return VerdictRulesNotReady
	default:
		return VerdictNotPerformed
	}
}
