/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certlogic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrRuleParsing is returned by LoadRules when the rule document is not a well-formed list of rules.
	ErrRuleParsing = errors.New("rule parsing failed")

	// ErrNoRules is returned by Evaluate when no rule set was ever loaded.
	ErrNoRules = errors.New("no rules loaded")
)

// JSONError is returned when the credential cannot be turned into the evaluation document.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("credential to json: %v", e.Err)
}

func (e *JSONError) Unwrap() error {
	return e.Err
}

// TestsFailedError maps the id of every failed rule to its description.
type TestsFailedError struct {
	Failures map[string]string
}

func (e *TestsFailedError) Error() string {
	ids := make([]string, 0, len(e.Failures))
	for id := range e.Failures {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return "tests failed: " + strings.Join(ids, ", ")
}

// TestCouldNotBePerformedError is returned when a rule expression cannot be evaluated.
type TestCouldNotBePerformedError struct {
	RuleID string
	Err    error
}

func (e *TestCouldNotBePerformedError) Error() string {
	return fmt.Sprintf("test %s could not be performed: %v", e.RuleID, e.Err)
}

func (e *TestCouldNotBePerformedError) Unwrap() error {
	return e.Err
}
