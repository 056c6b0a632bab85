/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"time"

	"github.com/alexliesenfeld/health"
)

// Report is the outcome of a health run, ready to be encoded as JSON.
type Report struct {
	Status     health.AvailabilityStatus  `json:"status"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}

// ComponentStatus is the outcome of one named check.
type ComponentStatus struct {
	Status       health.AvailabilityStatus `json:"status"`
	Error        string                    `json:"error,omitempty"`
	ResponseTime string                    `json:"response_time,omitempty"`
}

// Up reports whether every check passed.
func (r *Report) Up() bool {
	return r.Status == health.StatusUp
}

// Check runs every check once, each bounded by timeout, and collects the results.
func Check(ctx context.Context, timeout time.Duration, checks ...health.Check) *Report {
	times := NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithDisabledCache(),
		health.WithTimeout(timeout),
		health.WithInterceptors(times.Interceptor()),
	}

	for _, c := range checks {
		opts = append(opts, health.WithCheck(c))
	}

	checker := health.NewChecker(opts...)
	defer checker.Stop()

	return NewReport(checker.Check(ctx), times)
}

// NewReport converts a checker result, adding the recorded response times.
func NewReport(result health.CheckerResult, times *ResponseTimes) *Report {
	r := &Report{Status: result.Status}

	if len(result.Details) == 0 {
		return r
	}

	r.Components = make(map[string]ComponentStatus, len(result.Details))

	for name, cr := range result.Details {
		c := ComponentStatus{Status: cr.Status}

		if cr.Error != nil {
			c.Error = cr.Error.Error()
		}

		if t, ok := times.Get(name); ok {
			c.ResponseTime = t.LastResponseTime.String()
		}

		r.Components[name] = c
	}

	return r
}
