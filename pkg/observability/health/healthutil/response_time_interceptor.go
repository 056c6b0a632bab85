/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState is the timing of one named check.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes records how long each check takes. It is safe for concurrent use.
type ResponseTimes struct {
	mu     sync.Mutex
	states map[string]ResponseTimeState
}

// NewResponseTimes returns an empty recorder.
func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the timing recorded for name.
func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.states[name]

	return s, ok
}

// Interceptor returns a health interceptor that times every check it wraps.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			r.record(name, time.Since(start))

			return result
		}
	}
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.states[name]
	if !ok {
		r.states[name] = ResponseTimeState{LastResponseTime: elapsed, AverageResponseTime: elapsed}

		return
	}

	r.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}
