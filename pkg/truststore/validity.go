/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import "time"

// ValidityWindow tells whether cached data is still usable. It is an immutable
// snapshot, replaced on every successful refresh of its resource.
type ValidityWindow struct {
	LastRefreshMillis   int64 `json:"lastRefreshMillis"`
	ValidDurationMillis int64 `json:"validDurationMillis"`
}

// NewValidityWindow starts a window of durationMillis at refreshed.
func NewValidityWindow(refreshed time.Time, durationMillis int64) ValidityWindow {
	return ValidityWindow{
		LastRefreshMillis:   refreshed.UnixMilli(),
		ValidDurationMillis: durationMillis,
	}
}

// IsValid reports whether now is strictly before the end of the window.
func (w ValidityWindow) IsValid(now time.Time) bool {
	return now.UnixMilli() < w.LastRefreshMillis+w.ValidDurationMillis
}

// Expiry returns the first instant at which the window is no longer valid.
func (w ValidityWindow) Expiry() time.Time {
	return time.UnixMilli(w.LastRefreshMillis + w.ValidDurationMillis)
}
