/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package truststore

import "errors"

var (
	// ErrPersistence is returned by update operations whose in-memory change was applied
	// but could not be written to the scoped store. The change is not rolled back.
	ErrPersistence = errors.New("trust store persistence failed")

	// ErrBootstrapArchive is returned by New when the bootstrap archive cannot be opened.
	ErrBootstrapArchive = errors.New("invalid bootstrap archive")
)
