/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the hcert-trust operator CLI: it bootstraps and updates a health-credential
// trust store and evaluates national rules against decoded credentials.
package main

import (
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/cmd/hcert-trust/trustcmd"
)

var logger = log.New("hcert-trust")

func main() {
	if err := trustcmd.GetRootCmd().Execute(); err != nil {
		logger.Error("Failed to run hcert-trust", log.WithError(err))
		os.Exit(1)
	}
}
