/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/internal/logfields"
)

const (
	// EnvVarUsageText is appended to the usage text of every flag that has an environment variable.
	EnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "HCERT_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelFlagUsage is the usage text for the log level flag.
	LogLevelFlagUsage = "Default logging level. Supported levels are: ERROR, WARN, INFO, DEBUG." +
		" Defaults to info if not set." + EnvVarUsageText + LogLevelEnvKey
)

// SetDefaultLogLevel sets the default log level.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	if userLogLevel == "" {
		log.SetLevel("", log.INFO)

		return
	}

	logLevel, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn(`User log level is not valid. It must be one of the following: `+
			log.PANIC.String()+", "+
			log.FATAL.String()+", "+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to info.", logfields.WithUserLogLevel(userLogLevel))

		logLevel = log.INFO
	}

	log.SetLevel("", logLevel)
}
