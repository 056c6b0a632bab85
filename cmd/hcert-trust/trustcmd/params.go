/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"github.com/trustbloc/hcert/cmd/common"
	"github.com/trustbloc/hcert/pkg/observability/tracing"
)

const (
	metricsTextfileFlagName  = "metrics-textfile"
	metricsTextfileEnvKey    = "HCERT_METRICS_TEXTFILE"
	metricsTextfileFlagUsage = "Write prometheus metrics to this file when the command ends." +
		common.EnvVarUsageText + metricsTextfileEnvKey

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderEnvKey    = "HCERT_TRACING_PROVIDER"
	tracingProviderFlagUsage = "Span exporter for rule evaluation: " + tracing.Jaeger + " or " + tracing.Stdout +
		". Tracing is disabled when empty." + common.EnvVarUsageText + tracingProviderEnvKey

	bootstrapArchiveFlagName  = "bootstrap-archive"
	bootstrapArchiveEnvKey    = "HCERT_BOOTSTRAP_ARCHIVE"
	bootstrapArchiveFlagUsage = "Signed zip archive seeding the revocation list of an empty trust store." +
		common.EnvVarUsageText + bootstrapArchiveEnvKey

	bootstrapJWKSFlagName  = "bootstrap-jwks"
	bootstrapJWKSEnvKey    = "HCERT_BOOTSTRAP_JWKS"
	bootstrapJWKSFlagUsage = "JWK set trusted to sign the bootstrap archive entries." +
		common.EnvVarUsageText + bootstrapJWKSEnvKey

	fileFlagName  = "file"
	fileFlagUsage = "JSON payload of the update, as downloaded."

	sinceFlagName  = "since"
	sinceFlagUsage = "Cursor reached by this certificate update."

	useFlagName  = "use"
	useEnvKey    = "HCERT_KEY_USE"
	useFlagUsage = "Usage scopes to select keys for: t (test), v (vaccine), r (recovery). Defaults to all." +
		common.EnvVarUsageText + useEnvKey

	credentialFlagName  = "credential"
	credentialFlagUsage = "Decoded credential record (JSON)."

	clockFlagName  = "clock"
	clockFlagUsage = "Validation time in RFC 3339 format. Defaults to now."
)
