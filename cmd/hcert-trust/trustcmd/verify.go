/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trustbloc/hcert/internal/logfields"
	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
	"github.com/trustbloc/hcert/pkg/certlogic"
	"github.com/trustbloc/hcert/pkg/observability/tracing"
	certlogicwrapper "github.com/trustbloc/hcert/pkg/observability/tracing/wrappers/certlogic"
)

type verifyResult struct {
	Verdict     string            `json:"verdict"`
	RulesValid  bool              `json:"rulesValid"`
	Failures    map[string]string `json:"failures,omitempty"`
	Error       string            `json:"error,omitempty"`
	ValidatedAt time.Time         `json:"validatedAt"`
}

// errNotPassed makes the process exit non-zero once the verdict has been printed.
var errNotPassed = errors.New("credential did not pass the national rules")

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Evaluate the stored national rules against a decoded credential",
		RunE:  runVerify,
	}

	cmd.Flags().String(credentialFlagName, "", credentialFlagUsage)
	cmd.Flags().String(clockFlagName, "", clockFlagUsage)

	return cmd
}

func runVerify(cmd *cobra.Command, _ []string) error {
	credentialPath, err := cmd.Flags().GetString(credentialFlagName)
	if err != nil {
		return err
	}

	if credentialPath == "" {
		return errors.New("--" + credentialFlagName + " is required")
	}

	clock, err := validationClock(cmd)
	if err != nil {
		return err
	}

	var credential interface{}

	if err = readJSONFile(credentialPath, &credential); err != nil {
		return err
	}

	shutdown, tracer, err := tracing.Initialize(
		cmdutils.GetOptionalString(cmd, tracingProviderFlagName, tracingProviderEnvKey), serviceName)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer shutdown()

	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer closeEnvironment(env)

	engine := certlogic.New(certlogic.WithMetrics(env.metrics))

	// Without stored rules the engine stays empty and reports rules_not_ready.
	if rules := env.trust.NationalRules(); len(rules.Rules) > 0 {
		if err = engine.LoadNationalRules(rules); err != nil {
			return fmt.Errorf("load national rules: %w", err)
		}
	}

	evalErr := certlogicwrapper.Wrap(engine, tracer).Evaluate(cmd.Context(), credential, clock)

	result := &verifyResult{
		Verdict:     certlogic.VerdictOf(evalErr),
		RulesValid:  env.trust.NationalRulesListIsValid(),
		ValidatedAt: clock,
	}

	var failed *certlogic.TestsFailedError

	switch {
	case errors.As(evalErr, &failed):
		result.Failures = failed.Failures
	case evalErr != nil:
		result.Error = evalErr.Error()
	}

	logger.Info("Credential evaluated", logfields.WithVerdict(result.Verdict))

	if err = writeJSON(cmd, result); err != nil {
		return err
	}

	if evalErr != nil {
		return errNotPassed
	}

	return nil
}

func validationClock(cmd *cobra.Command) (time.Time, error) {
	value, err := cmd.Flags().GetString(clockFlagName)
	if err != nil {
		return time.Time{}, err
	}

	if value == "" {
		return time.Now(), nil
	}

	clock, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", clockFlagName, err)
	}

	return clock, nil
}
