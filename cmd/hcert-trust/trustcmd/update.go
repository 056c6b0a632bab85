/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustbloc/hcert/internal/logfields"
	"github.com/trustbloc/hcert/pkg/certlogic"
	"github.com/trustbloc/hcert/pkg/truststore"
)

func newUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Apply a downloaded update to the trust store",
	}

	certsCmd := newUpdateSubCmd("certificates", "Merge a certificate list page", updateCertificates)
	certsCmd.Flags().String(sinceFlagName, "", sinceFlagUsage)

	updateCmd.AddCommand(
		newUpdateSubCmd("revocations", "Apply a revocation list delta", updateRevocations),
		certsCmd,
		newUpdateSubCmd("active-keys", "Prune certificates to the active key ids", updateActiveKeys),
		newUpdateSubCmd("rules", "Replace the national rules", updateRules),
	)

	updateCmd.PersistentFlags().String(fileFlagName, "", fileFlagUsage)

	return updateCmd
}

type updateFunc func(cmd *cobra.Command, env *environment, path string) error

func newUpdateSubCmd(use, short string, apply updateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(fileFlagName)
			if err != nil {
				return err
			}

			if path == "" {
				return errors.New("--" + fileFlagName + " is required")
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer closeEnvironment(env)

			if err = apply(cmd, env, path); err != nil {
				return err
			}

			logger.Info("Trust store updated", logfields.WithResource(use))

			return writeJSON(cmd, newStatus(env.trust))
		},
	}
}

func updateRevocations(cmd *cobra.Command, env *environment, path string) error {
	var delta truststore.RevocationListUpdate

	if err := readJSONFile(path, &delta); err != nil {
		return err
	}

	return env.trust.UpdateRevocationList(cmd.Context(), delta)
}

func updateCertificates(cmd *cobra.Command, env *environment, path string) error {
	var page truststore.CertificateListUpdate

	if err := readJSONFile(path, &page); err != nil {
		return err
	}

	since, err := cmd.Flags().GetString(sinceFlagName)
	if err != nil {
		return err
	}

	return env.trust.UpdateCertificateList(cmd.Context(), page, since)
}

func updateActiveKeys(cmd *cobra.Command, env *environment, path string) error {
	var snapshot truststore.ActiveKeyIDsSnapshot

	if err := readJSONFile(path, &snapshot); err != nil {
		return err
	}

	return env.trust.UpdateActiveCertificates(cmd.Context(), snapshot)
}

func updateRules(cmd *cobra.Command, env *environment, path string) error {
	var rules truststore.NationalRuleSet

	if err := readJSONFile(path, &rules); err != nil {
		return err
	}

	// Rules that would not load into the engine are never stored.
	if err := certlogic.New().LoadNationalRules(rules); err != nil {
		return fmt.Errorf("reject national rules: %w", err)
	}

	return env.trust.UpdateNationalRules(cmd.Context(), rules)
}
