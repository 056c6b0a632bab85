/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"errors"

	"github.com/spf13/cobra"

	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
)

type bootstrapResult struct {
	Bootstrapped bool   `json:"bootstrapped"`
	Revoked      int    `json:"revoked"`
	Since        string `json:"since,omitempty"`
}

func newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed an empty trust store from a signed archive",
		Long: "Seed the revocation list of an empty trust store from the archive given by --" +
			bootstrapArchiveFlagName + ". A store that already holds a revocation list is left untouched.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmdutils.GetOptionalString(cmd, bootstrapArchiveFlagName, bootstrapArchiveEnvKey) == "" {
				return errors.New("bootstrap requires --" + bootstrapArchiveFlagName)
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer closeEnvironment(env)

			return writeJSON(cmd, &bootstrapResult{
				Bootstrapped: env.trust.Bootstrapped(),
				Revoked:      len(env.trust.RevokedCertificates()),
				Since:        env.trust.RevocationListSince(),
			})
		},
	}
}
