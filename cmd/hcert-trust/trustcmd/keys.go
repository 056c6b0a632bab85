/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/trustbloc/hcert/internal/logfields"
	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
	"github.com/trustbloc/hcert/pkg/truststore"
)

var allUsages = []string{"t", "v", "r"} //nolint:gochecknoglobals

type keyInfo struct {
	KeyID     string `json:"kid"`
	Algorithm string `json:"alg"`
	KeyType   string `json:"kty"`
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the public keys usable to verify credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage := cmdutils.GetOptionalCSV(cmd, useFlagName, useEnvKey)
			if len(usage) == 0 {
				usage = allUsages
			}

			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer closeEnvironment(env)

			descriptors := env.trust.ActiveCertificatePublicKeys(usage...)

			logger.Debug("Selected public keys", logfields.WithUsage(usage), logfields.WithCount(len(descriptors)))

			return writeJSON(cmd, lo.Map(descriptors, func(d truststore.PublicKeyDescriptor, _ int) keyInfo {
				kty := "EC"
				if d.RSA != nil {
					kty = "RSA"
				}

				return keyInfo{KeyID: d.KeyID, Algorithm: d.Algorithm, KeyType: kty}
			}))
		},
	}

	cmd.Flags().StringSlice(useFlagName, nil, useFlagUsage)

	return cmd
}
