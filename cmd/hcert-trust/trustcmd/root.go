/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/cmd/common"
	cmdutils "github.com/trustbloc/hcert/internal/pkg/utils/cmd"
)

var logger = log.New("trustcmd")

// GetRootCmd returns the hcert-trust command tree.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hcert-trust",
		Short:         "Maintain an offline health-credential trust store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			common.SetDefaultLogLevel(logger, cmdutils.GetOptionalString(cmd, common.LogLevelFlagName,
				common.LogLevelEnvKey))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelFlagUsage)
	flags.String(metricsTextfileFlagName, "", metricsTextfileFlagUsage)
	flags.String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	flags.String(bootstrapArchiveFlagName, "", bootstrapArchiveFlagUsage)
	flags.String(bootstrapJWKSFlagName, "", bootstrapJWKSFlagUsage)
	common.StoreFlags(rootCmd)

	rootCmd.AddCommand(
		newBootstrapCmd(),
		newUpdateCmd(),
		newStatusCmd(),
		newKeysCmd(),
		newVerifyCmd(),
		newHealthCmd(),
	)

	return rootCmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func readJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
