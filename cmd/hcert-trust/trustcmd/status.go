/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package trustcmd

import (
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/hcert/pkg/truststore"
)

type resourceStatus struct {
	Valid bool   `json:"valid"`
	Count int    `json:"count"`
	Since string `json:"since,omitempty"`
}

type status struct {
	Certificates resourceStatus `json:"certificates"`
	Revocations  resourceStatus `json:"revocations"`
	Rules        resourceStatus `json:"rules"`
}

func newStatus(trust *truststore.Store) *status {
	return &status{
		Certificates: resourceStatus{
			Valid: trust.CertificateListIsValid(),
			Count: len(trust.ActiveCertificatePublicKeys(allUsages...)),
			Since: trust.CertificateSince(),
		},
		Revocations: resourceStatus{
			Valid: trust.RevocationListIsValid(),
			Count: len(trust.RevokedCertificates()),
			Since: trust.RevocationListSince(),
		},
		Rules: resourceStatus{
			Valid: trust.NationalRulesListIsValid(),
			Count: countRules(trust.NationalRules()),
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the freshness of every trust resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer closeEnvironment(env)

			return writeJSON(cmd, newStatus(env.trust))
		},
	}
}

func closeEnvironment(env *environment) {
	if err := env.Close(); err != nil {
		logger.Warn("Failed to close trust store", log.WithError(err))
	}
}

func countRules(rules truststore.NationalRuleSet) int {
	return int(gjson.GetBytes(rules.Rules, "#").Int())
}
