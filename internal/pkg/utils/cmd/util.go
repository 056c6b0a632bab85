/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

// Package cmd reads command parameters from a cobra flag or, when the flag is not set, an environment variable.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// GetString returns the value of the flag, or of the environment variable if the flag was not set.
// A required value must be present and non-empty.
func GetString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("%s flag not found: %w", flagName, err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	switch {
	case isSet && value == "" && !isOptional:
		return "", fmt.Errorf("%s value is empty", envKey)
	case isSet || isOptional:
		return value, nil
	default:
		return "", fmt.Errorf("neither %s (command line flag) nor %s (environment variable) have been set",
			flagName, envKey)
	}
}

// GetOptionalString returns the flag or environment value, or the flag default when neither is set.
func GetOptionalString(cmd *cobra.Command, flagName, envKey string) string {
	//nolint:errcheck // an optional value never fails
	value, _ := GetString(cmd, flagName, envKey, true)
	if value != "" {
		return value
	}

	def, err := cmd.Flags().GetString(flagName)
	if err != nil {
		return ""
	}

	return def
}

// GetOptionalCSV returns the values of a StringSlice flag, or the comma-separated values of the environment variable.
func GetOptionalCSV(cmd *cobra.Command, flagName, envKey string) []string {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringSlice(flagName)
		if err == nil {
			return value
		}
	}

	value := os.Getenv(envKey)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// GetOptionalBool returns the value of a Bool flag, or the parsed environment variable. Unset means false.
func GetOptionalBool(cmd *cobra.Command, flagName, envKey string) (bool, error) {
	if cmd.Flags().Changed(flagName) {
		return cmd.Flags().GetBool(flagName)
	}

	value, isSet := os.LookupEnv(envKey)
	if !isSet || value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s [%s]: %w", envKey, value, err)
	}

	return b, nil
}

// GetDuration parses a Go duration from the flag or environment variable, falling back to defaultValue.
func GetDuration(cmd *cobra.Command, flagName, envKey string, defaultValue time.Duration) (time.Duration, error) {
	value, err := GetString(cmd, flagName, envKey, true)
	if err != nil {
		return 0, err
	}

	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s] for %s: %w", value, flagName, err)
	}

	return d, nil
}
