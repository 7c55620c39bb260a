// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := color.New(color.Bold)

			for _, rule := range registeredRules {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n\t%s\n",
					name.Sprint(rule.Name), rule.Doc, rule.URL); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
