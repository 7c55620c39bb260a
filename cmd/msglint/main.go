// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command msglint checks the ICU messages defined in Go packages.
//
// Usage:
//
//	msglint check [flags] [packages]
//	msglint rules
//	msglint version
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codeberg.org/pixivfe/msglint/audit"
	"codeberg.org/pixivfe/msglint/rules"
	"codeberg.org/pixivfe/msglint/rules/nooffset"
)

// registeredRules are run by the check command, in order.
var registeredRules = []*rules.Rule{
	nooffset.Rule,
}

func main() {
	audit.SetDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		if !errors.Is(err, errFindings) {
			log.Error().Str("sys", "msglint").Err(err).Msg("msglint failed")
		}

		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "msglint",
		Short:         "Lint ICU MessageFormat messages in Go source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to a configuration file (YAML or TOML)")

	root.AddCommand(newCheckCmd(), newRulesCmd(), newVersionCmd())

	return root
}
