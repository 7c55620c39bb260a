// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"codeberg.org/pixivfe/msglint/audit"
	"codeberg.org/pixivfe/msglint/config"
	"codeberg.org/pixivfe/msglint/extract"
	"codeberg.org/pixivfe/msglint/report"
	"codeberg.org/pixivfe/msglint/rules"
)

var (
	// errFindings makes the process exit with status 1 after a report was written.
	errFindings    = errors.New("problems found")
	errPackageLoad = errors.New("failed to load packages due to errors")
	errInvalidFlag = errors.New("invalid flag")
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check the messages of Go packages (default ./...)",
		RunE:  runCheck,
	}

	flags := cmd.Flags()
	flags.String("format", "", "report format: text, json, yaml or html")
	flags.StringP("output", "o", "", "write the report to a file instead of stdout")
	flags.String("lang", "", "language of the report summary (BCP 47)")
	flags.Bool("full-path", false, "report absolute file paths")
	flags.IntP("jobs", "j", 0, "packages checked in parallel (0 means GOMAXPROCS)")
	flags.Bool("tests", false, "also check test files")
	flags.Bool("ignore-tag", false, "treat <tag> syntax in messages as literal text")
	flags.StringSlice("function-names", nil, "additional message function names")
	flags.StringSlice("component-names", nil, "additional message component type names")
	flags.Bool("exclude-message-decl-calls", false, "skip DefineMessage and DefineMessages calls")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := &config.Config{}
	if err := cfg.Load(configPath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	tests, _ := cmd.Flags().GetBool("tests")

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pkgs, err := packages.Load(&packages.Config{Context: ctx, Mode: loadMode, Tests: tests}, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		return errPackageLoad
	}

	findings, err := checkPackages(ctx, pkgs, cfg.Settings, registeredRules, cfg.Report.Jobs)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	root := report.FindProjectRoot(wd)
	rep := report.New(config.BuildVersion, report.DetectVersion(root), findings, root, cfg.Report.FullPath)

	if err := writeReport(ctx, cmd.OutOrStdout(), rep, cfg); err != nil {
		return err
	}

	if len(rep.Findings) > 0 {
		return errFindings
	}

	return nil
}

// applyFlags overrides the configuration with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error

	if flags.Changed("format") {
		cfg.Report.Format, err = flags.GetString("format")
	}

	if err == nil && flags.Changed("output") {
		cfg.Report.Output, err = flags.GetString("output")
	}

	if err == nil && flags.Changed("lang") {
		cfg.Report.Language, err = flags.GetString("lang")
	}

	if err == nil && flags.Changed("full-path") {
		cfg.Report.FullPath, err = flags.GetBool("full-path")
	}

	if err == nil && flags.Changed("jobs") {
		cfg.Report.Jobs, err = flags.GetInt("jobs")
	}

	if err == nil && flags.Changed("ignore-tag") {
		cfg.Settings.IgnoreTag, err = flags.GetBool("ignore-tag")
	}

	if err == nil && flags.Changed("exclude-message-decl-calls") {
		cfg.Settings.ExcludeMessageDeclCalls, err = flags.GetBool("exclude-message-decl-calls")
	}

	if err == nil && flags.Changed("function-names") {
		var names []string

		names, err = flags.GetStringSlice("function-names")
		cfg.Settings.AdditionalFunctionNames = append(cfg.Settings.AdditionalFunctionNames, names...)
	}

	if err == nil && flags.Changed("component-names") {
		var names []string

		names, err = flags.GetStringSlice("component-names")
		cfg.Settings.AdditionalComponentNames = append(cfg.Settings.AdditionalComponentNames, names...)
	}

	if err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}

	if cfg.Report.Jobs < 0 {
		return fmt.Errorf("%w: --jobs must not be negative", errInvalidFlag)
	}

	return nil
}

// checkPackages runs every rule over pkgs, at most jobs packages at a time.
// Each package collects its own findings; the results are concatenated in
// package order.
func checkPackages(
	ctx context.Context,
	pkgs []*packages.Package,
	settings extract.Settings,
	ruleSet []*rules.Rule,
	jobs int,
) ([]report.Finding, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]report.Finding, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			span := &audit.Span{Package: pkg.PkgPath, Files: len(pkg.Syntax)}
			span.Begin(ctx)

			results[i] = checkPackage(pkg, settings, ruleSet)

			span.End()
			span.Findings = len(results[i])
			span.Log()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check interrupted: %w", err)
	}

	return slices.Concat(results...), nil
}

func checkPackage(pkg *packages.Package, settings extract.Settings, ruleSet []*rules.Rule) []report.Finding {
	if pkg.TypesInfo == nil {
		log.Debug().
			Str("sys", "msglint").
			Str("package", pkg.PkgPath).
			Msg("Skipping package without type information")

		return nil
	}

	var findings []report.Finding

	for _, rule := range ruleSet {
		checker := &rules.Checker{
			Rule:     rule,
			Settings: settings,
			Info:     pkg.TypesInfo,
			Report: func(node ast.Node, message string) {
				pos := pkg.Fset.Position(node.Pos())
				findings = append(findings, report.Finding{
					Rule:    rule.Name,
					File:    pos.Filename,
					Line:    pos.Line,
					Column:  pos.Column,
					Message: message,
					URL:     rule.URL,
				})
			},
		}

		checker.Walk(pkg.Syntax)
	}

	return findings
}

// writeReport writes rep to the configured output file, or to stdout.
func writeReport(ctx context.Context, stdout io.Writer, rep *report.Report, cfg *config.Config) (err error) {
	w := stdout

	if cfg.Report.Output != "" {
		f, createErr := os.Create(cfg.Report.Output)
		if createErr != nil {
			return fmt.Errorf("failed to create report file: %w", createErr)
		}

		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close report file: %w", cerr)
			}
		}()

		w = f
	}

	opts := report.Options{
		Format:   report.Format(cfg.Report.Format),
		Language: cfg.LanguageTag(),
	}

	if writeErr := report.Write(ctx, w, rep, opts); writeErr != nil {
		return fmt.Errorf("failed to write report: %w", writeErr)
	}

	return nil
}
