// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package rules

import (
	"flag"
	"fmt"
	"go/ast"
	"strings"
	"sync"

	"golang.org/x/tools/go/analysis"

	"codeberg.org/pixivfe/msglint/config"
	"codeberg.org/pixivfe/msglint/extract"
)

// NewAnalyzer returns an analysis.Analyzer running rule over every file of a
// package.
//
// Settings come from the configuration file and environment, overridden by the
// analyzer's own flags. They are resolved once, on the first package.
func NewAnalyzer(rule *Rule) *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name: rule.analyzerName(),
		Doc:  rule.Doc,
		URL:  rule.URL,
	}

	r := newSettingsResolver(&a.Flags)

	a.Run = func(pass *analysis.Pass) (any, error) {
		settings, err := r.resolve()
		if err != nil {
			return nil, err
		}

		checker := &Checker{
			Rule:     rule,
			Settings: settings,
			Info:     pass.TypesInfo,
			Report: func(node ast.Node, message string) {
				pass.Report(analysis.Diagnostic{
					Pos:      node.Pos(),
					End:      node.End(),
					Category: rule.Name,
					Message:  message,
					URL:      rule.URL,
				})
			},
		}

		checker.Walk(pass.Files)

		return nil, nil //nolint:nilnil // the analyzer has no result
	}

	return a
}

// settingsResolver binds an analyzer's flags and turns them, together with the
// configuration, into Settings.
type settingsResolver struct {
	flags *flag.FlagSet

	configPath              string
	ignoreTag               bool
	functionNames           nameList
	componentNames          nameList
	excludeMessageDeclCalls bool

	once     sync.Once
	settings extract.Settings
	err      error
}

// newSettingsResolver registers the settings flags on flags.
func newSettingsResolver(flags *flag.FlagSet) *settingsResolver {
	r := &settingsResolver{flags: flags}
	r.flags.StringVar(&r.configPath, "config", "",
		"path to a msglint configuration file (YAML or TOML)")
	r.flags.BoolVar(&r.ignoreTag, "ignore-tag", false,
		"treat <tag> syntax in messages as literal text")
	r.flags.Var(&r.functionNames, "function-names",
		"comma-separated list of additional message function names")
	r.flags.Var(&r.componentNames, "component-names",
		"comma-separated list of additional message component type names")
	r.flags.BoolVar(&r.excludeMessageDeclCalls, "exclude-message-decl-calls", false,
		"skip DefineMessage and DefineMessages calls")

	return r
}

// resolve loads the settings on first use. Flags set on the command line take
// precedence over the configuration.
func (r *settingsResolver) resolve() (extract.Settings, error) {
	r.once.Do(func() {
		cfg := &config.Config{}
		if err := cfg.Load(r.configPath); err != nil {
			r.err = fmt.Errorf("failed to load configuration: %w", err)

			return
		}

		settings := cfg.Settings

		r.flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "ignore-tag":
				settings.IgnoreTag = r.ignoreTag
			case "function-names":
				settings.AdditionalFunctionNames = append(settings.AdditionalFunctionNames, r.functionNames...)
			case "component-names":
				settings.AdditionalComponentNames = append(settings.AdditionalComponentNames, r.componentNames...)
			case "exclude-message-decl-calls":
				settings.ExcludeMessageDeclCalls = r.excludeMessageDeclCalls
			}
		})

		r.settings = settings
	})

	return r.settings, r.err
}

// nameList is a flag.Value collecting comma-separated names.
type nameList []string

func (l *nameList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

func (l *nameList) Set(value string) error {
	for name := range strings.SplitSeq(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*l = append(*l, name)
		}
	}

	return nil
}
