// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import "slices"

// Default call and component names recognised as message sites.
var (
	DefaultFunctionNames  = []string{"FormatMessage", "DefineMessage", "DefineMessages"}
	DefaultComponentNames = []string{"FormattedMessage"}

	// declFunctionNames are the message declaration calls dropped by
	// Settings.ExcludeMessageDeclCalls.
	declFunctionNames = []string{"DefineMessage", "DefineMessages"}
)

// Settings controls where messages are looked for and how they are parsed.
// A Settings value is resolved once per run and must not be mutated afterwards.
type Settings struct {
	// IgnoreTag makes the message parser treat <tag> syntax as literal text.
	IgnoreTag bool `env:"MSGLINT_IGNORE_TAG,overwrite" toml:"ignoreTag" yaml:"ignoreTag"`
	// AdditionalFunctionNames extends DefaultFunctionNames.
	AdditionalFunctionNames []string `env:"MSGLINT_ADDITIONAL_FUNCTION_NAMES,overwrite" toml:"additionalFunctionNames" validate:"dive,goident" yaml:"additionalFunctionNames"`
	// AdditionalComponentNames extends DefaultComponentNames.
	AdditionalComponentNames []string `env:"MSGLINT_ADDITIONAL_COMPONENT_NAMES,overwrite" toml:"additionalComponentNames" validate:"dive,goident" yaml:"additionalComponentNames"`
	// ExcludeMessageDeclCalls skips DefineMessage and DefineMessages calls.
	ExcludeMessageDeclCalls bool `env:"MSGLINT_EXCLUDE_MESSAGE_DECL_CALLS,overwrite" toml:"excludeMessageDeclCalls" yaml:"excludeMessageDeclCalls"`
}

// isFunctionName reports whether name is a call that carries message descriptors.
func (s Settings) isFunctionName(name string) bool {
	if s.ExcludeMessageDeclCalls && slices.Contains(declFunctionNames, name) {
		return false
	}

	return slices.Contains(DefaultFunctionNames, name) || slices.Contains(s.AdditionalFunctionNames, name)
}

// isComponentName reports whether name is a declarative message type.
func (s Settings) isComponentName(name string) bool {
	return slices.Contains(DefaultComponentNames, name) || slices.Contains(s.AdditionalComponentNames, name)
}
