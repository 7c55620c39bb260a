// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Settings.IgnoreTag = false
	cfg.Settings.AdditionalFunctionNames = nil
	cfg.Settings.AdditionalComponentNames = nil
	cfg.Settings.ExcludeMessageDeclCalls = false

	cfg.Report.Format = "text"
	cfg.Report.Output = ""
	cfg.Report.Language = "en"
	cfg.Report.FullPath = false
	cfg.Report.Jobs = 0

	cfg.Log.Level = "warn"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
