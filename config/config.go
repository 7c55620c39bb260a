// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/pixivfe/msglint/extract"
)

// ConfigFileEnv names the environment variable that points at a configuration file.
const ConfigFileEnv = "MSGLINT_CONFIGFILE"

// defaultConfigFiles are looked up in the working directory, in order, when no
// configuration file was named explicitly.
var defaultConfigFiles = []string{".msglint.yaml", ".msglint.yml", ".msglint.toml"}

// Config holds the linter configuration.
type Config struct {
	Build buildInfo `toml:"-" yaml:"-"`

	// Settings is shared by every rule.
	Settings extract.Settings `toml:"settings" yaml:"settings"`

	Report struct {
		Format   string `env:"MSGLINT_REPORT_FORMAT,overwrite"   toml:"format"   validate:"oneof=text json yaml html" yaml:"format"`
		Output   string `env:"MSGLINT_REPORT_OUTPUT,overwrite"   toml:"output"   yaml:"output"`
		Language string `env:"MSGLINT_REPORT_LANGUAGE,overwrite" toml:"language" validate:"bcp47"                    yaml:"language"`
		FullPath bool   `env:"MSGLINT_REPORT_FULL_PATH"          toml:"fullPath" yaml:"fullPath"`
		// Jobs caps the number of packages checked concurrently. Zero means GOMAXPROCS.
		Jobs int `env:"MSGLINT_JOBS,overwrite" toml:"jobs" validate:"gte=0" yaml:"jobs"`
	} `toml:"report" yaml:"report"`

	Log struct {
		Level   string   `env:"MSGLINT_LOG_LEVEL,overwrite"   toml:"logLevel"   validate:"oneof=debug info warn error" yaml:"logLevel"`
		Outputs []string `env:"MSGLINT_LOG_OUTPUTS,overwrite" toml:"logOutputs" yaml:"logOutputs"`
		Format  string   `env:"MSGLINT_LOG_FORMAT,overwrite"  toml:"logFormat"  validate:"oneof=console json"      yaml:"logFormat"`
	} `toml:"log" yaml:"log"`
}

// Load loads the configuration from various sources.
//
// The configuration file is resolved with the following precedence:
//  1. configFilePath, usually the -config flag
//  2. the MSGLINT_CONFIGFILE environment variable
//  3. the first of .msglint.yaml, .msglint.yml and .msglint.toml in the working directory
func (cfg *Config) Load(configFilePath string) error {
	if configFilePath == "" {
		configFilePath = os.Getenv(ConfigFileEnv)
	}

	if configFilePath == "" {
		configFilePath = findConfigFile(".")
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readFile(configFilePath); err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}

	useDotEnv()

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// findConfigFile returns the first default configuration file present in dir,
// or "" if there is none.
func findConfigFile(dir string) string {
	for _, name := range defaultConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
