// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// readFile decodes a YAML or TOML configuration file into cfg, choosing the
// format by extension. A missing file is skipped.
func (cfg *Config) readFile(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	data, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().
			Str("sys", "config").
			Str("path", configFilePath).
			Msg("No configuration file found, skipping")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	switch strings.ToLower(filepath.Ext(configFilePath)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse TOML from %s: %w", configFilePath, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML from %s: %w", configFilePath, err)
		}
	}

	log.Debug().
		Str("sys", "config").
		Str("path", configFilePath).
		Msg("Successfully loaded configuration")

	return nil
}
