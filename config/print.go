// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (cfg *Config) print() {
	log.Debug().
		Str("sys", "config").
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Msg("Starting msglint")

	configYAML, err := yaml.MarshalWithOptions(cfg, yaml.Indent(2))
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().
		Str("sys", "config").
		Msg("Effective configuration:\n" + string(configYAML))
}
