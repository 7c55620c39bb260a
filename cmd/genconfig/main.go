// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes the example configuration files under deploy/ from
// the configuration defaults.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/msglint/audit"
	"codeberg.org/pixivfe/msglint/config"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/.msglint.yaml.example"
	dirPerm        = 0o755
	filePerm       = 0o644

	envFileHeader = `# msglint configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# msglint configuration (via configuration file)
#
# Copy this file to .msglint.yaml and customize the values below.
# A .msglint.toml file with the same keys is also accepted.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
	configFileComment = `## Configuration file, overridden by the -config flag
# MSGLINT_CONFIGFILE=`
)

func main() {
	audit.SetDefaultLogger()

	cfg := &config.Config{}
	cfg.SetDefaults()

	yamlContent, err := renderYAML(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	writeOutput(envOutputFile, renderEnv(cfg))
	writeOutput(yamlOutputFile, yamlContent)
}

func writeOutput(path, content string) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Successfully generated example file")
}

// renderEnv lists every environment variable of cfg, commented out, grouped by
// section.
func renderEnv(cfg *config.Config) string {
	var sb strings.Builder
	sb.WriteString(envFileHeader)
	sb.WriteString(configFileComment + "\n\n")

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	// Iterate over the top-level struct fields.
	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", structField.Name)

		// Iterate over the fields of the nested struct.
		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			field := innerTyp.Field(j)
			value := structValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			envVarName := strings.Split(tag, ",")[0]

			// Slices and empty strings are left without a value to prompt user input.
			switch {
			case value.Kind() == reflect.Slice && value.Len() > 0:
				parts := make([]string, value.Len())
				for k := range value.Len() {
					parts[k] = fmt.Sprint(value.Index(k).Interface())
				}

				fmt.Fprintf(&sb, "# %s=%s\n", envVarName, strings.Join(parts, ","))
			case value.Kind() == reflect.Slice || (value.Kind() == reflect.String && value.Len() == 0):
				fmt.Fprintf(&sb, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&sb, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// renderYAML returns cfg as YAML with every value commented out.
func renderYAML(cfg *config.Config) (string, error) {
	var yamlContent strings.Builder

	if err := yaml.NewEncoder(&yamlContent, yaml.Indent(2)).Encode(cfg); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	// Process the marshaled YAML line-by-line to create a clean template.
	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "settings:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
