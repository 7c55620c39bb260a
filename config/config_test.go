// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

/*
Load reads the process environment and the working directory, so these tests
change both and cannot run in parallel.
*/

// isolate moves the test into an empty working directory with no config file
// named through the environment.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigFileEnv, "")

	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg := &Config{}
	require.NoError(t, cfg.Load(""))

	assert.False(t, cfg.Settings.IgnoreTag)
	assert.Empty(t, cfg.Settings.AdditionalFunctionNames)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "en", cfg.Report.Language)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, language.English, cfg.LanguageTag())
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		// explicit passes the file path to Load instead of relying on lookup.
		explicit bool
	}{
		{
			name: "YAML by lookup",
			file: ".msglint.yaml",
			content: `settings:
  ignoreTag: true
  additionalFunctionNames: [T, Translate]
  additionalComponentNames: [Trans]
  excludeMessageDeclCalls: true
report:
  format: json
`,
		},
		{
			name: "YML fallback",
			file: ".msglint.yml",
			content: `settings:
  ignoreTag: true
  additionalFunctionNames: [T, Translate]
  additionalComponentNames: [Trans]
  excludeMessageDeclCalls: true
report:
  format: json
`,
		},
		{
			name: "TOML by lookup",
			file: ".msglint.toml",
			content: `[settings]
ignoreTag = true
additionalFunctionNames = ["T", "Translate"]
additionalComponentNames = ["Trans"]
excludeMessageDeclCalls = true

[report]
format = "json"
`,
		},
		{
			name:     "explicit path",
			file:     "custom.yaml",
			explicit: true,
			content: `settings:
  ignoreTag: true
  additionalFunctionNames: [T, Translate]
  additionalComponentNames: [Trans]
  excludeMessageDeclCalls: true
report:
  format: json
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeFile(t, filepath.Join(dir, tt.file), tt.content)

			path := ""
			if tt.explicit {
				path = filepath.Join(dir, tt.file)
			}

			cfg := &Config{}
			require.NoError(t, cfg.Load(path))

			assert.True(t, cfg.Settings.IgnoreTag)
			assert.Equal(t, []string{"T", "Translate"}, cfg.Settings.AdditionalFunctionNames)
			assert.Equal(t, []string{"Trans"}, cfg.Settings.AdditionalComponentNames)
			assert.True(t, cfg.Settings.ExcludeMessageDeclCalls)
			assert.Equal(t, "json", cfg.Report.Format)
		})
	}
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "elsewhere.toml")
	writeFile(t, path, "[report]\nformat = \"yaml\"\n")
	t.Setenv(ConfigFileEnv, path)

	cfg := &Config{}
	require.NoError(t, cfg.Load(""))
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{}
	require.NoError(t, cfg.Load(filepath.Join(dir, "missing.yaml")))
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".msglint.toml"), "[settings\n")

	cfg := &Config{}
	require.Error(t, cfg.Load(""))
}

func TestLoadEnvironment(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".msglint.yaml"), `settings:
  ignoreTag: true
  additionalFunctionNames: [FromFile]
  additionalComponentNames: [Trans]
report:
  format: json
`)

	t.Setenv("MSGLINT_ADDITIONAL_FUNCTION_NAMES", "T, Translate,,")
	t.Setenv("MSGLINT_REPORT_FORMAT", "html")
	t.Setenv("MSGLINT_IGNORE_TAG", "false")
	t.Setenv("MSGLINT_EXCLUDE_MESSAGE_DECL_CALLS", "true")
	t.Setenv("MSGLINT_JOBS", "4")

	cfg := &Config{}
	require.NoError(t, cfg.Load(""))

	// Variables win over the file, including a false boolean and a name list.
	assert.Equal(t, "html", cfg.Report.Format)
	assert.Equal(t, 4, cfg.Report.Jobs)
	assert.False(t, cfg.Settings.IgnoreTag)
	assert.True(t, cfg.Settings.ExcludeMessageDeclCalls)
	assert.Equal(t, []string{"T", "Translate"}, cfg.Settings.AdditionalFunctionNames)
	// Fields without a variable keep the file's value.
	assert.Equal(t, []string{"Trans"}, cfg.Settings.AdditionalComponentNames)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)

	const key = "MSGLINT_REPORT_LANGUAGE"

	t.Cleanup(func() { os.Unsetenv(key) })
	writeFile(t, filepath.Join(dir, ".env"), key+"=fr-CA\n")

	cfg := &Config{}
	require.NoError(t, cfg.Load(""))

	assert.Equal(t, "fr-CA", cfg.Report.Language)
	assert.Equal(t, language.MustParse("fr-CA"), cfg.LanguageTag())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown report format", env: map[string]string{"MSGLINT_REPORT_FORMAT": "xml"}},
		{name: "function name is not an identifier", env: map[string]string{"MSGLINT_ADDITIONAL_FUNCTION_NAMES": "intl.T"}},
		{name: "component name is not an identifier", env: map[string]string{"MSGLINT_ADDITIONAL_COMPONENT_NAMES": "1Trans"}},
		{name: "bad language", env: map[string]string{"MSGLINT_REPORT_LANGUAGE": "not a language"}},
		{name: "bad log level", env: map[string]string{"MSGLINT_LOG_LEVEL": "trace"}},
		{name: "negative jobs", env: map[string]string{"MSGLINT_JOBS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := &Config{}
			err := cfg.Load("")
			require.ErrorIs(t, err, errInvalidConfig)
		})
	}
}

func TestReadEnv(t *testing.T) {
	type nested struct {
		Count int `env:"MSGLINT_TEST_COUNT"`
	}

	type spec struct {
		Name   string   `env:"MSGLINT_TEST_NAME,overwrite"`
		Flags  []string `env:"MSGLINT_TEST_FLAGS"`
		Nested nested
		hidden nested
	}

	t.Setenv("MSGLINT_TEST_NAME", "from-env")
	t.Setenv("MSGLINT_TEST_FLAGS", "a,b")
	t.Setenv("MSGLINT_TEST_COUNT", "7")

	s := spec{Name: "preset"}
	require.NoError(t, readEnv(&s))

	assert.Equal(t, "from-env", s.Name)
	assert.Equal(t, []string{"a", "b"}, s.Flags)
	assert.Equal(t, 7, s.Nested.Count)
	assert.Zero(t, s.hidden.Count)

	require.ErrorIs(t, readEnv(s), errExpectedPointerToStruct)

	t.Setenv("MSGLINT_TEST_COUNT", "seven")

	var bad spec
	require.Error(t, readEnv(&bad))
}

func TestRevision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info buildInfo
		want string
	}{
		{name: "unknown", info: buildInfo{}, want: "unknown"},
		{
			name: "clean",
			info: buildInfo{VcsRevision: "0123456789abcdef", VcsTime: "2025-01-02T03:04:05Z"},
			want: "2025-01-02-01234567",
		},
		{
			name: "dirty short revision",
			info: buildInfo{VcsRevision: "abc", VcsTime: "2025-01-02T03:04:05Z", VcsModified: true},
			want: "2025-01-02-abc+dirty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.info.Revision(); got != tt.want {
				t.Errorf("Revision() got %v want %v", got, tt.want)
			}
		})
	}
}
