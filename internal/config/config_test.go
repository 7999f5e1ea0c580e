package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"resume": "resume.txt",
		"role": "data scientist",
		"year": 2024,
		"format": "json",
		"skip_validation": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "data scientist", cfg.Role)
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.SkipValidation)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "role: devops engineer\nsuggestions: 3\njson_logs: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "devops engineer", cfg.Role)
	assert.Equal(t, 3, cfg.Suggestions)
	assert.True(t, cfg.JSONLogs)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"role": "data scientist", "year": 2020}`)
	t.Setenv("RESUME_ATS_ROLE", "ai engineer")
	t.Setenv("RESUME_ATS_YEAR", "2025")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ai engineer", cfg.Role)
	assert.Equal(t, 2025, cfg.Year)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RESUME_ATS_FORMAT", "json")
	t.Setenv("RESUME_ATS_DEBUG", "true")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Debug)
	assert.Empty(t, cfg.Role)
}

func TestValidate(t *testing.T) {
	resume := writeConfig(t, "resume.txt", "text")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "valid", cfg: Config{Resume: resume, Format: FormatText, Year: 2024, Suggestions: 6}},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: "'Format' failed the 'oneof' check"},
		{name: "year too early", cfg: Config{Year: 1999}, wantErr: "'Year' failed the 'min' check"},
		{name: "too many suggestions", cfg: Config{Suggestions: 50}, wantErr: "'Suggestions' failed the 'max' check"},
		{name: "missing resume", cfg: Config{Resume: "/nonexistent/resume.txt"}, wantErr: "resume file not found"},
		{name: "missing catalog", cfg: Config{Catalog: "/nonexistent/catalog.yaml"}, wantErr: "catalog file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Role:    "software developer",
		Catalog: "catalog.yaml",
		Format:  FormatText,
		Year:    2024,
		Debug:   true,
	}

	partial := Config{
		Role:   "data scientist",
		Format: FormatJSON,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "data scientist", merged.Role)
	assert.Equal(t, FormatJSON, merged.Format)

	// Default values should fill in empty fields
	assert.Equal(t, "catalog.yaml", merged.Catalog)
	assert.Equal(t, 2024, merged.Year)
	assert.True(t, merged.Debug)
	assert.False(t, merged.SkipValidation)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Role: "ai engineer", Suggestions: 4}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "ai engineer", merged.Role)
	assert.Equal(t, 4, merged.Suggestions)
	assert.Empty(t, merged.Format)
	assert.Equal(t, FormatText, cfg.MergeWithDefaults(Defaults()).Format)
}

func TestApplyFlags(t *testing.T) {
	fromFile := Config{
		Role:           "data scientist",
		Year:           2022,
		Format:         FormatJSON,
		SkipValidation: true,
		Debug:          true,
	}
	flags := Config{Role: "ai engineer", Year: 0, Format: FormatText}
	set := map[string]bool{"skip_validation": true, "debug": true, "year": true}

	got := fromFile.ApplyFlags(flags, func(key string) bool { return set[key] })

	// explicitly set false and zero values win
	assert.False(t, got.SkipValidation)
	assert.False(t, got.Debug)
	assert.Zero(t, got.Year)

	// unchanged flags leave the file values alone
	assert.Equal(t, "data scientist", got.Role)
	assert.Equal(t, FormatJSON, got.Format)
	assert.True(t, fromFile.SkipValidation)
}

func TestApplyFlags_NothingChanged(t *testing.T) {
	fromFile := Config{Resume: "resume.txt", JSONLogs: true}

	got := fromFile.ApplyFlags(Config{Format: FormatText}, func(string) bool { return false })
	assert.Equal(t, fromFile, got)
}
