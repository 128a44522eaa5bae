package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json",
		`{"cv": "cv.json", "industry": "finance", "max_matches": 10, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cv.json", cfg.CV)
	assert.Equal(t, "finance", cfg.Industry)
	assert.Equal(t, 10, cfg.MaxMatches)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", "{not json")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cvPath := writeFile(t, dir, "cv.json", "{}")

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"existing cv file", Config{CV: cvPath}, false},
		{"missing cv file", Config{CV: filepath.Join(dir, "missing.json")}, true},
		{"negative max matches", Config{MaxMatches: -1}, true},
		{"excessive max matches", Config{MaxMatches: 500}, true},
		{"valid max matches", Config{MaxMatches: 25}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CV: "mine.json"}
	defaults := Config{CV: "default.json", Output: "out.json", MaxMatches: 20, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "mine.json", merged.CV)
	assert.Equal(t, "out.json", merged.Output)
	assert.Equal(t, 20, merged.MaxMatches)
	assert.True(t, merged.Verbose)
}
