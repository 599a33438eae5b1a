package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pkgsync/pkg/errors"
	"github.com/matzehuels/pkgsync/pkg/manifest"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		EnvURL:        "https://nexus.example.com",
		EnvRepository: "npm-hosted",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://nexus.example.com", cfg.URL)
	assert.Equal(t, "npm-hosted", cfg.Repository)
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, manifest.FormatJSON, cfg.Format)
	assert.Zero(t, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		EnvURL:        "https://nexus.example.com/",
		EnvRepository: "npm-hosted",
		EnvOutputFile: "out/packages.json",
		EnvTimeout:    "45s",
		EnvFormat:     " TOML ",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://nexus.example.com/", cfg.URL, "URL must be used verbatim")
	assert.Equal(t, "out/packages.json", cfg.OutputFile)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, manifest.FormatTOML, cfg.Format)
}

func TestLoadBadTimeout(t *testing.T) {
	_, err := Load(mapLookup(map[string]string{EnvTimeout: "soon"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestValidate(t *testing.T) {
	valid := Config{
		URL:        "https://nexus.example.com",
		Repository: "npm-hosted",
		OutputFile: DefaultOutputFile,
		Format:     manifest.FormatJSON,
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode errors.Code
	}{
		{"valid", func(*Config) {}, ""},
		{"missing url", func(c *Config) { c.URL = "" }, errors.ErrCodeInvalidConfig},
		{"url without scheme", func(c *Config) { c.URL = "nexus.example.com" }, errors.ErrCodeInvalidConfig},
		{"missing repository", func(c *Config) { c.Repository = "" }, errors.ErrCodeInvalidConfig},
		{"empty output", func(c *Config) { c.OutputFile = "" }, errors.ErrCodeInvalidConfig},
		{"unknown format", func(c *Config) { c.Format = "yaml" }, errors.ErrCodeInvalidFormat},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "http://localhost:8081")
	t.Setenv(EnvRepository, "npm-group")
	t.Setenv(EnvOutputFile, "manifest.json")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", cfg.URL)
	assert.Equal(t, "npm-group", cfg.Repository)
	assert.Equal(t, "manifest.json", cfg.OutputFile)
}
