// Package config holds the settings of a sync run.
//
// Settings come from environment variables and are read exactly once, at
// startup, into a [Config] value that is passed down explicitly. Nothing below
// the CLI layer looks at the environment.
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"os"
	"strings"
	"time"

	"github.com/matzehuels/pkgsync/pkg/errors"
	"github.com/matzehuels/pkgsync/pkg/manifest"
)

// Environment variable names.
const (
	EnvURL        = "NEXUS_URL"
	EnvRepository = "NEXUS_REPO"
	EnvOutputFile = "JSON_FILE_NAME"
	EnvTimeout    = "NEXUS_TIMEOUT"
	EnvFormat     = "PKGSYNC_FORMAT"
)

// DefaultOutputFile is written when JSON_FILE_NAME is unset.
const DefaultOutputFile = "general_packages.json"

// Config is the immutable configuration of one sync run.
type Config struct {
	// URL is the repository manager base URL, used verbatim.
	URL string
	// Repository is the name of the source repository to list.
	Repository string
	// OutputFile is the manifest path, relative to the working directory
	// unless absolute.
	OutputFile string
	// Format selects the manifest encoding.
	Format manifest.Format
	// Timeout bounds each page request. Zero means no timeout.
	Timeout time.Duration
}

// LookupFunc resolves an environment variable. [os.LookupEnv] satisfies it.
type LookupFunc func(key string) (string, bool)

// FromEnv reads the configuration from the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load builds a Config from lookup, applying defaults for optional values.
// It fails only when a value is present but unparsable; missing required
// values are reported by [Config.Validate].
func Load(lookup LookupFunc) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := Config{
		URL:        get(EnvURL),
		Repository: get(EnvRepository),
		OutputFile: DefaultOutputFile,
		Format:     manifest.FormatJSON,
	}
	if v, ok := lookup(EnvOutputFile); ok {
		cfg.OutputFile = v
	}
	if v := strings.TrimSpace(get(EnvFormat)); v != "" {
		cfg.Format = manifest.Format(strings.ToLower(v))
	}
	if v := strings.TrimSpace(get(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s must be a duration like 30s", EnvTimeout)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Validate reports the first missing or malformed setting.
// It runs before any request is built so that a missing NEXUS_URL surfaces as
// a configuration error instead of a malformed request URL.
func (c Config) Validate() error {
	if err := errors.ValidateURL(EnvURL, c.URL); err != nil {
		return err
	}
	if err := errors.ValidateRepositoryName(EnvRepository, c.Repository); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(EnvOutputFile, c.OutputFile); err != nil {
		return err
	}
	if !c.Format.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown manifest format %q (want one of %s)",
			c.Format, strings.Join(manifest.FormatNames(), ", "))
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be negative", EnvTimeout)
	}
	return nil
}
