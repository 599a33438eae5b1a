package errors

import (
	"strings"
	"unicode"
)

// ValidateURL validates the repository manager base URL.
// It requires a non-empty value with an http or https scheme. The value is
// otherwise used verbatim; a trailing slash is not stripped.
func ValidateURL(name, rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "%s is not set", name)
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "%s must use http or https scheme: %q", name, rawURL)
	}

	return nil
}

// ValidateRepositoryName validates the name of the source repository.
//
// Nexus repository names are plain identifiers; this only rejects values
// that cannot be sent in a query string at all:
//   - empty names
//   - control characters, including null bytes
func ValidateRepositoryName(name, repo string) error {
	if repo == "" {
		return New(ErrCodeInvalidConfig, "%s is not set", name)
	}

	for _, r := range repo {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s contains invalid control characters", name)
		}
	}

	return nil
}

// ValidateOutputPath validates the manifest output path.
// Relative paths resolve against the working directory.
func ValidateOutputPath(name, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", name)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidConfig, "%s contains a null byte", name)
	}

	return nil
}
