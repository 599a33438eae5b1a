package integrations

import (
	"errors"

	"github.com/matzehuels/pkgsync/pkg/buildinfo"
	"github.com/matzehuels/pkgsync/pkg/httputil"
)

// DefaultHeaders returns the headers sent with every API request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": buildinfo.UserAgent(),
	}
}

// StatusCode returns the HTTP status code carried by err, or 0 when err did
// not come from a non-2xx response.
func StatusCode(err error) int {
	var se *httputil.StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
