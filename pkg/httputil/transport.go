package httputil

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// TransportOptions configures the HTTP client used against a repository manager.
type TransportOptions struct {
	// InsecureSkipVerify disables TLS certificate verification for every
	// request. Self-hosted repository managers often run with self-signed
	// certificates; enabling this accepts any certificate, including forged ones.
	InsecureSkipVerify bool

	// Timeout bounds a whole request including reading the body.
	// Zero means no timeout.
	Timeout time.Duration
}

// NewTransport returns an http.Transport derived from the default transport
// with the TLS settings from opts applied.
func NewTransport(opts TransportOptions) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in, see TransportOptions
	}
	return t
}

// NewClient returns an http.Client using [NewTransport] and the configured timeout.
func NewClient(opts TransportOptions) *http.Client {
	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: NewTransport(opts),
	}
}

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s from %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// CheckStatus returns a *StatusError unless code is a 2xx status.
func CheckStatus(url string, code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{URL: url, StatusCode: code}
}
