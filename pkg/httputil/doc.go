// Package httputil provides HTTP plumbing for repository manager clients.
//
// # Overview
//
//   - [TransportOptions]: TLS verification and timeout settings
//   - [NewClient]: an http.Client built from those options
//   - [StatusError] and [CheckStatus]: non-2xx responses as errors
//
// # TLS
//
// Certificate verification is only disabled when a caller sets
// [TransportOptions.InsecureSkipVerify]. The option is spelled out at the
// construction site so the trust decision is visible in code review:
//
//	client := httputil.NewClient(httputil.TransportOptions{
//	    InsecureSkipVerify: true,
//	})
//
// # Timeouts
//
// The zero value of [TransportOptions.Timeout] means no timeout: a request
// waits for the server as long as its context allows.
package httputil
