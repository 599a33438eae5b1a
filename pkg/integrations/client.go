package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/matzehuels/pkgsync/pkg/errors"
	"github.com/matzehuels/pkgsync/pkg/httputil"
	"github.com/matzehuels/pkgsync/pkg/observability"
)

// Client provides shared HTTP functionality for repository manager API clients.
// It applies default headers, classifies failures, and reports requests to
// the registered [observability.HTTPHooks]. It never retries.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given transport options and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(opts httputil.TransportOptions, headers map[string]string) *Client {
	return &Client{
		http:    httputil.NewClient(opts),
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
//
// Failures carry an error code: NETWORK_ERROR for transport failures,
// HTTP_STATUS for non-2xx responses (wrapping a [httputil.StatusError]) and
// DECODE_ERROR when the body is not a single JSON value valid for v.
// Trailing data after the value is rejected.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return pkgerrors.Wrap(pkgerrors.ErrCodeNetwork, err, "read response from %s", url)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeDecode, err, "decode response from %s", url)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeNetwork, err, "build request for %q", url)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeNetwork, err, "GET %s", url)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := httputil.CheckStatus(url, resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeHTTPStatus, err, "GET %s", url)
	}
	return resp.Body, nil
}
