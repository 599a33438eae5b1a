package nexus

import (
	"context"
	"net/url"

	"github.com/matzehuels/pkgsync/pkg/errors"
	"github.com/matzehuels/pkgsync/pkg/httputil"
	"github.com/matzehuels/pkgsync/pkg/integrations"
)

const componentsPath = "/service/rest/v1/components"

// Component is one entry of the components listing. Only Name and Group are
// used by the manifest; the remaining fields are decoded for logging.
type Component struct {
	ID         string  `json:"id"`
	Repository string  `json:"repository"`
	Format     string  `json:"format"`
	Group      *string `json:"group"`
	Name       string  `json:"name"`
	Version    string  `json:"version"`
}

// ComponentPage is one page of the components listing.
// A missing items field decodes as an empty page.
type ComponentPage struct {
	Items             []Component `json:"items"`
	ContinuationToken *string     `json:"continuationToken"`
}

// NextToken returns the continuation token, or "" on the last page.
func (p *ComponentPage) NextToken() string {
	if p == nil || p.ContinuationToken == nil {
		return ""
	}
	return *p.ContinuationToken
}

// Client lists components through the Nexus REST API. Page URLs are built
// with [ComponentsURL] and [PageURL].
type Client struct {
	*integrations.Client
}

// NewClient creates a Client with the given transport options.
func NewClient(opts httputil.TransportOptions) *Client {
	return &Client{
		Client: integrations.NewClient(opts, integrations.DefaultHeaders()),
	}
}

// FetchPage fetches and decodes the components page at pageURL.
// A body that is JSON null is a DECODE_ERROR, not an empty page.
func (c *Client) FetchPage(ctx context.Context, pageURL string) (*ComponentPage, error) {
	var page *ComponentPage
	if err := c.Get(ctx, pageURL, &page); err != nil {
		return nil, err
	}
	if page == nil {
		return nil, errors.New(errors.ErrCodeDecode, "decode response from %s: null page", pageURL)
	}
	return page, nil
}

// ComponentsURL builds {baseURL}/service/rest/v1/components?repository={repository}.
// baseURL is used verbatim; a trailing slash produces a double slash in the
// request path, which Nexus accepts.
func ComponentsURL(baseURL, repository string) string {
	return baseURL + componentsPath + "?repository=" + url.QueryEscape(repository)
}

// PageURL returns listURL with the continuationToken query parameter set to
// token. listURL must be the first-page URL: the token replaces rather than
// extends any previous one, so tokens never pile up across pages.
// An empty token returns listURL unchanged.
func PageURL(listURL, token string) (string, error) {
	if token == "" {
		return listURL, nil
	}
	u, err := url.Parse(listURL)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse components URL %q", listURL)
	}
	q := u.Query()
	q.Set("continuationToken", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

