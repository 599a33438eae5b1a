package nexus_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pkgsync/pkg/errors"
	"github.com/matzehuels/pkgsync/pkg/httputil"
	"github.com/matzehuels/pkgsync/pkg/integrations"
	"github.com/matzehuels/pkgsync/pkg/integrations/nexus"
	"github.com/matzehuels/pkgsync/pkg/integrations/nexus/nexustest"
)

func TestComponentsURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		repo string
		want string
	}{
		{"plain", "https://nexus.example.com", "npm-hosted", "https://nexus.example.com/service/rest/v1/components?repository=npm-hosted"},
		{"trailing slash kept", "https://nexus.example.com/", "npm", "https://nexus.example.com//service/rest/v1/components?repository=npm"},
		{"context path", "http://host:8081/nexus", "npm", "http://host:8081/nexus/service/rest/v1/components?repository=npm"},
		{"empty repo", "http://host", "", "http://host/service/rest/v1/components?repository="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nexus.ComponentsURL(tt.base, tt.repo))
		})
	}
}

func TestPageURL(t *testing.T) {
	base := nexus.ComponentsURL("https://nexus.example.com", "npm-hosted")

	t.Run("empty token keeps base", func(t *testing.T) {
		got, err := nexus.PageURL(base, "")
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("token added as query parameter", func(t *testing.T) {
		got, err := nexus.PageURL(base, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://nexus.example.com/service/rest/v1/components?continuationToken=abc123&repository=npm-hosted", got)
	})

	t.Run("token is escaped", func(t *testing.T) {
		got, err := nexus.PageURL(base, "a+b/c=")
		require.NoError(t, err)
		assert.Contains(t, got, "continuationToken=a%2Bb%2Fc%3D")
	})

	t.Run("tokens do not accumulate", func(t *testing.T) {
		first, err := nexus.PageURL(base, "t1")
		require.NoError(t, err)
		second, err := nexus.PageURL(first, "t2")
		require.NoError(t, err)
		fromBase, err := nexus.PageURL(base, "t2")
		require.NoError(t, err)
		assert.Equal(t, fromBase, second)
		assert.NotContains(t, second, "t1")
	})

	t.Run("unparsable base", func(t *testing.T) {
		_, err := nexus.PageURL("http://[::1", "t1")
		require.Error(t, err)
	})
}

func TestNextToken(t *testing.T) {
	var nilPage *nexus.ComponentPage
	assert.Equal(t, "", nilPage.NextToken())
	assert.Equal(t, "", (&nexus.ComponentPage{}).NextToken())

	token := "t1"
	assert.Equal(t, "t1", (&nexus.ComponentPage{ContinuationToken: &token}).NextToken())
}

// fetch requests the page of repo at baseURL identified by token.
func fetch(t *testing.T, client *nexus.Client, baseURL, repo, token string) (*nexus.ComponentPage, error) {
	t.Helper()
	pageURL, err := nexus.PageURL(nexus.ComponentsURL(baseURL, repo), token)
	require.NoError(t, err)
	return client.FetchPage(context.Background(), pageURL)
}

func TestFetchPageChain(t *testing.T) {
	srv := nexustest.NewServer(t, "npm-hosted",
		nexustest.Page{
			Items: []nexus.Component{nexustest.Grouped("g1", "a"), nexustest.Ungrouped("b")},
			Token: "t1",
		},
		nexustest.Page{Items: []nexus.Component{nexustest.Grouped("g2", "a")}},
	)
	client := nexus.NewClient(httputil.TransportOptions{})

	first, err := fetch(t, client, srv.URL, "npm-hosted", "")
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "a", first.Items[0].Name)
	require.NotNil(t, first.Items[0].Group)
	assert.Equal(t, "g1", *first.Items[0].Group)
	assert.Nil(t, first.Items[1].Group)
	assert.Equal(t, "t1", first.NextToken())

	second, err := fetch(t, client, srv.URL, "npm-hosted", first.NextToken())
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "", second.NextToken())

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "", reqs[0].Query().Get("continuationToken"))
	assert.Equal(t, "t1", reqs[1].Query().Get("continuationToken"))
	assert.Equal(t, "npm-hosted", reqs[1].Query().Get("repository"))
}

func TestFetchPageSendsDefaultHeaders(t *testing.T) {
	var accept, agent string
	srv := nexustest.NewServer(t, "npm")
	srv.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		agent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"items":[]}`))
	})

	client := nexus.NewClient(httputil.TransportOptions{})
	_, err := fetch(t, client, srv.URL, "npm", "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", accept)
	assert.Contains(t, agent, "pkgsync/")
}

func TestFetchPageMissingItems(t *testing.T) {
	srv := nexustest.NewServer(t, "npm", nexustest.Page{Body: `{"continuationToken": null}`})
	client := nexus.NewClient(httputil.TransportOptions{})

	page, err := fetch(t, client, srv.URL, "npm", "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, "", page.NextToken())
}

func TestFetchPageIgnoresUnknownFields(t *testing.T) {
	body := `{"items":[{"id":"x","repository":"npm","format":"npm","group":"types","name":"node","version":"20.1.0","assets":[{"path":"p"}]}],"continuationToken":null}`
	srv := nexustest.NewServer(t, "npm", nexustest.Page{Body: body})
	client := nexus.NewClient(httputil.TransportOptions{})

	page, err := fetch(t, client, srv.URL, "npm", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "node", page.Items[0].Name)
	assert.Equal(t, "20.1.0", page.Items[0].Version)
}

func TestFetchPageErrors(t *testing.T) {
	tests := []struct {
		name       string
		page       nexustest.Page
		wantCode   errors.Code
		wantStatus int
	}{
		{"server error", nexustest.Page{Status: http.StatusInternalServerError}, errors.ErrCodeHTTPStatus, 500},
		{"forbidden", nexustest.Page{Status: http.StatusForbidden}, errors.ErrCodeHTTPStatus, 403},
		{"not json", nexustest.Page{Body: "<html>maintenance</html>"}, errors.ErrCodeDecode, 0},
		{"wrong items type", nexustest.Page{Body: `{"items": "none"}`}, errors.ErrCodeDecode, 0},
		{"null body", nexustest.Page{Body: "null"}, errors.ErrCodeDecode, 0},
		{"trailing garbage", nexustest.Page{Body: `{"items":[]} garbage`}, errors.ErrCodeDecode, 0},
		{"two documents", nexustest.Page{Body: `{"items":[]}{"items":[]}`}, errors.ErrCodeDecode, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := nexustest.NewServer(t, "npm", tt.page)
			client := nexus.NewClient(httputil.TransportOptions{})

			_, err := fetch(t, client, srv.URL, "npm", "")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantStatus, integrations.StatusCode(err))
		})
	}
}

func TestFetchUnknownRepository(t *testing.T) {
	srv := nexustest.NewServer(t, "npm-hosted")
	client := nexus.NewClient(httputil.TransportOptions{})

	_, err := fetch(t, client, srv.URL, "maven-releases", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, integrations.StatusCode(err))
}

func TestFetchSelfSignedTLS(t *testing.T) {
	srv := nexustest.NewTLSServer(t, "npm", nexustest.Page{Items: []nexus.Component{nexustest.Ungrouped("a")}})

	insecure := nexus.NewClient(httputil.TransportOptions{InsecureSkipVerify: true})
	page, err := fetch(t, insecure, srv.URL, "npm", "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	strict := nexus.NewClient(httputil.TransportOptions{})
	_, err = fetch(t, strict, srv.URL, "npm", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNetwork))
}
