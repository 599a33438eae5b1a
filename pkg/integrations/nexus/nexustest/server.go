// Package nexustest provides a fake Nexus components API for tests.
//
// Pages are chained by continuation token: the first page answers requests
// without a token, page k answers requests carrying the token of page k-1.
//
//	srv := nexustest.NewServer(t, "npm-hosted",
//	    nexustest.Page{Items: []nexus.Component{nexustest.Grouped("g1", "a")}, Token: "t1"},
//	    nexustest.Page{Items: []nexus.Component{nexustest.Ungrouped("b")}},
//	)
//	client := nexus.NewClient(httputil.TransportOptions{})
//	page, err := client.FetchPage(ctx, nexus.ComponentsURL(srv.URL, "npm-hosted"))
package nexustest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pkgsync/pkg/integrations/nexus"
)

// Page describes one response of the fake server.
type Page struct {
	// Items are encoded as the page's items array.
	Items []nexus.Component
	// Token is the continuation token returned with the page; "" ends the listing.
	Token string
	// Status, when non-zero, replaces the 200 response with this status and no body.
	Status int
	// Body, when non-empty, is written verbatim instead of the encoded page.
	Body string
}

// Server is a fake repository manager serving a fixed chain of pages.
type Server struct {
	*httptest.Server

	repository string
	pages      []Page

	mu       sync.Mutex
	requests []*url.URL
}

// NewServer starts a plain HTTP fake serving pages for repository.
// The server is closed when the test ends.
func NewServer(t testing.TB, repository string, pages ...Page) *Server {
	t.Helper()
	s := newServer(repository, pages)
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

// NewTLSServer is like NewServer but serves HTTPS with a self-signed certificate.
func NewTLSServer(t testing.TB, repository string, pages ...Page) *Server {
	t.Helper()
	s := newServer(repository, pages)
	s.Server = httptest.NewTLSServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func newServer(repository string, pages []Page) *Server {
	return &Server{repository: repository, pages: pages}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/service/rest/v1/components", s.components)
	return r
}

// Requests returns the URLs of all requests received so far, in order.
func (s *Server) Requests() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*url.URL, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns the number of requests received so far.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) components(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL)
	s.mu.Unlock()

	q := r.URL.Query()
	if got := q.Get("repository"); got != s.repository {
		http.Error(w, fmt.Sprintf("repository %q not found", got), http.StatusNotFound)
		return
	}

	page, ok := s.lookup(q.Get("continuationToken"))
	if !ok {
		http.Error(w, "invalid continuation token", http.StatusBadRequest)
		return
	}

	switch {
	case page.Status != 0:
		w.WriteHeader(page.Status)
	case page.Body != "":
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, page.Body)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(encodePage(page))
	}
}

func (s *Server) lookup(token string) (Page, bool) {
	if len(s.pages) == 0 {
		return Page{}, token == ""
	}
	if token == "" {
		return s.pages[0], true
	}
	for i, p := range s.pages[:len(s.pages)-1] {
		if p.Token == token {
			return s.pages[i+1], true
		}
	}
	return Page{}, false
}

func encodePage(p Page) nexus.ComponentPage {
	out := nexus.ComponentPage{Items: p.Items}
	if out.Items == nil {
		out.Items = []nexus.Component{}
	}
	if p.Token != "" {
		token := p.Token
		out.ContinuationToken = &token
	}
	return out
}

// Grouped returns a component with the given group.
func Grouped(group, name string) nexus.Component {
	return nexus.Component{Group: &group, Name: name, Format: "npm"}
}

// Ungrouped returns a component whose group is null.
func Ungrouped(name string) nexus.Component {
	return nexus.Component{Name: name, Format: "npm"}
}
