// Package pipeline runs a repository sync: fetch every page of a Nexus
// components listing, fold the components into a deduplicated package set,
// and write the manifest.
//
// # Stages
//
//  1. Fetch: request pages serially, following continuation tokens until a
//     page arrives without one
//  2. Merge: add each component to a [manifest.Set] keyed by name, first
//     occurrence wins
//  3. Write: encode the set as a [manifest.Document] and replace the output file
//
// Any error stops the run where it happens. Nothing is retried, and the write
// stage is never reached after a fetch failure, so an existing manifest stays
// untouched.
//
// # Usage
//
//	cfg, _ := config.FromEnv()
//	runner := pipeline.NewRunner(pipeline.NewClient(cfg), logger)
//	result, err := runner.Execute(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Stats.Unique, "unique packages")
package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/pkgsync/pkg/config"
	"github.com/matzehuels/pkgsync/pkg/httputil"
	"github.com/matzehuels/pkgsync/pkg/integrations/nexus"
	"github.com/matzehuels/pkgsync/pkg/manifest"
)

// PageFetcher fetches one decoded page of the components listing.
// [nexus.Client] implements it.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*nexus.ComponentPage, error)
}

// NewClient builds the Nexus client for cfg.
//
// TLS certificate verification is disabled for every request: repository
// managers this tool syncs from commonly use self-signed certificates.
func NewClient(cfg config.Config) *nexus.Client {
	return nexus.NewClient(httputil.TransportOptions{
		InsecureSkipVerify: true,
		Timeout:            cfg.Timeout,
	})
}

// Stats describes a finished run.
type Stats struct {
	Pages      int           // Pages fetched
	Components int           // Components seen across all pages, duplicates included
	Unique     int           // Distinct component names
	FetchTime  time.Duration // Time spent paginating
	WriteTime  time.Duration // Time spent writing the manifest
}

// Result is the outcome of [Runner.Execute].
type Result struct {
	RunID      string
	OutputFile string
	Format     manifest.Format
	Document   manifest.Document
	Stats      Stats
}
