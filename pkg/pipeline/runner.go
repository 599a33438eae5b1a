package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pkgsync/pkg/config"
	"github.com/matzehuels/pkgsync/pkg/integrations"
	"github.com/matzehuels/pkgsync/pkg/integrations/nexus"
	"github.com/matzehuels/pkgsync/pkg/manifest"
	"github.com/matzehuels/pkgsync/pkg/observability"
)

// Runner executes sync runs against a components listing.
//
// The Runner keeps no state between runs. Each call to [Runner.Execute] or
// [Runner.Fetch] starts with an empty package set and a fresh page counter.
type Runner struct {
	Client PageFetcher
	Logger *log.Logger
}

// NewRunner creates a runner that fetches pages through client.
// If logger is nil, log.Default() is used.
func NewRunner(client PageFetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Client: client, Logger: logger}
}

// Execute runs the complete fetch → merge → write pipeline for cfg.
//
// cfg is validated first; an invalid configuration fails before any request
// is sent. The output file is written only after the last page has been
// merged.
func (r *Runner) Execute(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      uuid.NewString(),
		OutputFile: cfg.OutputFile,
		Format:     cfg.Format,
	}
	logger := r.Logger.With("run", result.RunID[:8])

	// Stage 1+2: Fetch and merge
	fetchStart := time.Now()
	set, fetchStats, err := r.fetch(ctx, logger, cfg.URL, cfg.Repository)
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Stats.Pages = fetchStats.Pages
	result.Stats.Components = fetchStats.Components
	if err != nil {
		return nil, err
	}
	result.Document = set.Document()
	result.Stats.Unique = set.Len()

	logger.Debug("fetched components",
		"pages", result.Stats.Pages,
		"components", result.Stats.Components,
		"unique", result.Stats.Unique,
		"duration", result.Stats.FetchTime)

	// Stage 3: Write
	writeStart := time.Now()
	if err := r.Write(ctx, result.Document, cfg.Format, cfg.OutputFile); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)

	logger.Debug("wrote manifest",
		"path", cfg.OutputFile,
		"format", cfg.Format,
		"packages", result.Stats.Unique,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Fetch walks every page of repository on the manager at baseURL and
// returns the deduplicated package set.
//
// Pages are requested one at a time. Each continuation token is set on the
// first-page URL, and the loop ends at the first page without a token. The
// first failing request aborts the walk; partial results are discarded.
func (r *Runner) Fetch(ctx context.Context, baseURL, repository string) (*manifest.Set, error) {
	set, _, err := r.fetch(ctx, r.Logger, baseURL, repository)
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (r *Runner) fetch(ctx context.Context, logger *log.Logger, baseURL, repository string) (*manifest.Set, Stats, error) {
	hooks := observability.Sync()
	listURL := nexus.ComponentsURL(baseURL, repository)
	set := manifest.NewSet()
	var stats Stats

	start := time.Now()
	hooks.OnFetchStart(ctx, repository)
	logger.Info("starting fetch", "repository", repository)

	finish := func(err error) (*manifest.Set, Stats, error) {
		hooks.OnFetchComplete(ctx, repository, stats.Pages, set.Len(), time.Since(start), err)
		if err != nil {
			return nil, stats, err
		}
		return set, stats, nil
	}

	pageURL := listURL
	for {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		logger.Info("fetching page", "page", stats.Pages+1, "url", pageURL)
		pageStart := time.Now()
		page, err := r.Client.FetchPage(ctx, pageURL)
		if err != nil {
			logger.Debug("page request failed",
				"page", stats.Pages+1,
				"url", pageURL,
				"status", integrations.StatusCode(err))
			return finish(err)
		}
		stats.Pages++

		added := merge(set, page.Items)
		stats.Components += len(page.Items)
		hooks.OnPage(ctx, repository, stats.Pages, len(page.Items), added, time.Since(pageStart))
		logger.Debug("merged page",
			"page", stats.Pages,
			"items", len(page.Items),
			"added", added,
			"unique", set.Len())

		token := page.NextToken()
		if token == "" {
			logger.Info("done, no more pages to read", "pages", stats.Pages, "packages", set.Len())
			return finish(nil)
		}
		if pageURL, err = nexus.PageURL(listURL, token); err != nil {
			return finish(err)
		}
	}
}

// merge adds every component to set and returns how many were new.
func merge(set *manifest.Set, items []nexus.Component) int {
	added := 0
	for _, c := range items {
		if set.Add(manifest.NewPackage(c.Group, c.Name)) {
			added++
		}
	}
	return added
}

// Write encodes doc in format and replaces the file at path.
func (r *Runner) Write(ctx context.Context, doc manifest.Document, format manifest.Format, path string) error {
	err := manifest.Export(doc, format, path)
	observability.Sync().OnWrite(ctx, path, len(doc.Packages), err)
	return err
}
