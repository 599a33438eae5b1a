package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgsync/pkg/config"
	"github.com/matzehuels/pkgsync/pkg/manifest"
)

// syncOpts holds the command-line flags shared by the root and sync commands.
// A flag only replaces the environment value when it was set explicitly.
type syncOpts struct {
	url     string
	repo    string
	output  string
	format  string
	timeout time.Duration
}

// register adds the sync flags to cmd.
func (o *syncOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.url, "url", "", "repository manager base URL (env "+config.EnvURL+")")
	f.StringVar(&o.repo, "repo", "", "repository to list (env "+config.EnvRepository+")")
	f.StringVarP(&o.output, "output", "o", "", "manifest file (env "+config.EnvOutputFile+", default "+config.DefaultOutputFile+")")
	f.StringVar(&o.format, "format", "", "manifest format: "+strings.Join(manifest.FormatNames(), ", ")+" (env "+config.EnvFormat+")")
	f.DurationVar(&o.timeout, "timeout", 0, "per-request timeout, 0 for none (env "+config.EnvTimeout+")")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return manifest.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// apply overlays the flags that were set on cmd onto cfg.
func (o *syncOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("url") {
		cfg.URL = o.url
	}
	if f.Changed("repo") {
		cfg.Repository = o.repo
	}
	if f.Changed("output") {
		cfg.OutputFile = o.output
	}
	if f.Changed("format") {
		cfg.Format = manifest.Format(strings.ToLower(strings.TrimSpace(o.format)))
	}
	if f.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
}

// syncCommand creates the sync command. It does the same as running the
// binary without a subcommand.
func (c *CLI) syncCommand() *cobra.Command {
	opts := &syncOpts{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch all components of a repository and write the manifest",
		Long: `Fetch every page of the repository's component listing, keep the first
component seen for each name, and replace the manifest file.

The file is written only after the last page has been read. Any failed
request aborts the run and leaves an existing manifest untouched.`,
		Example: `  NEXUS_URL=https://nexus.example.com NEXUS_REPO=npm-hosted pkgsync sync
  pkgsync sync --url https://nexus.example.com --repo npm-hosted -o packages.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd, opts)
		},
	}

	opts.register(cmd)
	return cmd
}

// runSync resolves the configuration and executes one sync run.
func (c *CLI) runSync(cmd *cobra.Command, opts *syncOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	opts.apply(cmd, &cfg)

	prog := newProgress(logger)
	result, err := c.newRunner(cfg).Execute(ctx, cfg)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Synced %s", cfg.Repository))

	printSuccess("Wrote %s", StyleValue.Render(result.OutputFile))
	printStats(result.Stats.Pages, result.Stats.Components, result.Stats.Unique)
	return nil
}
