package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgsync/pkg/buildinfo"
	"github.com/matzehuels/pkgsync/pkg/config"
	"github.com/matzehuels/pkgsync/pkg/observability"
	"github.com/matzehuels/pkgsync/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "pkgsync"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The root command itself runs a sync, so a scheduler can invoke the binary
// with no arguments and drive it entirely through the environment.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &syncOpts{}

	root := &cobra.Command{
		Use:   appName,
		Short: "pkgsync mirrors the package list of a Nexus repository into a manifest",
		Long: `pkgsync lists every component of a Nexus repository, keeps the first
component seen for each name, and writes the result as a package manifest.

Settings are read from the environment:
  NEXUS_URL        repository manager base URL (required)
  NEXUS_REPO       repository to list (required)
  JSON_FILE_NAME   output file (default general_packages.json)
  NEXUS_TIMEOUT    per-request timeout, e.g. 30s (default none)
  PKGSYNC_FORMAT   json or toml (default json)

Flags override the environment.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetHTTPHooks(newLogHooks(c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.syncCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for cfg that logs through the CLI logger.
func (c *CLI) newRunner(cfg config.Config) *pipeline.Runner {
	return pipeline.NewRunner(pipeline.NewClient(cfg), c.Logger)
}
