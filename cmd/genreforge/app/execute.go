package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/genreforge/genreforge/internal/cmd/globals"
	"github.com/genreforge/genreforge/pkg/logging"
)

// Execute runs the genreforge CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "genreforge",
		Short:   "Music genre taxonomy generator",
		Version: a.version,
		Long: `Genreforge synthesizes large music genre taxonomies by combining seed
vocabularies of regions, eras, instruments, and base genres.

Generated catalogs carry a five-level hierarchy with inferred attributes
(period, region, status, notable artists) and can be exported as CSV,
gzip-compressed CSV, JSON statistics, and a SQLite database.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands:",
	})

	// Add global flags
	a.flags = globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "",
		"config file (default searches . and $HOME for .genreforge.yaml)")
	rootCmd.PersistentFlags().String("log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().String("log-format", "",
		"log format: console, json, auto")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("genreforge {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	logLevel := mustGetString(cmd, "log-level")
	logFormat := mustGetString(cmd, "log-format")
	a.config.ConfigFile = mustGetString(cmd, "config")

	a.config.UpdateFromFlags(a.flags.Verbose, a.flags.Quiet, a.flags.NoColor,
		a.flags.Output, logLevel, logFormat)

	// Reinitialize logger with updated config and make it the package
	// default so pipeline packages log at the same verbosity
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	// Load the pipeline configuration now that the config file path is known
	return a.config.LoadForge()
}

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewGenerateCommand())
	rootCmd.AddCommand(a.NewExportCommand())
	rootCmd.AddCommand(a.NewValidateCommand())

	// Inspection commands
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewStatsCommand())
	rootCmd.AddCommand(a.NewVocabCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
