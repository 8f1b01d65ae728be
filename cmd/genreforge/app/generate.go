package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/genreforge/genreforge"
	"github.com/genreforge/genreforge/internal/cmd/emoji"
	"github.com/genreforge/genreforge/internal/cmd/output"
	"github.com/genreforge/genreforge/internal/export"
)

// NewGenerateCommand creates the generate command with app dependencies.
func (a *App) NewGenerateCommand() *cobra.Command {
	var (
		count      int
		batchSize  int
		seed       int64
		dryRun     bool
		csvPath    string
		compress   bool
		statsPath  string
		sqlitePath string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		GroupID: "core",
		Short:   "Generate the genre taxonomy and write configured exports",
		Long: `Generate runs the full pipeline: candidate generation, hierarchy
assembly, attribute inference, validation, and duplicate merging. The
final catalog is exported according to the configuration file, which
individual flags can override per run, and a summary is printed.

With --dry-run the pipeline executes fully but nothing is exported and
the in-memory catalog is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forge, err := a.commandForge(cmd, seed)
			if err != nil {
				return err
			}
			a.printBatchProgress(forge)

			result, err := forge.Generate(cmd.Context(), runOptions(count, batchSize, dryRun)...)
			if err != nil {
				return err
			}

			var files []string
			if !result.DryRun {
				files, err = a.writeExports(forge, a.exportTargets(csvPath, compress, statsPath, sqlitePath))
				if err != nil {
					return err
				}
			}

			return a.printRun(os.Stdout, forge, result, files)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of genres to generate (default from config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0,
		"candidates processed per batch (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0,
		"random seed for a reproducible run")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"run the pipeline without exporting or replacing the catalog")
	cmd.Flags().StringVar(&csvPath, "out", "",
		"CSV output path (default from config)")
	cmd.Flags().BoolVar(&compress, "compress", false,
		"also write a gzip-compressed copy of the CSV")
	cmd.Flags().StringVar(&statsPath, "stats", "",
		"statistics JSON output path (default from config)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "",
		"SQLite database output path (default off unless configured)")

	return cmd
}

// NewExportCommand creates the export command with app dependencies.
func (a *App) NewExportCommand() *cobra.Command {
	var (
		count      int
		batchSize  int
		seed       int64
		csvPath    string
		compress   bool
		statsPath  string
		sqlitePath string
	)

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "core",
		Short:   "Generate the taxonomy and write every export artifact",
		Long: `Export runs the generation pipeline and writes the configured
artifacts: the CSV dataset, optionally its gzip-compressed copy, the
JSON statistics file, and the SQLite database. The output lists the
files written rather than the full run summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forge, err := a.commandForge(cmd, seed)
			if err != nil {
				return err
			}
			a.printBatchProgress(forge)

			result, err := forge.Generate(cmd.Context(), runOptions(count, batchSize, false)...)
			if err != nil {
				return err
			}

			files, err := a.writeExports(forge, a.exportTargets(csvPath, compress, statsPath, sqlitePath))
			if err != nil {
				return err
			}

			return a.printExport(os.Stdout, result, files)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of genres to generate (default from config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0,
		"candidates processed per batch (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0,
		"random seed for a reproducible run")
	cmd.Flags().StringVar(&csvPath, "out", "",
		"CSV output path (default from config)")
	cmd.Flags().BoolVar(&compress, "compress", false,
		"also write a gzip-compressed copy of the CSV")
	cmd.Flags().StringVar(&statsPath, "stats", "",
		"statistics JSON output path (default from config)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "",
		"SQLite database output path (default off unless configured)")

	return cmd
}

// commandForge returns the forge instance for a pipeline command. An
// explicit --seed builds a dedicated instance so the deterministic source
// does not leak into the shared singleton.
func (a *App) commandForge(cmd *cobra.Command, seed int64) (genreforge.Forge, error) {
	if cmd.Flags().Changed("seed") {
		return a.ForgeWithOptions(append(a.buildForgeOptions(), genreforge.WithSeed(seed))...)
	}
	return a.Forge()
}

// printBatchProgress streams per-batch progress to stderr unless quiet.
func (a *App) printBatchProgress(forge genreforge.Forge) {
	if a.config.Quiet {
		return
	}
	forge.OnBatch(func(event genreforge.BatchEvent) {
		fmt.Fprintf(os.Stderr, "Processing batch %d-%d: %d valid, %d rejected\n",
			event.From, event.To, event.Valid, event.Rejected)
	})
}

// runOptions translates command flags into generation options, leaving
// configuration defaults in place for unset flags.
func runOptions(count, batchSize int, dryRun bool) []genreforge.GenerateOption {
	var opts []genreforge.GenerateOption
	if count > 0 {
		opts = append(opts, genreforge.WithTarget(count))
	}
	if batchSize > 0 {
		opts = append(opts, genreforge.WithBatchSize(batchSize))
	}
	if dryRun {
		opts = append(opts, genreforge.WithDryRun(true))
	}
	return opts
}

// exportTargets holds the resolved export destinations for one run.
// The configuration supplies defaults, flags override. An empty path
// disables the artifact.
type exportTargets struct {
	CSV      string
	Compress bool
	Stats    string
	SQLite   string
}

func (a *App) exportTargets(csvPath string, compress bool, statsPath, sqlitePath string) exportTargets {
	var targets exportTargets
	if cfg := a.config.Forge; cfg != nil {
		targets.CSV = cfg.Export.CSVPath
		targets.Compress = cfg.Export.Compress
		targets.Stats = cfg.Export.StatsPath
		if cfg.Export.SQLite.Enabled {
			targets.SQLite = cfg.Export.SQLite.Path
		}
	}
	if csvPath != "" {
		targets.CSV = csvPath
	}
	if compress {
		targets.Compress = true
	}
	if statsPath != "" {
		targets.Stats = statsPath
	}
	if sqlitePath != "" {
		targets.SQLite = sqlitePath
	}
	return targets
}

// writeExports writes the configured export artifacts and returns the
// paths written, in order.
func (a *App) writeExports(forge genreforge.Forge, targets exportTargets) ([]string, error) {
	entries := forge.Entries().List()

	var files []string
	if targets.CSV != "" {
		if err := export.CSV(targets.CSV, entries); err != nil {
			return files, err
		}
		files = append(files, targets.CSV)

		if targets.Compress {
			gzPath := targets.CSV + ".gz"
			if _, err := export.CompressedCSV(gzPath, entries); err != nil {
				return files, err
			}
			files = append(files, gzPath)
		}
	}

	if targets.Stats != "" {
		if err := export.Stats(targets.Stats, forge.Stats()); err != nil {
			return files, err
		}
		files = append(files, targets.Stats)
	}

	if targets.SQLite != "" {
		store, err := export.OpenStore(targets.SQLite)
		if err != nil {
			return files, err
		}
		if err := store.Save(entries); err != nil {
			_ = store.Close()
			return files, err
		}
		if err := store.Close(); err != nil {
			return files, err
		}
		files = append(files, targets.SQLite)
	}

	return files, nil
}

// runReport is the structured output of the generate command.
type runReport struct {
	RunID             string   `json:"run_id" yaml:"run_id"`
	Generated         int      `json:"generated" yaml:"generated"`
	DuplicatesRemoved int      `json:"duplicates_removed" yaml:"duplicates_removed"`
	ValidationErrors  int      `json:"validation_errors" yaml:"validation_errors"`
	Final             int      `json:"final_genres" yaml:"final_genres"`
	ElapsedSeconds    float64  `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	GenresPerSecond   float64  `json:"genres_per_second" yaml:"genres_per_second"`
	DryRun            bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Files             []string `json:"files,omitempty" yaml:"files,omitempty"`
	Problems          []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

func newRunReport(result *genreforge.Result, files []string) runReport {
	return runReport{
		RunID:             result.RunID,
		Generated:         result.Generated,
		DuplicatesRemoved: result.DuplicatesRemoved,
		ValidationErrors:  result.ValidationErrors,
		Final:             result.Final,
		ElapsedSeconds:    result.Elapsed.Seconds(),
		GenresPerSecond:   result.Rate(),
		DryRun:            result.DryRun,
		Files:             files,
		Problems:          result.Problems,
	}
}

// printRun renders the run summary. Table formats print the headline,
// the files written, and the level and region distributions; json and
// yaml emit the full report.
func (a *App) printRun(w io.Writer, forge genreforge.Forge, result *genreforge.Result, files []string) error {
	format := output.DetectFormat(a.config.Output)
	if format != output.FormatTable && format != output.FormatWide {
		return output.NewFormatter(format).Format(w, newRunReport(result, files))
	}

	fmt.Fprintln(w, result.Summary())
	for _, file := range files {
		fmt.Fprintf(w, "%s wrote %s\n", emoji.Success, file)
	}
	for _, problem := range result.Problems {
		fmt.Fprintf(w, "%s %s\n", emoji.Warning, problem)
	}

	stats := forge.Stats()
	if result.DryRun || stats.Total == 0 {
		return nil
	}

	formatter := output.NewFormatter(format)
	fmt.Fprintln(w)
	if err := formatter.Format(w, output.CountsToTableData("LEVEL", stats.LevelsByName())); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return formatter.Format(w, output.CountsToTableData("REGION", stats.RegionsByCount()))
}

// exportReport is the structured output of the export command.
type exportReport struct {
	RunID string   `json:"run_id" yaml:"run_id"`
	Final int      `json:"final_genres" yaml:"final_genres"`
	Files []string `json:"files" yaml:"files"`
}

func (a *App) printExport(w io.Writer, result *genreforge.Result, files []string) error {
	format := output.DetectFormat(a.config.Output)
	if format != output.FormatTable && format != output.FormatWide {
		return output.NewFormatter(format).Format(w, exportReport{
			RunID: result.RunID,
			Final: result.Final,
			Files: files,
		})
	}

	fmt.Fprintf(w, "Exported %d genres:\n", result.Final)
	for _, file := range files {
		fmt.Fprintf(w, "%s %s\n", emoji.Success, file)
	}
	return nil
}
