package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/genreforge/genreforge"
	"github.com/genreforge/genreforge/internal/cmd/emoji"
	"github.com/genreforge/genreforge/internal/cmd/output"
	"github.com/genreforge/genreforge/pkg/genres"
)

// NewValidateCommand creates the validate command with app dependencies.
func (a *App) NewValidateCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Run the pipeline and report validation problems",
		Long: `Validate performs a dry run of the full pipeline: candidates are
generated, assembled, merged, and checked against the quality rules, but
the catalog is left untouched and nothing is exported. The report lists
how many genres were rejected during generation and any problems found
in the final merged set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forge, err := a.Forge()
			if err != nil {
				return err
			}

			opts := []genreforge.GenerateOption{genreforge.WithDryRun(true)}
			if count > 0 {
				opts = append(opts, genreforge.WithTarget(count))
			}

			result, err := forge.Generate(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			return a.printValidation(os.Stdout, result)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of genres to check (default from config)")

	return cmd
}

// NewStatsCommand creates the stats command with app dependencies.
func (a *App) NewStatsCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "inspect",
		Short:   "Generate a taxonomy and report its statistics",
		Long: `Stats runs the full generation pipeline in memory and reports the
resulting dataset statistics: level, region, and status distributions,
plus the most referenced parent genres. Nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forge, err := a.Forge()
			if err != nil {
				return err
			}

			var opts []genreforge.GenerateOption
			if count > 0 {
				opts = append(opts, genreforge.WithTarget(count))
			}

			if _, err := forge.Generate(cmd.Context(), opts...); err != nil {
				return err
			}

			return a.printStats(os.Stdout, forge, forge.Stats())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of genres to generate (default from config)")

	return cmd
}

// NewVocabCommand creates the vocab command with app dependencies.
func (a *App) NewVocabCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "vocab",
		GroupID: "inspect",
		Short:   "Show the active seed vocabulary",
		Long: `Vocab prints the seed lists the generator combines: regions, eras,
instruments, and base genres, together with the name templates and
modifier word groups, after configuration overrides are applied.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return output.FormatVocabulary(a.config.Forge.Vocabulary(), a.globalFlags())
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("genreforge %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// validationReport is the structured output of the validate command.
type validationReport struct {
	Checked  int      `json:"checked_genres" yaml:"checked_genres"`
	Rejected int      `json:"rejected_genres" yaml:"rejected_genres"`
	Merged   int      `json:"merged_duplicates" yaml:"merged_duplicates"`
	Final    int      `json:"final_genres" yaml:"final_genres"`
	Problems []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// printValidation renders the validation report.
func (a *App) printValidation(w io.Writer, result *genreforge.Result) error {
	report := validationReport{
		Checked:  result.Generated,
		Rejected: result.ValidationErrors,
		Merged:   result.DuplicatesRemoved,
		Final:    result.Final,
		Problems: result.Problems,
	}

	format := output.DetectFormat(a.config.Output)
	if format != output.FormatTable && format != output.FormatWide {
		return output.NewFormatter(format).Format(w, report)
	}

	fmt.Fprintf(w, "Checked %d generated genres: %d rejected, %d merged, %d kept.\n",
		report.Checked, report.Rejected, report.Merged, report.Final)

	if len(report.Problems) == 0 {
		fmt.Fprintf(w, "%s No validation problems in the final catalog.\n", emoji.Success)
		return nil
	}

	fmt.Fprintf(w, "%s %d problems in the final catalog:\n\n", emoji.Error, len(report.Problems))
	return output.NewFormatter(format).Format(w, output.ProblemsToTableData(report.Problems))
}

// printStats renders the statistics report. Table formats print one
// section per distribution; json and yaml emit the raw statistics.
func (a *App) printStats(w io.Writer, forge genreforge.Forge, stats genres.Stats) error {
	format := output.DetectFormat(a.config.Output)
	if format != output.FormatTable && format != output.FormatWide {
		return output.NewFormatter(format).Format(w, stats)
	}

	fmt.Fprintf(w, "Total genres: %d\n", stats.Total)
	fmt.Fprintf(w, "Average name length: %.1f\n", stats.AvgNameLength)

	formatter := output.NewFormatter(format)
	sections := []output.Data{
		output.CountsToTableData("LEVEL", stats.LevelsByName()),
		output.CountsToTableData("REGION", stats.RegionsByCount()),
		output.CountsToTableData("STATUS", stats.StatusesByCount()),
		output.ParentsToTableData(stats.TopParents, func(id int64) (string, bool) {
			if entry, ok := forge.Entries().Get(id); ok {
				return entry.Name, true
			}
			return "", false
		}),
	}
	for _, section := range sections {
		fmt.Fprintln(w)
		if err := formatter.Format(w, section); err != nil {
			return err
		}
	}

	return nil
}
