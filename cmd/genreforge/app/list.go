package app

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genreforge/genreforge"
	"github.com/genreforge/genreforge/internal/cmd/output"
	"github.com/genreforge/genreforge/pkg/genres"
)

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	var (
		count  int
		level  int
		region string
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "inspect",
		Short:   "Generate a taxonomy and list its genres",
		Long: `List runs the full generation pipeline in memory and prints the
resulting genres. Filters narrow the listing by hierarchy level, region,
or name substring; wide output adds the language, instrument, tempo, and
provenance columns.`,
		Example: `  genreforge list --limit 20               # First 20 genres
  genreforge list --level 1                # Root genres only
  genreforge list --region Deutschland     # Genres from one region
  genreforge list --search jazz -o wide    # Search by name, all columns`,
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

			entries := filterEntries(forge.Entries().List(), level, region, search)

			sort.Slice(entries, func(i, j int) bool {
				return entries[i].ID < entries[j].ID
			})

			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if !a.config.Quiet {
				a.logger.Info().Msgf("Found %d genres", len(entries))
			}

			return output.FormatEntries(entries, a.globalFlags())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0,
		"number of genres to generate (default from config)")
	cmd.Flags().IntVar(&level, "level", 0,
		"filter by hierarchy level (1-5)")
	cmd.Flags().StringVar(&region, "region", "",
		"filter by region")
	cmd.Flags().StringVar(&search, "search", "",
		"filter by name substring (case-insensitive)")
	cmd.Flags().IntVar(&limit, "limit", 0,
		"maximum number of genres to show")

	return cmd
}

// filterEntries returns the entries matching every provided filter. Zero
// values leave a filter inactive; region matches exactly and search matches
// a case-insensitive name substring.
func filterEntries(entries []genres.Entry, level int, region, search string) []genres.Entry {
	if level == 0 && region == "" && search == "" {
		return entries
	}

	needle := strings.ToLower(search)
	filtered := make([]genres.Entry, 0, len(entries))
	for _, entry := range entries {
		if level != 0 && entry.Level != level {
			continue
		}
		if region != "" && !strings.EqualFold(entry.Region, region) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(entry.Name), needle) {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered
}
