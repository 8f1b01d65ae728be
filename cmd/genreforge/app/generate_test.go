package app

import (
	"testing"
	"time"

	"github.com/genreforge/genreforge"
	forgeconfig "github.com/genreforge/genreforge/internal/config"
)

// TestExportTargets verifies export destination resolution between
// configuration defaults and per-run flags.
func TestExportTargets(t *testing.T) {
	configured := forgeconfig.Default()
	configured.Export.CSVPath = "genres.csv"
	configured.Export.Compress = false
	configured.Export.StatsPath = "stats.json"
	configured.Export.SQLite.Enabled = true
	configured.Export.SQLite.Path = "genres.db"

	noSQLite := forgeconfig.Default()
	noSQLite.Export.CSVPath = "genres.csv"
	noSQLite.Export.StatsPath = "stats.json"
	noSQLite.Export.SQLite.Enabled = false
	noSQLite.Export.SQLite.Path = "genres.db"

	tests := []struct {
		name     string
		forge    *forgeconfig.Config
		csvPath  string
		compress bool
		stats    string
		sqlite   string
		want     exportTargets
	}{
		{
			name:  "ConfigDefaults",
			forge: configured,
			want: exportTargets{
				CSV:    "genres.csv",
				Stats:  "stats.json",
				SQLite: "genres.db",
			},
		},
		{
			name:  "DisabledSQLiteIgnoresConfigPath",
			forge: noSQLite,
			want: exportTargets{
				CSV:   "genres.csv",
				Stats: "stats.json",
			},
		},
		{
			name:   "SQLiteFlagEnablesExport",
			forge:  noSQLite,
			sqlite: "run.db",
			want: exportTargets{
				CSV:    "genres.csv",
				Stats:  "stats.json",
				SQLite: "run.db",
			},
		},
		{
			name:     "FlagsOverrideConfig",
			forge:    configured,
			csvPath:  "custom.csv",
			compress: true,
			stats:    "custom.json",
			want: exportTargets{
				CSV:      "custom.csv",
				Compress: true,
				Stats:    "custom.json",
				SQLite:   "genres.db",
			},
		},
		{
			name:    "NoConfigFlagsOnly",
			csvPath: "only.csv",
			want: exportTargets{
				CSV: "only.csv",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &App{config: &Config{Forge: tt.forge}}
			got := app.exportTargets(tt.csvPath, tt.compress, tt.stats, tt.sqlite)
			if got != tt.want {
				t.Errorf("exportTargets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestRunOptions verifies that unset flags add no generation options.
func TestRunOptions(t *testing.T) {
	if opts := runOptions(0, 0, false); len(opts) != 0 {
		t.Errorf("runOptions(0, 0, false) produced %d options, want 0", len(opts))
	}
	if opts := runOptions(500, 100, true); len(opts) != 3 {
		t.Errorf("runOptions(500, 100, true) produced %d options, want 3", len(opts))
	}
}

// TestNewRunReport verifies the result to report mapping.
func TestNewRunReport(t *testing.T) {
	result := &genreforge.Result{
		RunID:             "run-1",
		Generated:         120,
		DuplicatesRemoved: 15,
		ValidationErrors:  5,
		Final:             100,
		Problems:          []string{"short name: A"},
		Elapsed:           2 * time.Second,
	}

	report := newRunReport(result, []string{"genres.csv", "stats.json"})

	if report.RunID != "run-1" {
		t.Errorf("RunID = %q, want run-1", report.RunID)
	}
	if report.Generated != 120 || report.DuplicatesRemoved != 15 || report.ValidationErrors != 5 {
		t.Errorf("counters not carried over: %+v", report)
	}
	if report.Final != 100 {
		t.Errorf("Final = %d, want 100", report.Final)
	}
	if report.ElapsedSeconds != 2.0 {
		t.Errorf("ElapsedSeconds = %v, want 2.0", report.ElapsedSeconds)
	}
	if report.GenresPerSecond != 50.0 {
		t.Errorf("GenresPerSecond = %v, want 50.0", report.GenresPerSecond)
	}
	if len(report.Files) != 2 {
		t.Errorf("Files = %v, want two entries", report.Files)
	}
	if len(report.Problems) != 1 {
		t.Errorf("Problems = %v, want one entry", report.Problems)
	}
	if report.DryRun {
		t.Error("DryRun = true, want false")
	}
}
