package constants_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/genreforge/genreforge/pkg/constants"
)

// Example demonstrates using constants for common file operations
func Example() {
	// Create directory with standard permissions
	dir := filepath.Join(os.TempDir(), "genreforge-example")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// Create file with standard permissions
	file := filepath.Join(dir, "genres.csv")
	data := []byte("ID,Name\n")
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_pipelineDefaults shows the standard knobs a generation run starts from
func Example_pipelineDefaults() {
	fmt.Printf("Target genres: %d\n", constants.DefaultMaxGenres)
	fmt.Printf("Batch size: %d\n", constants.DefaultBatchSize)
	fmt.Printf("Hierarchy depth: %d\n", constants.DefaultHierarchyLevels)
	fmt.Printf("Similarity threshold: %.2f\n", constants.DefaultSimilarityThreshold)

	// Output:
	// Target genres: 15000
	// Batch size: 1000
	// Hierarchy depth: 5
	// Similarity threshold: 0.85
}

// Example_fieldCapacities demonstrates checking values against field caps
func Example_fieldCapacities() {
	name := "Progressive Balearic Deep House Revival"
	if len(name) <= constants.MaxNameLength {
		fmt.Println("name fits")
	}

	fmt.Printf("Name cap: %d\n", constants.MaxNameLength)
	fmt.Printf("Region cap: %d\n", constants.MaxRegionLength)
	fmt.Printf("Artists cap: %d\n", constants.MaxArtistsLength)

	// Output:
	// name fits
	// Name cap: 100
	// Region cap: 15
	// Artists cap: 300
}

// Example_exportPaths shows the default export destinations and the
// filename timestamp format
func Example_exportPaths() {
	fmt.Printf("CSV: %s\n", constants.DefaultCSVPath)
	fmt.Printf("Stats: %s\n", constants.DefaultStatsPath)
	fmt.Printf("SQLite: %s\n", constants.DefaultSQLitePath)

	// Timestamped variant for archived runs
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fmt.Printf("Archive: genres-%s.csv\n", ts.Format(constants.TimeFormatFilename))

	// Output:
	// CSV: music_genres_dataset.csv
	// Stats: music_genres_stats.json
	// SQLite: music_genres.db
	// Archive: genres-20240301-120000.csv
}

// Example_batchedInserts demonstrates sizing work from the batch constants
func Example_batchedInserts() {
	total := 15000
	batches := (total + constants.SQLiteInsertBatch - 1) / constants.SQLiteInsertBatch

	fmt.Printf("Records per insert: %d\n", constants.SQLiteInsertBatch)
	fmt.Printf("Inserts for %d records: %d\n", total, batches)

	// Output:
	// Records per insert: 500
	// Inserts for 15000 records: 30
}
