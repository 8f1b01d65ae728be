// Package constants provides shared constants used throughout the genreforge
// codebase. This includes field capacities, pipeline defaults, file
// permissions, and other configuration values that should be consistent
// across the application.
package constants

import "time"

// Pipeline defaults define the standard knobs for a generation run
const (
	// DefaultMaxGenres is the default number of genres a full run targets
	DefaultMaxGenres = 15000

	// DefaultBatchSize is the default number of candidates processed per batch
	DefaultBatchSize = 1000

	// DefaultHierarchyLevels is the default depth of the genre hierarchy
	DefaultHierarchyLevels = 5

	// DefaultSimilarityThreshold is the Jaro-Winkler score above which two
	// names are considered duplicates
	DefaultSimilarityThreshold = 0.85

	// MaxHierarchyLevel is the deepest level an entry may occupy
	MaxHierarchyLevel = 5

	// MinHierarchyLevel is the level assigned to root genres
	MinHierarchyLevel = 1
)

// Field capacity constants define the maximum stored length for each entry
// field. Longer values are truncated, not rejected.
const (
	// MaxNameLength is the maximum allowed length for genre names
	MaxNameLength = 100

	// MaxRegionLength is the maximum stored length for the region field
	MaxRegionLength = 15

	// MaxLanguageLength is the maximum stored length for the language field
	MaxLanguageLength = 5

	// MaxPeriodLength is the maximum stored length for the period field
	MaxPeriodLength = 15

	// MaxInstrumentsLength is the maximum stored length for the joined
	// instruments field
	MaxInstrumentsLength = 100

	// MaxPioneersLength is the maximum stored length for the joined pioneers
	// field
	MaxPioneersLength = 200

	// MaxArtistsLength is the maximum stored length for the joined artists
	// field
	MaxArtistsLength = 300

	// MaxWorksLength is the maximum stored length for the joined works field
	MaxWorksLength = 300

	// MaxSourceLength is the maximum stored length for the source field
	MaxSourceLength = 100

	// MaxBPMLength is the maximum stored length for the BPM range field
	MaxBPMLength = 15

	// MaxTimeSignatureLength is the maximum stored length for the time
	// signature field
	MaxTimeSignatureLength = 10
)

// Sampling constants define how many items attribute inference draws
const (
	// PioneerCount is the number of pioneers sampled per genre
	PioneerCount = 5

	// ArtistCount is the number of notable artists sampled per genre
	ArtistCount = 10

	// WorkCount is the number of famous works generated per genre
	WorkCount = 10

	// MaxInstruments is the maximum number of distinct instruments kept
	// before joining
	MaxInstruments = 5

	// MergedSourceLimit is the number of distinct sources preserved when
	// duplicates are merged
	MergedSourceLimit = 3
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxReportedProblems is the number of validation problems surfaced in
	// run summaries and logs
	MaxReportedProblems = 10

	// TopRegionCount is the number of regions included in statistics output
	TopRegionCount = 20

	// TopParentCount is the number of parent genres ranked in statistics
	// output
	TopParentCount = 10

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// SQLiteInsertBatch is the number of records per batched SQLite insert
	SQLiteInsertBatch = 500
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatStats is the timestamp format embedded in statistics exports
	TimeFormatStats = "2006-01-02 15:04:05"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)

// Path constants
const (
	// DefaultConfigName is the base name of the configuration file
	DefaultConfigName = ".genreforge"

	// DefaultCSVPath is the default path for CSV exports
	DefaultCSVPath = "music_genres_dataset.csv"

	// DefaultStatsPath is the default path for JSON statistics exports
	DefaultStatsPath = "music_genres_stats.json"

	// DefaultSQLitePath is the default path for the SQLite export database
	DefaultSQLitePath = "music_genres.db"
)
