// Package config loads genreforge configuration from YAML files, .env
// files, and GENREFORGE_* environment variables. A missing or malformed
// config file is never fatal: the loader logs a warning and falls back to
// the built-in defaults.
package config

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/genreforge/genreforge/pkg/constants"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/logging"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// envPrefix namespaces environment overrides, so
// GENREFORGE_GENERATION_RULES_BATCH_SIZE maps to generation_rules.batch_size.
const envPrefix = "GENREFORGE"

// GenerationRules controls how many genres a run produces and how they are
// batched.
type GenerationRules struct {
	MaxGenres       int `mapstructure:"max_genres"`
	HierarchyLevels int `mapstructure:"hierarchy_levels"`
	BatchSize       int `mapstructure:"batch_size"`
}

// ValidationRules holds the quality gate settings applied after assembly.
type ValidationRules struct {
	PeriodFormat        string  `mapstructure:"period_format"`
	ArtistFormat        string  `mapstructure:"artist_format"`
	MaxNameLength       int     `mapstructure:"max_name_length"`
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
}

// DataSources holds the seed vocabularies the generator combines.
type DataSources struct {
	Regions     []string `mapstructure:"regions"`
	Eras        []string `mapstructure:"eras"`
	Instruments []string `mapstructure:"instruments"`
	BaseGenres  []string `mapstructure:"base_genres"`
}

// SQLiteExport configures the optional database export.
type SQLiteExport struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Export configures the output files written after a run.
type Export struct {
	CSVPath   string       `mapstructure:"csv_path"`
	Compress  bool         `mapstructure:"compress"`
	StatsPath string       `mapstructure:"stats_path"`
	SQLite    SQLiteExport `mapstructure:"sqlite"`
}

// Config holds all runtime configuration for a genreforge run. Values are
// populated from .genreforge.yaml, GENREFORGE_* env vars, and .env files.
type Config struct {
	GenerationRules GenerationRules `mapstructure:"generation_rules"`
	ValidationRules ValidationRules `mapstructure:"validation_rules"`
	DataSources     DataSources     `mapstructure:"data_sources"`
	Export          Export          `mapstructure:"export"`
}

// Load reads configuration from all sources in order of precedence:
// environment variables, .env files, the config file at path (or
// .genreforge.yaml in the working directory and home directory when path is
// empty), and finally the built-in defaults.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constants.DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logging.Debug().Msg("no config file found, using defaults")
		} else {
			logging.Warn().Err(err).Msg("could not load config file, using defaults")
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		logging.Warn().Err(err).Msg("could not parse config file, using defaults")
		return Default(), nil
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable. It returns the
// first problem found.
func (c *Config) Validate() error {
	if c.GenerationRules.MaxGenres <= 0 {
		return pkgerrors.NewValidationError("generation_rules.max_genres", c.GenerationRules.MaxGenres, "must be positive")
	}
	if c.GenerationRules.HierarchyLevels <= 0 {
		return pkgerrors.NewValidationError("generation_rules.hierarchy_levels", c.GenerationRules.HierarchyLevels, "must be positive")
	}
	if c.GenerationRules.BatchSize <= 0 {
		return pkgerrors.NewValidationError("generation_rules.batch_size", c.GenerationRules.BatchSize, "must be positive")
	}
	if c.ValidationRules.MaxNameLength <= 0 {
		return pkgerrors.NewValidationError("validation_rules.max_name_length", c.ValidationRules.MaxNameLength, "must be positive")
	}
	if t := c.ValidationRules.SimilarityThreshold; t <= 0 || t > 1 {
		return pkgerrors.NewValidationError("validation_rules.similarity_threshold", t, "must be between 0 and 1")
	}
	if _, err := regexp.Compile(c.ValidationRules.PeriodFormat); err != nil {
		return pkgerrors.WrapParse("regexp", "validation_rules.period_format", err)
	}
	if _, err := regexp.Compile(c.ValidationRules.ArtistFormat); err != nil {
		return pkgerrors.WrapParse("regexp", "validation_rules.artist_format", err)
	}

	sources := []struct {
		field string
		items []string
	}{
		{"data_sources.regions", c.DataSources.Regions},
		{"data_sources.eras", c.DataSources.Eras},
		{"data_sources.instruments", c.DataSources.Instruments},
		{"data_sources.base_genres", c.DataSources.BaseGenres},
	}
	for _, s := range sources {
		if len(s.items) == 0 {
			return pkgerrors.NewValidationError(s.field, "", "must not be empty")
		}
	}

	return nil
}

// Vocabulary builds the seed vocabulary described by the data_sources
// section.
func (c *Config) Vocabulary() vocab.Vocabulary {
	return vocab.New(
		vocab.WithRegions(c.DataSources.Regions...),
		vocab.WithEras(c.DataSources.Eras...),
		vocab.WithInstruments(c.DataSources.Instruments...),
		vocab.WithBaseGenres(c.DataSources.BaseGenres...),
	)
}

// loadEnvFiles loads environment variables from .env files before viper
// binds the environment. godotenv never overrides variables that are
// already set, so .env.local is loaded first and wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
