package config

import (
	"github.com/spf13/viper"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/quality"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// defaultArtistPattern matches contributor entries like "Ella James (1920-1985)".
const defaultArtistPattern = `^.+ \(\d{4}-\d{4}\)$`

// Default returns the built-in configuration.
func Default() *Config {
	seeds := vocab.Default()

	return &Config{
		GenerationRules: GenerationRules{
			MaxGenres:       constants.DefaultMaxGenres,
			HierarchyLevels: constants.DefaultHierarchyLevels,
			BatchSize:       constants.DefaultBatchSize,
		},
		ValidationRules: ValidationRules{
			PeriodFormat:        quality.DefaultPeriodPattern,
			ArtistFormat:        defaultArtistPattern,
			MaxNameLength:       constants.MaxNameLength,
			SimilarityThreshold: constants.DefaultSimilarityThreshold,
		},
		DataSources: DataSources{
			Regions:     seeds.Regions,
			Eras:        seeds.Eras,
			Instruments: seeds.Instruments,
			BaseGenres:  seeds.BaseGenres,
		},
		Export: Export{
			CSVPath:   constants.DefaultCSVPath,
			Compress:  false,
			StatsPath: constants.DefaultStatsPath,
			SQLite: SQLiteExport{
				Enabled: false,
				Path:    constants.DefaultSQLitePath,
			},
		},
	}
}

// setDefaults registers every configuration key with viper so environment
// overrides resolve even when no config file is present.
func setDefaults(v *viper.Viper) {
	seeds := vocab.Default()

	v.SetDefault("generation_rules.max_genres", constants.DefaultMaxGenres)
	v.SetDefault("generation_rules.hierarchy_levels", constants.DefaultHierarchyLevels)
	v.SetDefault("generation_rules.batch_size", constants.DefaultBatchSize)

	v.SetDefault("validation_rules.period_format", quality.DefaultPeriodPattern)
	v.SetDefault("validation_rules.artist_format", defaultArtistPattern)
	v.SetDefault("validation_rules.max_name_length", constants.MaxNameLength)
	v.SetDefault("validation_rules.similarity_threshold", constants.DefaultSimilarityThreshold)

	v.SetDefault("data_sources.regions", seeds.Regions)
	v.SetDefault("data_sources.eras", seeds.Eras)
	v.SetDefault("data_sources.instruments", seeds.Instruments)
	v.SetDefault("data_sources.base_genres", seeds.BaseGenres)

	v.SetDefault("export.csv_path", constants.DefaultCSVPath)
	v.SetDefault("export.compress", false)
	v.SetDefault("export.stats_path", constants.DefaultStatsPath)
	v.SetDefault("export.sqlite.enabled", false)
	v.SetDefault("export.sqlite.path", constants.DefaultSQLitePath)
}
