package genreforge

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	appconfig "github.com/genreforge/genreforge/internal/config"
	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/dedupe"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/logging"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// Option is a function that configures a Forge instance.
type Option func(*config) error

// config holds the assembled settings for a Forge instance.
type config struct {
	app           *appconfig.Config
	logger        *zerolog.Logger
	rand          *rand.Rand
	vocabulary    *vocab.Vocabulary
	similarity    dedupe.Similarity
	similaritySet bool
	threshold     float64
}

func newConfig() *config {
	return &config{
		app:    appconfig.Default(),
		logger: logging.Default(),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithConfig replaces the application configuration, normally one produced
// by the config loader.
func WithConfig(c *appconfig.Config) Option {
	return func(cfg *config) error {
		if c == nil {
			return pkgerrors.NewValidationError("config", nil, "must not be nil")
		}
		cfg.app = c
		return nil
	}
}

// WithLogger sets the logger used for run progress.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return pkgerrors.NewValidationError("logger", nil, "must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithRand sets the random source shared by the generation and enrichment
// stages.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) error {
		if r == nil {
			return pkgerrors.NewValidationError("rand", nil, "must not be nil")
		}
		cfg.rand = r
		return nil
	}
}

// WithSeed derives a deterministic random source from seed. Two forges
// built with the same seed, vocabulary, and options produce identical runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) error {
		cfg.rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithVocabulary overrides the seed vocabulary from the configuration.
func WithVocabulary(v vocab.Vocabulary) Option {
	return func(cfg *config) error {
		cfg.vocabulary = &v
		return nil
	}
}

// WithSimilarity replaces the fuzzy similarity backend used for duplicate
// detection. A nil backend disables fuzzy matching, leaving exact and
// lexical-variant detection in place.
func WithSimilarity(s dedupe.Similarity) Option {
	return func(cfg *config) error {
		cfg.similarity = s
		cfg.similaritySet = true
		return nil
	}
}

// WithSimilarityThreshold overrides the configured duplicate similarity
// threshold.
func WithSimilarityThreshold(t float64) Option {
	return func(cfg *config) error {
		if t <= 0 || t > 1 {
			return pkgerrors.NewValidationError("similarity_threshold", t, "must be between 0 and 1")
		}
		cfg.threshold = t
		return nil
	}
}

// seedVocabulary resolves the vocabulary for a run: an explicit override
// wins over the configuration's data sources.
func (c *config) seedVocabulary() vocab.Vocabulary {
	if c.vocabulary != nil {
		return *c.vocabulary
	}
	return c.app.Vocabulary()
}

// similarityThreshold resolves the duplicate threshold for a run.
func (c *config) similarityThreshold() float64 {
	if c.threshold > 0 {
		return c.threshold
	}
	if t := c.app.ValidationRules.SimilarityThreshold; t > 0 {
		return t
	}
	return constants.DefaultSimilarityThreshold
}

// mergerOptions assembles the duplicate merger configuration.
func (c *config) mergerOptions() []dedupe.Option {
	opts := []dedupe.Option{dedupe.WithThreshold(c.similarityThreshold())}
	if c.similaritySet {
		opts = append(opts, dedupe.WithSimilarity(c.similarity))
	}
	return opts
}

// GenerateOptions configures a single generation run.
type GenerateOptions struct {
	Target    int  // how many candidates the run aims for
	BatchSize int  // candidates processed per batch
	DryRun    bool // compute the result without replacing the catalog
}

// GenerateOption is a function that configures a generation run.
type GenerateOption func(*GenerateOptions)

// WithTarget sets how many candidate genres the run aims for.
func WithTarget(n int) GenerateOption {
	return func(o *GenerateOptions) {
		o.Target = n
	}
}

// WithBatchSize sets how many candidates are processed per batch.
func WithBatchSize(n int) GenerateOption {
	return func(o *GenerateOptions) {
		o.BatchSize = n
	}
}

// WithDryRun computes the full result without replacing the catalog.
func WithDryRun(enabled bool) GenerateOption {
	return func(o *GenerateOptions) {
		o.DryRun = enabled
	}
}

// newGenerateOptions seeds run options from the configuration and applies
// per-run overrides.
func (c *config) newGenerateOptions(opts ...GenerateOption) (*GenerateOptions, error) {
	o := &GenerateOptions{
		Target:    c.app.GenerationRules.MaxGenres,
		BatchSize: c.app.GenerationRules.BatchSize,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.Target <= 0 {
		return nil, pkgerrors.NewValidationError("target", o.Target, "must be positive")
	}
	if o.BatchSize <= 0 {
		return nil, pkgerrors.NewValidationError("batch_size", o.BatchSize, "must be positive")
	}

	return o, nil
}
