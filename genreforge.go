package genreforge

import (
	"context"
	"sync"

	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/hierarchy"
)

// Forge generates, consolidates, and serves a music genre taxonomy.
type Forge interface {
	// Generate runs the full generation pipeline and, unless the run is a
	// dry run, replaces the catalog with the consolidated result.
	Generate(ctx context.Context, opts ...GenerateOption) (*Result, error)

	// Entries returns the forge's catalog. The same collection is returned
	// across runs; Generate replaces its contents.
	Entries() *genres.Entries

	// Stats computes dataset statistics over the current catalog.
	Stats() genres.Stats

	// OnBatch registers a callback invoked after every processed batch.
	OnBatch(hook BatchHook)
}

// forge is the internal implementation of the Forge interface.
type forge struct {
	mu      sync.RWMutex
	config  *config
	seq     *hierarchy.Sequence
	entries *genres.Entries
	hooks   *hooks
	lastRun string
}

// New creates a new Forge with the given options. Identifiers keep
// incrementing across runs of the same forge, so successive generations
// never reuse an ID.
func New(opts ...Option) (Forge, error) {
	f := &forge{
		config:  newConfig(),
		seq:     hierarchy.NewSequence(),
		entries: genres.NewEntries(),
		hooks:   newHooks(),
	}

	if err := f.options(opts...); err != nil {
		return nil, err
	}

	if err := f.config.app.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// options applies functional options to the forge configuration.
func (f *forge) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(f.config); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the forge's catalog.
func (f *forge) Entries() *genres.Entries {
	return f.entries
}

// Stats computes dataset statistics over the current catalog.
func (f *forge) Stats() genres.Stats {
	stats := genres.ComputeStats(f.entries.List())

	f.mu.RLock()
	stats.RunID = f.lastRun
	f.mu.RUnlock()

	return stats
}

// OnBatch registers a callback invoked after every processed batch.
func (f *forge) OnBatch(hook BatchHook) {
	f.hooks.OnBatch(hook)
}
