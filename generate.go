//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/genreforge/genreforge --repository.default-branch master --repository.path /

// Package genreforge synthesizes large music genre taxonomies from small
// seed vocabularies. Candidate names are produced combinatorially, enriched
// with inferred attributes, assigned hierarchy positions, validated, and
// merged free of duplicates before they land in the catalog.
package genreforge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/dedupe"
	"github.com/genreforge/genreforge/pkg/enrich"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/generate"
	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/hierarchy"
	"github.com/genreforge/genreforge/pkg/quality"
)

// Generate runs the full pipeline: batched candidate generation, attribute
// enrichment, hierarchy assignment, validation, duplicate merging, and a
// final validation pass over the merged set. Cancellation is checked
// between batches. A failed run leaves the previous catalog untouched.
func (f *forge) Generate(ctx context.Context, opts ...GenerateOption) (result *Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// A stage panic must not take the process down or leave a partial
	// catalog behind.
	defer func() {
		if r := recover(); r != nil {
			f.config.logger.Error().Interface("panic", r).Msg("Generation aborted")
			result = nil
			err = pkgerrors.NewGenerationError("pipeline", fmt.Sprintf("unexpected failure: %v", r), nil)
		}
	}()

	// Step 1: Resolve run options
	options, err := f.config.newGenerateOptions(opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	logger := f.config.logger.With().Str("run_id", runID).Logger()

	logger.Info().
		Int("target", options.Target).
		Int("batch_size", options.BatchSize).
		Bool("dry_run", options.DryRun).
		Msg("Generating genre taxonomy")

	// Step 2: Build the pipeline stages
	generator, err := generate.New(f.config.seedVocabulary(), generate.WithRand(f.config.rand))
	if err != nil {
		return nil, err
	}
	enricher := enrich.New(enrich.WithRand(f.config.rand))
	builder := hierarchy.NewBuilder(f.seq)
	validator, err := quality.New(
		quality.WithMaxNameLength(f.config.app.ValidationRules.MaxNameLength),
		quality.WithPeriodPattern(f.config.app.ValidationRules.PeriodFormat),
	)
	if err != nil {
		return nil, err
	}
	merger := dedupe.New(f.config.mergerOptions()...)

	// Step 3: Generate, enrich, and validate candidates in batches
	collected := make([]genres.Entry, 0, options.Target)
	rejected := 0
	for batchStart := 0; batchStart < options.Target; batchStart += options.BatchSize {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("collected", len(collected)).Msg("Generation canceled")
			return nil, err
		}

		batchEnd := min(batchStart+options.BatchSize, options.Target)
		logger.Debug().Int("from", batchStart).Int("to", batchEnd).Msg("Processing batch")

		candidates := generator.Generate(batchEnd - batchStart)
		entries := builder.Assign(candidates, enricher.Enrich)
		valid, problems := validator.CheckBatch(entries)
		if len(problems) > 0 {
			logger.Warn().Int("errors", len(problems)).Msg("Validation errors in batch")
		}

		collected = append(collected, valid...)
		rejected += len(entries) - len(valid)
		f.hooks.triggerBatch(BatchEvent{
			From:     batchStart,
			To:       batchEnd,
			Valid:    len(valid),
			Rejected: len(entries) - len(valid),
		})
	}
	logger.Info().
		Int("genres", len(collected)).
		Int("rejected", rejected).
		Msg("Generation phase complete")

	// Step 4: Merge duplicates
	merged := merger.Merge(collected)
	duplicates := len(collected) - len(merged)
	logger.Info().Int("duplicates_removed", duplicates).Msg("Merged duplicate genres")

	// Step 5: Re-validate the merged set
	final, problems := validator.CheckBatch(merged)
	if len(problems) > 0 {
		logger.Warn().
			Int("errors", len(problems)).
			Strs("first", clipProblems(problems)).
			Msg("Validation errors found")
	}

	// Step 6: Replace the catalog
	if !options.DryRun {
		f.entries.ReplaceAll(final)
		f.mu.Lock()
		f.lastRun = runID
		f.mu.Unlock()
	}

	elapsed := time.Since(start)
	result = &Result{
		RunID:             runID,
		Generated:         len(collected),
		DuplicatesRemoved: duplicates,
		ValidationErrors:  rejected,
		Final:             len(final),
		Problems:          clipProblems(problems),
		Elapsed:           elapsed,
		DryRun:            options.DryRun,
	}

	logger.Info().
		Int("genres", result.Final).
		Dur("elapsed", elapsed).
		Float64("per_second", result.Rate()).
		Msg("Generation complete")

	return result, nil
}

// clipProblems copies the first few problems for reporting.
func clipProblems(problems []string) []string {
	n := min(len(problems), constants.MaxReportedProblems)
	return append([]string(nil), problems[:n]...)
}
