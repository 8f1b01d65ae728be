package genreforge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	appconfig "github.com/genreforge/genreforge/internal/config"
	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/logging"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// testVocabulary trims every seed list so the deterministic strategies
// produce exactly 23 candidates: 2 regional fusions, 4 era variants, 2
// instrument variants, 5 electronic variants, and 10 traditional variants.
// A 23-candidate run therefore never reaches the random micro genre
// strategy.
func testVocabulary() vocab.Vocabulary {
	return vocab.New(
		vocab.WithRegions("USA", "UK"),
		vocab.WithEras("Baroque"),
		vocab.WithInstruments("Piano/Klavier"),
		vocab.WithBaseGenres("Jazz"),
	)
}

// newTestForge builds a forge with a quiet logger and the fuzzy similarity
// backend disabled, so merge outcomes follow only the exact and
// lexical-variant rules.
func newTestForge(t *testing.T, opts ...Option) Forge {
	t.Helper()

	opts = append([]Option{
		WithSeed(1),
		WithLogger(logging.NewNopLogger()),
		WithVocabulary(testVocabulary()),
		WithSimilarity(nil),
	}, opts...)

	f, err := New(opts...)
	if err != nil {
		t.Fatalf("Failed to create forge: %v", err)
	}
	return f
}

// TestGenerateCatalog runs the full pipeline over the trimmed vocabulary and
// checks the consolidated catalog in detail. The word-overlap merge rule
// lets the single-word root "Jazz" absorb every candidate whose name
// contains the word, so of the 23 candidates only "USA UK Fusion" survives
// alongside the 20 roots.
func TestGenerateCatalog(t *testing.T) {
	forge := newTestForge(t)

	result, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Generated != 43 {
		t.Errorf("Generated = %d, want 43 (20 roots + 23 candidates)", result.Generated)
	}
	if result.ValidationErrors != 0 {
		t.Errorf("ValidationErrors = %d, want 0", result.ValidationErrors)
	}
	if result.DuplicatesRemoved != 22 {
		t.Errorf("DuplicatesRemoved = %d, want 22", result.DuplicatesRemoved)
	}
	if result.Final != 21 {
		t.Errorf("Final = %d, want 21", result.Final)
	}
	if len(result.Problems) != 0 {
		t.Errorf("Problems = %v, want none", result.Problems)
	}
	if result.DryRun {
		t.Error("DryRun = true for a regular run")
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}

	entries := forge.Entries()
	if entries.Len() != 21 {
		t.Fatalf("Entries().Len() = %d, want 21", entries.Len())
	}
	if roots := entries.Roots(); len(roots) != 20 {
		t.Errorf("Roots() returned %d entries, want 20", len(roots))
	}

	list := entries.List()
	if list[0].Name != "Blues" {
		t.Errorf("First entry = %q, want Blues", list[0].Name)
	}
	if list[20].Name != "USA UK Fusion" {
		t.Errorf("Last entry = %q, want USA UK Fusion", list[20].Name)
	}

	// The fusion entry keeps its hierarchy position from assignment:
	// level 3 under the Jazz root.
	fusion, ok := entries.Get(32)
	if !ok {
		t.Fatal("Fusion entry with ID 32 not found")
	}
	if fusion.Level != 3 {
		t.Errorf("Fusion level = %d, want 3", fusion.Level)
	}
	if fusion.ParentID != 2 {
		t.Errorf("Fusion parent = %d, want 2 (Jazz)", fusion.ParentID)
	}
	if fusion.Region != "USA" {
		t.Errorf("Fusion region = %q, want USA", fusion.Region)
	}
	if fusion.Language != "EN" {
		t.Errorf("Fusion language = %q, want EN", fusion.Language)
	}
	if fusion.Source != "Generated: regional fusion" {
		t.Errorf("Fusion source = %q", fusion.Source)
	}

	// The Jazz root absorbed era, instrument, electronic, fusion hybrid,
	// and traditional candidates; its source keeps the first three
	// distinct strategies in absorption order.
	jazz, ok := entries.Get(2)
	if !ok {
		t.Fatal("Jazz root with ID 2 not found")
	}
	wantSource := "Generated: main / Generated: era variant / Generated: instrument based"
	if jazz.Source != wantSource {
		t.Errorf("Jazz source = %q, want %q", jazz.Source, wantSource)
	}

	stats := forge.Stats()
	if stats.Total != 21 {
		t.Errorf("Stats total = %d, want 21", stats.Total)
	}
	if stats.RunID != result.RunID {
		t.Errorf("Stats run id = %q, want %q", stats.RunID, result.RunID)
	}
	if stats.Levels["Level_1"] != 20 {
		t.Errorf("Level_1 count = %d, want 20", stats.Levels["Level_1"])
	}
	if stats.Levels["Level_3"] != 1 {
		t.Errorf("Level_3 count = %d, want 1", stats.Levels["Level_3"])
	}
	if stats.TopParents[2] != 1 {
		t.Errorf("Jazz child count = %d, want 1", stats.TopParents[2])
	}
	if stats.Regions["Global"] != 19 {
		t.Errorf("Global region count = %d, want 19", stats.Regions["Global"])
	}
	if stats.Regions["USA"] != 1 {
		t.Errorf("USA region count = %d, want 1", stats.Regions["USA"])
	}

	fmt.Printf("Generation completed: %s\n", result.Summary())
}

// TestGenerateRejectsInvalidPeriods swaps the era list for one whose
// inferred period cannot pass validation. All four era variants are dropped
// during batch validation and never reach the catalog.
func TestGenerateRejectsInvalidPeriods(t *testing.T) {
	forge := newTestForge(t, WithVocabulary(vocab.New(
		vocab.WithRegions("USA", "UK"),
		vocab.WithEras("Prehistoric"),
		vocab.WithInstruments("Piano/Klavier"),
		vocab.WithBaseGenres("Jazz"),
	)))

	result, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Generated != 39 {
		t.Errorf("Generated = %d, want 39", result.Generated)
	}
	if result.ValidationErrors != 4 {
		t.Errorf("ValidationErrors = %d, want 4", result.ValidationErrors)
	}
	if result.DuplicatesRemoved != 18 {
		t.Errorf("DuplicatesRemoved = %d, want 18", result.DuplicatesRemoved)
	}
	if result.Final != 21 {
		t.Errorf("Final = %d, want 21", result.Final)
	}

	forge.Entries().ForEach(func(e genres.Entry) bool {
		if strings.Contains(e.Name, "Prehistoric") {
			t.Errorf("Catalog contains rejected entry %q", e.Name)
		}
		return true
	})
}

// TestGenerateDeterministic verifies that two forges built from the same
// seed produce identical catalogs. The trimmed vocabulary yields 75
// deterministic candidates per call, so a 100-candidate batch fills the
// remaining quota from the randomly assembled micro genre strategy.
func TestGenerateDeterministic(t *testing.T) {
	run := func() (Forge, *Result) {
		f, err := New(
			WithSeed(42),
			WithLogger(logging.NewNopLogger()),
			WithVocabulary(vocab.New(
				vocab.WithRegions("USA", "UK"),
				vocab.WithBaseGenres("Jazz"),
			)),
		)
		if err != nil {
			t.Fatalf("Failed to create forge: %v", err)
		}
		result, err := f.Generate(context.Background(), WithTarget(100), WithBatchSize(100))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return f, result
	}

	forgeA, resultA := run()
	forgeB, resultB := run()

	if resultA.RunID == resultB.RunID {
		t.Error("Run ids should differ between runs")
	}
	if resultA.Generated != resultB.Generated {
		t.Errorf("Generated differs: %d vs %d", resultA.Generated, resultB.Generated)
	}
	if resultA.Final != resultB.Final {
		t.Errorf("Final differs: %d vs %d", resultA.Final, resultB.Final)
	}

	listA := forgeA.Entries().List()
	listB := forgeB.Entries().List()
	if len(listA) != len(listB) {
		t.Fatalf("Catalog sizes differ: %d vs %d", len(listA), len(listB))
	}
	for i := range listA {
		if listA[i] != listB[i] {
			t.Fatalf("Entry %d differs:\n%+v\n%+v", i, listA[i], listB[i])
		}
	}
}

// TestGenerateDryRun checks that a dry run computes the full result without
// touching the catalog, while still consuming ids, so the following real
// run continues the sequence.
func TestGenerateDryRun(t *testing.T) {
	forge := newTestForge(t)

	dry, err := forge.Generate(context.Background(),
		WithTarget(23), WithBatchSize(23), WithDryRun(true))
	if err != nil {
		t.Fatalf("Dry run failed: %v", err)
	}

	if !dry.DryRun {
		t.Error("DryRun flag not set on result")
	}
	if dry.Final != 21 {
		t.Errorf("Dry run final = %d, want 21", dry.Final)
	}
	if forge.Entries().Len() != 0 {
		t.Errorf("Catalog has %d entries after dry run, want 0", forge.Entries().Len())
	}
	if stats := forge.Stats(); stats.RunID != "" || stats.Total != 0 {
		t.Errorf("Stats after dry run = %+v, want empty", stats)
	}
	if !strings.Contains(dry.Summary(), "(dry run)") {
		t.Errorf("Summary %q does not mention dry run", dry.Summary())
	}

	// The dry run consumed ids 1-43, so the real run's entries start at 44
	// and its fusion entry lands on id 75.
	real, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if forge.Entries().Len() != 21 {
		t.Fatalf("Catalog has %d entries, want 21", forge.Entries().Len())
	}
	if forge.Entries().Exists(32) {
		t.Error("Catalog contains id 32 from the dry run")
	}
	fusion, ok := forge.Entries().Get(75)
	if !ok {
		t.Fatal("Fusion entry with ID 75 not found")
	}
	if fusion.Name != "USA UK Fusion" {
		t.Errorf("Entry 75 = %q, want USA UK Fusion", fusion.Name)
	}
	if stats := forge.Stats(); stats.RunID != real.RunID {
		t.Errorf("Stats run id = %q, want %q", stats.RunID, real.RunID)
	}
}

// TestGenerateCanceled verifies that cancellation surfaces the context error
// and leaves the previous catalog in place.
func TestGenerateCanceled(t *testing.T) {
	forge := newTestForge(t)

	first, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := forge.Generate(ctx, WithTarget(23), WithBatchSize(23))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate error = %v, want context.Canceled", err)
	}
	if result != nil {
		t.Errorf("Expected nil result on cancellation, got %+v", result)
	}

	if forge.Entries().Len() != 21 {
		t.Errorf("Catalog has %d entries after canceled run, want 21", forge.Entries().Len())
	}
	if stats := forge.Stats(); stats.RunID != first.RunID {
		t.Errorf("Stats run id = %q, want %q from the completed run", stats.RunID, first.RunID)
	}
}

// TestGenerateOptionValidation rejects non-positive run parameters.
func TestGenerateOptionValidation(t *testing.T) {
	forge := newTestForge(t)

	tests := []struct {
		name string
		opts []GenerateOption
	}{
		{"ZeroTarget", []GenerateOption{WithTarget(0)}},
		{"NegativeTarget", []GenerateOption{WithTarget(-5)}},
		{"NegativeBatchSize", []GenerateOption{WithTarget(10), WithBatchSize(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := forge.Generate(context.Background(), tt.opts...)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if result != nil {
				t.Errorf("Expected nil result, got %+v", result)
			}
		})
	}
}

// TestNewValidation rejects invalid construction options and invalid
// application configuration.
func TestNewValidation(t *testing.T) {
	badConfig := appconfig.Default()
	badConfig.GenerationRules.MaxGenres = 0

	tests := []struct {
		name string
		opts []Option
	}{
		{"NilConfig", []Option{WithConfig(nil)}},
		{"NilLogger", []Option{WithLogger(nil)}},
		{"NilRand", []Option{WithRand(nil)}},
		{"ZeroThreshold", []Option{WithSimilarityThreshold(0)}},
		{"ThresholdAboveOne", []Option{WithSimilarityThreshold(1.5)}},
		{"InvalidAppConfig", []Option{WithConfig(badConfig)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); err == nil {
				t.Fatal("Expected error, got nil")
			}
		})
	}
}

// TestWithConfigVocabulary drives the seed vocabulary through the
// application configuration instead of an explicit override.
func TestWithConfigVocabulary(t *testing.T) {
	cfg := appconfig.Default()
	cfg.DataSources = appconfig.DataSources{
		Regions:     []string{"USA", "UK"},
		Eras:        []string{"Baroque"},
		Instruments: []string{"Piano/Klavier"},
		BaseGenres:  []string{"Jazz"},
	}

	forge, err := New(
		WithSeed(1),
		WithLogger(logging.NewNopLogger()),
		WithConfig(cfg),
		WithSimilarity(nil),
	)
	if err != nil {
		t.Fatalf("Failed to create forge: %v", err)
	}

	result, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Final != 21 {
		t.Errorf("Final = %d, want 21", result.Final)
	}
	if fusion, ok := forge.Entries().Get(32); !ok || fusion.Name != "USA UK Fusion" {
		t.Errorf("Entry 32 = %+v, want USA UK Fusion", fusion)
	}
}

// TestOnBatch verifies that batch hooks fire once per batch with the batch
// bounds and validation outcome.
func TestOnBatch(t *testing.T) {
	forge, err := New(
		WithSeed(1),
		WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		t.Fatalf("Failed to create forge: %v", err)
	}

	var events []BatchEvent
	forge.OnBatch(func(event BatchEvent) {
		events = append(events, event)
	})

	if _, err := forge.Generate(context.Background(), WithTarget(50), WithBatchSize(20)); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Each batch carries its 20 re-seeded roots plus the batch candidates,
	// and the default vocabulary's fusion names all validate.
	want := []BatchEvent{
		{From: 0, To: 20, Valid: 40, Rejected: 0},
		{From: 20, To: 40, Valid: 40, Rejected: 0},
		{From: 40, To: 50, Valid: 30, Rejected: 0},
	}
	if len(events) != len(want) {
		t.Fatalf("Got %d batch events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

// TestGenerateLogsSummary captures the run log and checks the completion
// entries are tagged with the run id.
func TestGenerateLogsSummary(t *testing.T) {
	logger := logging.NewTestLogger(t)

	forge := newTestForge(t, WithLogger(logger.Logger))

	result, err := forge.Generate(context.Background(), WithTarget(23), WithBatchSize(23))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	logger.AssertContains(t, "Generating genre taxonomy")
	logger.AssertContains(t, "Generation complete")
	logger.AssertContains(t, result.RunID)
}

// TestResultSummary checks the derived result accessors.
func TestResultSummary(t *testing.T) {
	result := &Result{
		Final:             120,
		DuplicatesRemoved: 30,
		ValidationErrors:  4,
		Elapsed:           2 * time.Second,
	}

	want := "120 genres in 2.0s (30 duplicates merged, 4 validation errors)"
	if got := result.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if got := result.Rate(); got != 60 {
		t.Errorf("Rate() = %v, want 60", got)
	}

	result.DryRun = true
	if !strings.Contains(result.Summary(), "(dry run)") {
		t.Errorf("Summary() = %q, missing dry run marker", result.Summary())
	}

	zero := &Result{}
	if got := zero.Rate(); got != 0 {
		t.Errorf("Rate() on zero elapsed = %v, want 0", got)
	}
}
