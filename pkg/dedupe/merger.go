// Package dedupe consolidates near-duplicate entries. Groups form around
// the first unprocessed entry in input order: every later entry similar to
// that anchor joins its group, without re-checking similarity between group
// members. This star grouping is deliberately not a transitive closure.
package dedupe

import (
	"strings"

	"github.com/xrash/smetrics"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/genres"
)

// Similarity scores two strings in [0, 1], 1 meaning identical.
type Similarity interface {
	Similarity(a, b string) float64
}

// JaroWinkler is the default fuzzy similarity backend.
type JaroWinkler struct{}

// Similarity implements Similarity with the standard Jaro-Winkler
// parameters.
func (JaroWinkler) Similarity(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}

// synonyms expands region adjectives so spelled-out variants compare
// equal. Lookups are single-step, chains do not cascade.
var synonyms = map[string]string{
	"uk":       "british",
	"british":  "uk",
	"german":   "deutsch",
	"deutsch":  "german",
	"french":   "français",
	"american": "us",
	"us":       "american",
}

// Merger finds and merges similar entries.
type Merger struct {
	threshold  float64
	similarity Similarity
}

// Option defines a function that configures a Merger.
type Option func(*Merger)

// WithThreshold overrides the fuzzy similarity threshold.
func WithThreshold(t float64) Option {
	return func(m *Merger) {
		m.threshold = t
	}
}

// WithSimilarity replaces the fuzzy backend. A nil backend disables the
// fuzzy test entirely, narrowing detection to exact and lexical-variant
// matches.
func WithSimilarity(s Similarity) Option {
	return func(m *Merger) {
		m.similarity = s
	}
}

// New creates a Merger with the Jaro-Winkler backend and the default
// threshold.
func New(opts ...Option) *Merger {
	m := &Merger{
		threshold:  constants.DefaultSimilarityThreshold,
		similarity: JaroWinkler{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Merge consolidates similar entries in a single pass, preserving input
// order. Singleton groups pass through unchanged, so Merge is idempotent.
func (m *Merger) Merge(entries []genres.Entry) []genres.Entry {
	merged := make([]genres.Entry, 0, len(entries))
	processed := make([]bool, len(entries))

	for i := range entries {
		if processed[i] {
			continue
		}
		processed[i] = true

		group := []genres.Entry{entries[i]}
		for j := i + 1; j < len(entries); j++ {
			if processed[j] || !m.similar(entries[i], entries[j]) {
				continue
			}
			group = append(group, entries[j])
			processed[j] = true
		}

		if len(group) > 1 {
			merged = append(merged, mergeGroup(group))
		} else {
			merged = append(merged, entries[i])
		}
	}

	return merged
}

// similar applies the three tests in order: exact name equality, fuzzy
// score above the threshold, lexical-variant word overlap.
func (m *Merger) similar(a, b genres.Entry) bool {
	nameA, nameB := strings.ToLower(a.Name), strings.ToLower(b.Name)

	if nameA == nameB {
		return true
	}
	if m.similarity != nil && m.similarity.Similarity(nameA, nameB) > m.threshold {
		return true
	}
	return lexicalVariants(a.Name, b.Name)
}

// lexicalVariants compares synonym-expanded word sets. Two names are
// variants when the shared words cover at least 70% of either expanded set.
func lexicalVariants(a, b string) bool {
	wordsA := expandWords(a)
	wordsB := expandWords(b)

	common := 0
	for w := range wordsA {
		if wordsB[w] {
			common++
		}
	}

	return float64(common) >= float64(len(wordsA))*0.7 ||
		float64(common) >= float64(len(wordsB))*0.7
}

func expandWords(name string) map[string]bool {
	words := strings.Fields(strings.ToLower(name))

	set := make(map[string]bool, len(words)*2)
	for _, w := range words {
		set[w] = true
	}
	for _, w := range words {
		if syn, ok := synonyms[w]; ok {
			set[syn] = true
		}
	}
	return set
}

// mergeGroup keeps the first member verbatim except Source, which combines
// the first distinct member sources.
func mergeGroup(group []genres.Entry) genres.Entry {
	merged := group[0]

	seen := make(map[string]bool, len(group))
	sources := make([]string, 0, constants.MergedSourceLimit)
	for _, e := range group {
		if seen[e.Source] {
			continue
		}
		seen[e.Source] = true
		sources = append(sources, e.Source)
		if len(sources) == constants.MergedSourceLimit {
			break
		}
	}
	merged.Source = strings.Join(sources, " / ")

	return merged
}
