// Package hierarchy places generated candidates into a genre tree. Each
// assignment pass seeds a fixed set of root categories, resolves a parent
// for every candidate by name lookup, and computes a depth level from the
// candidate's variant type and component count.
package hierarchy

import (
	"sort"
	"strings"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/genres"
)

// RootGenres is the fixed ordered set of level 1 categories seeded on every
// Assign call.
var RootGenres = []string{
	"Blues", "Jazz", "Rock", "Electronic", "Hip-Hop", "Classical",
	"Folk", "Country", "Metal", "Pop", "Reggae", "Soul", "Funk",
	"Punk", "Ambient", "Experimental", "World Music", "Latin",
	"R&B", "Gospel",
}

// EnrichFunc derives the attribute set for a genre name.
type EnrichFunc func(name string, typ genres.VariantType) genres.Attributes

// Builder assigns ids, parents, and levels to candidates. Id issuance is
// the only state carried across Assign calls; name and level registries are
// local to each call, so every batch re-seeds the root categories and later
// duplicates collapse in the merge stage.
type Builder struct {
	seq *Sequence
}

// NewBuilder creates a Builder around the given id allocator. A nil
// allocator gets a fresh one.
func NewBuilder(seq *Sequence) *Builder {
	if seq == nil {
		seq = NewSequence()
	}
	return &Builder{seq: seq}
}

// Assign turns candidates into entries. Candidates are processed in
// ascending component count order, so simpler names register before the
// composed names that may resolve them as parents. Candidates whose
// computed level exceeds the maximum depth are dropped.
func (b *Builder) Assign(candidates []genres.Candidate, enrich EnrichFunc) []genres.Entry {
	entries := make([]genres.Entry, 0, len(RootGenres)+len(candidates))
	idByName := make(map[string]int64, len(RootGenres)+len(candidates))
	levelByID := make(map[int64]int, len(RootGenres)+len(candidates))

	for _, root := range RootGenres {
		entry := genres.Entry{
			ID:    b.seq.Next(),
			Name:  root,
			Level: constants.MinHierarchyLevel,
		}.WithAttributes(enrich(root, genres.VariantMain))

		entries = append(entries, entry)
		idByName[root] = entry.ID
		levelByID[entry.ID] = entry.Level
	}

	sorted := make([]genres.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Components) < len(sorted[j].Components)
	})

	for _, c := range sorted {
		parentID, parentLevel := resolveParent(c, idByName, levelByID)
		level := assignLevel(c, parentID, parentLevel)
		if level > constants.MaxHierarchyLevel {
			continue
		}

		entry := genres.Entry{
			ID:       b.seq.Next(),
			Name:     truncateName(c.Name),
			Level:    level,
			ParentID: parentID,
		}.WithAttributes(enrich(c.Name, c.Type))

		entries = append(entries, entry)
		// Re-registering a name points later candidates at this entry.
		idByName[entry.Name] = entry.ID
		levelByID[entry.ID] = entry.Level
	}

	return entries
}

// resolveParent matches component tokens in order against the registered
// names, then falls back to the first root name contained in the candidate
// name. Unmatched candidates stay orphans with parent id 0.
func resolveParent(c genres.Candidate, idByName map[string]int64, levelByID map[int64]int) (int64, int) {
	for _, component := range c.Components {
		if id, ok := idByName[component]; ok {
			return id, levelByID[id]
		}
	}

	lower := strings.ToLower(c.Name)
	for _, root := range RootGenres {
		if strings.Contains(lower, strings.ToLower(root)) {
			id := idByName[root]
			return id, levelByID[id]
		}
	}

	return 0, 0
}

// assignLevel computes the depth for a candidate. Orphans become new level 1
// entries. Fusion candidates always carry three components, so they fall to
// the final clause rather than the two-component row they share with era
// variants.
func assignLevel(c genres.Candidate, parentID int64, parentLevel int) int {
	if parentID == 0 {
		return constants.MinHierarchyLevel
	}

	n := len(c.Components)
	switch {
	case (c.Type == genres.VariantEra || c.Type == genres.VariantRegionalFusion) && n <= 2:
		return min(parentLevel+1, 2)
	case (c.Type == genres.VariantInstrument || c.Type == genres.VariantElectronic) && n <= 3:
		return min(parentLevel+1, 3)
	case (c.Type == genres.VariantTraditional || c.Type == genres.VariantMicro) && n <= 4:
		return min(parentLevel+2, 4)
	}
	return min(parentLevel+2, constants.MaxHierarchyLevel)
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= constants.MaxNameLength {
		return name
	}
	return string(runes[:constants.MaxNameLength])
}
