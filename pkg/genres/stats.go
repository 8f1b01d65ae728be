package genres

import (
	"fmt"
	"sort"
	"time"

	"github.com/genreforge/genreforge/pkg/constants"
)

// Stats summarizes a generated dataset: size, level and region distribution,
// status breakdown, and the most referenced parent genres.
type Stats struct {
	Total         int            `json:"total_genres" yaml:"total_genres"`
	GeneratedAt   time.Time      `json:"generation_date" yaml:"generation_date"`
	RunID         string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Levels        map[string]int `json:"hierarchy_levels" yaml:"hierarchy_levels"`
	Regions       map[string]int `json:"regions" yaml:"regions"`
	StatusCounts  map[string]int `json:"status_distribution" yaml:"status_distribution"`
	TopParents    map[int64]int  `json:"top_parent_genres" yaml:"top_parent_genres"`
	AvgNameLength float64        `json:"average_name_length" yaml:"average_name_length"`
}

// Count pairs a label with an occurrence count, for sorted presentation.
type Count struct {
	Label string
	N     int
}

// ComputeStats builds dataset statistics from a flat entry list. Regions are
// clipped to the top 20 by count, parents to the top 10.
func ComputeStats(entries []Entry) Stats {
	stats := Stats{
		Total:        len(entries),
		GeneratedAt:  time.Now(),
		Levels:       make(map[string]int),
		Regions:      make(map[string]int),
		StatusCounts: make(map[string]int),
		TopParents:   make(map[int64]int),
	}

	nameLength := 0
	for _, entry := range entries {
		stats.Levels[fmt.Sprintf("Level_%d", entry.Level)]++
		stats.Regions[entry.Region]++
		stats.StatusCounts[entry.Status.String()]++
		if entry.ParentID != 0 {
			stats.TopParents[entry.ParentID]++
		}
		nameLength += len(entry.Name)
	}

	if len(entries) > 0 {
		stats.AvgNameLength = float64(nameLength) / float64(len(entries))
	}

	stats.Regions = topStringCounts(stats.Regions, constants.TopRegionCount)
	stats.TopParents = topInt64Counts(stats.TopParents, constants.TopParentCount)

	return stats
}

// RegionsByCount returns the region distribution sorted by descending count,
// ties broken alphabetically for stable output.
func (s Stats) RegionsByCount() []Count {
	return sortedCounts(s.Regions)
}

// LevelsByName returns the level distribution sorted by level label.
func (s Stats) LevelsByName() []Count {
	counts := make([]Count, 0, len(s.Levels))
	for label, n := range s.Levels {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	return counts
}

// StatusesByCount returns the status distribution sorted by descending count.
func (s Stats) StatusesByCount() []Count {
	return sortedCounts(s.StatusCounts)
}

// ParentsByCount returns the parent ranking sorted by descending child count.
func (s Stats) ParentsByCount() []Count {
	counts := make([]Count, 0, len(s.TopParents))
	for id, n := range s.TopParents {
		counts = append(counts, Count{Label: fmt.Sprintf("%d", id), N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

func sortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for label, n := range m {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

func topStringCounts(m map[string]int, limit int) map[string]int {
	if len(m) <= limit {
		return m
	}
	counts := sortedCounts(m)
	top := make(map[string]int, limit)
	for _, c := range counts[:limit] {
		top[c.Label] = c.N
	}
	return top
}

func topInt64Counts(m map[int64]int, limit int) map[int64]int {
	if len(m) <= limit {
		return m
	}
	type pair struct {
		id int64
		n  int
	}
	pairs := make([]pair, 0, len(m))
	for id, n := range m {
		pairs = append(pairs, pair{id, n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].n != pairs[j].n {
			return pairs[i].n > pairs[j].n
		}
		return pairs[i].id < pairs[j].id
	})
	top := make(map[int64]int, limit)
	for _, p := range pairs[:limit] {
		top[p.id] = p.n
	}
	return top
}
