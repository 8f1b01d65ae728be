package output

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/genreforge/genreforge/internal/cmd/globals"
	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// sampleSize is how many list items the non-wide vocabulary table shows.
const sampleSize = 6

// FormatEntries handles the common pattern of formatting taxonomy entries
// for output. Table formats get the column layout; json and yaml get the
// raw entries.
func FormatEntries(entries []genres.Entry, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide:
		outputData = EntriesToTableData(entries, format == FormatWide)
	default:
		outputData = entries
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatVocabulary handles the common pattern of formatting the seed
// vocabulary for output.
func FormatVocabulary(v vocab.Vocabulary, globalFlags *globals.Flags) error {
	format := DetectFormat(globalFlags.Output)
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide:
		outputData = VocabularyToTableData(v, format == FormatWide)
	default:
		outputData = v
	}

	return formatter.Format(os.Stdout, outputData)
}

// EntriesToTableData converts taxonomy entries to table format.
func EntriesToTableData(entries []genres.Entry, wide bool) Data {
	headers := []string{"ID", "NAME", "LVL", "PARENT", "REGION", "PERIOD", "STATUS"}
	if wide {
		headers = append(headers, "LANG", "INSTRUMENTS", "BPM", "TIME SIG", "SOURCE")
	}

	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]

		parent := "-"
		if e.ParentID != 0 {
			parent = strconv.FormatInt(e.ParentID, 10)
		}

		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			strconv.Itoa(e.Level),
			parent,
			e.Region,
			e.Period,
			e.Status.String(),
		}
		if wide {
			row = append(row, e.Language, e.Instruments, e.BPM, e.TimeSignature, e.Source)
		}

		rows = append(rows, row)
	}

	alignment := []Align{
		AlignRight,   // ID
		AlignDefault, // NAME
		AlignCenter,  // LVL
		AlignRight,   // PARENT
		AlignDefault, // REGION
		AlignDefault, // PERIOD
		AlignCenter,  // STATUS
	}
	if wide {
		alignment = append(alignment,
			AlignCenter,  // LANG
			AlignDefault, // INSTRUMENTS
			AlignDefault, // BPM
			AlignCenter,  // TIME SIG
			AlignDefault, // SOURCE
		)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// CountsToTableData converts a label/count distribution to table format.
func CountsToTableData(label string, counts []genres.Count) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Label, strconv.Itoa(c.N)})
	}

	return Data{
		Headers:         []string{label, "COUNT"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}

// ParentsToTableData converts the parent ranking to table format. The
// resolve function maps a parent ID to its display name; it reports false
// for parents that were merged out of the final catalog.
func ParentsToTableData(parents map[int64]int, resolve func(int64) (string, bool)) Data {
	type ranked struct {
		id int64
		n  int
	}
	order := make([]ranked, 0, len(parents))
	for id, n := range parents {
		order = append(order, ranked{id, n})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].n != order[j].n {
			return order[i].n > order[j].n
		}
		return order[i].id < order[j].id
	})

	rows := make([][]string, 0, len(order))
	for _, p := range order {
		name := "-"
		if n, ok := resolve(p.id); ok {
			name = n
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.id, 10),
			name,
			strconv.Itoa(p.n),
		})
	}

	return Data{
		Headers:         []string{"ID", "PARENT", "CHILDREN"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignRight},
	}
}

// ProblemsToTableData converts a validation problem list to table format.
func ProblemsToTableData(problems []string) Data {
	rows := make([][]string, 0, len(problems))
	for i, p := range problems {
		rows = append(rows, []string{strconv.Itoa(i + 1), p})
	}

	return Data{
		Headers:         []string{"#", "PROBLEM"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault},
	}
}

// VocabularyToTableData converts the seed vocabulary to table format. The
// non-wide view samples each list; wide shows every item.
func VocabularyToTableData(v vocab.Vocabulary, wide bool) Data {
	lists := []struct {
		name  string
		items []string
	}{
		{"Regions", v.Regions},
		{"Eras", v.Eras},
		{"Instruments", v.Instruments},
		{"Base Genres", v.BaseGenres},
		{"Patterns: Regional Fusion", v.Patterns.RegionalFusion},
		{"Patterns: Era Genre", v.Patterns.EraGenre},
		{"Patterns: Instrument", v.Patterns.Instrument},
		{"Modifiers: Electronic", v.Modifiers.Electronic},
		{"Modifiers: Traditional", v.Modifiers.Traditional},
		{"Modifiers: Modern", v.Modifiers.Modern},
	}

	rows := make([][]string, 0, len(lists))
	for _, list := range lists {
		rows = append(rows, []string{
			list.name,
			strconv.Itoa(len(list.items)),
			joinSample(list.items, wide),
		})
	}

	return Data{
		Headers:         []string{"LIST", "ITEMS", "VALUES"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignRight, AlignDefault},
	}
}

// joinSample joins list items for display, clipping to a sample unless the
// full list was requested.
func joinSample(items []string, full bool) string {
	if full || len(items) <= sampleSize {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, ... (%d more)", strings.Join(items[:sampleSize], ", "), len(items)-sampleSize)
}
