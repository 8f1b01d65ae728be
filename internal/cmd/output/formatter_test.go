package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/vocab"
)

func TestParseFormat(t *testing.T) {
	valid := []string{"table", "json", "yaml", "wide", "JSON", ""}
	for _, s := range valid {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") should fail")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatJSON)

	data := struct {
		Name string `json:"name"`
	}{Name: "Delta Blues"}

	if err := formatter.Format(&buf, data); err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "Delta Blues"`) {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatYAML)

	data := struct {
		Name string `yaml:"name"`
	}{Name: "Delta Blues"}

	if err := formatter.Format(&buf, data); err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: Delta Blues") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatTable)

	data := Data{
		Headers:         []string{"NAME", "COUNT"},
		Rows:            [][]string{{"Jazz", "42"}},
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}

	if err := formatter.Format(&buf, data); err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "Jazz") {
		t.Errorf("table output missing expected cells: %s", out)
	}
}

func TestEntriesToTableData(t *testing.T) {
	entries := []genres.Entry{
		{ID: 1, Name: "Jazz", Level: 1, Region: "USA", Period: "1950-now", Status: genres.StatusActive},
		{ID: 21, Name: "USA UK Fusion", Level: 3, ParentID: 2, Region: "USA", Period: "1950-now", Status: genres.StatusActive},
	}

	data := EntriesToTableData(entries, false)
	if len(data.Headers) != 7 {
		t.Errorf("base view has %d columns, want 7", len(data.Headers))
	}
	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}
	if data.Rows[0][3] != "-" {
		t.Errorf("root parent cell = %q, want -", data.Rows[0][3])
	}
	if data.Rows[1][3] != "2" {
		t.Errorf("child parent cell = %q, want 2", data.Rows[1][3])
	}

	wide := EntriesToTableData(entries, true)
	if len(wide.Headers) != 12 {
		t.Errorf("wide view has %d columns, want 12", len(wide.Headers))
	}
	if len(wide.Headers) != len(wide.ColumnAlignment) {
		t.Errorf("alignment length %d does not match %d headers",
			len(wide.ColumnAlignment), len(wide.Headers))
	}
}

func TestCountsToTableData(t *testing.T) {
	data := CountsToTableData("LEVEL", []genres.Count{
		{Label: "Level_1", N: 20},
		{Label: "Level_3", N: 1},
	})

	if data.Headers[0] != "LEVEL" {
		t.Errorf("first header = %q, want LEVEL", data.Headers[0])
	}
	if data.Rows[0][1] != "20" {
		t.Errorf("first count = %q, want 20", data.Rows[0][1])
	}
}

func TestParentsToTableData(t *testing.T) {
	parents := map[int64]int{2: 12, 7: 12, 99: 3}
	names := map[int64]string{2: "Jazz", 7: "Folk"}

	data := ParentsToTableData(parents, func(id int64) (string, bool) {
		name, ok := names[id]
		return name, ok
	})

	if len(data.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(data.Rows))
	}
	// Equal counts order by ascending ID.
	if data.Rows[0][1] != "Jazz" || data.Rows[1][1] != "Folk" {
		t.Errorf("unexpected ranking order: %v", data.Rows)
	}
	// Parents merged out of the catalog render as a dash.
	if data.Rows[2][0] != "99" || data.Rows[2][1] != "-" {
		t.Errorf("dangling parent row = %v, want 99 with -", data.Rows[2])
	}
}

func TestVocabularyToTableData(t *testing.T) {
	v := vocab.Default()

	data := VocabularyToTableData(v, false)
	if len(data.Rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(data.Rows))
	}
	// 27 default regions clip to a sample in the non-wide view.
	if !strings.Contains(data.Rows[0][2], "(21 more)") {
		t.Errorf("regions row not sampled: %s", data.Rows[0][2])
	}

	wide := VocabularyToTableData(v, true)
	if !strings.Contains(wide.Rows[0][2], "Irland") {
		t.Errorf("wide regions row missing last item: %s", wide.Rows[0][2])
	}
}
