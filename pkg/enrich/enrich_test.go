package enrich

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/genreforge/genreforge/pkg/genres"
)

func TestPeriod(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Baroque Jazz Fusion", "1600-1750"},
		{"Medieval Chant", "500-1400"},
		{"Modern Classical", "1750-1820"}, // Classical outranks Modern
		{"Contemporary Folk", "2000-now"},
		{"Prehistoric Drums", "40000BC-3000BC"},
		{"Synth Pop", "1980-now"},
		{"Cyber Metal", "1980-now"},
		{"Ethnic Fusion", "1800-now"},
		{"Mystery Music", "1950-now"},
	}
	for _, tt := range tests {
		if got := Period(tt.name); got != tt.want {
			t.Errorf("Period(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRegion(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"USA Blues Revival", "USA"},
		{"UK Garage", "UK"},
		{"España Flamenco Fusion", "España"},
		{"Scandinavian Death Metal", "Scandinavia"},
		{"Latin Jazz", "Latin America"},
		{"Afro-Cuban Rhythms", "Africa"},
		{"Euro Dance", "Europe"},
		{"Dream Pop", "Global"},
	}
	for _, tt := range tests {
		if got := Region(tt.name); got != tt.want {
			t.Errorf("Region(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"USA", "EN"},
		{"Deutschland", "DE"},
		{"Brasil", "PT"},
		{"Latin America", "ES"},
		{"Global", "Multi"},
		{"Atlantis", "EN"},
	}
	for _, tt := range tests {
		if got := Language(tt.region); got != tt.want {
			t.Errorf("Language(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		period string
		want   genres.Status
	}{
		{"Romantic Opera", "1820-1900", genres.StatusExtinct},
		{"Extinct Ritual Music", "1950-now", genres.StatusExtinct},
		{"New Wave Revival", "1600-1900", genres.StatusExtinct}, // extinct outranks emerging
		{"Future Garage", "1950-now", genres.StatusEmerging},
		{"New Orleans Jazz", "1950-now", genres.StatusEmerging},
		{"Deep House", "1980-now", genres.StatusActive},
		{"Classical Sonata", "1750-1820", genres.StatusHistoric},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.name, tt.period); got != tt.want {
			t.Errorf("StatusFor(%q, %q) = %q, want %q", tt.name, tt.period, got, tt.want)
		}
	}
}

func TestInstruments(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		// Style table match, clipped to five distinct instruments.
		{"Jazz Fusion", "Saxophone/Trumpet/Piano/Double Bass/Drums"},
		{"Ambient Dreamscape", "Synthesizer/Field Recordings/Effects/Tape Loops"},
		// Keyword buckets when no style matches.
		{"Acoustic Sessions", "Acoustic Guitar/Electric Guitar"},
		{"Symphonic Choir Works", "Orchestra/Strings/Woodwinds/Brass/Vocals"},
		// Extras appended on top of a style match.
		{"Piano Rock", "Electric Guitar/Bass Guitar/Drums/Vocals/Piano"},
		// Nothing matches at all.
		{"Mystery Sound", "Various"},
	}
	for _, tt := range tests {
		if got := Instruments(tt.name); got != tt.want {
			t.Errorf("Instruments(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBPM(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Doom Metal Ritual", "40-80"}, // Doom Metal outranks Metal
		{"Progressive Metal", "100-200"},
		{"Deep House", "118-135"},
		{"Slow Burn Ballads", "60-90"},
		{"Thrash Attack", "150-200"},
		{"Trap Beats", "140-170"},
		{"Breakbeat Science", "130-150"},
		{"Orchestral Suite", "40-180"},
		{"Mystery Sound", "80-120"},
	}
	for _, tt := range tests {
		if got := BPM(tt.name); got != tt.want {
			t.Errorf("BPM(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTimeSignature(t *testing.T) {
	e := New(WithSeed(11))

	tests := []struct {
		name string
		want string
	}{
		{"Jazz Quartet", "4/4"},
		{"Jazz Waltz", "3/4"},
		{"Swing Blues", "12/8"},
		{"Progressive Metal", "5/4"}, // first uncommon meter in the Metal list
		{"Viennese Waltz", "3/4"},
		{"Military March", "2/4"},
		{"Celtic Jig", "6/8"},
		{"Mystery Sound", "4/4"},
	}
	for _, tt := range tests {
		if got := e.TimeSignature(tt.name); got != tt.want {
			t.Errorf("TimeSignature(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	t.Run("OddMeters", func(t *testing.T) {
		allowed := map[string]bool{"5/4": true, "7/4": true, "7/8": true, "9/8": true}
		for i := 0; i < 20; i++ {
			got := e.TimeSignature("Odd Meter Ensemble")
			if !allowed[got] {
				t.Fatalf("TimeSignature(odd) = %q, not an uncommon meter", got)
			}
		}
	})
}

func TestContributors(t *testing.T) {
	e := New(WithSeed(5))
	namePattern := regexp.MustCompile(`^[A-Za-z]+ [A-Za-z]+ \((\d{4})-(\d{4})?\)$`)

	t.Run("CountsAndFormat", func(t *testing.T) {
		pioneers, artists := e.Contributors("Rock Revival")
		if n := len(strings.Split(pioneers, "/")); n != 5 {
			t.Errorf("pioneers count = %d, want 5", n)
		}
		if n := len(strings.Split(artists, "/")); n != 10 {
			t.Errorf("artists count = %d, want 10", n)
		}
		for _, name := range strings.Split(artists, "/") {
			if !namePattern.MatchString(name) {
				t.Errorf("artist %q does not match the name format", name)
			}
		}
	})

	t.Run("DistinctSamples", func(t *testing.T) {
		_, artists := e.Contributors("Jazz Club")
		seen := make(map[string]bool)
		for _, name := range strings.Split(artists, "/") {
			if seen[name] {
				t.Errorf("artist %q sampled twice", name)
			}
			seen[name] = true
		}
	})

	t.Run("ClassicalBirthYears", func(t *testing.T) {
		pioneers, _ := e.Contributors("Classical Symphony")
		for _, name := range strings.Split(pioneers, "/") {
			m := namePattern.FindStringSubmatch(name)
			if m == nil {
				t.Fatalf("pioneer %q does not match the name format", name)
			}
			birth, _ := strconv.Atoi(m[1])
			if birth < 1600 || birth > 1850 {
				t.Errorf("classical pioneer %q born %d, want 1600-1850", name, birth)
			}
		}
	})
}

func TestWorks(t *testing.T) {
	e := New(WithSeed(13))
	workPattern := regexp.MustCompile(`^(.+) \((\d{4})\)$`)

	works := strings.Split(e.Works("1600-1750"), "/")
	if len(works) != 10 {
		t.Fatalf("works count = %d, want 10", len(works))
	}
	for _, work := range works {
		m := workPattern.FindStringSubmatch(work)
		if m == nil {
			t.Fatalf("work %q does not match the title format", work)
		}
		year, _ := strconv.Atoi(m[2])
		if year < 1600 || year > 2024 {
			t.Errorf("work %q dated %d, want 1600-2024", work, year)
		}
	}

	t.Run("NonNumericStart", func(t *testing.T) {
		for _, work := range strings.Split(e.Works("40000BC-3000BC"), "/") {
			m := workPattern.FindStringSubmatch(work)
			if m == nil {
				t.Fatalf("work %q does not match the title format", work)
			}
			year, _ := strconv.Atoi(m[2])
			if year < 1950 || year > 2024 {
				t.Errorf("work %q dated %d, want 1950-2024", work, year)
			}
		}
	})
}

func TestEnrich(t *testing.T) {
	e := New(WithSeed(7))

	attrs := e.Enrich("Baroque Jazz Fusion", genres.VariantRegionalFusion)

	if attrs.Period != "1600-1750" {
		t.Errorf("Period = %q, want 1600-1750", attrs.Period)
	}
	if attrs.Region != "Global" {
		t.Errorf("Region = %q, want Global", attrs.Region)
	}
	if attrs.Language != "Multi" {
		t.Errorf("Language = %q, want Multi", attrs.Language)
	}
	if attrs.Status != genres.StatusHistoric {
		t.Errorf("Status = %q, want %q", attrs.Status, genres.StatusHistoric)
	}
	if attrs.Instruments != "Saxophone/Trumpet/Piano/Double Bass/Drums" {
		t.Errorf("Instruments = %q", attrs.Instruments)
	}
	if attrs.BPM != "60-180" {
		t.Errorf("BPM = %q, want 60-180", attrs.BPM)
	}
	if attrs.TimeSignature != "4/4" {
		t.Errorf("TimeSignature = %q, want 4/4", attrs.TimeSignature)
	}
	if attrs.Source != "Generated: regional fusion" {
		t.Errorf("Source = %q", attrs.Source)
	}
	if attrs.Pioneers == "" || attrs.Artists == "" || attrs.Works == "" {
		t.Error("sampled fields should not be empty")
	}
}

func TestEnrichDeterminism(t *testing.T) {
	a := New(WithSeed(42)).Enrich("Nordic Folk Electronica", genres.VariantMicro)
	b := New(WithSeed(42)).Enrich("Nordic Folk Electronica", genres.VariantMicro)
	if a != b {
		t.Errorf("same seed produced different attributes:\n%+v\n%+v", a, b)
	}
}

func TestSource(t *testing.T) {
	tests := []struct {
		typ  genres.VariantType
		want string
	}{
		{genres.VariantRegionalFusion, "Generated: regional fusion"},
		{genres.VariantMicro, "Generated: micro genre"},
		{genres.VariantMain, "Generated: main"},
	}
	for _, tt := range tests {
		if got := Source(tt.typ); got != tt.want {
			t.Errorf("Source(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("España", 3); got != "Esp" {
		t.Errorf("truncate España to 3 = %q, want Esp", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q, want unchanged", got)
	}
}
