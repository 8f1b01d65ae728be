package enrich

import (
	"strings"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/genres"
)

type periodRule struct {
	era    string
	period string
}

// periodRules maps era keywords to period strings. First match wins, so
// Classical is resolved before Modern can catch "Modern Classical".
var periodRules = []periodRule{
	{"Ancient", "3000BC-500AD"},
	{"Medieval", "500-1400"},
	{"Renaissance", "1400-1600"},
	{"Baroque", "1600-1750"},
	{"Classical", "1750-1820"},
	{"Romantic", "1820-1900"},
	{"Modern", "1900-2000"},
	{"Contemporary", "2000-now"},
	{"Electronic", "1960-now"},
	{"Digital", "1990-now"},
	{"Prehistoric", "40000BC-3000BC"},
}

// regionNames are matched literally against the genre name before the
// broader keyword buckets run.
var regionNames = []string{
	"USA", "UK", "Deutschland", "France", "Italia", "España",
	"Japan", "Korea", "China", "India", "Brasil", "Africa",
}

var languageByRegion = map[string]string{
	"USA":           "EN",
	"UK":            "EN",
	"Deutschland":   "DE",
	"France":        "FR",
	"Italia":        "IT",
	"España":        "ES",
	"Japan":         "JA",
	"Korea":         "KO",
	"China":         "ZH",
	"India":         "HI",
	"Brasil":        "PT",
	"Russia":        "RU",
	"Global":        "Multi",
	"Africa":        "Multi",
	"Latin America": "ES",
}

type instrumentRule struct {
	genre string
	list  []string
}

var instrumentRules = []instrumentRule{
	{"Electronic", []string{"Synthesizer", "Drum Machine", "Sampler", "Computer", "Sequencer"}},
	{"Rock", []string{"Electric Guitar", "Bass Guitar", "Drums", "Vocals"}},
	{"Jazz", []string{"Saxophone", "Trumpet", "Piano", "Double Bass", "Drums", "Clarinet"}},
	{"Classical", []string{"Orchestra", "Piano", "Violin", "Cello", "Flute", "Oboe"}},
	{"Folk", []string{"Acoustic Guitar", "Fiddle", "Harmonica", "Banjo", "Mandolin"}},
	{"Hip-Hop", []string{"Turntables", "MPC", "Vocals", "Sampler", "808"}},
	{"Metal", []string{"Electric Guitar", "Bass Guitar", "Double Bass Drum", "Vocals"}},
	{"Blues", []string{"Electric Guitar", "Acoustic Guitar", "Harmonica", "Piano", "Slide Guitar", "Vocals"}},
	{"Country", []string{"Acoustic Guitar", "Steel Guitar", "Fiddle", "Banjo", "Vocals"}},
	{"Reggae", []string{"Bass Guitar", "Drums", "Electric Guitar", "Keyboards", "Vocals"}},
	{"Soul", []string{"Vocals", "Electric Guitar", "Bass", "Drums", "Organ", "Horns"}},
	{"Funk", []string{"Bass Guitar", "Electric Guitar", "Drums", "Synthesizer", "Horns"}},
	{"Punk", []string{"Electric Guitar", "Bass Guitar", "Drums", "Vocals"}},
	{"Ambient", []string{"Synthesizer", "Field Recordings", "Effects", "Tape Loops"}},
	{"Pop", []string{"Vocals", "Synthesizer", "Drums", "Guitar", "Bass"}},
}

type bpmRule struct {
	genre string
	bpm   string
}

// bpmRules orders specific styles before their broader families, so Doom
// Metal resolves before Metal.
var bpmRules = []bpmRule{
	{"Ambient", "60-80"},
	{"Doom Metal", "40-80"},
	{"Hip-Hop", "85-115"},
	{"House", "118-135"},
	{"Techno", "120-150"},
	{"Drum & Bass", "160-180"},
	{"Dubstep", "138-142"},
	{"Trance", "128-140"},
	{"Blues", "60-120"},
	{"Jazz", "60-180"},
	{"Rock", "110-140"},
	{"Punk", "150-200"},
	{"Metal", "100-200"},
	{"Classical", "40-200"},
	{"Folk", "80-120"},
	{"Country", "80-120"},
	{"Reggae", "60-90"},
	{"Soul", "60-100"},
	{"Funk", "90-120"},
	{"Pop", "100-130"},
}

type meterRule struct {
	genre      string
	signatures []string
}

// meterRules lists common signatures per style, head first.
var meterRules = []meterRule{
	{"Jazz", []string{"4/4", "3/4", "5/4", "7/4", "6/8"}},
	{"Classical", []string{"4/4", "3/4", "2/4", "6/8", "3/8", "5/4"}},
	{"Rock", []string{"4/4", "3/4", "6/8"}},
	{"Blues", []string{"4/4", "12/8", "6/8"}},
	{"Folk", []string{"4/4", "3/4", "6/8", "2/4"}},
	{"Electronic", []string{"4/4", "3/4"}},
	{"Metal", []string{"4/4", "3/4", "5/4", "7/8", "9/8"}},
	{"Punk", []string{"4/4", "3/4"}},
	{"Hip-Hop", []string{"4/4"}},
	{"Reggae", []string{"4/4"}},
	{"Country", []string{"4/4", "3/4", "2/4"}},
	{"Pop", []string{"4/4", "3/4"}},
}

var oddMeters = []string{"5/4", "7/4", "7/8", "9/8"}

// Period derives the active period from era keywords in the name.
func Period(name string) string {
	lower := strings.ToLower(name)

	for _, r := range periodRules {
		if strings.Contains(lower, strings.ToLower(r.era)) {
			return r.period
		}
	}

	switch {
	case containsAny(lower, "electronic", "synth", "digital", "cyber"):
		return "1980-now"
	case containsAny(lower, "traditional", "folk", "ethnic"):
		return "1800-now"
	case containsAny(lower, "classical", "baroque", "romantic"):
		return "1600-1900"
	}
	return "1950-now"
}

// Region derives the region from literal region names in the genre name,
// then broader geographic keywords, defaulting to Global.
func Region(name string) string {
	lower := strings.ToLower(name)

	for _, region := range regionNames {
		if strings.Contains(lower, strings.ToLower(region)) {
			return region
		}
	}

	switch {
	case containsAny(lower, "nordic", "scandinavian"):
		return "Scandinavia"
	case strings.Contains(lower, "latin"):
		return "Latin America"
	case containsAny(lower, "african", "afro"):
		return "Africa"
	case strings.Contains(lower, "asian"):
		return "Asia"
	case containsAny(lower, "european", "euro"):
		return "Europe"
	}
	return "Global"
}

// Language maps a resolved region to its dominant language code.
func Language(region string) string {
	if lang, ok := languageByRegion[region]; ok {
		return lang
	}
	return "EN"
}

// StatusFor derives the lifecycle status from the name and resolved period.
func StatusFor(name, period string) genres.Status {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "extinct") || strings.HasSuffix(period, "1900"):
		return genres.StatusExtinct
	case containsAny(lower, "emerging", "new", "future"):
		return genres.StatusEmerging
	case strings.HasSuffix(period, "now"):
		return genres.StatusActive
	}
	return genres.StatusHistoric
}

// Instruments derives a slash-joined instrument list. A style table match
// short-circuits; otherwise keyword buckets accumulate. Either way the
// acoustic/electric/piano/sax extras are appended when the name calls for
// them, and at most five distinct instruments survive in discovery order.
func Instruments(name string) string {
	lower := strings.ToLower(name)

	var instruments []string
	matched := false
	for _, r := range instrumentRules {
		if strings.Contains(lower, strings.ToLower(r.genre)) {
			instruments = append(instruments, r.list...)
			matched = true
			break
		}
	}

	if !matched {
		if containsAny(lower, "guitar", "string", "acoustic") {
			instruments = append(instruments, "Acoustic Guitar", "Electric Guitar")
		}
		if containsAny(lower, "synth", "electronic", "digital", "cyber") {
			instruments = append(instruments, "Synthesizer", "Drum Machine", "Sampler")
		}
		if containsAny(lower, "orchestral", "symphonic", "chamber") {
			instruments = append(instruments, "Orchestra", "Strings", "Woodwinds", "Brass")
		}
		if containsAny(lower, "vocal", "a cappella", "choir") {
			instruments = append(instruments, "Vocals")
		}
		if containsAny(lower, "drum", "percussion", "rhythm") {
			instruments = append(instruments, "Drums")
		}
	}

	for _, extra := range []struct{ term, instrument string }{
		{"acoustic", "Acoustic Guitar"},
		{"electric", "Electric Guitar"},
		{"piano", "Piano"},
		{"sax", "Saxophone"},
	} {
		if strings.Contains(lower, extra.term) && !containsString(instruments, extra.instrument) {
			instruments = append(instruments, extra.instrument)
		}
	}

	if len(instruments) == 0 {
		instruments = []string{"Various"}
	}

	return strings.Join(distinct(instruments, constants.MaxInstruments), "/")
}

// BPM derives a tempo range. Style table first, then tempo keywords, then
// electronic subgenre names, then broad family buckets.
func BPM(name string) string {
	lower := strings.ToLower(name)

	for _, r := range bpmRules {
		if strings.Contains(lower, strings.ToLower(r.genre)) {
			return r.bpm
		}
	}

	switch {
	case containsAny(lower, "slow", "ballad", "downtempo", "chill"):
		return "60-90"
	case containsAny(lower, "fast", "speed", "hardcore", "thrash"):
		return "150-200"
	case containsAny(lower, "mid-tempo", "moderate"):
		return "90-120"
	case containsAny(lower, "uptempo", "dance", "club"):
		return "120-140"
	}

	switch {
	case containsAny(lower, "drum & bass", "d&b"):
		return "160-180"
	case strings.Contains(lower, "dubstep"):
		return "138-142"
	case strings.Contains(lower, "trap"):
		return "140-170"
	case strings.Contains(lower, "breakbeat"):
		return "130-150"
	case strings.Contains(lower, "garage"):
		return "130-140"
	}

	switch {
	case containsAny(lower, "electronic", "techno", "house"):
		return "120-140"
	case containsAny(lower, "rock", "pop"):
		return "110-140"
	case containsAny(lower, "jazz", "blues"):
		return "60-120"
	case containsAny(lower, "classical", "orchestral"):
		return "40-180"
	}
	return "80-120"
}

// TimeSignature derives a meter. On a style table match, waltz and shuffle
// hints override the list head and complex styles prefer an uncommon meter
// from the matched list. Without a match, keyword rules apply before the
// 4/4 default; odd meter names draw randomly from the uncommon set.
func (e *Enricher) TimeSignature(name string) string {
	lower := strings.ToLower(name)

	for _, r := range meterRules {
		if !strings.Contains(lower, strings.ToLower(r.genre)) {
			continue
		}
		switch {
		case containsAny(lower, "waltz", "triple"):
			return "3/4"
		case containsAny(lower, "shuffle", "swing"):
			return "12/8"
		case containsAny(lower, "complex", "progressive", "math"):
			for _, sig := range r.signatures {
				if sig != "4/4" && sig != "3/4" {
					return sig
				}
			}
		}
		return r.signatures[0]
	}

	switch {
	case strings.Contains(lower, "waltz"):
		return "3/4"
	case containsAny(lower, "march", "polka"):
		return "2/4"
	case containsAny(lower, "shuffle", "swing", "blues"):
		return "12/8"
	case containsAny(lower, "odd", "complex", "progressive"):
		return pick(e.rand, oddMeters)
	case strings.Contains(lower, "tango"):
		return "4/4"
	case strings.Contains(lower, "jig"):
		return "6/8"
	}
	return "4/4"
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

// distinct keeps the first occurrence of each item, up to limit.
func distinct(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
