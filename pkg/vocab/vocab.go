// Package vocab provides the seed vocabularies the combination generator
// draws from: region, era, instrument, and base genre lists, the name
// templates per strategy, and the modifier word groups.
package vocab

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/genreforge/genreforge/pkg/errors"
)

// Vocabulary bundles every seed list used during candidate generation.
// The zero value is unusable; construct with New or Default.
type Vocabulary struct {
	Regions     []string `json:"regions" yaml:"regions"`
	Eras        []string `json:"eras" yaml:"eras"`
	Instruments []string `json:"instruments" yaml:"instruments"` // Bilingual seeds, display name before the slash
	BaseGenres  []string `json:"base_genres" yaml:"base_genres"`

	Patterns  Patterns  `json:"patterns" yaml:"patterns"`
	Modifiers Modifiers `json:"modifiers" yaml:"modifiers"`
}

// Patterns groups the name templates per generation strategy. Templates use
// named placeholders in braces, e.g. "{region1} {region2} Fusion".
type Patterns struct {
	RegionalFusion []string `json:"regional_fusion" yaml:"regional_fusion"`
	EraGenre       []string `json:"era_genre" yaml:"era_genre"`
	Instrument     []string `json:"instrument_based" yaml:"instrument_based"`
}

// Modifiers groups the modifier words applied to base genres.
type Modifiers struct {
	Electronic  []string `json:"electronic" yaml:"electronic"`
	Traditional []string `json:"traditional" yaml:"traditional"`
	Modern      []string `json:"modern" yaml:"modern"`
}

// Option defines a function that configures a Vocabulary.
type Option func(*Vocabulary)

// WithRegions replaces the region list.
func WithRegions(regions ...string) Option {
	return func(v *Vocabulary) {
		v.Regions = regions
	}
}

// WithEras replaces the era list.
func WithEras(eras ...string) Option {
	return func(v *Vocabulary) {
		v.Eras = eras
	}
}

// WithInstruments replaces the instrument list.
func WithInstruments(instruments ...string) Option {
	return func(v *Vocabulary) {
		v.Instruments = instruments
	}
}

// WithBaseGenres replaces the base genre list.
func WithBaseGenres(genres ...string) Option {
	return func(v *Vocabulary) {
		v.BaseGenres = genres
	}
}

// New builds a Vocabulary starting from the built-in defaults and applying
// the given options.
func New(opts ...Option) Vocabulary {
	v := Default()
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Default returns the built-in seed vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		Regions: []string{
			"USA", "UK", "Deutschland", "Frankreich", "Italien", "Spanien",
			"Japan", "Korea", "China", "Indien", "Brasilien", "Mexiko",
			"Argentinien", "Südafrika", "Nigeria", "Ägypten", "Australien",
			"Kanada", "Russland", "Türkei", "Polen", "Niederlande",
			"Schweden", "Norwegen", "Finnland", "Island", "Irland",
		},
		Eras: []string{
			"Prehistoric", "Ancient", "Medieval", "Renaissance", "Baroque",
			"Classical", "Romantic", "Modern", "Contemporary", "Digital",
		},
		Instruments: []string{
			"Guitar/Gitarre", "Piano/Klavier", "Drums/Schlagzeug",
			"Synthesizer", "Violin/Violine", "Saxophone/Saxophon",
			"Trumpet/Trompete", "Electronic/Elektronisch", "Traditional",
		},
		BaseGenres: []string{
			"Blues", "Jazz", "Rock", "Electronic", "Hip-Hop",
			"Classical", "Folk", "Country", "Metal", "Pop", "Reggae",
			"Soul", "Funk", "Punk", "Ambient", "Experimental",
		},
		Patterns: Patterns{
			RegionalFusion: []string{
				"{region1} {region2} Fusion",
				"{region1}-{region2} {base} Hybrid",
				"Trans-{region1} {base}",
				"{region1} meets {region2} {base}",
			},
			EraGenre: []string{
				"{era} {base}",
				"Neo-{era} {base}",
				"{era} Revival {base}",
				"Post-{era} {base}",
			},
			Instrument: []string{
				"{instrument} {base}",
				"Electric {instrument} {base}",
				"Acoustic {instrument} {base}",
				"{instrument}-driven {base}",
			},
		},
		Modifiers: Modifiers{
			Electronic:  []string{"Synth", "Digital", "Cyber", "Electro", "Techno"},
			Traditional: []string{"Folk", "Traditional", "Ethnic", "Native", "Indigenous"},
			Modern:      []string{"New", "Modern", "Contemporary", "Post", "Neo"},
		},
	}
}

// placeholderPattern matches named placeholders like {region1} or {base}.
var placeholderPattern = regexp.MustCompile(`\{([a-z0-9]+)\}`)

// Allowed placeholders per template group.
var (
	regionalFusionSlots = map[string]bool{"region1": true, "region2": true, "base": true}
	eraGenreSlots       = map[string]bool{"era": true, "base": true}
	instrumentSlots     = map[string]bool{"instrument": true, "base": true}
)

// Validate checks that every seed list is populated and that every template
// only references placeholders its strategy can fill. A template referencing
// an unknown placeholder is a programmer error surfaced at startup rather
// than a malformed name mid-generation.
func (v Vocabulary) Validate() error {
	lists := []struct {
		name  string
		items []string
	}{
		{"regions", v.Regions},
		{"eras", v.Eras},
		{"instruments", v.Instruments},
		{"base_genres", v.BaseGenres},
		{"patterns.regional_fusion", v.Patterns.RegionalFusion},
		{"patterns.era_genre", v.Patterns.EraGenre},
		{"patterns.instrument_based", v.Patterns.Instrument},
		{"modifiers.electronic", v.Modifiers.Electronic},
		{"modifiers.traditional", v.Modifiers.Traditional},
		{"modifiers.modern", v.Modifiers.Modern},
	}
	for _, list := range lists {
		if len(list.items) == 0 {
			return fmt.Errorf("%w: %s", errors.ErrEmptyVocabulary, list.name)
		}
	}

	groups := []struct {
		name      string
		templates []string
		slots     map[string]bool
	}{
		{"regional_fusion", v.Patterns.RegionalFusion, regionalFusionSlots},
		{"era_genre", v.Patterns.EraGenre, eraGenreSlots},
		{"instrument_based", v.Patterns.Instrument, instrumentSlots},
	}
	for _, group := range groups {
		for _, tmpl := range group.templates {
			for _, match := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
				if !group.slots[match[1]] {
					return errors.NewValidationError(
						"patterns."+group.name, tmpl,
						fmt.Sprintf("unknown placeholder {%s}", match[1]))
				}
			}
		}
	}

	return nil
}

// Expand substitutes the named placeholders in template with the given
// values. Placeholders without a value are left untouched.
func Expand(template string, vars map[string]string) string {
	oldnew := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		oldnew = append(oldnew, "{"+name+"}", value)
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}

// DisplayInstrument returns the display form of a bilingual instrument seed,
// the part before the first slash.
func DisplayInstrument(seed string) string {
	if i := strings.IndexByte(seed, '/'); i >= 0 {
		return seed[:i]
	}
	return seed
}
