// Package enrich derives descriptive attributes for genre entries from
// their names: period, region, language, status, instruments, tempo range,
// meter, plus sampled contributor and work lists.
//
// The inference rules are ordered tables matched case-insensitively against
// the genre name. Rule order is significant: the first match wins, so more
// specific entries precede broader ones. Randomness only flows through the
// injected source, which makes enrichment reproducible under a fixed seed.
package enrich

import (
	"math/rand"
	"strings"
	"time"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/genres"
)

// Enricher derives attributes for genre names. Contributor pools are built
// once at construction and reused for every name.
type Enricher struct {
	rand  *rand.Rand
	pools map[string][]string
}

// Option defines a function that configures an Enricher.
type Option func(*Enricher)

// WithRand sets the random source used for sampling contributors, works,
// and odd meters.
func WithRand(r *rand.Rand) Option {
	return func(e *Enricher) {
		if r != nil {
			e.rand = r
		}
	}
}

// WithSeed sets a deterministic random source from the given seed.
func WithSeed(seed int64) Option {
	return func(e *Enricher) {
		e.rand = rand.New(rand.NewSource(seed))
	}
}

// New creates an Enricher and builds its contributor pools. The pools draw
// from the random source, so options are applied first.
func New(opts ...Option) *Enricher {
	e := &Enricher{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pools = e.buildPools()
	return e
}

// Enrich derives the full attribute set for a genre name. Every field is
// truncated to its storage cap as the final step.
func (e *Enricher) Enrich(name string, typ genres.VariantType) genres.Attributes {
	period := Period(name)
	region := Region(name)
	pioneers, artists := e.Contributors(name)

	return genres.Attributes{
		Region:        truncate(region, constants.MaxRegionLength),
		Language:      truncate(Language(region), constants.MaxLanguageLength),
		Period:        truncate(period, constants.MaxPeriodLength),
		Status:        StatusFor(name, period),
		Instruments:   truncate(Instruments(name), constants.MaxInstrumentsLength),
		Pioneers:      truncate(pioneers, constants.MaxPioneersLength),
		Artists:       truncate(artists, constants.MaxArtistsLength),
		Works:         truncate(e.Works(period), constants.MaxWorksLength),
		Source:        truncate(Source(typ), constants.MaxSourceLength),
		BPM:           truncate(BPM(name), constants.MaxBPMLength),
		TimeSignature: truncate(e.TimeSignature(name), constants.MaxTimeSignatureLength),
	}
}

// Source renders the provenance string for a generation strategy.
func Source(typ genres.VariantType) string {
	return "Generated: " + strings.ReplaceAll(string(typ), "_", " ")
}

// truncate clips s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func pick(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// randBetween returns a random int in [lo, hi].
func randBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
