// Package generate produces genre name candidates from seed vocabularies
// using five combination strategies: regional fusion, era variants,
// instrument variants, modifier variants, and randomly assembled micro
// genres.
package generate

import (
	"math/rand"
	"strings"
	"time"

	"github.com/genreforge/genreforge/pkg/genres"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// Strategy slice caps. The first strategies deliberately work on vocabulary
// prefixes to keep the cross products bounded.
const (
	maxFusionRegions   = 15
	maxFusionBases     = 10
	maxFusionTemplates = 2

	maxInstrumentSeeds     = 10
	maxInstrumentBases     = 10
	maxInstrumentTemplates = 2

	maxTraditionalRegions = 10
	maxMicroRegions       = 20

	// microGenreCap bounds the random assembly strategy per Generate call.
	microGenreCap = 3000
)

// Generator produces genre name candidates from a validated vocabulary.
// It is deterministic up to the injected random source.
type Generator struct {
	vocab vocab.Vocabulary
	rand  *rand.Rand
}

// Option defines a function that configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used by the micro genre strategy.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithSeed sets a deterministic random source from the given seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

// New creates a Generator for the given vocabulary. The vocabulary is
// validated once here so generation itself cannot fail.
func New(v vocab.Vocabulary, opts ...Option) (*Generator, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		vocab: v,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate produces up to limit candidates by running the five strategies in
// fixed order. The regional fusion strategy checks the limit per candidate
// and returns early once reached; the middle strategies run their full cross
// products and the final slice is clipped to limit.
func (g *Generator) Generate(limit int) []genres.Candidate {
	if limit <= 0 {
		return nil
	}

	generated := make([]genres.Candidate, 0, limit)

	// 1. Regional fusions across unordered region pairs.
	regions := clip(g.vocab.Regions, maxFusionRegions)
	fusionBases := clip(g.vocab.BaseGenres, maxFusionBases)
	fusionTemplates := clip(g.vocab.Patterns.RegionalFusion, maxFusionTemplates)
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			for _, base := range fusionBases {
				for _, tmpl := range fusionTemplates {
					name := vocab.Expand(tmpl, map[string]string{
						"region1": regions[i],
						"region2": regions[j],
						"base":    base,
					})
					generated = append(generated, genres.Candidate{
						Name:       name,
						Type:       genres.VariantRegionalFusion,
						Components: []string{regions[i], regions[j], base},
					})
					if len(generated) >= limit {
						return generated
					}
				}
			}
		}
	}

	// 2. Era variants over the full era and base genre lists.
	for _, era := range g.vocab.Eras {
		for _, base := range g.vocab.BaseGenres {
			for _, tmpl := range g.vocab.Patterns.EraGenre {
				name := vocab.Expand(tmpl, map[string]string{
					"era":  era,
					"base": base,
				})
				generated = append(generated, genres.Candidate{
					Name:       name,
					Type:       genres.VariantEra,
					Components: []string{era, base},
				})
			}
		}
	}

	// 3. Instrument variants. The name uses the display form of the seed,
	// the components keep the full bilingual token.
	instruments := clip(g.vocab.Instruments, maxInstrumentSeeds)
	instrumentBases := clip(g.vocab.BaseGenres, maxInstrumentBases)
	instrumentTemplates := clip(g.vocab.Patterns.Instrument, maxInstrumentTemplates)
	for _, instrument := range instruments {
		for _, base := range instrumentBases {
			for _, tmpl := range instrumentTemplates {
				name := vocab.Expand(tmpl, map[string]string{
					"instrument": vocab.DisplayInstrument(instrument),
					"base":       base,
				})
				generated = append(generated, genres.Candidate{
					Name:       name,
					Type:       genres.VariantInstrument,
					Components: []string{instrument, base},
				})
			}
		}
	}

	// 4. Modifier variants: electronic modifiers alone, traditional
	// modifiers combined with a region.
	traditionalRegions := clip(g.vocab.Regions, maxTraditionalRegions)
	for _, base := range g.vocab.BaseGenres {
		for _, mod := range g.vocab.Modifiers.Electronic {
			generated = append(generated, genres.Candidate{
				Name:       mod + " " + base,
				Type:       genres.VariantElectronic,
				Components: []string{mod, base},
			})
		}

		for _, mod := range g.vocab.Modifiers.Traditional {
			for _, region := range traditionalRegions {
				generated = append(generated, genres.Candidate{
					Name:       region + " " + mod + " " + base,
					Type:       genres.VariantTraditional,
					Components: []string{region, mod, base},
				})
			}
		}
	}

	// 5. Micro genres by random assembly, filling the remaining quota.
	generated = append(generated, g.microGenres(limit-len(generated))...)

	if len(generated) > limit {
		generated = generated[:limit]
	}
	return generated
}

// microGenres assembles up to n random candidates. Each draws an optional
// modern modifier, an optional region, an optional electronic modifier, and
// always ends with a base genre.
func (g *Generator) microGenres(n int) []genres.Candidate {
	if n > microGenreCap {
		n = microGenreCap
	}
	if n <= 0 {
		return nil
	}

	microRegions := clip(g.vocab.Regions, maxMicroRegions)
	candidates := make([]genres.Candidate, 0, n)
	for i := 0; i < n; i++ {
		var components []string

		if g.rand.Float64() > 0.5 {
			components = append(components, pick(g.rand, g.vocab.Modifiers.Modern))
		}
		if g.rand.Float64() > 0.3 {
			components = append(components, pick(g.rand, microRegions))
		}
		if g.rand.Float64() > 0.4 {
			components = append(components, pick(g.rand, g.vocab.Modifiers.Electronic))
		}
		components = append(components, pick(g.rand, g.vocab.BaseGenres))

		candidates = append(candidates, genres.Candidate{
			Name:       strings.Join(components, " "),
			Type:       genres.VariantMicro,
			Components: components,
		})
	}
	return candidates
}

func clip(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func pick(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}
