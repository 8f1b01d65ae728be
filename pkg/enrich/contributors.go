package enrich

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/genreforge/genreforge/pkg/constants"
	"github.com/genreforge/genreforge/pkg/vocab"
)

// Name parts used to assemble contributor pools.
var (
	firstNames = []string{
		"John", "Maria", "David", "Sarah", "Michael", "Anna", "Robert",
		"Lisa", "James", "Emma", "Carlos", "Yuki", "Chen", "Priya",
		"Ahmed", "Olga", "Jean", "Hans", "Giovanni", "Fatima",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Yamamoto", "Wang",
		"Singh", "Ali", "Ivanov", "Dubois", "Schmidt", "Rossi",
	}
)

// poolGenres are the base categories that get a contributor pool. Rock
// doubles as the fallback pool for names matching none of them.
var poolGenres = []string{"Blues", "Jazz", "Rock", "Electronic", "Classical", "Folk"}

// poolSize is the number of contributor names generated per category.
const poolSize = 50

var workTemplates = []string{
	"{adjective} {noun}",
	"The {adjective} {noun}",
	"{noun} in {key}",
	"{verb}ing {noun}",
	"{noun} No. {number}",
	"{place} {noun}",
	"{color} {noun}",
	"{emotion} {noun}",
}

var (
	workAdjectives = []string{"Blue", "Dark", "Electric", "Silent", "Golden", "Eternal", "Lost", "Hidden", "Sacred", "Wild"}
	workNouns      = []string{"Sky", "Dream", "River", "Mountain", "Heart", "Soul", "Night", "Dawn", "Storm", "Journey"}
	workVerbs      = []string{"Dance", "Fly", "Dream", "Sing", "Cry", "Love", "Fight"}
	workKeys       = []string{"A Minor", "C Major", "E Flat", "D Minor"}
	workPlaces     = []string{"London", "Paris", "Tokyo", "Memphis", "Berlin"}
	workColors     = []string{"Blue", "Red", "Black", "White", "Purple"}
	workEmotions   = []string{"Happy", "Sad", "Angry", "Peaceful", "Melancholic"}
)

// Contributors samples pioneer and artist names from the pool matching the
// genre name, falling back to the Rock pool. Both lists are sampled without
// replacement and slash-joined.
func (e *Enricher) Contributors(name string) (pioneers, artists string) {
	lower := strings.ToLower(name)

	pool := e.pools["Rock"]
	for _, genre := range poolGenres {
		if strings.Contains(lower, strings.ToLower(genre)) {
			pool = e.pools[genre]
			break
		}
	}

	return strings.Join(e.sample(pool, constants.PioneerCount), "/"),
		strings.Join(e.sample(pool, constants.ArtistCount), "/")
}

// Works generates famous work titles dated within the period. Years fall
// between the period's start year and 2024, or 1950 and 2024 when the start
// is not a plain year.
func (e *Enricher) Works(period string) string {
	works := make([]string, 0, constants.WorkCount)
	for i := 0; i < constants.WorkCount; i++ {
		title := vocab.Expand(pick(e.rand, workTemplates), map[string]string{
			"adjective": pick(e.rand, workAdjectives),
			"noun":      pick(e.rand, workNouns),
			"verb":      pick(e.rand, workVerbs),
			"key":       pick(e.rand, workKeys),
			"number":    strconv.Itoa(randBetween(e.rand, 1, 9)),
			"place":     pick(e.rand, workPlaces),
			"color":     pick(e.rand, workColors),
			"emotion":   pick(e.rand, workEmotions),
		})
		works = append(works, fmt.Sprintf("%s (%d)", title, e.workYear(period)))
	}
	return strings.Join(works, "/")
}

func (e *Enricher) workYear(period string) int {
	if start, _, found := strings.Cut(period, "-"); found {
		if year, err := strconv.Atoi(start); err == nil {
			return randBetween(e.rand, year, 2024)
		}
	}
	return randBetween(e.rand, 1950, 2024)
}

// buildPools generates the per-category contributor pools with birth and
// death years plausible for each category.
func (e *Enricher) buildPools() map[string][]string {
	pools := make(map[string][]string, len(poolGenres))
	for _, genre := range poolGenres {
		names := make([]string, 0, poolSize)
		for i := 0; i < poolSize; i++ {
			names = append(names, e.contributorName(genre))
		}
		pools[genre] = names
	}
	return pools
}

func (e *Enricher) contributorName(genre string) string {
	first := pick(e.rand, firstNames)
	last := pick(e.rand, lastNames)

	var birth, death int
	switch genre {
	case "Classical":
		birth = randBetween(e.rand, 1600, 1850)
		death = birth + randBetween(e.rand, 40, 80)
	case "Blues", "Jazz":
		birth = randBetween(e.rand, 1880, 1940)
		death = birth + randBetween(e.rand, 50, 85)
	default:
		birth = randBetween(e.rand, 1940, 1990)
		if birth <= 1960 {
			death = birth + randBetween(e.rand, 45, 80)
		}
	}

	// Still-living contributors get an open-ended span.
	if death == 0 || death > 2024 {
		return fmt.Sprintf("%s %s (%d-)", first, last, birth)
	}
	return fmt.Sprintf("%s %s (%d-%d)", first, last, birth, death)
}

// sample returns n distinct elements of items in random order.
func (e *Enricher) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, idx := range e.rand.Perm(len(items))[:n] {
		out = append(out, items[idx])
	}
	return out
}
