package stats

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
)

// DefaultSimilarLimit is how many players Similar returns when limit is not positive
const DefaultSimilarLimit = 10

// Search returns the players whose name starts with prefix, ignoring case,
// sorted by name. An empty prefix matches everyone.
func Search(players []models.PlayerRecord, prefix string) []models.PlayerRecord {
	prefix = strings.ToLower(prefix)

	var matches []models.PlayerRecord
	for _, p := range players {
		if strings.HasPrefix(strings.ToLower(p.Name), prefix) {
			matches = append(matches, p)
		}
	}
	slices.SortStableFunc(matches, func(a, b models.PlayerRecord) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return matches
}

// Similar returns up to limit players whose eDPI is closest to target,
// nearest first. Players without a numeric eDPI are ignored.
func Similar(players []models.PlayerRecord, target float64, limit int) []models.PlayerRecord {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	type candidate struct {
		player models.PlayerRecord
		diff   float64
	}
	var candidates []candidate
	for _, p := range players {
		v, ok := p.EDPI()
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{player: p, diff: math.Abs(v - target)})
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.diff, b.diff)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]models.PlayerRecord, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.player)
	}
	return out
}

// Random picks a player using r. It reports false when players is empty.
func Random(players []models.PlayerRecord, r *rand.Rand) (models.PlayerRecord, bool) {
	if len(players) == 0 {
		return models.PlayerRecord{}, false
	}
	return players[r.IntN(len(players))], true
}
