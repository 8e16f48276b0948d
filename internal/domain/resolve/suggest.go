package resolve

import (
	"sort"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

// Suggest ranks every corpus id by similarity to the requested id and
// returns the k closest original ids, best first. Ties keep corpus
// insertion order. No similarity floor is applied — the closest available
// ids are still informative even when weak. Suggestions are the original
// corpus ids, directly usable for a retry.
func Suggest(corpus []recipe.Record, rawID string, k int) []string {
	if k <= 0 || len(corpus) == 0 {
		return nil
	}

	norm := Normalize(rawID)

	type candidate struct {
		id    string
		ratio float64
	}
	candidates := make([]candidate, 0, len(corpus))
	for i := range corpus {
		key := Normalize(corpus[i].ID)
		if key == "" {
			continue
		}
		candidates = append(candidates, candidate{
			id:    corpus[i].ID,
			ratio: editRatio(norm, key),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio < candidates[j].ratio
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}
