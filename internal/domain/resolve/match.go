package resolve

import (
	"strings"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

// DefaultFuzzyThreshold is the maximum normalized edit distance ratio a
// fuzzy match may have: at most a quarter of the longer key's characters
// may differ. Tunable via config, never a hidden assumption.
const DefaultFuzzyThreshold = 0.25

// Outcome is the result of running a raw id through the matching tiers.
type Outcome struct {
	// Record is the matched corpus record, nil when Tier is TierNone.
	Record *recipe.Record

	// Tier is the tier that produced the match.
	Tier Tier

	// NormalizedID is the comparison key derived from the requested id.
	NormalizedID string

	// MatchedID is the original corpus id that matched, empty on no match.
	MatchedID string
}

// Match runs rawID against the corpus through successive precision tiers
// using DefaultFuzzyThreshold: exact, normalized, case-insensitive, then
// fuzzy. The first tier to succeed wins.
func Match(corpus []recipe.Record, rawID string) Outcome {
	return matchWithThreshold(corpus, rawID, DefaultFuzzyThreshold)
}

func matchWithThreshold(corpus []recipe.Record, rawID string, threshold float64) Outcome {
	norm := Normalize(rawID)

	if rec := matchExact(corpus, rawID); rec != nil {
		return Outcome{Record: rec, Tier: TierExact, NormalizedID: norm, MatchedID: rec.ID}
	}
	if rec := matchNormalized(corpus, norm); rec != nil {
		return Outcome{Record: rec, Tier: TierNormalized, NormalizedID: norm, MatchedID: rec.ID}
	}
	if rec := matchCaseInsensitive(corpus, rawID); rec != nil {
		return Outcome{Record: rec, Tier: TierCaseInsensitive, NormalizedID: norm, MatchedID: rec.ID}
	}
	if rec := matchFuzzy(corpus, norm, threshold); rec != nil {
		return Outcome{Record: rec, Tier: TierFuzzy, NormalizedID: norm, MatchedID: rec.ID}
	}
	return Outcome{Tier: TierNone, NormalizedID: norm}
}

// matchExact compares ids byte-for-byte. Running it first guards against
// normalization accidentally merging two genuinely distinct ids.
func matchExact(corpus []recipe.Record, rawID string) *recipe.Record {
	for i := range corpus {
		if corpus[i].ID == rawID {
			return &corpus[i]
		}
	}
	return nil
}

// matchNormalized compares comparison keys. An empty key never matches.
func matchNormalized(corpus []recipe.Record, norm string) *recipe.Record {
	if norm == "" {
		return nil
	}
	for i := range corpus {
		if Normalize(corpus[i].ID) == norm {
			return &corpus[i]
		}
	}
	return nil
}

// matchCaseInsensitive compares raw lowercase forms before full
// normalization.
func matchCaseInsensitive(corpus []recipe.Record, rawID string) *recipe.Record {
	lower := strings.ToLower(rawID)
	for i := range corpus {
		if strings.ToLower(corpus[i].ID) == lower {
			return &corpus[i]
		}
	}
	return nil
}

// matchFuzzy scores every corpus record by normalized edit distance ratio
// against the requested key and accepts the best one within the threshold.
// Ties go to the record appearing earliest in corpus order, so repeated
// calls are deterministic.
func matchFuzzy(corpus []recipe.Record, norm string, threshold float64) *recipe.Record {
	if norm == "" {
		return nil
	}

	var best *recipe.Record
	bestRatio := threshold
	for i := range corpus {
		key := Normalize(corpus[i].ID)
		if key == "" {
			continue
		}
		ratio := editRatio(norm, key)
		if ratio < bestRatio || (best == nil && ratio == bestRatio) {
			best = &corpus[i]
			bestRatio = ratio
		}
	}
	return best
}
