package resolve

import (
	"strings"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

// DefaultSuggestionCount is how many "did you mean" ids a failed
// resolution carries when the caller does not choose its own count.
const DefaultSuggestionCount = 3

// Result is the single result object a resolution attempt produces.
//
// Invariants: Recipe is non-nil iff Tier != TierNone; Suggestions is
// non-empty only when Recipe is nil and the corpus was non-empty.
type Result struct {
	Recipe       *recipe.Record
	Tier         Tier
	NormalizedID string
	MatchedID    string
	Suggestions  []string
}

// Resolver runs resolution attempts with a configurable fuzzy threshold.
// The zero value uses DefaultFuzzyThreshold.
type Resolver struct {
	// FuzzyThreshold is the maximum edit distance ratio the fuzzy tier
	// accepts. Zero or negative means DefaultFuzzyThreshold.
	FuzzyThreshold float64
}

// Resolve locates rawID in the corpus, falling back to ranked suggestions
// on total failure. An empty or whitespace-only rawID, or an empty corpus,
// yields a TierNone result with no suggestions — never a panic. Callers
// must check Recipe for presence.
func (r Resolver) Resolve(corpus []recipe.Record, rawID string, suggestionCount int) Result {
	threshold := r.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	if strings.TrimSpace(rawID) == "" || len(corpus) == 0 {
		return Result{Tier: TierNone, NormalizedID: Normalize(rawID)}
	}

	out := matchWithThreshold(corpus, rawID, threshold)
	res := Result{
		Recipe:       out.Record,
		Tier:         out.Tier,
		NormalizedID: out.NormalizedID,
		MatchedID:    out.MatchedID,
	}
	if out.Tier == TierNone {
		res.Suggestions = Suggest(corpus, rawID, suggestionCount)
	}
	return res
}

// Resolve runs a resolution attempt with the default fuzzy threshold.
func Resolve(corpus []recipe.Record, rawID string, suggestionCount int) Result {
	return Resolver{}.Resolve(corpus, rawID, suggestionCount)
}
