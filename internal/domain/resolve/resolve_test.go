package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NormalizedDrift(t *testing.T) {
	corpus := corpusOf("chicken-soup-123", "beef-stew-42")

	res := Resolve(corpus, "Chicken_Soup_123", 3)

	require.NotNil(t, res.Recipe)
	assert.Equal(t, TierNormalized, res.Tier)
	assert.Equal(t, "chicken-soup-123", res.MatchedID)
	assert.Empty(t, res.Suggestions)
}

func TestResolve_FuzzyTypo(t *testing.T) {
	corpus := corpusOf("chicken-soup-123", "beef-stew-42")

	res := Resolve(corpus, "chikken-soup-123", 3)

	require.NotNil(t, res.Recipe)
	assert.Equal(t, TierFuzzy, res.Tier)
	assert.Equal(t, "chicken-soup-123", res.MatchedID)
}

func TestResolve_NoMatchCarriesSuggestions(t *testing.T) {
	corpus := corpusOf("chicken-soup-123", "beef-stew-42")

	res := Resolve(corpus, "xyz-999", 3)

	assert.Nil(t, res.Recipe)
	assert.Equal(t, TierNone, res.Tier)
	assert.Equal(t, []string{"beef-stew-42", "chicken-soup-123"}, res.Suggestions)
}

func TestResolve_EmptyRawID(t *testing.T) {
	corpus := corpusOf("chicken-soup-123")

	for _, raw := range []string{"", "   ", "\t\n"} {
		res := Resolve(corpus, raw, 3)
		assert.Nil(t, res.Recipe, "raw %q", raw)
		assert.Equal(t, TierNone, res.Tier)
		assert.Empty(t, res.Suggestions)
	}
}

func TestResolve_EmptyCorpus(t *testing.T) {
	assert.NotPanics(t, func() {
		res := Resolve(nil, "chicken-soup-123", 3)
		assert.Nil(t, res.Recipe)
		assert.Equal(t, TierNone, res.Tier)
		assert.Empty(t, res.Suggestions)
	})
}

func TestResolve_RecipePresentIffMatched(t *testing.T) {
	corpus := corpusOf("chicken-soup-123", "beef-stew-42")

	queries := []string{
		"chicken-soup-123", // exact
		"Chicken_Soup_123", // normalized
		"chikken-soup-123", // fuzzy
		"xyz-999",          // none
		"!!!",              // empty key
	}
	for _, q := range queries {
		res := Resolve(corpus, q, 3)
		if res.Tier.Matched() {
			assert.NotNil(t, res.Recipe, "query %q", q)
			assert.Empty(t, res.Suggestions)
		} else {
			assert.Nil(t, res.Recipe, "query %q", q)
		}
	}
}

func TestResolver_CustomThreshold(t *testing.T) {
	corpus := corpusOf("abcdefghij")

	// Ratio 0.2 (two substitutions over ten chars) passes the default
	// threshold but not a tightened one.
	loose := Resolver{}.Resolve(corpus, "abcdefghXX", 3)
	assert.Equal(t, TierFuzzy, loose.Tier)

	strict := Resolver{FuzzyThreshold: 0.1}.Resolve(corpus, "abcdefghXX", 3)
	assert.Equal(t, TierNone, strict.Tier)
}

func TestResolver_ZeroValueUsesDefaultThreshold(t *testing.T) {
	corpus := corpusOf("chicken-soup-123")
	res := Resolver{}.Resolve(corpus, "chikken-soup-123", 3)
	assert.Equal(t, TierFuzzy, res.Tier)
}

func TestResolve_ConcurrentCallsOverSharedCorpus(t *testing.T) {
	corpus := corpusOf("chicken-soup-123", "beef-stew-42", "pad-thai")

	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 50 {
				res := Resolve(corpus, "Chicken_Soup_123", 3)
				assert.Equal(t, TierNormalized, res.Tier)
			}
		}()
	}
	for range 8 {
		<-done
	}
}
