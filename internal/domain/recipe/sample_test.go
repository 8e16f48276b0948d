package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCorpus_RecordsAreValid(t *testing.T) {
	records := SampleCorpus(20)
	require.Len(t, records, 20)

	seen := map[string]bool{}
	for i := range records {
		require.NoError(t, records[i].Validate(), "record %s", records[i].ID)
		assert.False(t, seen[records[i].ID], "duplicate id %s", records[i].ID)
		seen[records[i].ID] = true
	}
	assert.Equal(t, "recipe_0001", records[0].ID)
	assert.Equal(t, "recipe_0020", records[19].ID)
}

func TestSampleCorpus_Deterministic(t *testing.T) {
	assert.Equal(t, SampleCorpus(8), SampleCorpus(8))
}

func TestSampleCorpus_DerivedFields(t *testing.T) {
	records := SampleCorpus(6)

	// recipe_0001: 20 min prep + 45 min cook, 3 steps, indian keywords.
	tikka := records[0]
	assert.Equal(t, 20, tikka.PrepTime)
	assert.Equal(t, 45, tikka.CookTime)
	assert.Equal(t, 65, tikka.TotalTime)
	assert.Equal(t, "Hard", tikka.Difficulty) // over 60 minutes total
	assert.Equal(t, "Dinner", tikka.MealType)
	assert.Equal(t, "indian", tikka.Cuisine)
	assert.Equal(t, "chicken breast", tikka.Ingredients[0].Name)
	assert.Equal(t, "heavy cream", tikka.Ingredients[1].Name)
	assert.Empty(t, tikka.DietaryTags) // meat and dairy, no diet keywords

	// recipe_0002: no cook time, 2 steps, plant-based breakfast.
	oats := records[1]
	assert.Equal(t, 0, oats.CookTime)
	assert.Equal(t, "Easy", oats.Difficulty)
	assert.Equal(t, "Breakfast", oats.MealType)
	assert.Equal(t, "international", oats.Cuisine)
	assert.Equal(t, "apple diced", oats.Ingredients[1].Name) // article stripped
	assert.Equal(t, []string{"vegetarian", "vegan", "gluten-free"}, oats.DietaryTags)

	// recipe_0004: "1 hour" cook string parses to 60 minutes.
	pizza := records[3]
	assert.Equal(t, 60, pizza.CookTime)
	assert.Equal(t, 90, pizza.TotalTime)
	assert.Equal(t, "italian", pizza.Cuisine)
	assert.Equal(t, []string{"vegetarian"}, pizza.DietaryTags) // cheese blocks vegan

	// recipe_0003: low-carb keywords tag both keto and low-carb.
	stirFry := records[2]
	assert.Equal(t, "chinese", stirFry.Cuisine)
	assert.Equal(t, []string{"keto", "low-carb"}, stirFry.DietaryTags)
}
