package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIngredientName(t *testing.T) {
	assert.Equal(t, "chicken breast", CleanIngredientName("Chicken Breast!"))
	assert.Equal(t, "onion", CleanIngredientName("an Onion"))
	assert.Equal(t, "juice of lemon", CleanIngredientName("juice of a lemon"))
	assert.Equal(t, "", CleanIngredientName("  "))
}

func TestParseTimeMinutes(t *testing.T) {
	assert.Equal(t, 45, ParseTimeMinutes("45 minutes"))
	assert.Equal(t, 120, ParseTimeMinutes("2 hours"))
	assert.Equal(t, 60, ParseTimeMinutes("1.5 hrs")) // first integer wins
	assert.Equal(t, 0, ParseTimeMinutes("a while"))
	assert.Equal(t, 0, ParseTimeMinutes(""))
}

func TestDeriveDifficulty(t *testing.T) {
	assert.Equal(t, "Easy", DeriveDifficulty(3, 25))
	assert.Equal(t, "Medium", DeriveDifficulty(8, 45))
	assert.Equal(t, "Medium", DeriveDifficulty(3, 60)) // quick steps, longer cook
	assert.Equal(t, "Hard", DeriveDifficulty(12, 45))
	assert.Equal(t, "Hard", DeriveDifficulty(8, 90))
}

func TestDeriveMealType(t *testing.T) {
	assert.Equal(t, "Breakfast", DeriveMealType([]string{"fluffy"}, "Blueberry Pancakes"))
	assert.Equal(t, "Dinner", DeriveMealType([]string{"main", "hearty"}, "Pot Roast"))
	assert.Equal(t, "Snack", DeriveMealType([]string{"dessert"}, "Brownies"))
	assert.Equal(t, "Lunch", DeriveMealType(nil, "Club Sandwich"))
}

func TestDeriveCuisine(t *testing.T) {
	assert.Equal(t, "indian", DeriveCuisine([]string{"tandoori"}, "Chicken"))
	assert.Equal(t, "italian", DeriveCuisine(nil, "Mushroom Risotto"))
	assert.Equal(t, "mexican", DeriveCuisine([]string{"taco"}, "Tuesday Special"))
	assert.Equal(t, "international", DeriveCuisine(nil, "Mystery Stew"))
}

func TestDeriveCuisine_FirstRuleWins(t *testing.T) {
	// "curry" (indian) appears before "thai" in the rule order.
	assert.Equal(t, "indian", DeriveCuisine([]string{"thai", "curry"}, ""))
}

func TestDeriveDietaryTags(t *testing.T) {
	tags := DeriveDietaryTags([]string{"tofu", "rice"}, nil)
	assert.Contains(t, tags, "vegetarian")
	assert.Contains(t, tags, "vegan")

	tags = DeriveDietaryTags([]string{"tofu", "cheese"}, nil)
	assert.Contains(t, tags, "vegetarian")
	assert.NotContains(t, tags, "vegan")

	tags = DeriveDietaryTags([]string{"chicken breast"}, []string{"keto"})
	assert.NotContains(t, tags, "vegetarian")
	assert.Contains(t, tags, "keto")

	tags = DeriveDietaryTags([]string{"almond flour"}, []string{"gluten-free", "low carb"})
	assert.Contains(t, tags, "gluten-free")
	assert.Contains(t, tags, "keto")
	assert.Contains(t, tags, "low-carb")
}

func TestValidate(t *testing.T) {
	rec := Record{ID: "recipe-0001", Title: "Soup"}
	assert.NoError(t, rec.Validate())

	assert.ErrorIs(t, (&Record{Title: "Soup"}).Validate(), ErrEmptyID)
	assert.ErrorIs(t, (&Record{ID: "x"}).Validate(), ErrEmptyTitle)

	bad := Record{ID: "x", Title: "y", PrepTime: -1}
	assert.Error(t, bad.Validate())
}
