package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// Derivation rules for enriching raw dataset rows into corpus records.
// These mirror the dataset preprocessing pipeline: difficulty from step
// count and total time, meal type and cuisine from keyword scans, dietary
// tags from ingredient lists.

var (
	nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	articleRe  = regexp.MustCompile(`\b(a|an|the)\b`)
	spaceRunRe = regexp.MustCompile(`\s+`)
	firstNumRe = regexp.MustCompile(`(\d+)`)
)

// CleanIngredientName lowercases an ingredient name, strips punctuation
// and leading articles, and collapses whitespace.
func CleanIngredientName(name string) string {
	cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(name), "")
	cleaned = articleRe.ReplaceAllString(cleaned, "")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// ParseTimeMinutes extracts a duration in minutes from a free-form time
// string such as "45 minutes" or "2 hours". Returns 0 when no number is
// present.
func ParseTimeMinutes(raw string) int {
	m := firstNumRe.FindString(raw)
	if m == "" {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
		minutes *= 60
	}
	return minutes
}

// DeriveDifficulty classifies a recipe by step count and total time.
func DeriveDifficulty(steps, totalMinutes int) string {
	switch {
	case steps <= 5 && totalMinutes <= 30:
		return "Easy"
	case steps <= 10 && totalMinutes <= 60:
		return "Medium"
	default:
		return "Hard"
	}
}

// DeriveMealType infers a meal type from dataset keywords and the recipe name.
func DeriveMealType(keywords []string, name string) string {
	text := strings.ToLower(strings.Join(keywords, " ")) + " " + strings.ToLower(name)

	switch {
	case containsAny(text, "breakfast", "pancake", "waffle", "cereal", "oatmeal"):
		return "Breakfast"
	case containsAny(text, "dinner", "main", "entree"):
		return "Dinner"
	case containsAny(text, "snack", "appetizer", "dessert"):
		return "Snack"
	default:
		return "Lunch"
	}
}

// cuisineRule pairs a cuisine with its trigger keywords. Order matters:
// the first cuisine with any keyword hit wins.
type cuisineRule struct {
	cuisine  string
	keywords []string
}

var cuisineRules = []cuisineRule{
	{"indian", []string{"indian", "curry", "masala", "tandoori", "biryani"}},
	{"chinese", []string{"chinese", "szechuan", "cantonese", "wok"}},
	{"italian", []string{"italian", "pasta", "pizza", "risotto"}},
	{"mexican", []string{"mexican", "taco", "burrito", "enchilada", "salsa"}},
	{"thai", []string{"thai", "pad thai", "curry thai"}},
}

// DeriveCuisine infers a cuisine from dataset keywords and the recipe name.
// Falls back to "international" when nothing matches.
func DeriveCuisine(keywords []string, name string) string {
	text := strings.ToLower(strings.Join(keywords, " ")) + " " + strings.ToLower(name)
	for _, rule := range cuisineRules {
		if containsAny(text, rule.keywords...) {
			return rule.cuisine
		}
	}
	return "international"
}

var (
	meatKeywords  = []string{"chicken", "beef", "pork", "lamb", "meat", "fish", "seafood"}
	dairyKeywords = []string{"milk", "cheese", "butter", "cream", "egg"}
)

// DeriveDietaryTags infers dietary tags from ingredient names and dataset keywords.
func DeriveDietaryTags(ingredients, keywords []string) []string {
	var tags []string
	ingredientsText := strings.ToLower(strings.Join(ingredients, " "))
	keywordsText := strings.ToLower(strings.Join(keywords, " "))

	hasMeat := containsAny(ingredientsText, meatKeywords...)
	hasDairy := containsAny(ingredientsText, dairyKeywords...)

	if !hasMeat {
		tags = append(tags, "vegetarian")
	}
	if !hasMeat && !hasDairy {
		tags = append(tags, "vegan")
	}
	if containsAny(keywordsText, "gluten-free", "gluten free") {
		tags = append(tags, "gluten-free")
	}
	if containsAny(keywordsText, "keto", "low-carb", "low carb") {
		tags = append(tags, "keto")
	}
	if containsAny(keywordsText, "low-carb", "low carb") {
		tags = append(tags, "low-carb")
	}
	return tags
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
