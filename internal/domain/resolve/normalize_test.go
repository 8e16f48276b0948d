package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_UnderscoresAndPunctuation(t *testing.T) {
	// "Chicken_Soup!!" and "chicken-soup" reduce to the same key.
	assert.Equal(t, Normalize("chicken-soup"), Normalize("Chicken_Soup!!"))
	assert.Equal(t, "chicken-soup", Normalize("Chicken_Soup!!"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Chicken_Soup!!", "  beef   stew  42 ", "--a--b--", "recipe_0001", "x"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "beef-stew", Normalize("  beef stew  "))
}

func TestNormalize_CaseFold(t *testing.T) {
	assert.Equal(t, "chicken-soup-123", Normalize("CHICKEN-SOUP-123"))
}

func TestNormalize_WhitespaceRunsBecomeOneHyphen(t *testing.T) {
	assert.Equal(t, "a-b-c", Normalize("a \t b__c"))
}

func TestNormalize_CollapsesHyphens(t *testing.T) {
	assert.Equal(t, "a-b", Normalize("a---b"))
	assert.Equal(t, "a-b", Normalize("-a-b-"))
}

func TestNormalize_StripsInvalidCharacters(t *testing.T) {
	// Dots and hashes are not separators: they are stripped, not hyphenated.
	assert.Equal(t, "padthai42", Normalize("Pad.Thai#42"))
	assert.Equal(t, "pad-thai-42", Normalize("Pad Thai_42"))
}

func TestNormalize_EmptyAndPunctuationOnly(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("!!!///???"))
	assert.Equal(t, "", Normalize("___"))
}

func TestNormalize_NonASCIIStripped(t *testing.T) {
	// Accented characters are outside the key alphabet and drop out.
	assert.Equal(t, "crme-brle", Normalize("Crème Brûlée"))
}

func TestNormalize_DigitsPreserved(t *testing.T) {
	assert.Equal(t, "recipe-0001", Normalize("recipe_0001"))
}
