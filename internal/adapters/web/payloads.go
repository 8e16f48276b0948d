package web

import (
	"encoding/json"
	"net/http"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

type healthPayload struct {
	Status     string `json:"status"`
	CorpusSize int    `json:"corpusSize"`
	Uptime     string `json:"uptime"`
}

type recipeSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MealType string `json:"mealType,omitempty"`
	Cuisine  string `json:"cuisine,omitempty"`
}

type listPayload struct {
	Recipes []recipeSummary `json:"recipes"`
	Count   int             `json:"count"`
}

type recipePayload struct {
	Recipe    *recipe.Record `json:"recipe"`
	MatchTier string         `json:"matchTier,omitempty"`
	Favorite  *bool          `json:"favorite,omitempty"`
}

type notFoundPayload struct {
	Error       string   `json:"error"`
	RequestedID string   `json:"requestedId"`
	Suggestions []string `json:"suggestions"`
}

type favoritesPayload struct {
	Profile   string   `json:"profile"`
	Favorites []string `json:"favorites"`
}

type favoriteChangedPayload struct {
	Profile  string `json:"profile"`
	RecipeID string `json:"recipeId"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// orEmpty keeps JSON arrays as [] rather than null for absent values.
func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorPayload{Error: msg})
}
