// Package recipe defines the recipe data model and the derivation rules
// used when preprocessing raw recipe datasets into the corpus format.
package recipe

import (
	"errors"
	"fmt"
)

// Ingredient is a single recipe ingredient with optional substitutions.
type Ingredient struct {
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Substitutions []string `json:"substitutions"`
}

// Instruction is one numbered cooking step. TimerDuration is in seconds;
// nil means the step has no associated timer.
type Instruction struct {
	Step          int    `json:"step"`
	Text          string `json:"text"`
	TimerDuration *int   `json:"timerDuration"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
	Sugar    int `json:"sugar"`
}

// Record is a single recipe as stored in the corpus file.
// JSON field names match the corpus format (camelCase).
type Record struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Image        string        `json:"image"`
	Description  string        `json:"description"`
	PrepTime     int           `json:"prepTime"`
	CookTime     int           `json:"cookTime"`
	TotalTime    int           `json:"totalTime"`
	Servings     int           `json:"servings"`
	Difficulty   string        `json:"difficulty"`
	MealType     string        `json:"mealType"`
	Cuisine      string        `json:"cuisine"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []Instruction `json:"instructions"`
	Nutrition    Nutrition     `json:"nutrition"`
	DietaryTags  []string      `json:"dietaryTags"`
	VideoID      *string       `json:"videoId"`
}

var (
	// ErrEmptyID means a record has no usable identifier.
	ErrEmptyID = errors.New("recipe id is empty")

	// ErrEmptyTitle means a record has no title.
	ErrEmptyTitle = errors.New("recipe title is empty")
)

// Validate checks the invariants a corpus record must satisfy.
func (r *Record) Validate() error {
	if r.ID == "" {
		return ErrEmptyID
	}
	if r.Title == "" {
		return ErrEmptyTitle
	}
	if r.PrepTime < 0 || r.CookTime < 0 || r.TotalTime < 0 {
		return fmt.Errorf("recipe %q: negative time", r.ID)
	}
	if r.Servings < 0 {
		return fmt.Errorf("recipe %q: negative servings", r.ID)
	}
	return nil
}
