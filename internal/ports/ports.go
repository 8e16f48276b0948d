// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture: the resolution
// pipeline and the HTTP layer depend only on these interfaces, never on
// concrete implementations.
package ports

import "github.com/smartmeal/smartmeal/internal/domain/recipe"

// CorpusSource supplies an ordered, read-only corpus snapshot per call.
// Callers borrow the returned slice for the duration of one resolution
// attempt and must not mutate it. Insertion order is significant — it is
// the tie-break for fuzzy matches and suggestions.
type CorpusSource interface {
	// Snapshot returns the current corpus. The slice must not be mutated.
	Snapshot() []recipe.Record

	// Reload re-reads the corpus from its backing source. On failure the
	// previous snapshot stays in place.
	Reload() error
}

// FavoritesStore persists per-profile favorite recipe ids.
// Add and Remove are idempotent; writes are transactional.
type FavoritesStore interface {
	// Add marks a recipe as a favorite for a profile.
	Add(profile, recipeID string) error

	// Remove unmarks a favorite. Removing an absent id is not an error.
	Remove(profile, recipeID string) error

	// List returns a profile's favorite ids in stable (lexicographic) order.
	List(profile string) ([]string, error)

	// IsFavorite reports whether a recipe is a favorite for a profile.
	IsFavorite(profile, recipeID string) (bool, error)
}
