// Package boltfav implements the ports.FavoritesStore interface using
// bbolt (embedded B+ tree). Each profile gets its own sub-bucket under a
// single favorites bucket. Writes are transactional — a crash mid-write
// cannot corrupt previously committed data.
package boltfav

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketFavorites = []byte("favorites")

// entry is the JSON value stored per favorite id.
type entry struct {
	AddedAt int64 `json:"added_at"`
}

// Store implements ports.FavoritesStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add marks a recipe as a favorite for a profile. Idempotent.
func (s *Store) Add(profile, recipeID string) error {
	if profile == "" || recipeID == "" {
		return fmt.Errorf("profile and recipe id must be non-empty")
	}
	value, err := json.Marshal(entry{AddedAt: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("marshal favorite: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketFavorites)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(profile))
		if err != nil {
			return err
		}
		if b.Get([]byte(recipeID)) != nil {
			return nil // already a favorite, keep the original timestamp
		}
		return b.Put([]byte(recipeID), value)
	})
}

// Remove unmarks a favorite. Removing an absent id is not an error.
func (s *Store) Remove(profile, recipeID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := profileBucket(tx, profile)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(recipeID))
	})
}

// List returns a profile's favorite ids in lexicographic order (bbolt
// iterates keys in byte order).
func (s *Store) List(profile string) ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := profileBucket(tx, profile)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return ids, nil
}

// IsFavorite reports whether a recipe is a favorite for a profile.
func (s *Store) IsFavorite(profile, recipeID string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := profileBucket(tx, profile)
		if b != nil {
			found = b.Get([]byte(recipeID)) != nil
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func profileBucket(tx *bolt.Tx, profile string) *bolt.Bucket {
	root := tx.Bucket(bucketFavorites)
	if root == nil {
		return nil
	}
	return root.Bucket([]byte(profile))
}
