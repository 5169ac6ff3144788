// ABOUTME: Favorites persistence over a KeyValue backend.
// ABOUTME: Serializes the whole favorites list as one JSON array under a fixed key.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2389-research/cocktail/internal/models"
)

// FavoritesKey is the key the favorites list is stored under. It matches the browser app.
const FavoritesKey = "cf:favs"

// DefaultTimeout bounds each backend call made by FavoritesRepo.
const DefaultTimeout = 2 * time.Second

var (
	// ErrPersistenceRead marks a stored favorites list that could not be read or parsed.
	ErrPersistenceRead = errors.New("favorites read failed")

	// ErrPersistenceWrite marks a favorites list that could not be written.
	ErrPersistenceWrite = errors.New("favorites write failed")
)

// FavoritesRepo loads and saves the favorites list.
type FavoritesRepo struct {
	kv      KeyValue
	key     string
	timeout time.Duration
}

// NewFavoritesRepo creates a repo storing favorites in kv under FavoritesKey.
func NewFavoritesRepo(kv KeyValue) *FavoritesRepo {
	return &FavoritesRepo{
		kv:      kv,
		key:     FavoritesKey,
		timeout: DefaultTimeout,
	}
}

// Load returns the stored favorites. A missing key yields an empty list and no error.
// A read or parse failure yields an empty list and an error wrapping ErrPersistenceRead.
func (r *FavoritesRepo) Load() ([]models.FavoriteEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return []models.FavoriteEntry{}, fmt.Errorf("%w: %w", ErrPersistenceRead, err)
	}
	if !ok || raw == "" {
		return []models.FavoriteEntry{}, nil
	}

	var entries []models.FavoriteEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []models.FavoriteEntry{}, fmt.Errorf("%w: %w", ErrPersistenceRead, err)
	}
	if entries == nil {
		entries = []models.FavoriteEntry{}
	}
	return entries, nil
}

// Save replaces the stored favorites with entries.
func (r *FavoritesRepo) Save(entries []models.FavoriteEntry) error {
	if entries == nil {
		entries = []models.FavoriteEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.kv.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}
