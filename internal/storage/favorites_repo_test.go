// ABOUTME: Tests for favorites persistence over key-value backends.
// ABOUTME: Covers empty and corrupt storage, roundtrip, and error wrapping.
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/2389-research/cocktail/internal/models"
)

// brokenKV fails every call.
type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (brokenKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }
func (brokenKV) Close() error                              { return nil }

func sampleEntries() []models.FavoriteEntry {
	return []models.FavoriteEntry{
		{ID: "11007", Name: "Margarita", Category: "Ordinary Drink", Ingredients: []string{"1 1/2 oz Tequila", "Salt"}},
		{ID: "11000", Name: "Mojito", Glass: "Highball glass", Ingredients: []string{"2-3 oz Light rum"}, Instructions: "Muddle mint."},
	}
}

func TestFavoritesRepoLoadMissing(t *testing.T) {
	repo := NewFavoritesRepo(NewMemoryKV())

	entries, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", entries)
	}
}

func TestFavoritesRepoRoundtrip(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewFavoritesRepo(kv)

	want := sampleEntries()
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}

	// Saving what was loaded must leave storage unchanged.
	before, _, _ := kv.Get(context.Background(), FavoritesKey)
	if err := repo.Save(got); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	after, _, _ := kv.Get(context.Background(), FavoritesKey)
	if before != after {
		t.Errorf("Save(Load()) changed stored value:\nbefore %s\nafter  %s", before, after)
	}
}

func TestFavoritesRepoSaveNilWritesEmptyArray(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewFavoritesRepo(kv)

	if err := repo.Save(nil); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	raw, _, _ := kv.Get(context.Background(), FavoritesKey)
	if raw != "[]" {
		t.Errorf("expected [], got %q", raw)
	}
}

func TestFavoritesRepoCorruptData(t *testing.T) {
	for _, raw := range []string{"{not json", `{"idDrink":"1"}`, `[1,2,3]`} {
		kv := NewMemoryKV()
		_ = kv.Set(context.Background(), FavoritesKey, raw)
		repo := NewFavoritesRepo(kv)

		entries, err := repo.Load()
		if !errors.Is(err, ErrPersistenceRead) {
			t.Errorf("Load(%q): expected ErrPersistenceRead, got %v", raw, err)
		}
		if len(entries) != 0 {
			t.Errorf("Load(%q): expected empty list, got %d entries", raw, len(entries))
		}
	}
}

func TestFavoritesRepoNullAndEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "[]"} {
		kv := NewMemoryKV()
		_ = kv.Set(context.Background(), FavoritesKey, raw)

		entries, err := NewFavoritesRepo(kv).Load()
		if err != nil {
			t.Errorf("Load(%q) error: %v", raw, err)
		}
		if entries == nil || len(entries) != 0 {
			t.Errorf("Load(%q): expected empty non-nil list, got %#v", raw, entries)
		}
	}
}

func TestFavoritesRepoBackendErrors(t *testing.T) {
	repo := NewFavoritesRepo(brokenKV{})

	entries, err := repo.Load()
	if !errors.Is(err, ErrPersistenceRead) {
		t.Errorf("expected ErrPersistenceRead, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list on read failure, got %d", len(entries))
	}

	err = repo.Save(sampleEntries())
	if !errors.Is(err, ErrPersistenceWrite) {
		t.Errorf("expected ErrPersistenceWrite, got %v", err)
	}
}

func TestFavoritesRepoReadsBrowserFormat(t *testing.T) {
	kv := NewMemoryKV()
	raw := `[{"idDrink":"17222","strDrink":"A1","strDrinkThumb":"https://x/a1.jpg","strCategory":"Cocktail","strAlcoholic":"Alcoholic","strGlass":"Cocktail glass","ingredients":["1 3/4 shot Gin","1 Shot Grand Marnier"],"strInstructions":"Shake."}]`
	_ = kv.Set(context.Background(), FavoritesKey, raw)

	entries, err := NewFavoritesRepo(kv).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "A1" || entries[0].Glass != "Cocktail glass" || len(entries[0].Ingredients) != 2 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}
