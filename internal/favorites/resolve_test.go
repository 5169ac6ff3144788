// ABOUTME: Tests for resolving drinks from favorites before the provider.
// ABOUTME: Uses a counting stub provider.
package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/2389-research/cocktail/internal/models"
)

type stubLookuper struct {
	calls int
	drink *models.Drink
	err   error
}

func (l *stubLookuper) Lookup(_ context.Context, id string) (*models.Drink, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	d := *l.drink
	d.ID = id
	return &d, nil
}

func TestResolvePrefersFavorites(t *testing.T) {
	s, _ := newTestStore(t, &memPersister{})
	if _, err := s.Toggle(drink("A")); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	lk := &stubLookuper{drink: &models.Drink{Name: "remote"}}
	d, saved, err := s.Resolve(context.Background(), "A", lk)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !saved || d.Name != "Drink A" {
		t.Errorf("expected saved copy, got saved=%v name=%q", saved, d.Name)
	}
	if got := models.IngredientLines(d); len(got) != 1 || got[0] != "1 oz Gin" {
		t.Errorf("unexpected ingredient lines %v", got)
	}
	if lk.calls != 0 {
		t.Errorf("expected no provider calls, got %d", lk.calls)
	}
}

func TestResolveFallsBackToProvider(t *testing.T) {
	s, _ := newTestStore(t, &memPersister{})

	lk := &stubLookuper{drink: &models.Drink{Name: "remote"}}
	d, saved, err := s.Resolve(context.Background(), "B", lk)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if saved || d.ID != "B" || d.Name != "remote" {
		t.Errorf("unexpected result saved=%v drink=%+v", saved, d)
	}
	if lk.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", lk.calls)
	}
}

func TestResolveErrors(t *testing.T) {
	s, _ := newTestStore(t, &memPersister{})
	ctx := context.Background()

	if _, _, err := s.Resolve(ctx, "", nil); err == nil {
		t.Error("expected error for empty id")
	}
	if _, _, err := s.Resolve(ctx, "X", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound without provider, got %v", err)
	}
	boom := errors.New("offline")
	if _, _, err := s.Resolve(ctx, "X", &stubLookuper{err: boom}); !errors.Is(err, boom) {
		t.Errorf("expected provider error, got %v", err)
	}
}
