// ABOUTME: Resolves a drink by id from saved favorites before asking the recipe provider.
// ABOUTME: Lets saved drinks render offline and keeps provider calls to unsaved drinks.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/2389-research/cocktail/internal/models"
)

// ErrNotFound is returned by Resolve when id is not saved and no provider is available.
var ErrNotFound = errors.New("drink not found")

// Lookuper fetches a full drink by id.
type Lookuper interface {
	Lookup(ctx context.Context, id string) (*models.Drink, error)
}

// Resolve returns the drink with id, preferring the saved copy.
// fromFavorites reports whether the saved copy was used.
func (s *Store) Resolve(ctx context.Context, id string, lk Lookuper) (d models.Drink, fromFavorites bool, err error) {
	if id == "" {
		return models.Drink{}, false, fmt.Errorf("drink id is required")
	}
	if e, ok := s.Get(id); ok {
		return e.Drink(), true, nil
	}
	if lk == nil {
		return models.Drink{}, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	got, err := lk.Lookup(ctx, id)
	if err != nil {
		return models.Drink{}, false, err
	}
	return *got, false, nil
}
