// ABOUTME: Connection validation for the recipe provider.
// ABOUTME: Tests the API URL and key by fetching a single random drink.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/2389-research/cocktail/internal/cocktaildb"
)

const validateTimeout = 10 * time.Second

// ValidateConnection tests the API connection by fetching a random drink with the given settings.
// The context allows cancellation when the user quits during validation.
func ValidateConnection(ctx context.Context, apiURL, apiKey string) error {
	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	if err := cocktaildb.ValidateConnection(ctx, apiURL, apiKey); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	return nil
}
