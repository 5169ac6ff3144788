// ABOUTME: Tests for MCP server creation and validation.
// ABOUTME: Verifies server requires both the favorites store and the recipe client.
package mcp

import (
	"testing"

	"github.com/2389-research/cocktail/internal/cocktaildb"
	"github.com/2389-research/cocktail/internal/favorites"
	"github.com/2389-research/cocktail/internal/storage"
)

func newMemoryStore(t *testing.T) *favorites.Store {
	t.Helper()
	store := favorites.New(storage.NewFavoritesRepo(storage.NewMemoryKV()))
	t.Cleanup(store.Close)
	return store
}

func TestNewServerRequiresStore(t *testing.T) {
	_, err := NewServer(nil, cocktaildb.NewClient("", ""))
	if err == nil {
		t.Error("expected error when store is nil")
	}
}

func TestNewServerRequiresClient(t *testing.T) {
	_, err := NewServer(newMemoryStore(t), nil)
	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	server, err := NewServer(newMemoryStore(t), cocktaildb.NewClient("", ""))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server == nil {
		t.Error("expected non-nil server")
	}
}

func TestNewServerWithShareBaseURL(t *testing.T) {
	server, err := NewServer(newMemoryStore(t), cocktaildb.NewClient("", ""), WithShareBaseURL("https://example.com/"))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server.shareBaseURL != "https://example.com/" {
		t.Errorf("expected share base URL to be set, got %q", server.shareBaseURL)
	}
}
