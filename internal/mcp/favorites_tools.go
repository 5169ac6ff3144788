// ABOUTME: MCP tool implementations for the saved favorites list.
// ABOUTME: Registers list_favorites, toggle_favorite, remove_favorite, clear_favorites, and undo_clear.
package mcp

import (
	"context"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/cocktail/internal/favorites"
)

func (s *Server) registerFavoritesTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_favorites",
		Description: "List saved drinks, most recently saved first.",
		InputSchema: emptySchema,
	}, s.handleListFavorites)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "toggle_favorite",
		Description: fmt.Sprintf("Save a drink, or remove it if already saved. At most %d drinks are kept; the oldest is dropped.", favorites.Capacity),
		InputSchema: idSchema,
	}, s.handleToggleFavorite)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "remove_favorite",
		Description: "Remove a saved drink.",
		InputSchema: idSchema,
	}, s.handleRemoveFavorite)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "clear_favorites",
		Description: "Remove all saved drinks. The clear can be undone for a short window with undo_clear.",
		InputSchema: emptySchema,
	}, s.handleClearFavorites)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "undo_clear",
		Description: "Restore the drinks removed by the last clear_favorites, if its undo window is still open.",
		InputSchema: emptySchema,
	}, s.handleUndoClear)
}

func (s *Server) handleListFavorites(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	entries := s.store.Entries()
	if len(entries) == 0 {
		return textResult("No saved drinks yet."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d saved drink(s):\n", len(entries)))
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s (ID: %s)", i+1, e.Name, e.ID))
		if meta := e.Drink().Meta(); meta != "" {
			sb.WriteString(" " + meta)
		}
		sb.WriteString("\n")
	}
	return textResult(sb.String()), nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	d, errResult := s.resolveArg(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	action, err := s.store.Toggle(d)
	if err != nil {
		return toolError("failed to toggle favorite: %v", err), nil
	}
	return textResult(fmt.Sprintf("%s %s (ID: %s). %d saved.", capitalize(action.String()), d.Name, d.ID, s.store.Len())), nil
}

func (s *Server) handleRemoveFavorite(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return toolError("id is required"), nil
	}

	if !s.store.Remove(id) {
		return textResult(fmt.Sprintf("Drink %s was not saved.", id)), nil
	}
	return textResult(fmt.Sprintf("Removed drink %s. %d saved.", id, s.store.Len())), nil
}

func (s *Server) handleClearFavorites(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	res := s.store.ClearAll()
	if res.Count == 0 {
		return textResult("No saved drinks to clear."), nil
	}
	return textResult(fmt.Sprintf("Removed %d saved drink(s). Call undo_clear within %s to restore them.",
		res.Count, s.store.UndoWindow())), nil
}

func (s *Server) handleUndoClear(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if !s.store.UndoClear() {
		return toolError("nothing to undo: no clear is pending or the undo window has closed"), nil
	}
	return textResult(fmt.Sprintf("Restored %d saved drink(s).", s.store.Len())), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
