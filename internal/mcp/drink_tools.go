// ABOUTME: MCP tool implementations for drink lookup, recipe text, and share links.
// ABOUTME: Registers random_drink, search_drinks, get_drink, recipe_text, and share_link tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/cocktail/internal/models"
	"github.com/2389-research/cocktail/internal/render"
)

var idSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "string", "description": "TheCocktailDB drink id, e.g. 11007.", "minLength": 1}
	},
	"required": ["id"]
}`)

var emptySchema = json.RawMessage(`{"type": "object", "properties": {}}`)

func (s *Server) registerDrinkTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "random_drink",
		Description: "Fetch a random cocktail recipe.",
		InputSchema: emptySchema,
	}, s.handleRandomDrink)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_drinks",
		Description: "Search cocktails by name.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Full or partial drink name.", "minLength": 1}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchDrinks)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "get_drink",
		Description: "Get the full recipe for a drink id. Saved favorites are served without a network call.",
		InputSchema: idSchema,
	}, s.handleGetDrink)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "recipe_text",
		Description: "Get a drink recipe as plain text suitable for copying.",
		InputSchema: idSchema,
	}, s.handleRecipeText)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "share_link",
		Description: "Build a shareable deep link and message for a drink.",
		InputSchema: idSchema,
	}, s.handleShareLink)
}

func (s *Server) handleRandomDrink(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	d, err := s.client.Random(ctx)
	if err != nil {
		return toolError("failed to fetch random drink: %v", err), nil
	}
	return textResult(s.describeDrink(*d)), nil
}

func (s *Server) handleSearchDrinks(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return toolError("query is required"), nil
	}

	drinks, err := s.client.Search(ctx, query)
	if err != nil {
		return toolError("search failed: %v", err), nil
	}
	if len(drinks) == 0 {
		return textResult(fmt.Sprintf("No results for %q.", query)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d drink(s) for %q:\n", len(drinks), query))
	for _, d := range drinks {
		sb.WriteString(fmt.Sprintf("- %s (ID: %s)", d.Name, d.ID))
		if meta := d.Meta(); meta != "" {
			sb.WriteString(" " + meta)
		}
		if s.store.IsSaved(d.ID) {
			sb.WriteString(" [saved]")
		}
		sb.WriteString("\n")
	}
	return textResult(sb.String()), nil
}

func (s *Server) handleGetDrink(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	d, errResult := s.resolveArg(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	return textResult(s.describeDrink(d)), nil
}

func (s *Server) handleRecipeText(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	d, errResult := s.resolveArg(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	return textResult(render.RecipeText(d)), nil
}

func (s *Server) handleShareLink(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if s.shareBaseURL == "" {
		return toolError("share base URL is not configured (share.base_url)"), nil
	}
	d, errResult := s.resolveArg(ctx, req)
	if errResult != nil {
		return errResult, nil
	}
	link, err := render.ShareURL(s.shareBaseURL, d.ID)
	if err != nil {
		return toolError("failed to build share link: %v", err), nil
	}
	return textResult(render.ShareText(d, link)), nil
}

// resolveArg decodes an {"id": ...} argument and resolves the drink, favorites first.
func (s *Server) resolveArg(ctx context.Context, req *gomcp.CallToolRequest) (models.Drink, *gomcp.CallToolResult) {
	var args struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &args); err != nil {
		return models.Drink{}, toolError("invalid arguments: %v", err)
	}
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return models.Drink{}, toolError("id is required")
	}
	d, _, err := s.store.Resolve(ctx, id, s.client)
	if err != nil {
		return models.Drink{}, toolError("failed to get drink %s: %v", id, err)
	}
	return d, nil
}

func (s *Server) describeDrink(d models.Drink) string {
	status := "not saved"
	if s.store.IsSaved(d.ID) {
		status = "saved"
	}
	return fmt.Sprintf("ID: %s (%s)\n%s", d.ID, status, render.RecipeText(d))
}

func decodeArgs(req *gomcp.CallToolRequest, v interface{}) error {
	raw := req.Params.Arguments
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func textResult(text string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
