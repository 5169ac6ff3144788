// ABOUTME: MCP server initialization and configuration for cocktail.
// ABOUTME: Sets up server with drink lookup and favorites tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/2389-research/cocktail/internal/cocktaildb"
	"github.com/2389-research/cocktail/internal/favorites"
	"github.com/2389-research/cocktail/internal/logger"
)

// Server wraps the MCP server with the favorites store and recipe provider.
type Server struct {
	mcp          *gomcp.Server
	store        *favorites.Store
	client       *cocktaildb.Client
	shareBaseURL string
	log          zerolog.Logger
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithShareBaseURL sets the app URL used by the share_link tool.
func WithShareBaseURL(base string) ServerOption {
	return func(s *Server) {
		s.shareBaseURL = base
	}
}

// WithLogger sets the server logger.
func WithLogger(l zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.log = l
	}
}

// NewServer creates an MCP server with drink and favorites capabilities.
func NewServer(store *favorites.Store, client *cocktaildb.Client, opts ...ServerOption) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("favorites store is required")
	}
	if client == nil {
		return nil, fmt.Errorf("recipe client is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "cocktail",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		store:  store,
		client: client,
		log:    logger.Logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerDrinkTools()
	s.registerFavoritesTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info().Int("favorites", s.store.Len()).Msg("mcp server starting on stdio")
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
