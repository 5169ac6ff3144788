// ABOUTME: Root Cobra command and global flags for the cocktail CLI.
// ABOUTME: Sets up lifecycle hooks for config, logging, favorites storage, and the recipe client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/cocktaildb"
	"github.com/2389-research/cocktail/internal/config"
	"github.com/2389-research/cocktail/internal/favorites"
	"github.com/2389-research/cocktail/internal/logger"
	"github.com/2389-research/cocktail/internal/storage"
)

var globalConfig *config.Config
var globalKV storage.KeyValue
var globalStore *favorites.Store
var globalClient *cocktaildb.Client

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "cocktail",
	Short: "Find cocktail recipes and keep your favorites",
	Long: `
 ██████╗ ██████╗  ██████╗██╗  ██╗████████╗ █████╗ ██╗██╗
██╔════╝██╔═══██╗██╔════╝██║ ██╔╝╚══██╔══╝██╔══██╗██║██║
██║     ██║   ██║██║     █████╔╝    ██║   ███████║██║██║
██║     ██║   ██║██║     ██╔═██╗    ██║   ██╔══██║██║██║
╚██████╗╚██████╔╝╚██████╗██║  ██╗   ██║   ██║  ██║██║███████╗
 ╚═════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝╚══════╝

   COCKTAIL FINDER

Search TheCocktailDB, save up to 20 favorites, and copy, share, or print recipes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "setup" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		logger.Init(os.Stderr, true)
		level := cfg.GetLogLevel()
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logger.SetLevel(level)

		opts, err := cfg.StorageOptions()
		if err != nil {
			return fmt.Errorf("failed to resolve storage: %w", err)
		}
		kv, err := storage.Open(opts)
		if err != nil {
			// Favorites fail open: keep working in memory for this run.
			logger.Logger.Warn().Err(err).Str("backend", opts.Backend).Msg("failed to open favorites storage, using memory")
			kv = storage.NewMemoryKV()
		}
		globalKV = kv

		globalStore = favorites.New(
			storage.NewFavoritesRepo(kv),
			favorites.WithUndoWindow(cfg.GetUndoWindow()),
		)

		globalClient = cocktaildb.NewClient(
			cfg.GetAPIURL(),
			cfg.GetAPIKey(),
			cocktaildb.WithTimeout(cfg.GetTimeout()),
			cocktaildb.WithRetries(cfg.GetRetries()),
			cocktaildb.WithRateLimit(cfg.GetRatePerSecond()),
		)

		logger.Logger.Debug().
			Str("backend", opts.Backend).
			Int("favorites", globalStore.Len()).
			Msg("cocktail initialized")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalStore != nil {
			globalStore.Close()
			globalStore = nil
		}
		if globalKV != nil {
			_ = globalKV.Close()
			globalKV = nil
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}
