// ABOUTME: Cobra command for browsing saved favorites in a TUI.
// ABOUTME: Supports remove, clear with undo, and copying recipes to the clipboard.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved drinks interactively",
	Long:  "Open a terminal browser over your favorites. Clearing all can be undone for a short window.",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewBrowserModel(globalStore))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
