// ABOUTME: CLI commands for the saved favorites list.
// ABOUTME: Provides list, toggle, remove, clear, and export subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/export"
	"github.com/2389-research/cocktail/internal/favorites"
)

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage saved drinks",
	Long:  fmt.Sprintf("List, save, remove, clear, and export favorites. At most %d drinks are kept.", favorites.Capacity),
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved drinks, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runFavList,
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Save a drink, or remove it if already saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavToggle,
}

var favRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a saved drink",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavRemove,
}

var favClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved drinks",
	Long:  "Remove all saved drinks. Use 'cocktail browse' to clear with an undo window.",
	Args:  cobra.NoArgs,
	RunE:  runFavClear,
}

var favExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved drinks to an .xlsx workbook",
	Args:  cobra.NoArgs,
	RunE:  runFavExport,
}

// Flags
var favExportOut string

func init() {
	rootCmd.AddCommand(favCmd)
	favCmd.AddCommand(favListCmd)
	favCmd.AddCommand(favToggleCmd)
	favCmd.AddCommand(favRemoveCmd)
	favCmd.AddCommand(favClearCmd)
	favCmd.AddCommand(favExportCmd)

	favExportCmd.Flags().StringVar(&favExportOut, "out", "favorites.xlsx", "Output workbook path")
}

func runFavList(cmd *cobra.Command, args []string) error {
	entries := globalStore.Entries()
	if len(entries) == 0 {
		fmt.Println("No saved drinks yet.")
		return nil
	}
	for i, e := range entries {
		fmt.Printf("%2d. %-8s %s", i+1, e.ID, e.Name)
		if meta := e.Drink().Meta(); meta != "" {
			fmt.Printf("  (%s)", meta)
		}
		fmt.Println()
	}
	return nil
}

func runFavToggle(cmd *cobra.Command, args []string) error {
	d, err := resolveDrink(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	action, err := globalStore.Toggle(d)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}
	switch action {
	case favorites.Saved:
		fmt.Printf("Saved %s. %d/%d saved.\n", d.Name, globalStore.Len(), favorites.Capacity)
	case favorites.Removed:
		fmt.Printf("Removed %s.\n", d.Name)
	}
	return nil
}

func runFavRemove(cmd *cobra.Command, args []string) error {
	if !globalStore.Remove(args[0]) {
		fmt.Printf("Drink %s was not saved.\n", args[0])
		return nil
	}
	fmt.Printf("Removed drink %s.\n", args[0])
	return nil
}

func runFavClear(cmd *cobra.Command, args []string) error {
	res := globalStore.ClearAll()
	if res.Count == 0 {
		fmt.Println("No saved drinks to clear.")
		return nil
	}
	fmt.Printf("Removed %d saved drink(s).\n", res.Count)
	return nil
}

func runFavExport(cmd *cobra.Command, args []string) error {
	entries := globalStore.Entries()

	f, err := os.Create(favExportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", favExportOut, err)
	}
	if err := export.WriteWorkbook(f, entries); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", favExportOut, err)
	}
	fmt.Printf("Exported %d saved drink(s) to %s\n", len(entries), favExportOut)
	return nil
}
