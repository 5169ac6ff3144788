// ABOUTME: CLI commands for finding drinks: random, search, suggest, and show.
// ABOUTME: Recipes by id are read from saved favorites before asking the provider.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/models"
	"github.com/2389-research/cocktail/internal/render"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random drink",
	Long:  "Fetch a random cocktail recipe, optionally saving it to favorites.",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search drinks by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Suggest drink names for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a drink recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// Flags
var randomSave bool

func init() {
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(showCmd)

	randomCmd.Flags().BoolVar(&randomSave, "save", false, "Save the drink to favorites")
}

func runRandom(cmd *cobra.Command, args []string) error {
	d, err := globalClient.Random(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch random drink: %w", err)
	}
	printDrink(*d)

	if randomSave && !globalStore.IsSaved(d.ID) {
		if _, err := globalStore.Toggle(*d); err != nil {
			return fmt.Errorf("failed to save drink: %w", err)
		}
		fmt.Printf("\nSaved %s.\n", d.Name)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	drinks, err := globalClient.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(drinks) == 0 {
		fmt.Printf("No results for %q.\n", args[0])
		return nil
	}

	for _, d := range drinks {
		marker := " "
		if globalStore.IsSaved(d.ID) {
			marker = "♥"
		}
		fmt.Printf("%s %-8s %s", marker, d.ID, d.Name)
		if meta := d.Meta(); meta != "" {
			fmt.Printf("  (%s)", meta)
		}
		fmt.Println()
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	names, err := globalClient.Suggest(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := resolveDrink(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printDrink(d)
	return nil
}

// resolveDrink reads a drink from favorites, falling back to the provider.
func resolveDrink(ctx context.Context, id string) (models.Drink, error) {
	d, _, err := globalStore.Resolve(ctx, id, globalClient)
	if err != nil {
		return models.Drink{}, fmt.Errorf("failed to get drink %s: %w", id, err)
	}
	return d, nil
}

func printDrink(d models.Drink) {
	status := "not saved"
	if globalStore.IsSaved(d.ID) {
		status = "saved"
	}
	fmt.Printf("ID: %s (%s)\n%s\n", d.ID, status, render.RecipeText(d))
}
