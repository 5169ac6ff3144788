// ABOUTME: Plain-text recipe rendering used for clipboard copies and share messages.
// ABOUTME: Layout: name, metadata, ingredient bullets, then instructions.
package render

import (
	"strings"

	"github.com/2389-research/cocktail/internal/models"
)

// placeholder stands in for a missing name or missing instructions.
const placeholder = "—"

// RecipeText renders a drink as copyable plain text.
func RecipeText(d models.Drink) string {
	lines := []string{
		d.Name,
		d.Meta(),
		"",
		"Ingredients:",
	}
	for _, ing := range models.IngredientLines(d) {
		lines = append(lines, " - "+ing)
	}
	lines = append(lines, "", "Instructions:", orPlaceholder(d.Instructions))
	return strings.Join(lines, "\n")
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
