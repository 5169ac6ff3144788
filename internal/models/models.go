// ABOUTME: Core data models for drinks returned by the recipe provider and saved favorites.
// ABOUTME: Provides the recipe summarizer and helpers for ingredient lines and metadata.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MaxIngredients is the number of numbered ingredient/measure slots a drink carries.
const MaxIngredients = 15

// metaSeparator joins category, alcoholic flag, and glass in display lines.
const metaSeparator = " • "

// Drink is a full recipe as returned by the provider.
type Drink struct {
	ID           string
	Name         string
	Thumbnail    string
	Category     string
	Alcoholic    string
	Glass        string
	Instructions string
	Ingredients  [MaxIngredients]string
	Measures     [MaxIngredients]string
}

// UnmarshalJSON decodes the provider's flat drink object, where any field may be null
// and ingredients arrive as strIngredient1..15 / strMeasure1..15.
func (d *Drink) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	get := func(key string) string {
		if v, ok := raw[key]; ok && v != nil {
			return *v
		}
		return ""
	}

	*d = Drink{
		ID:           get("idDrink"),
		Name:         get("strDrink"),
		Thumbnail:    get("strDrinkThumb"),
		Category:     get("strCategory"),
		Alcoholic:    get("strAlcoholic"),
		Glass:        get("strGlass"),
		Instructions: get("strInstructions"),
	}
	for i := 0; i < MaxIngredients; i++ {
		n := strconv.Itoa(i + 1)
		d.Ingredients[i] = get("strIngredient" + n)
		d.Measures[i] = get("strMeasure" + n)
	}
	return nil
}

// Meta returns the non-empty category, alcoholic flag, and glass joined for display.
func (d Drink) Meta() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{d.Category, d.Alcoholic, d.Glass} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, metaSeparator)
}

// IngredientLines flattens the numbered ingredient slots into "measure ingredient" lines,
// skipping slots without an ingredient.
func IngredientLines(d Drink) []string {
	lines := []string{}
	for i := 0; i < MaxIngredients; i++ {
		ing := d.Ingredients[i]
		if ing == "" {
			continue
		}
		meas := d.Measures[i]
		if meas == "" {
			lines = append(lines, ing)
			continue
		}
		lines = append(lines, strings.TrimSpace(strings.TrimSpace(meas)+" "+ing))
	}
	return lines
}

// FavoriteEntry is the minimized, persisted form of a saved drink.
// JSON keys match the browser app's cf:favs format.
type FavoriteEntry struct {
	ID           string   `json:"idDrink"`
	Name         string   `json:"strDrink"`
	Thumbnail    string   `json:"strDrinkThumb"`
	Category     string   `json:"strCategory,omitempty"`
	Alcoholic    string   `json:"strAlcoholic,omitempty"`
	Glass        string   `json:"strGlass,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"strInstructions,omitempty"`
}

// Summarize reduces a full drink to a FavoriteEntry.
func Summarize(d Drink) FavoriteEntry {
	return FavoriteEntry{
		ID:           d.ID,
		Name:         d.Name,
		Thumbnail:    d.Thumbnail,
		Category:     d.Category,
		Alcoholic:    d.Alcoholic,
		Glass:        d.Glass,
		Ingredients:  IngredientLines(d),
		Instructions: d.Instructions,
	}
}

// Drink expands a saved entry back into a Drink so it can be rendered without the provider.
// Ingredient lines already include their measures, so measure slots stay empty.
func (f FavoriteEntry) Drink() Drink {
	d := Drink{
		ID:           f.ID,
		Name:         f.Name,
		Thumbnail:    f.Thumbnail,
		Category:     f.Category,
		Alcoholic:    f.Alcoholic,
		Glass:        f.Glass,
		Instructions: f.Instructions,
	}
	for i, line := range f.Ingredients {
		if i >= MaxIngredients {
			break
		}
		d.Ingredients[i] = line
	}
	return d
}
