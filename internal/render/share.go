// ABOUTME: Deep-link sharing: share URLs, titles, share text, and QR codes.
// ABOUTME: A share URL is the app base URL with ?id=<drink id>.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/2389-research/cocktail/internal/models"
)

// AppName is the name shown in share titles and printouts.
const AppName = "Cocktail Finder"

// ShareURL builds the deep link for drink id from the app base URL.
// Any query or fragment on base is dropped and a trailing index.html is removed.
func ShareURL(base, id string) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("share base URL is required")
	}
	if id == "" {
		return "", fmt.Errorf("drink id is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("share base URL must be absolute: %q", base)
	}
	u.Path = strings.TrimSuffix(u.Path, "index.html")
	u.RawPath = ""
	u.RawQuery = url.Values{"id": {id}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// ShareTitle is the title used when sharing a drink.
func ShareTitle(d models.Drink) string {
	return d.Name + " — " + AppName
}

// ShareText is the message copied when native sharing is unavailable:
// title, link, and the full recipe.
func ShareText(d models.Drink, shareURL string) string {
	return ShareTitle(d) + "\n" + shareURL + "\n\n" + RecipeText(d)
}

// ShareQR encodes shareURL as a PNG QR code of size x size pixels.
func ShareQR(shareURL string, size int) ([]byte, error) {
	if shareURL == "" {
		return nil, fmt.Errorf("share URL is required")
	}
	png, err := qrcode.Encode(shareURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
