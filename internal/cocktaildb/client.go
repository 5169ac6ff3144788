// ABOUTME: HTTP client for TheCocktailDB recipe API (random, search, lookup, suggestions).
// ABOUTME: Each fetch is rate limited and retried with exponential backoff on 5xx and network errors.
package cocktaildb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/2389-research/cocktail/internal/logger"
	"github.com/2389-research/cocktail/internal/models"
)

const (
	// DefaultBaseURL is the public v1 API root. The API key is appended as a path segment.
	DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1"

	// DefaultAPIKey is the public test key.
	DefaultAPIKey = "1"

	// MaxSuggestions caps the names returned by Suggest.
	MaxSuggestions = 8

	defaultTimeout         = 10 * time.Second
	defaultRetries         = 1
	defaultRatePerSecond   = 5
	defaultInitialInterval = 500 * time.Millisecond
	maxResponseBytes       = 4 << 20
)

// ErrNoDrink is returned when the provider has no drink for a random or lookup request.
var ErrNoDrink = errors.New("no drink found")

// StatusError is a non-retryable HTTP error from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.Code, e.Body)
}

// Client fetches drinks from TheCocktailDB.
type Client struct {
	baseURL         string
	apiKey          string
	client          *http.Client
	limiter         *rate.Limiter
	retries         uint64
	initialInterval time.Duration
	log             zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRetries sets how many extra attempts a failed fetch gets.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = uint64(n)
		}
	}
}

// WithRateLimit caps requests per second. Zero or less disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithInitialBackoff sets the first retry delay.
func WithInitialBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.initialInterval = d
		}
	}
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for the API rooted at baseURL using apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	c := &Client{
		baseURL:         baseURL,
		apiKey:          apiKey,
		client:          &http.Client{Timeout: defaultTimeout},
		limiter:         rate.NewLimiter(rate.Limit(defaultRatePerSecond), defaultRatePerSecond),
		retries:         defaultRetries,
		initialInterval: defaultInitialInterval,
		log:             logger.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Random returns a random drink.
func (c *Client) Random(ctx context.Context) (*models.Drink, error) {
	drinks, err := c.fetch(ctx, "random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, ErrNoDrink
	}
	return &drinks[0], nil
}

// Search returns drinks whose name matches term. No matches is an empty slice.
func (c *Client) Search(ctx context.Context, term string) ([]models.Drink, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("search term is required")
	}
	return c.fetch(ctx, "search.php", url.Values{"s": {term}})
}

// Lookup returns the drink with id.
func (c *Client) Lookup(ctx context.Context, id string) (*models.Drink, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("drink id is required")
	}
	drinks, err := c.fetch(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDrink, id)
	}
	return &drinks[0], nil
}

// Suggest returns up to MaxSuggestions drink names matching prefix.
func (c *Client) Suggest(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, nil
	}
	drinks, err := c.Search(ctx, prefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, MaxSuggestions)
	for _, d := range drinks {
		if len(names) == MaxSuggestions {
			break
		}
		names = append(names, d.Name)
	}
	return names, nil
}

// ValidateConnection checks that baseURL and apiKey can serve a random drink.
func ValidateConnection(ctx context.Context, baseURL, apiKey string) error {
	c := NewClient(baseURL, apiKey, WithRetries(0), WithRateLimit(0))
	if _, err := c.Random(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Client) endpoint(name string, q url.Values) string {
	u := c.baseURL + "/" + url.PathEscape(c.apiKey) + "/" + name
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// fetch GETs an endpoint and decodes its drinks array, retrying transient failures.
func (c *Client) fetch(ctx context.Context, name string, q url.Values) ([]models.Drink, error) {
	target := c.endpoint(name, q)
	var body []byte

	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("provider request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 500 {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(respBody))
		}
		if resp.StatusCode >= 400 {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
			return backoff.Permanent(&StatusError{Code: resp.StatusCode, Body: string(respBody)})
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.initialInterval
	b := backoff.WithContext(backoff.WithMaxRetries(expo, c.retries), ctx)

	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("endpoint", name).Dur("wait", wait).Msg("retrying provider request")
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}
	return decodeDrinks(body)
}

// drinksEnvelope is the top-level response shape. drinks is null or a string when empty.
type drinksEnvelope struct {
	Drinks json.RawMessage `json:"drinks"`
}

func decodeDrinks(body []byte) ([]models.Drink, error) {
	var env drinksEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	raw := bytes.TrimSpace(env.Drinks)
	if len(raw) == 0 || raw[0] != '[' {
		return []models.Drink{}, nil
	}

	var drinks []models.Drink
	if err := json.Unmarshal(raw, &drinks); err != nil {
		return nil, fmt.Errorf("failed to decode drinks: %w", err)
	}
	return drinks, nil
}
