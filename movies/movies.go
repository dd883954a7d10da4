package movies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/reelmark/reelmark/cache"
	"github.com/reelmark/reelmark/config"
)

// ErrNotFound means the external API answered and reported no match for
// the title. The API signals this in-band with its own sentinel
// ("Response": "False"), not with an empty result set or an HTTP status.
var ErrNotFound = errors.New("movies: movie not found")

type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}

// lookupResponse is the raw API envelope. Response is "True" on a hit and
// "False" otherwise, with Error carrying the reason.
type lookupResponse struct {
	Movie
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Client queries an OMDb-style movie API. Lookups are rate limited and
// cached by normalized title.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      cache.Cache[string, *Movie]
	ttl        time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.Movies, movieCache cache.Cache[string, *Movie], logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout.Duration},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		cache:      movieCache,
		ttl:        cfg.CacheTTL.Duration,
		logger:     logger,
	}
}

// Lookup fetches the movie matching the given title. It returns ErrNotFound
// when the API reports no match; any other error is a lookup failure.
func (c *Client) Lookup(ctx context.Context, title string) (*Movie, error) {
	key := strings.ToLower(strings.TrimSpace(title))
	if key == "" {
		return nil, ErrNotFound
	}

	if movie, found := c.cache.Get(key); found {
		return movie, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("movies: rate limit wait: %w", err)
	}

	reqURL, err := c.buildURL(title)
	if err != nil {
		return nil, fmt.Errorf("movies: invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("movies: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movies: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movies: unexpected status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return nil, fmt.Errorf("movies: decode response: %w", err)
	}

	if !strings.EqualFold(lookup.Response, "True") {
		if strings.Contains(strings.ToLower(lookup.Error), "not found") {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("movies: api error: %s", lookup.Error)
	}

	movie := lookup.Movie
	c.cache.SetWithTTL(key, &movie, 1, c.ttl)
	c.logger.Debug("movie lookup", "title", movie.Title, "imdb_id", movie.ImdbID)

	return &movie, nil
}

func (c *Client) buildURL(title string) (string, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	query := parsed.Query()
	query.Set("apikey", c.apiKey)
	query.Set("t", title)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}
