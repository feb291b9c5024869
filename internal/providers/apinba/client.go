package apinba

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
)

// Config controls how the API-NBA client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Host       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches games and player statistics from API-NBA and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient httpDoer
}

// NewClient constructs an API-NBA client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		host:       resolveHost(cfg.Host),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchGames retrieves the games played on date (YYYY-MM-DD), in upstream order.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	var payload gamesResponse
	if err := c.get(ctx, "/games", url.Values{"date": {date}}, &payload); err != nil {
		return nil, err
	}
	if hasErrors(payload.Errors) {
		return nil, &providers.RemoteQueryError{Provider: providerName, Errors: string(payload.Errors)}
	}
	if payload.Results == 0 {
		return []domaingames.Game{}, nil
	}

	games := make([]domaingames.Game, 0, len(payload.Response))
	for _, g := range payload.Response {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchPlayerStats retrieves every player's box-score line for a game.
func (c *Client) FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error) {
	var payload statsResponse
	if err := c.get(ctx, "/players/statistics", url.Values{"game": {strconv.Itoa(gameID)}}, &payload); err != nil {
		return nil, err
	}
	if hasErrors(payload.Errors) {
		return nil, &providers.RemoteQueryError{Provider: providerName, Errors: string(payload.Errors)}
	}

	lines := make([]stats.PlayerGameStat, 0, len(payload.Response))
	for _, s := range payload.Response {
		lines = append(lines, mapPlayerStat(s))
	}
	return lines, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return providers.NewExchangeError(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.NewExchangeError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &providers.RemoteTransportError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return providers.NewExchangeError(providerName, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()

	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	req.Header.Set(headerHost, c.host)
	return req, nil
}
