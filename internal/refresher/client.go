package refresher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zappabad/kioskboard/internal/news"
	"github.com/zappabad/kioskboard/internal/weather"
)

// ErrStatus is returned when the refresher answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

const (
	NewsPath    = "/refresher/news"
	WeatherPath = "/refresher/weather"
)

// Client fetches news and weather from the kiosk refresher endpoints.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	bannedSources []string
}

// NewClient creates a Client for the refresher at baseURL.
func NewClient(baseURL string, timeout time.Duration, bannedSources []string) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		bannedSources: bannedSources,
	}
}

// Name identifies the news source in logs.
func (c *Client) Name() string {
	return "refresher"
}

// FetchNews returns the current headline list. A null or empty body is an empty list.
func (c *Client) FetchNews(ctx context.Context) Result[[]news.NewsItem] {
	body, err := c.get(ctx, NewsPath)
	if err != nil {
		return Fail[[]news.NewsItem](fmt.Errorf("news fetch: %w", err))
	}

	var items []news.NewsItem
	if !isFalsy(body) {
		if err := json.Unmarshal(body, &items); err != nil {
			return Fail[[]news.NewsItem](fmt.Errorf("news decode: %w", err))
		}
	}

	return Ok(news.WithoutSources(items, c.bannedSources))
}

// FetchWeather returns the current snapshot, or a nil snapshot when the
// refresher has nothing to report.
func (c *Client) FetchWeather(ctx context.Context) Result[*weather.Snapshot] {
	body, err := c.get(ctx, WeatherPath)
	if err != nil {
		return Fail[*weather.Snapshot](fmt.Errorf("weather fetch: %w", err))
	}

	if isFalsy(body) {
		return Ok[*weather.Snapshot](nil)
	}

	var snap weather.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return Fail[*weather.Snapshot](fmt.Errorf("weather decode: %w", err))
	}
	return Ok(&snap)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// isFalsy matches the bodies the kiosk page treated as "nothing".
func isFalsy(body []byte) bool {
	switch string(bytes.TrimSpace(body)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
