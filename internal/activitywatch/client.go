package activitywatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	Url                  string        `mapstructure:"url"`
	Timeout              time.Duration `mapstructure:"timeout"`
	MaxConcurrentFetches int           `mapstructure:"max_concurrent_fetches"`
}

// Client talks to the ActivityWatch server REST API (/api/0).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Buckets lists every bucket known to the server.
func (c *Client) Buckets(ctx context.Context) (Buckets, error) {
	var buckets Buckets
	if err := c.getJSON(ctx, "/api/0/buckets/", nil, &buckets); err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	return buckets, nil
}

// Events returns the events of a bucket that fall between start and end.
func (c *Client) Events(ctx context.Context, bucketID string, start, end time.Time) ([]Event, error) {
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339Nano))
	query.Set("end", end.Format(time.RFC3339Nano))

	var events []Event
	path := "/api/0/buckets/" + url.PathEscape(bucketID) + "/events"
	if err := c.getJSON(ctx, path, query, &events); err != nil {
		return nil, fmt.Errorf("list events for bucket %s: %w", bucketID, err)
	}
	return events, nil
}

func (c *Client) Info(ctx context.Context) (ServerInfo, error) {
	var info ServerInfo
	if err := c.getJSON(ctx, "/api/0/info", nil, &info); err != nil {
		return info, fmt.Errorf("get server info: %w", err)
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Querying ActivityWatch", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(body))
		if msg != "" {
			return fmt.Errorf("request failed: %s: %s", resp.Status, msg)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
