// Package remote talks to the feed service API. The API exposes no
// per-change timestamps for read/star events, only current state; every
// write endpoint is idempotent so at-least-once delivery converges.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/feedsync/feedsync/pkg/domain"
)

// ActionItem is one remote mutation: apply action to the article with the
// given remote id.
type ActionItem struct {
	RemoteID string        `json:"id"`
	Action   domain.Action `json:"action"`
}

// ArticleStatus is the remote's current view of one article.
type ArticleStatus struct {
	RemoteID     string `json:"id"`
	FeedRemoteID string `json:"feedId"`
	Title        string `json:"title"`
	Link         string `json:"link"`
	Read         bool   `json:"read"`
	Starred      bool   `json:"starred"`
}

// FeedInfo is the remote's view of one subscription.
type FeedInfo struct {
	RemoteID string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// Config holds remote client settings.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client is the HTTP implementation of the remote API.
type Client struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
	client   *http.Client
}

// NewClient creates a remote client with an explicit per-call timeout.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// ApplyActions submits a batch of mutations. The endpoint upserts flag
// state, so retrying an already applied batch is harmless.
func (c *Client) ApplyActions(ctx context.Context, items []ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	body, err := json.Marshal(map[string]interface{}{"items": items})
	if err != nil {
		return fmt.Errorf("marshal actions: %w", err)
	}
	return c.post(ctx, "/api/v1/articles/actions", body)
}

// ListArticles fetches the current remote state of all articles.
func (c *Client) ListArticles(ctx context.Context) ([]ArticleStatus, error) {
	var resp struct {
		Articles []ArticleStatus `json:"articles"`
	}
	if err := c.get(ctx, "/api/v1/articles", &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// ListFeeds fetches the current remote subscription list.
func (c *Client) ListFeeds(ctx context.Context) ([]FeedInfo, error) {
	var resp struct {
		Feeds []FeedInfo `json:"feeds"`
	}
	if err := c.get(ctx, "/api/v1/feeds", &resp); err != nil {
		return nil, err
	}
	return resp.Feeds, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransientError{Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body
	return checkStatus(resp)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.auth(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransientError{Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) auth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// checkStatus maps HTTP status codes onto the error taxonomy: 2xx ok,
// 429/5xx transient, other 4xx permanent rejection with the reason kept.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &TransientError{Status: resp.StatusCode}
	}
	reason, _ := io.ReadAll(io.LimitReader(resp.Body, 1024)) //nolint:errcheck // best effort
	return &RejectedError{Status: resp.StatusCode, Reason: string(reason)}
}
