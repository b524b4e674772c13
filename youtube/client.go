// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	DefaultMaxResults = 5
)

// Client calls the YouTube Data API v3 search endpoint
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
	maxRetries uint64
	retryBase  time.Duration
	http       *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMaxResults caps the number of candidates per search (1-50)
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n >= 1 && n <= 50 {
			c.maxResults = n
		}
	}
}

// WithRetries sets how many times a transient failure is retried and the
// first backoff delay.
func WithRetries(n uint64, base time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = n
		c.retryBase = base
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		maxResults: DefaultMaxResults,
		maxRetries: 3,
		retryBase:  200 * time.Millisecond,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default thumbnail `json:"default"`
				Medium  thumbnail `json:"medium"`
				High    thumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search returns embeddable videos matching query. Rate limiting, server
// errors and transport failures are retried with exponential backoff.
func (c *Client) Search(ctx context.Context, query string) ([]Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &LookupError{Query: query, Err: ErrEmptyQuery}
	}

	var videos []Video
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := c.search(ctx, query)
		if err != nil {
			return err
		}
		videos = v
		return nil
	})
	if err != nil {
		return nil, &LookupError{Query: query, Err: err}
	}
	if len(videos) == 0 {
		return nil, &LookupError{Query: query, Err: ErrNoResults}
	}
	return videos, nil
}

func (c *Client) search(ctx context.Context, query string) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Add("key", c.apiKey)
	q.Add("part", "snippet")
	q.Add("type", "video")
	q.Add("videoEmbeddable", "true")
	q.Add("maxResults", strconv.Itoa(c.maxResults))
	q.Add("q", query)
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("youtube search request failed, retrying", "error", err)
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, apiErrorMessage(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			slog.Warn("youtube search transient failure, retrying", "status", resp.StatusCode)
			return nil, retry.RetryableError(statusErr)
		}
		return nil, statusErr
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	videos := make([]Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Thumbnail:    pickThumbnail(item.Snippet.Thumbnails.Medium, item.Snippet.Thumbnails.Default, item.Snippet.Thumbnails.High),
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	return videos, nil
}

func pickThumbnail(candidates ...thumbnail) string {
	for _, t := range candidates {
		if t.URL != "" {
			return t.URL
		}
	}
	return ""
}

func apiErrorMessage(body []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	if len(body) > 200 {
		body = body[:200]
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response"
	}
	return msg
}

// IsNoResults reports whether err is a lookup that simply found nothing
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}
