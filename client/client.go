// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/models"
)

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to a song wishlist server as one named member
type Client struct {
	base  *url.URL
	voter string
	http  *http.Client
}

// New parses server (a bare host:port gets http://) and sends voter as the
// caller's display name on every request.
func New(server, voter string) (*Client, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return nil, errors.New("server address is required")
	}
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}
	base, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("parse server address: %w", err)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base:  base,
		voter: strings.TrimSpace(voter),
		http:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (c *Client) CreateSession(ctx context.Context, name string) (models.CreateSessionResponse, error) {
	var resp models.CreateSessionResponse
	err := c.do(ctx, http.MethodPost, "/sessions", nil,
		models.CreateSessionRequest{Name: name, CreatorName: c.voter}, &resp)
	return resp, err
}

func (c *Client) Session(ctx context.Context, slug string) (models.SessionResponse, error) {
	var resp models.SessionResponse
	err := c.do(ctx, http.MethodGet, sessionPath(slug), nil, nil, &resp)
	return resp, err
}

func (c *Client) Songs(ctx context.Context, slug string) ([]models.SongView, error) {
	var resp models.SongsResponse
	err := c.do(ctx, http.MethodGet, sessionPath(slug)+"/songs", nil, nil, &resp)
	return resp.Songs, err
}

func (c *Client) Deck(ctx context.Context, slug string) ([]models.SongView, error) {
	var resp models.SongsResponse
	err := c.do(ctx, http.MethodGet, sessionPath(slug)+"/deck", nil, nil, &resp)
	return resp.Songs, err
}

func (c *Client) Suggest(ctx context.Context, slug string, req models.SubmitSongRequest) (models.SongView, error) {
	var resp models.SongView
	err := c.do(ctx, http.MethodPost, sessionPath(slug)+"/songs", nil, req, &resp)
	return resp, err
}

func (c *Client) Vote(ctx context.Context, slug string, songID int64) (models.SongView, error) {
	var resp models.SongView
	err := c.do(ctx, http.MethodPost, songPath(slug, songID)+"/votes", nil, nil, &resp)
	return resp, err
}

func (c *Client) Swipe(ctx context.Context, slug string, songID int64, req models.SwipeRequest) (models.SwipeResponse, error) {
	var resp models.SwipeResponse
	err := c.do(ctx, http.MethodPost, songPath(slug, songID)+"/swipe", nil, req, &resp)
	return resp, err
}

func (c *Client) Rankings(ctx context.Context, slug string) (models.RankingsResponse, error) {
	var resp models.RankingsResponse
	err := c.do(ctx, http.MethodGet, sessionPath(slug)+"/rankings", nil, nil, &resp)
	return resp, err
}

func (c *Client) Search(ctx context.Context, title, artist string) (models.SearchResponse, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("artist", artist)

	var resp models.SearchResponse
	err := c.do(ctx, http.MethodGet, "/search", q, nil, &resp)
	return resp, err
}

func sessionPath(slug string) string {
	return "/sessions/" + slug
}

func songPath(slug string, songID int64) string {
	return sessionPath(slug) + "/songs/" + strconv.FormatInt(songID, 10)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := *c.base
	endpoint.Path = c.base.Path + path
	endpoint.RawPath = ""
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.voter != "" {
		req.Header.Set(middleware.VoterHeader, c.voter)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload models.ErrorResponse
		if json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
