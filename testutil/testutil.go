// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/song-wishlist/cliparse"
	"github.com/danielhkuo/song-wishlist/db"
	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/wishlist"
	"github.com/danielhkuo/song-wishlist/youtube"
)

const TestSlugSalt = "test-slug-salt"

// SetupTestStore opens a fresh SQLite store in a temp directory
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// NewTestHub returns an in-memory hub with no backing store
func NewTestHub() *hub.Hub {
	return hub.New(TestSlugSalt, nil)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseType:     db.TypeSQLite,
		SlugSalt:         TestSlugSalt,
		SearchMaxResults: cliparse.DefaultMaxResults,
		LogLevel:         "error",
		LogFormat:        "text",
	}
}

// CreateTestSession starts a session and returns its share slug
func CreateTestSession(t *testing.T, h *hub.Hub) string {
	t.Helper()

	info, err := h.Create(context.Background(), "Test Choir", "TestUser")
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return info.Slug
}

// SubmitTestSong adds a song and returns it
func SubmitTestSong(t *testing.T, h *hub.Hub, slug, title, artist, by string) wishlist.Song {
	t.Helper()

	song, err := h.Submit(context.Background(), slug, wishlist.Submission{Title: title, Artist: artist}, by)
	if err != nil {
		t.Fatalf("Failed to submit test song: %v", err)
	}
	return song
}

// CastTestVotes votes on songID once per voter
func CastTestVotes(t *testing.T, h *hub.Hub, slug string, songID int64, voters ...string) {
	t.Helper()

	for _, voter := range voters {
		if _, err := h.Vote(context.Background(), slug, songID, voter); err != nil {
			t.Fatalf("Failed to cast test vote by %s: %v", voter, err)
		}
	}
}

// FakeSearcher is a canned youtube.Searcher
type FakeSearcher struct {
	Videos []youtube.Video
	Err    error

	calls   atomic.Int32
	mu      sync.Mutex
	queries []string
}

func (f *FakeSearcher) Search(ctx context.Context, query string) ([]youtube.Video, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Videos, nil
}

func (f *FakeSearcher) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeSearcher) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// MakeRequest creates an HTTP test request. A non-empty voter is sent in
// the X-Voter-Name header.
func MakeRequest(method, path string, body any, voter string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if voter != "" {
		req.Header.Set(middleware.VoterHeader, voter)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
