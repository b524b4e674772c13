// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/song-wishlist/models"
	"github.com/danielhkuo/song-wishlist/testutil"
)

// TestConcurrentVotes has many members vote on one song at once
func TestConcurrentVotes(t *testing.T) {
	h := testutil.NewTestHub()
	slug := testutil.CreateTestSession(t, h)
	song := testutil.SubmitTestSong(t, h, slug, "Oceans", "Hillsong", "alice")
	handler := NewSongHandler(h)

	const voters = 50
	var wg sync.WaitGroup
	var created atomic.Int32

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := songRequest("POST", slug, song.ID, "/votes", nil, fmt.Sprintf("voter-%d", i))
			w := httptest.NewRecorder()
			handler.Vote(w, req)
			if w.Code == http.StatusCreated {
				created.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if created.Load() != voters {
		t.Errorf("Expected %d successful votes, got %d", voters, created.Load())
	}

	s, _ := h.Get(slug)
	current, _ := s.Song(song.ID)
	if current.Votes() != voters || len(current.Voters()) != voters {
		t.Errorf("Expected %d votes, got %d", voters, current.Votes())
	}
}

// TestConcurrentDuplicateVotes has one member double-tap from many tabs
func TestConcurrentDuplicateVotes(t *testing.T) {
	h := testutil.NewTestHub()
	slug := testutil.CreateTestSession(t, h)
	song := testutil.SubmitTestSong(t, h, slug, "Oceans", "Hillsong", "alice")
	handler := NewSongHandler(h)

	const attempts = 20
	var wg sync.WaitGroup
	var created, conflicts atomic.Int32

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := songRequest("POST", slug, song.ID, "/swipe", models.SwipeRequest{Decision: "approve"}, "bob")
			w := httptest.NewRecorder()
			handler.Swipe(w, req)
			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	if created.Load() != 1 || conflicts.Load() != attempts-1 {
		t.Errorf("Expected 1 created and %d conflicts, got %d and %d", attempts-1, created.Load(), conflicts.Load())
	}
}

// TestConcurrentSubmissions checks IDs stay unique under parallel submits
func TestConcurrentSubmissions(t *testing.T) {
	h := testutil.NewTestHub()
	slug := testutil.CreateTestSession(t, h)
	handler := NewSongHandler(h)

	const songs = 30
	var wg sync.WaitGroup
	for i := 0; i < songs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := models.SubmitSongRequest{Title: fmt.Sprintf("Song %d", i), Artist: "Choir"}
			req := testutil.MakeRequest("POST", "/sessions/"+slug+"/songs", body, "alice")
			req.SetPathValue("slug", slug)
			handler.SubmitSong(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	s, _ := h.Get(slug)
	seen := make(map[int64]bool)
	var last int64
	for _, song := range s.Songs() {
		if seen[song.ID] {
			t.Fatalf("Duplicate song id %d", song.ID)
		}
		if song.ID <= last {
			t.Errorf("IDs out of submission order: %d after %d", song.ID, last)
		}
		seen[song.ID] = true
		last = song.ID
	}
	if len(seen) != songs {
		t.Errorf("Expected %d songs, got %d", songs, len(seen))
	}
}
