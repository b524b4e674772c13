// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/models"
	"github.com/danielhkuo/song-wishlist/testutil"
)

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		voter          string
		expectedStatus int
		expectedName   string
	}{
		{
			name:           "valid session",
			body:           models.CreateSessionRequest{Name: "RMC Choir", CreatorName: "Alice"},
			expectedStatus: http.StatusCreated,
			expectedName:   "RMC Choir",
		},
		{
			name:           "default name",
			body:           models.CreateSessionRequest{CreatorName: "Alice"},
			expectedStatus: http.StatusCreated,
			expectedName:   hub.DefaultSessionName,
		},
		{
			name:           "creator from header",
			body:           models.CreateSessionRequest{Name: "Altos"},
			voter:          "Bob",
			expectedStatus: http.StatusCreated,
			expectedName:   "Altos",
		},
		{
			name:           "missing creator",
			body:           models.CreateSessionRequest{Name: "Nobody"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace creator",
			body:           models.CreateSessionRequest{CreatorName: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "creator name too long",
			body:           models.CreateSessionRequest{CreatorName: strings.Repeat("x", 51)},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutil.NewTestHub()
			handler := NewSessionHandler(h)

			req := testutil.MakeRequest("POST", "/sessions", tt.body, tt.voter)
			w := httptest.NewRecorder()
			handler.CreateSession(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp models.CreateSessionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.SessionID == "" || resp.ShareSlug == "" {
				t.Fatalf("Expected session_id and share_slug, got %+v", resp)
			}

			s, err := h.Get(resp.ShareSlug)
			if err != nil {
				t.Fatalf("Session not registered in hub: %v", err)
			}
			if s.Info().Name != tt.expectedName {
				t.Errorf("Expected name '%s', got '%s'", tt.expectedName, s.Info().Name)
			}
		})
	}
}

func TestCreateSession_InvalidJSON(t *testing.T) {
	handler := NewSessionHandler(testutil.NewTestHub())

	req := httptest.NewRequest("POST", "/sessions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.CreateSession(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetSession(t *testing.T) {
	h := testutil.NewTestHub()
	slug := testutil.CreateTestSession(t, h)
	testutil.SubmitTestSong(t, h, slug, "Amazing Grace", "Trad.", "alice")
	handler := NewSessionHandler(h)

	t.Run("existing session", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/sessions/"+slug, nil, "")
		req.SetPathValue("slug", slug)
		w := httptest.NewRecorder()
		handler.GetSession(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SessionResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ShareSlug != slug {
			t.Errorf("Expected slug %s, got %s", slug, resp.ShareSlug)
		}
		if resp.SongCount != 1 {
			t.Errorf("Expected 1 song, got %d", resp.SongCount)
		}
		if resp.CreatedBy != "TestUser" {
			t.Errorf("Expected creator TestUser, got %s", resp.CreatedBy)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/sessions/nope", nil, "")
		req.SetPathValue("slug", "nope")
		w := httptest.NewRecorder()
		handler.GetSession(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
