// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-wishlist/gesture"
	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/models"
	"github.com/danielhkuo/song-wishlist/wishlist"
)

type SongHandler struct {
	hub *hub.Hub
}

func NewSongHandler(h *hub.Hub) *SongHandler {
	return &SongHandler{hub: h}
}

// SubmitSong handles POST /sessions/{slug}/songs
func (h *SongHandler) SubmitSong(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voter := middleware.VoterName(r)
	song, err := h.hub.Submit(r.Context(), r.PathValue("slug"), wishlist.Submission{
		Title:   req.Title,
		Artist:  req.Artist,
		Notes:   req.Notes,
		VideoID: req.VideoID,
	}, voter)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, songView(song, voter))
}

// ListSongs handles GET /sessions/{slug}/songs
func (h *SongHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SongsResponse{
		Songs: songViews(s.Songs(), middleware.VoterName(r)),
	})
}

// GetDeck handles GET /sessions/{slug}/deck
// Returns the songs the caller has not voted on, for swiping.
func (h *SongHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	voter := middleware.VoterName(r)
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.VoterHeader+" header required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SongsResponse{
		Songs: songViews(s.Deck(voter), voter),
	})
}

// Vote handles POST /sessions/{slug}/songs/{id}/votes
func (h *SongHandler) Vote(w http.ResponseWriter, r *http.Request) {
	songID, ok := songIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid song id")
		return
	}

	voter := middleware.VoterName(r)
	song, err := h.hub.Vote(r.Context(), r.PathValue("slug"), songID, voter)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, songView(song, voter))
}

// Swipe handles POST /sessions/{slug}/songs/{id}/swipe
// Approve casts a vote. Skip and undecided leave the tally alone.
func (h *SongHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	songID, ok := songIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var req models.SwipeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	decision, err := swipeDecision(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	slug := r.PathValue("slug")
	voter := middleware.VoterName(r)

	if decision == gesture.Approve {
		song, err := h.hub.Vote(r.Context(), slug, songID, voter)
		if err != nil {
			writeError(w, err)
			return
		}
		view := songView(song, voter)
		middleware.JSONResponse(w, http.StatusCreated, models.SwipeResponse{
			Decision: decision.String(),
			Voted:    true,
			Song:     &view,
		})
		return
	}

	s, err := h.hub.Get(slug)
	if err != nil {
		writeError(w, err)
		return
	}
	song, err := s.Song(songID)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Debug("swipe without vote", "session", slug, "song_id", songID, "decision", decision)

	view := songView(song, voter)
	middleware.JSONResponse(w, http.StatusOK, models.SwipeResponse{
		Decision: decision.String(),
		Song:     &view,
	})
}

var errNoGesture = errors.New("one of delta, trace or decision is required")

// swipeDecision picks the gesture outcome from whichever field was sent.
// An explicit decision (button press) wins over a drag.
func swipeDecision(req models.SwipeRequest) (gesture.Decision, error) {
	switch {
	case req.Decision != "":
		return gesture.ParseDecision(req.Decision)
	case req.Delta != nil:
		return gesture.Classify(*req.Delta), nil
	case len(req.Trace) > 0:
		return gesture.Replay(req.Trace), nil
	default:
		return gesture.Undecided, errNoGesture
	}
}
