// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/wishlist"
	"github.com/danielhkuo/song-wishlist/youtube"
)

const (
	msgSessionNotFound = "Session not found"
	msgSongNotFound    = "Song not found"
	msgAlreadyVoted    = "You have already voted for this song"
	msgEmptyQuery      = "Please enter both song title and artist before searching"
	msgNoResults       = "No videos found for this song"
)

// writeError maps domain errors onto status codes. Anything unrecognised
// is logged and reported as a 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *wishlist.ValidationError
	var lerr *youtube.LookupError

	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, hub.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, msgSessionNotFound)
	case errors.Is(err, wishlist.ErrSongNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, msgSongNotFound)
	case errors.Is(err, wishlist.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, msgAlreadyVoted)
	case errors.Is(err, youtube.ErrEmptyQuery):
		middleware.ErrorResponse(w, http.StatusBadRequest, msgEmptyQuery)
	case youtube.IsNoResults(err):
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoResults)
	case errors.As(err, &lerr):
		slog.Warn("youtube search failed", "error", err, "query", lerr.Query)
		middleware.ErrorResponse(w, http.StatusBadGateway, youtube.UserMessage)
	default:
		slog.Error("unhandled error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// songIDFromPath parses the {id} path value
func songIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
