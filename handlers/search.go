// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/models"
	"github.com/danielhkuo/song-wishlist/youtube"
)

type SearchHandler struct {
	searcher youtube.Searcher
}

// NewSearchHandler takes the lookup to use; nil disables search
func NewSearchHandler(searcher youtube.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search handles GET /search?title=&artist=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h.searcher == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Video search is not configured")
		return
	}

	q := r.URL.Query()
	query, err := youtube.Query(q.Get("title"), q.Get("artist"))
	if err != nil {
		writeError(w, err)
		return
	}

	videos, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]models.VideoView, len(videos))
	for i, v := range videos {
		results[i] = videoView(v)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{
		Query:   query,
		Results: results,
	})
}
