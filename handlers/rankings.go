// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/models"
)

type RankingsHandler struct {
	hub *hub.Hub
}

func NewRankingsHandler(h *hub.Hub) *RankingsHandler {
	return &RankingsHandler{hub: h}
}

// GetRankings handles GET /sessions/{slug}/rankings
// Rankings are recomputed on every request; nothing is cached.
func (h *RankingsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	voter := middleware.VoterName(r)
	ranked := s.Rankings()

	rows := make([]models.RankedSong, len(ranked))
	for i, row := range ranked {
		rows[i] = rankedView(row, voter)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankingsResponse{
		SessionName: s.Info().Name,
		ComputedAt:  time.Now().UTC(),
		Rankings:    rows,
	})
}
