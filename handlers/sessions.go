// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/models"
)

type SessionHandler struct {
	hub *hub.Hub
}

func NewSessionHandler(h *hub.Hub) *SessionHandler {
	return &SessionHandler{hub: h}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The header is a fallback for clients that already set their name
	creator := req.CreatorName
	if creator == "" {
		creator = middleware.VoterName(r)
	}

	info, err := h.hub.Create(r.Context(), req.Name, creator)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: info.ID,
		ShareSlug: info.Slug,
	})
}

// GetSession handles GET /sessions/{slug}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sessionView(s.Info(), s.Len()))
}
