// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/song-wishlist/handlers"
	"github.com/danielhkuo/song-wishlist/hub"
	"github.com/danielhkuo/song-wishlist/middleware"
	"github.com/danielhkuo/song-wishlist/youtube"
)

const Banner = "song-wishlist API v1"

// NewRouter registers every route. searcher may be nil, in which case
// /search answers 503.
func NewRouter(h *hub.Hub, searcher youtube.Searcher) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(h)
	songHandler := handlers.NewSongHandler(h)
	rankingsHandler := handlers.NewRankingsHandler(h)
	searchHandler := handlers.NewSearchHandler(searcher)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{slug}", middleware.WithLogging(sessionHandler.GetSession))

	// Song registry and vote ledger
	mux.HandleFunc("POST /sessions/{slug}/songs", middleware.WithLogging(songHandler.SubmitSong))
	mux.HandleFunc("GET /sessions/{slug}/songs", middleware.WithLogging(songHandler.ListSongs))
	mux.HandleFunc("GET /sessions/{slug}/deck", middleware.WithLogging(songHandler.GetDeck))
	mux.HandleFunc("POST /sessions/{slug}/songs/{id}/votes", middleware.WithLogging(songHandler.Vote))
	mux.HandleFunc("POST /sessions/{slug}/songs/{id}/swipe", middleware.WithLogging(songHandler.Swipe))

	// Rankings
	mux.HandleFunc("GET /sessions/{slug}/rankings", middleware.WithLogging(rankingsHandler.GetRankings))

	// Video lookup
	mux.HandleFunc("GET /search", middleware.WithLogging(searchHandler.Search))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}

// NewHandler is NewRouter wrapped in CORS and the security headers
func NewHandler(h *hub.Hub, searcher youtube.Searcher) http.Handler {
	return middleware.CORS(middleware.SecurityHeaders(NewRouter(h, searcher)))
}
