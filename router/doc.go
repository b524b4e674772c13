// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router configures HTTP routes for the song wishlist API.

# Usage

	mux := router.NewRouter(h, searcher)
	server := http.Server{Handler: router.NewHandler(h, searcher)}

NewHandler wraps the mux in CORS and SecurityHeaders. searcher may be nil,
which leaves /search answering 503.

# Routes

Uses Go 1.22+ method-based routing patterns:

	GET  /health                           Health check (returns "OK")
	GET  /                                 API banner
	POST /sessions                         Create session
	GET  /sessions/{slug}                  Session info
	POST /sessions/{slug}/songs            Suggest a song
	GET  /sessions/{slug}/songs            List songs
	GET  /sessions/{slug}/deck             Caller's swipe deck
	POST /sessions/{slug}/songs/{id}/votes Vote
	POST /sessions/{slug}/songs/{id}/swipe Commit a swipe gesture
	GET  /sessions/{slug}/rankings         Ranked list
	GET  /search?title=&artist=            YouTube lookup

All routes except /health and / are wrapped with middleware.WithLogging.
*/
package router
