// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs the completed request with method, path, status, duration_ms and the
caller's display name when one was sent. 5xx responses log at warn level.

# CORS and Security Headers

	server := http.Server{
		Handler: middleware.CORS(middleware.SecurityHeaders(mux)),
	}

CORS allows GET, POST, OPTIONS with headers Content-Type and X-Voter-Name.
SecurityHeaders sets a Content-Security-Policy that permits YouTube embeds
(frame-src www.youtube.com) and thumbnails (i.ytimg.com, img.youtube.com).

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SubmitSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Identity

	voter := middleware.VoterName(r)

Reads the X-Voter-Name header. Validation happens in the domain layer.
*/
package middleware
