// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Song Wishlist API server.

Song Wishlist lets a choir or small group suggest songs, vote on them by
button or swipe, and see a ranked list with embedded YouTube playback.

# Starting the Server

	SLUG_SALT=change-me go run .

Or with flags:

	go run . -p 3318 -slug-salt change-me -d file:wishlist.db

Settings can also live in a .env file in the working directory.

# Configuration

Required settings:

  - SLUG_SALT (-slug-salt): Secret for share slug generation

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): enables the write-through backing store
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - YOUTUBE_API_KEY (-youtube-key): enables /search
  - SEARCH_MAX_RESULTS (-max-results): results per search (default: 5)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

Without DATABASE_URL all state is in memory and lost on restart.

# Architecture

  - wishlist: song registry, vote ledger, ranking
  - gesture: swipe classification
  - youtube: YouTube Data API search and embed helpers
  - hub: live sessions keyed by share slug
  - db: optional SQLite/PostgreSQL store
  - identity: display names, session IDs, share slugs
  - handlers, router, middleware, models: the HTTP API
  - cliparse: configuration parsing
  - client, cmd/wishlistctl: Go API client and terminal tool

See package documentation for each component.
*/
package main
