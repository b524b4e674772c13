// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the song wishlist API.

# Handler Types

Each handler is a struct holding its collaborators:

  - SessionHandler: create and look up sessions
  - SongHandler: suggest songs, list them, the swipe deck, votes and swipes
  - RankingsHandler: the ranked leaderboard
  - SearchHandler: YouTube video lookup

	songHandler := handlers.NewSongHandler(h)
	searchHandler := handlers.NewSearchHandler(searcher) // nil disables search

# Identity

There are no accounts. The caller's display name travels in the
X-Voter-Name header and is trimmed and validated by the domain layer.

# Session Flow

	POST /sessions                       → CreateSession (returns share_slug)
	POST /sessions/{slug}/songs          → SubmitSong
	GET  /sessions/{slug}/songs          → ListSongs (has_voted for the caller)
	GET  /sessions/{slug}/deck           → GetDeck (songs not yet voted on)
	POST /sessions/{slug}/songs/{id}/votes → Vote
	POST /sessions/{slug}/songs/{id}/swipe → Swipe
	GET  /sessions/{slug}/rankings       → GetRankings

# Swipes

The swipe body carries one of:

	{"delta": 72}                 drag distance in pixels
	{"trace": [140, 160, 215]}    pointer x positions, start first
	{"decision": "skip"}          vote/skip buttons

Past +50px approves and casts a vote; past -50px skips. Anything in
between is undecided and changes nothing.

# Error Mapping

	validation error      → 400
	unknown session/song  → 404
	already voted         → 409
	no search results     → 404
	search failure        → 502
	search not configured → 503
*/
package handlers
