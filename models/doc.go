// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the API.

# Request Types

  - CreateSessionRequest: name, creator_name
  - SubmitSongRequest: title, artist, notes, video_id
  - SwipeRequest: one of delta, trace or decision

# Response Types

  - CreateSessionResponse: session_id, share_slug
  - SessionResponse: session info plus song_count
  - SongView / SongsResponse: a song with its voters and the caller's has_voted
  - RankedSong / RankingsResponse: leaderboard rows with weight and percent
  - SwipeResponse: the committed decision and the song after voting
  - VideoView / SearchResponse: YouTube search results
  - ErrorResponse: error, message

# Constants

Swipe decisions:

	DecisionApprove   = "approve"
	DecisionSkip      = "skip"
	DecisionUndecided = "undecided"

These match gesture.Decision text values.
*/
package models
