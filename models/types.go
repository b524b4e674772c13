package models

import "time"

// Swipe decision values, also accepted by the vote/skip buttons
const (
	DecisionApprove   = "approve"
	DecisionSkip      = "skip"
	DecisionUndecided = "undecided"
)

// Request types

type CreateSessionRequest struct {
	Name        string `json:"name"`
	CreatorName string `json:"creator_name"`
}

type SubmitSongRequest struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Notes   string `json:"notes,omitempty"`
	VideoID string `json:"video_id,omitempty"`
}

// Exactly one of Delta, Trace or Decision is expected.
// Trace is a list of horizontal pointer positions, first one is the start.
type SwipeRequest struct {
	Delta    *float64  `json:"delta,omitempty"`
	Trace    []float64 `json:"trace,omitempty"`
	Decision string    `json:"decision,omitempty"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	ShareSlug string `json:"share_slug"`
}

type SessionResponse struct {
	ID        string    `json:"id"`
	ShareSlug string    `json:"share_slug"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	SongCount int       `json:"song_count"`
}

type SongView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Notes       string    `json:"notes,omitempty"`
	SuggestedBy string    `json:"suggested_by"`
	VideoID     string    `json:"video_id,omitempty"`
	EmbedURL    string    `json:"embed_url,omitempty"`
	Votes       int       `json:"votes"`
	Voters      []string  `json:"voters"`
	HasVoted    bool      `json:"has_voted"`
	CreatedAt   time.Time `json:"created_at"`
}

type SongsResponse struct {
	Songs []SongView `json:"songs"`
}

type RankedSong struct {
	SongView
	Position int     `json:"position"` // 1-indexed ranking
	Weight   float64 `json:"weight"`
	Percent  float64 `json:"percent"`
}

type RankingsResponse struct {
	SessionName string       `json:"session_name"`
	ComputedAt  time.Time    `json:"computed_at"`
	Rankings    []RankedSong `json:"rankings"`
}

type SwipeResponse struct {
	Decision string    `json:"decision"`
	Voted    bool      `json:"voted"`
	Song     *SongView `json:"song,omitempty"`
}

type VideoView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
	EmbedURL     string `json:"embed_url"`
}

type SearchResponse struct {
	Query   string      `json:"query"`
	Results []VideoView `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
