// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wishlist

import (
	"slices"
	"strings"
	"time"

	"github.com/danielhkuo/song-wishlist/youtube"
)

// Submission is what a member fills in on the suggest form
type Submission struct {
	Title   string
	Artist  string
	Notes   string
	VideoID string
}

func (s Submission) normalize() (Submission, error) {
	s.Title = strings.TrimSpace(s.Title)
	s.Artist = strings.TrimSpace(s.Artist)
	s.Notes = strings.TrimSpace(s.Notes)
	s.VideoID = strings.TrimSpace(s.VideoID)

	if s.Title == "" {
		return Submission{}, &ValidationError{Field: "title", Message: "title is required"}
	}
	if s.Artist == "" {
		return Submission{}, &ValidationError{Field: "artist", Message: "artist is required"}
	}
	if s.VideoID != "" && !youtube.ValidVideoID(s.VideoID) {
		return Submission{}, &ValidationError{Field: "video_id", Message: "video_id is not a valid YouTube video ID"}
	}
	return s, nil
}

// Song is a suggested piece and its vote tally.
// Values handed out by a Session are snapshots; mutating one has no effect
// on the session.
type Song struct {
	ID          int64
	Title       string
	Artist      string
	Notes       string
	SuggestedBy string
	VideoID     string
	CreatedAt   time.Time

	voters []string
}

// Votes is derived from the voter list and cannot be set directly
func (s Song) Votes() int {
	return len(s.voters)
}

// Voters returns identities in the order they voted
func (s Song) Voters() []string {
	return slices.Clone(s.voters)
}

func (s Song) HasVoter(name string) bool {
	return slices.Contains(s.voters, name)
}

// EmbedURL is the playback iframe URL, empty when no video was chosen
func (s Song) EmbedURL() string {
	if s.VideoID == "" {
		return ""
	}
	return youtube.EmbedURL(s.VideoID)
}

func (s Song) snapshot() Song {
	s.voters = slices.Clone(s.voters)
	return s
}
