// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/song-wishlist/identity"
	"github.com/danielhkuo/song-wishlist/wishlist"
)

const DefaultSessionName = "Song Wishlist"

var ErrSessionNotFound = errors.New("session not found")

// Recorder receives every accepted mutation so it can be written to a
// backing store. Failures are logged and never undo the in-memory change.
type Recorder interface {
	SaveSession(ctx context.Context, info wishlist.Info) error
	SaveSong(ctx context.Context, sessionID string, song wishlist.Song) error
	SaveVote(ctx context.Context, sessionID string, songID int64, voter string, position int) error
}

// Hub holds every live session, keyed by share slug
type Hub struct {
	salt string
	rec  Recorder

	mu       sync.RWMutex
	sessions map[string]*wishlist.Session
}

// New creates an empty hub. rec may be nil for a purely in-memory server.
func New(salt string, rec Recorder) *Hub {
	return &Hub{
		salt:     salt,
		rec:      rec,
		sessions: make(map[string]*wishlist.Session),
	}
}

// Restore adds sessions loaded from a backing store
func (h *Hub) Restore(sessions ...*wishlist.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range sessions {
		h.sessions[s.Info().Slug] = s
	}
}

// Create starts a new session and returns its info
func (h *Hub) Create(ctx context.Context, name, creator string) (wishlist.Info, error) {
	creatorName, err := identity.NormalizeName(creator)
	if err != nil {
		return wishlist.Info{}, &wishlist.ValidationError{Field: "creator_name", Message: err.Error()}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSessionName
	}

	h.mu.Lock()
	var info wishlist.Info
	for {
		id := identity.NewSessionID()
		slug := identity.GenerateShareSlug(id, h.salt)
		if _, taken := h.sessions[slug]; taken {
			continue
		}
		info = wishlist.Info{
			ID:        id,
			Slug:      slug,
			Name:      name,
			CreatedBy: creatorName,
			CreatedAt: time.Now().UTC(),
		}
		h.sessions[slug] = wishlist.NewSession(info)
		break
	}
	h.mu.Unlock()

	if h.rec != nil {
		if err := h.rec.SaveSession(ctx, info); err != nil {
			slog.Warn("failed to record session", "error", err, "session", info.Slug)
		}
	}

	slog.Info("session created", "session", info.Slug, "creator", creatorName)
	return info, nil
}

// Get looks up a session by share slug
func (h *Hub) Get(slug string) (*wishlist.Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[slug]
	if !ok {
		return nil, fmt.Errorf("%q: %w", slug, ErrSessionNotFound)
	}
	return s, nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Submit appends a song to the session's registry
func (h *Hub) Submit(ctx context.Context, slug string, sub wishlist.Submission, submitter string) (wishlist.Song, error) {
	s, err := h.Get(slug)
	if err != nil {
		return wishlist.Song{}, err
	}

	song, err := s.Submit(sub, submitter)
	if err != nil {
		return wishlist.Song{}, err
	}

	if h.rec != nil {
		if err := h.rec.SaveSong(ctx, s.Info().ID, song); err != nil {
			slog.Warn("failed to record song", "error", err, "session", slug, "song_id", song.ID)
		}
	}

	slog.Info("song submitted", "session", slug, "song_id", song.ID, "suggested_by", song.SuggestedBy)
	return song, nil
}

// Vote records voter's vote on a song in the session
func (h *Hub) Vote(ctx context.Context, slug string, songID int64, voter string) (wishlist.Song, error) {
	s, err := h.Get(slug)
	if err != nil {
		return wishlist.Song{}, err
	}

	song, err := s.Vote(songID, voter)
	if err != nil {
		return wishlist.Song{}, err
	}

	if h.rec != nil {
		voters := song.Voters()
		last := len(voters) - 1
		if err := h.rec.SaveVote(ctx, s.Info().ID, song.ID, voters[last], last); err != nil {
			slog.Warn("failed to record vote", "error", err, "session", slug, "song_id", song.ID)
		}
	}

	slog.Info("vote recorded", "session", slug, "song_id", song.ID, "votes", song.Votes())
	return song, nil
}
