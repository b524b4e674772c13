// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wishlist

import (
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/song-wishlist/identity"
)

// Info describes a session
type Info struct {
	ID        string
	Slug      string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// Session owns one group's song registry and vote ledger.
// Every mutation runs to completion under the session lock, so two
// requests never interleave inside Submit or Vote.
type Session struct {
	info Info

	mu     sync.Mutex
	songs  []Song
	index  map[int64]int
	nextID int64
}

func NewSession(info Info) *Session {
	return &Session{
		info:   info,
		index:  make(map[int64]int),
		nextID: 1,
	}
}

func (s *Session) Info() Info {
	return s.info
}

// Submit appends a new song with no votes. Duplicate title/artist pairs are
// accepted; every submission is its own entry.
func (s *Session) Submit(sub Submission, submitter string) (Song, error) {
	name, err := identity.NormalizeName(submitter)
	if err != nil {
		return Song{}, &ValidationError{Field: "suggested_by", Message: err.Error()}
	}

	sub, err = sub.normalize()
	if err != nil {
		return Song{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	song := Song{
		ID:          s.nextID,
		Title:       sub.Title,
		Artist:      sub.Artist,
		Notes:       sub.Notes,
		SuggestedBy: name,
		VideoID:     sub.VideoID,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.index[song.ID] = len(s.songs)
	s.songs = append(s.songs, song)

	return song.snapshot(), nil
}

// Vote records one vote by voter on a song. A voter gets at most one vote
// per song; a repeat is rejected and changes nothing.
func (s *Session) Vote(songID int64, voter string) (Song, error) {
	name, err := identity.NormalizeName(voter)
	if err != nil {
		return Song{}, &ValidationError{Field: "voter", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[songID]
	if !ok {
		return Song{}, &VoteError{Kind: NotFound, SongID: songID, Voter: name}
	}
	song := &s.songs[i]
	if song.HasVoter(name) {
		return Song{}, &VoteError{Kind: AlreadyVoted, SongID: songID, Voter: name}
	}

	song.voters = append(song.voters, name)
	return song.snapshot(), nil
}

// Songs returns every song in submission order
func (s *Session) Songs() []Song {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Song, len(s.songs))
	for i, song := range s.songs {
		out[i] = song.snapshot()
	}
	return out
}

func (s *Session) Song(id int64) (Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Song{}, fmt.Errorf("song %d: %w", id, ErrSongNotFound)
	}
	return s.songs[i].snapshot(), nil
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.songs)
}

func (s *Session) HasVoted(songID int64, voter string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[songID]
	return ok && s.songs[i].HasVoter(voter)
}

// Deck returns the songs voter has not voted on yet, in submission order.
// This is the swipe card stack.
func (s *Session) Deck(voter string) []Song {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Song
	for _, song := range s.songs {
		if !song.HasVoter(voter) {
			out = append(out, song.snapshot())
		}
	}
	return out
}

// Rankings ranks the current songs
func (s *Session) Rankings() []Ranked {
	return Rank(s.Songs())
}
