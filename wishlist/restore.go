// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wishlist

import (
	"fmt"
	"time"
)

// SongRecord is a song as read back from a backing store
type SongRecord struct {
	ID          int64
	Title       string
	Artist      string
	Notes       string
	SuggestedBy string
	VideoID     string
	CreatedAt   time.Time
	Voters      []string
}

// Restore rebuilds a session from stored records. Records must be in
// submission order with strictly increasing IDs; a voter listed twice on
// the same song is rejected rather than silently dropped.
func Restore(info Info, records []SongRecord) (*Session, error) {
	s := NewSession(info)

	var lastID int64
	for _, rec := range records {
		if rec.ID <= lastID {
			return nil, fmt.Errorf("restore session %s: song id %d out of order", info.Slug, rec.ID)
		}
		if rec.Title == "" || rec.Artist == "" {
			return nil, fmt.Errorf("restore session %s: song %d missing title or artist", info.Slug, rec.ID)
		}

		seen := make(map[string]bool, len(rec.Voters))
		for _, v := range rec.Voters {
			if seen[v] {
				return nil, fmt.Errorf("restore session %s: song %d has duplicate voter %q", info.Slug, rec.ID, v)
			}
			seen[v] = true
		}

		s.index[rec.ID] = len(s.songs)
		s.songs = append(s.songs, Song{
			ID:          rec.ID,
			Title:       rec.Title,
			Artist:      rec.Artist,
			Notes:       rec.Notes,
			SuggestedBy: rec.SuggestedBy,
			VideoID:     rec.VideoID,
			CreatedAt:   rec.CreatedAt,
			voters:      append([]string(nil), rec.Voters...),
		})
		lastID = rec.ID
	}
	s.nextID = lastID + 1

	return s, nil
}
