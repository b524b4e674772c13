// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Video is one search candidate
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
}

// Searcher looks up candidate videos for a free-text query.
// Results are ordered by relevance and finite.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Video, error)
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ValidVideoID reports whether id looks like a YouTube video ID
func ValidVideoID(id string) bool {
	return videoIDPattern.MatchString(id)
}

// EmbedURL returns the iframe URL for a video
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// WatchURL returns the regular watch page URL for a video
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// Query builds the search text for a song: title, a space, then artist.
func Query(title, artist string) (string, error) {
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" || artist == "" {
		return "", fmt.Errorf("%w: please enter both song title and artist before searching", ErrEmptyQuery)
	}
	return title + " " + artist, nil
}
