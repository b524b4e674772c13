// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/song-wishlist/models"
	"github.com/danielhkuo/song-wishlist/wishlist"
	"github.com/danielhkuo/song-wishlist/youtube"
)

// songView renders a song as seen by voter ("" for an anonymous caller)
func songView(song wishlist.Song, voter string) models.SongView {
	voters := song.Voters()
	if voters == nil {
		voters = []string{}
	}
	return models.SongView{
		ID:          song.ID,
		Title:       song.Title,
		Artist:      song.Artist,
		Notes:       song.Notes,
		SuggestedBy: song.SuggestedBy,
		VideoID:     song.VideoID,
		EmbedURL:    song.EmbedURL(),
		Votes:       song.Votes(),
		Voters:      voters,
		HasVoted:    voter != "" && song.HasVoter(voter),
		CreatedAt:   song.CreatedAt,
	}
}

func songViews(songs []wishlist.Song, voter string) []models.SongView {
	out := make([]models.SongView, len(songs))
	for i, song := range songs {
		out[i] = songView(song, voter)
	}
	return out
}

func rankedView(r wishlist.Ranked, voter string) models.RankedSong {
	return models.RankedSong{
		SongView: songView(r.Song, voter),
		Position: r.Position,
		Weight:   r.Weight,
		Percent:  r.Percent(),
	}
}

func videoView(v youtube.Video) models.VideoView {
	return models.VideoView{
		ID:           v.ID,
		Title:        v.Title,
		Thumbnail:    v.Thumbnail,
		ChannelTitle: v.ChannelTitle,
		EmbedURL:     youtube.EmbedURL(v.ID),
	}
}

func sessionView(info wishlist.Info, songCount int) models.SessionResponse {
	return models.SessionResponse{
		ID:        info.ID,
		ShareSlug: info.Slug,
		Name:      info.Name,
		CreatedBy: info.CreatedBy,
		CreatedAt: info.CreatedAt,
		SongCount: songCount,
	}
}
