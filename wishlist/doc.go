// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wishlist is the voting and ranking core.

# Sessions

A Session is one group's wishlist. It holds the song registry (append-only,
submission order) and the vote ledger (who voted for what):

	s := wishlist.NewSession(wishlist.Info{ID: id, Slug: slug})

	song, err := s.Submit(wishlist.Submission{Title: "Oceans", Artist: "Hillsong"}, "alice")
	song, err = s.Vote(song.ID, "bob")

Submit fails with *ValidationError when title or artist is blank. Vote fails
with *VoteError: Kind AlreadyVoted for a repeat voter, NotFound for an
unknown song ID. Use errors.Is with ErrAlreadyVoted or ErrSongNotFound.

# Vote Counts

The voter list is the source of truth. Song.Votes() is its length, so the
two cannot drift apart. There is no way to retract a vote.

# Ranking

	for _, r := range wishlist.Rank(s.Songs()) {
		fmt.Printf("%d. %s (%.0f%%)\n", r.Position, r.Song.Title, r.Percent())
	}

Songs are sorted by votes descending; ties keep submission order. Weights
are relative to the top song and never drop below WeightFloor (0.10).
*/
package wishlist
