// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wishlist

import (
	"cmp"
	"slices"
)

// WeightFloor keeps every bar visible, even at zero votes
const WeightFloor = 0.10

// Ranked is one row of the leaderboard
type Ranked struct {
	Song     Song
	Position int // 1-indexed
	Weight   float64
}

// Percent is the bar width as a percentage of the widest bar
func (r Ranked) Percent() float64 {
	return r.Weight * 100
}

// Rank orders songs by votes, highest first. Songs must be passed in
// submission order: the sort is stable, so ties keep that order.
//
// Weight is votes / max(1, top vote count), floored at WeightFloor. With no
// votes at all the divisor floors to 1, every ratio is 0, and every song
// gets the floor.
func Rank(songs []Song) []Ranked {
	ordered := slices.Clone(songs)
	slices.SortStableFunc(ordered, func(a, b Song) int {
		return cmp.Compare(b.Votes(), a.Votes())
	})

	maxVotes := 1
	for _, song := range ordered {
		maxVotes = max(maxVotes, song.Votes())
	}

	out := make([]Ranked, len(ordered))
	for i, song := range ordered {
		out[i] = Ranked{
			Song:     song,
			Position: i + 1,
			Weight:   max(float64(song.Votes())/float64(maxVotes), WeightFloor),
		}
	}
	return out
}
