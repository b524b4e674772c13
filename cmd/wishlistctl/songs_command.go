package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/song-wishlist/models"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	var deckOnly bool

	cmd := &cobra.Command{
		Use:   "songs",
		Short: "List suggested songs in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, err := ctx.sessionSlug()
			if err != nil {
				return err
			}
			c, err := ctx.client()
			if err != nil {
				return err
			}

			var songs []models.SongView
			if deckOnly {
				if err := ctx.requireName(); err != nil {
					return err
				}
				songs, err = c.Deck(cmd.Context(), slug)
			} else {
				songs, err = c.Songs(cmd.Context(), slug)
			}
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, songs)
			}
			if len(songs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No songs yet")
				return nil
			}

			rows := make([][]string, 0, len(songs))
			for _, s := range songs {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.Title,
					s.Artist,
					s.SuggestedBy,
					strconv.Itoa(s.Votes),
					yesNo(s.HasVoted),
					humanize.Time(s.CreatedAt),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Artist", "By", "Votes", "Voted", "Added"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&deckOnly, "deck", false, "Only songs you have not voted on")
	return cmd
}

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var notes, videoID string

	cmd := &cobra.Command{
		Use:   "suggest <title> <artist>",
		Short: "Suggest a song",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, err := ctx.sessionSlug()
			if err != nil {
				return err
			}
			if err := ctx.requireName(); err != nil {
				return err
			}
			c, err := ctx.client()
			if err != nil {
				return err
			}

			song, err := c.Suggest(cmd.Context(), slug, models.SubmitSongRequest{
				Title:   args[0],
				Artist:  args[1],
				Notes:   notes,
				VideoID: videoID,
			})
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, song)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s by %s\n", song.ID, song.Title, song.Artist)
			return nil
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Why the group should sing it")
	cmd.Flags().StringVar(&videoID, "video", "", "YouTube video ID (see the search command)")
	return cmd
}

func newVoteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <song-id>",
		Short: "Vote for a song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := parseSongID(args[0])
			if err != nil {
				return err
			}
			slug, err := ctx.sessionSlug()
			if err != nil {
				return err
			}
			if err := ctx.requireName(); err != nil {
				return err
			}
			c, err := ctx.client()
			if err != nil {
				return err
			}

			song, err := c.Vote(cmd.Context(), slug, songID)
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, song)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Voted for %s (%d votes)\n", song.Title, song.Votes)
			return nil
		},
	}
}

func newSkipCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "skip <song-id>",
		Short: "Pass on a song without voting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return swipe(cmd, ctx, args[0], models.DecisionSkip)
		},
	}
}

func swipe(cmd *cobra.Command, ctx *commandContext, rawID, decision string) error {
	songID, err := parseSongID(rawID)
	if err != nil {
		return err
	}
	slug, err := ctx.sessionSlug()
	if err != nil {
		return err
	}
	if err := ctx.requireName(); err != nil {
		return err
	}
	c, err := ctx.client()
	if err != nil {
		return err
	}

	resp, err := c.Swipe(cmd.Context(), slug, songID, models.SwipeRequest{Decision: decision})
	if err != nil {
		return err
	}

	if ctx.json {
		return writeJSON(cmd, resp)
	}
	out := cmd.OutOrStdout()
	switch {
	case resp.Voted && resp.Song != nil:
		fmt.Fprintf(out, "Voted for %s (%d votes)\n", resp.Song.Title, resp.Song.Votes)
	case resp.Song != nil:
		fmt.Fprintf(out, "Skipped %s\n", resp.Song.Title)
	default:
		fmt.Fprintln(out, "Nothing changed")
	}
	return nil
}

// parseSongID accepts "3" or "#3"
func parseSongID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid song id %q", raw)
	}
	return id, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
