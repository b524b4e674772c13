package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newRankCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show songs ranked by votes",
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

			resp, err := c.Rankings(cmd.Context(), slug)
			if err != nil {
				return err
			}
			if limit > 0 && len(resp.Rankings) > limit {
				resp.Rankings = resp.Rankings[:limit]
			}

			if ctx.json {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			if len(resp.Rankings) == 0 {
				fmt.Fprintln(out, "No songs yet")
				return nil
			}

			rows := make([][]string, 0, len(resp.Rankings))
			for _, r := range resp.Rankings {
				rows = append(rows, []string{
					humanize.Ordinal(r.Position),
					r.Title,
					r.Artist,
					strconv.Itoa(r.Votes),
					renderBar(r.Weight),
				})
			}
			fmt.Fprintln(out, resp.SessionName)
			fmt.Fprintln(out, renderTable(
				[]string{"Rank", "Title", "Artist", "Votes", ""},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "top", 0, "Only show the top N songs")
	return cmd
}
