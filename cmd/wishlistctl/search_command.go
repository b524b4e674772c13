package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <title> <artist>",
		Short: "Find YouTube videos for a song",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.client()
			if err != nil {
				return err
			}

			resp, err := c.Search(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, resp)
			}
			rows := make([][]string, 0, len(resp.Results))
			for i, v := range resp.Results {
				rows = append(rows, []string{strconv.Itoa(i + 1), v.ID, v.Title, v.ChannelTitle})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Video", "Title", "Channel"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}
}
