package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Create or inspect a wishlist session",
	}
	cmd.AddCommand(newSessionCreateCommand(ctx))
	cmd.AddCommand(newSessionShowCommand(ctx))
	return cmd
}

func newSessionCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Start a new session and print its share slug",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.requireName(); err != nil {
				return err
			}
			c, err := ctx.client()
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			resp, err := c.CreateSession(cmd.Context(), name)
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session created: %s\n", resp.ShareSlug)
			fmt.Fprintf(cmd.OutOrStdout(), "Share it with: --session %s\n", resp.ShareSlug)
			return nil
		},
	}
}

func newSessionShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show session details",
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

			info, err := c.Session(cmd.Context(), slug)
			if err != nil {
				return err
			}

			if ctx.json {
				return writeJSON(cmd, info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", info.Name, info.ShareSlug)
			fmt.Fprintf(out, "Started by %s %s\n", info.CreatedBy, humanize.Time(info.CreatedAt))
			fmt.Fprintf(out, "%s suggested\n", pluralSongs(info.SongCount))
			return nil
		},
	}
}

func pluralSongs(n int) string {
	if n == 1 {
		return "1 song"
	}
	return humanize.Comma(int64(n)) + " songs"
}
