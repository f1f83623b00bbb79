package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lcwatch/internal/service"
)

func newGetCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show a user's most recent submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.MostRecent(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newRecentsCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "recents",
		Short: "Show the most recent submission of every tracked user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.Digest(cmd.Context()))
			return nil
		},
	}
}

func newRecapCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "recap",
		Short: "Show the weekly solved-count leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.WeeklyRecap(cmd.Context()))
			return nil
		},
	}
}
