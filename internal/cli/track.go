package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lcwatch/internal/service"
)

func newAddCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "add <username>",
		Short: "Start tracking a LeetCode username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.AddUser(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newRemoveCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Stop tracking a LeetCode username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.RemoveUser(args[0]))
			return nil
		},
	}
}

func newUsersCmd(tracker *service.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the tracked usernames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tracker.Users())
			return nil
		},
	}
}
