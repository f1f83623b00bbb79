package cli

import (
	"github.com/spf13/cobra"

	"lcwatch/internal/service"
	"lcwatch/internal/version"
)

// Execute builds the command tree around the given tracker and runs it.
func Execute(tracker *service.Tracker) error {
	return newRootCmd(tracker).Execute()
}

func newRootCmd(tracker *service.Tracker) *cobra.Command {
	root := &cobra.Command{
		Use:   "lcwatch",
		Short: "Track LeetCode users and report their recent activity",
		Long: `lcwatch keeps a small file-backed list of LeetCode usernames and reports
their recent problem-solving activity: the most recent submission of a single
user, a digest across all tracked users, or a weekly solved-count leaderboard.`,
		Version:       version.GetVersionInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(tracker),
		newRemoveCmd(tracker),
		newUsersCmd(tracker),
		newGetCmd(tracker),
		newRecentsCmd(tracker),
		newRecapCmd(tracker),
	)
	return root
}
