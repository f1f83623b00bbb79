package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"lcwatch/internal/domain"
	"lcwatch/internal/stats"
)

// The report templates below are consumed verbatim by chat surfaces that
// already existed before this rewrite.  Spacing, trailing blanks and the
// backtick monospace markers are part of the wire format; do not "fix" them.

const (
	mostRecentTemplate = "\nProblem Title:  %s\nSubmit Time:   %s\nResult:              %s     \nLanguage:        %s\n"
	submitTimeLayout   = "2006-01-02 15:04:05"
	leaderboardPadding = 15
)

// MostRecent renders the newest record of a submission list.  The list must
// be non-empty; callers guard the empty case upstream.
func MostRecent(submissions []domain.Submission) string {
	problem := submissions[0]
	return fmt.Sprintf(mostRecentTemplate,
		problem.Title,
		problem.SubmittedAt().Format(submitTimeLayout),
		problem.Status,
		problem.Lang,
	)
}

// DigestBlock renders one user's entry of the multi-user digest.
func DigestBlock(username string, submissions []domain.Submission) string {
	return fmt.Sprintf("\n%s's most recent submission:\n%s\n", username, MostRecent(submissions))
}

// Leaderboard renders the weekly recap block.  Usernames are padded to a
// fixed display width (runewidth, so wide characters line up too) and the
// whole table is wrapped in backticks for monospace rendering.
func Leaderboard(tallies []stats.Tally) string {
	var sb strings.Builder
	sb.WriteString("Weekly Recap:\n`")
	for _, tally := range tallies {
		sb.WriteString(runewidth.FillRight(tally.Username, leaderboardPadding))
		sb.WriteString(fmt.Sprintf("%d problems solved.", tally.Solved))
		sb.WriteString("\n")
	}
	sb.WriteString("`")
	return sb.String()
}

// UserList renders the tracked usernames for display.
func UserList(usernames []string) string {
	if len(usernames) == 0 {
		return "No users are being tracked yet."
	}
	return "Tracked users: " + strings.Join(usernames, ", ")
}
