package stats

import (
	"sort"
	"time"

	"lcwatch/internal/domain"
)

// WeekWindow is the trailing window a weekly tally covers.
const WeekWindow = 7 * 24 * time.Hour

// Tally is one user's solved count for the trailing week.
type Tally struct {
	Username string
	Solved   int
}

// CountSolvedSince counts the distinct accepted problem titles with a
// timestamp at or after cutoff (epoch seconds).  The scan stops at the first
// record older than the cutoff, which is only correct because the API returns
// submissions newest first.  If that ordering guarantee ever breaks this will
// undercount.
func CountSolvedSince(submissions []domain.Submission, cutoff int64) int {
	solved := make(map[string]struct{})

	for _, submission := range submissions {
		if submission.Timestamp < cutoff {
			break
		}
		if submission.Accepted() {
			solved[submission.Title] = struct{}{}
		}
	}

	return len(solved)
}

// SortTallies orders a leaderboard: solved count descending, ties broken
// alphabetically by username so output is deterministic.
func SortTallies(tallies []Tally) {
	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].Solved != tallies[j].Solved {
			return tallies[i].Solved > tallies[j].Solved
		}
		return tallies[i].Username < tallies[j].Username
	})
}
