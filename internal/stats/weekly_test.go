package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lcwatch/internal/domain"
)

func accepted(title string, ts int64) domain.Submission {
	return domain.Submission{Title: title, Timestamp: ts, Status: domain.StatusAccepted}
}

func TestCountSolvedSinceTrailingWeek(t *testing.T) {
	now := time.Now().Unix()
	cutoff := now - int64(WeekWindow/time.Second)

	submissions := []domain.Submission{
		accepted("Two Sum", now),
		accepted("Word Ladder", now-8000),
		accepted("Sudoku Solver", now-700000), // older than a week
	}

	assert.Equal(t, 2, CountSolvedSince(submissions, cutoff))
}

func TestCountSolvedSinceDeduplicatesTitles(t *testing.T) {
	now := time.Now().Unix()
	cutoff := now - int64(WeekWindow/time.Second)

	submissions := []domain.Submission{
		accepted("Two Sum", now),
		accepted("Two Sum", now-100),
	}

	assert.Equal(t, 1, CountSolvedSince(submissions, cutoff))
}

func TestCountSolvedSinceSkipsNonAccepted(t *testing.T) {
	now := time.Now().Unix()
	cutoff := now - int64(WeekWindow/time.Second)

	submissions := []domain.Submission{
		{Title: "Two Sum", Timestamp: now, Status: "Wrong Answer"},
		{Title: "Two Sum", Timestamp: now - 50, Status: "Time Limit Exceeded"},
		accepted("Word Ladder", now-100),
	}

	assert.Equal(t, 1, CountSolvedSince(submissions, cutoff))
}

func TestCountSolvedSinceStopsAtCutoff(t *testing.T) {
	now := time.Now().Unix()
	cutoff := now - int64(WeekWindow/time.Second)

	// The record after the cutoff boundary is inside the window again, but
	// the newest-first scan has already stopped.  This pins the documented
	// early-exit behaviour.
	submissions := []domain.Submission{
		accepted("Two Sum", now),
		accepted("Sudoku Solver", cutoff-1),
		accepted("Word Ladder", now-10),
	}

	assert.Equal(t, 1, CountSolvedSince(submissions, cutoff))
}

func TestCountSolvedSinceEmptyList(t *testing.T) {
	assert.Equal(t, 0, CountSolvedSince(nil, 0))
}

func TestSortTalliesOrdersByCountThenName(t *testing.T) {
	tallies := []Tally{
		{Username: "carol", Solved: 5},
		{Username: "alice", Solved: 3},
		{Username: "bob", Solved: 5},
	}

	SortTallies(tallies)

	assert.Equal(t, []Tally{
		{Username: "bob", Solved: 5},
		{Username: "carol", Solved: 5},
		{Username: "alice", Solved: 3},
	}, tallies)
}
