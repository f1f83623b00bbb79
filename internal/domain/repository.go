package domain

import "context"

// SubmissionRepository defines the interface for recent-submission data access
type SubmissionRepository interface {
	// RecentSubmissions retrieves one user's recent submissions, newest first.
	// A nil error guarantees a non-nil (possibly empty) slice.
	RecentSubmissions(ctx context.Context, username string) ([]Submission, error)

	// RecentSubmissionsForAll fetches a collection of users concurrently and
	// returns the outcome keyed by username, so results can never be
	// misattributed by position.
	RecentSubmissionsForAll(ctx context.Context, usernames []string) map[string]FetchResult
}
