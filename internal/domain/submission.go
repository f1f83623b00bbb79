package domain

import "time"

// StatusAccepted is the status label LeetCode attaches to a passing submission.
// Anything else (Wrong Answer, Time Limit Exceeded, ...) does not count as solved.
const StatusAccepted = "Accepted"

// Submission is one entry of a user's recent submission list as returned by
// the LeetCode API.  Timestamp is seconds since epoch; the API encodes it as
// a string on the wire but it is parsed before reaching this type.
type Submission struct {
	Title     string
	TitleSlug string
	Timestamp int64
	Status    string
	Lang      string
}

// SubmittedAt returns the submission time in the local timezone.
func (s Submission) SubmittedAt() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// Accepted reports whether the submission passed.
func (s Submission) Accepted() bool {
	return s.Status == StatusAccepted
}

// FetchResult is the outcome of fetching one user's recent submissions.
// Err is nil on success and one of the kinds in errors.go otherwise.
type FetchResult struct {
	Submissions []Submission
	Err         error
}
