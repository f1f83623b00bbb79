package domain

import "github.com/cockroachdb/errors"

// Every failure mode of a public operation resolves to exactly one of these
// kinds.  Callers classify with errors.Is; the service layer turns each kind
// into its user-facing message.
var (
	// ErrInvalidUsername means the username failed local validation and no
	// remote call was made.
	ErrInvalidUsername = errors.New("username contains forbidden characters")

	// ErrUserNotFound means the API confirmed the account does not exist
	// (errors field in the GraphQL response).
	ErrUserNotFound = errors.New("user does not exist on leetcode")

	// ErrTransport covers network failure, a non-2xx status and malformed
	// response payloads.  Not retried.
	ErrTransport = errors.New("leetcode request failed")

	// ErrNoSubmissions means the fetch succeeded but the user has no recent
	// submissions to report.
	ErrNoSubmissions = errors.New("no recent submissions")
)
