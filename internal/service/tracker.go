package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"lcwatch/internal/domain"
	"lcwatch/internal/format"
	"lcwatch/internal/log"
	"lcwatch/internal/registry"
	"lcwatch/internal/stats"
)

// User-facing messages.  Wording is part of the output contract with the chat
// layer that relays these strings, including the oddities.
const (
	msgInvalidUsername = "Your entry contains spaces. Instead, enter a valid leetcode username."
	msgUnrecognized    = "Unrecognized user. Please try again."
	msgFetchException  = "Exception caught in fetching data."
	msgServerError     = "Server error. @Leadership you might want to check on this."
	msgUserNotExist    = "That user does not exist. Please try again."
	msgUserRemoved     = "User removed."
	msgStoreFailure    = "Unable to save the user list. Please try again."
	msgTooManyUsers    = "Too many users to print in one message. Please user the  `!get <username>`  command instead."
)

// Tracker is the public surface of the core.  Every operation resolves to a
// display string; no error escapes to the caller.
type Tracker struct {
	registry       *registry.Registry
	repo           domain.SubmissionRepository
	maxDigestUsers int
	now            func() time.Time
}

func NewTracker(reg *registry.Registry, repo domain.SubmissionRepository, maxDigestUsers int) *Tracker {
	if maxDigestUsers <= 0 {
		maxDigestUsers = 5
	}
	return &Tracker{
		registry:       reg,
		repo:           repo,
		maxDigestUsers: maxDigestUsers,
		now:            time.Now,
	}
}

// AddUser starts tracking a username.  The name is validated locally, then
// checked for existence against the API before it is inserted and persisted.
// Duplicates never trigger a remote call.
func (t *Tracker) AddUser(ctx context.Context, username string) string {
	if !validUsername(username) {
		return msgInvalidUsername
	}

	if t.registry.Contains(username) {
		return fmt.Sprintf("%s is already on the list!", username)
	}

	if _, err := t.repo.RecentSubmissions(ctx, username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return msgUnrecognized
		}
		log.Warn("Existence check failed", "username", username, "error", err)
		return msgFetchException
	}

	added, err := t.registry.Add(username)
	if err != nil {
		log.Error("Persisting new user failed", "username", username, "error", err)
		return msgStoreFailure
	}
	if !added {
		return fmt.Sprintf("%s is already on the list!", username)
	}
	return fmt.Sprintf("Added %s to the list!", username)
}

// RemoveUser stops tracking a username.  When the name is not on the list, a
// close fuzzy match among the tracked names is suggested if one exists.
func (t *Tracker) RemoveUser(username string) string {
	removed, err := t.registry.Remove(username)
	if err != nil {
		log.Error("Persisting user removal failed", "username", username, "error", err)
		return msgStoreFailure
	}
	if removed {
		return msgUserRemoved
	}

	msg := fmt.Sprintf("An error occurred. Please ensure %s is on the list.", username)
	if suggestion := t.suggest(username); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean %s?", suggestion)
	}
	return msg
}

// Users lists the tracked usernames.
func (t *Tracker) Users() string {
	return format.UserList(t.registry.List())
}

// MostRecent reports a single user's newest submission.
func (t *Tracker) MostRecent(ctx context.Context, username string) string {
	if !validUsername(username) {
		return msgInvalidUsername
	}

	submissions, err := t.repo.RecentSubmissions(ctx, username)
	switch {
	case errors.Is(err, domain.ErrTransport):
		return msgServerError
	case errors.Is(err, domain.ErrUserNotFound):
		return msgUserNotExist
	case err != nil:
		log.Error("Unexpected fetch failure", "username", username, "error", err)
		return fmt.Sprintf("Fail in query for %s", username)
	case len(submissions) == 0:
		// Nothing to report is not an error, but there is no report either
		return fmt.Sprintf("Fail in query for %s", username)
	}

	return format.MostRecent(submissions)
}

// Digest reports the newest submission of every tracked user in one message.
// Registries above the configured size are refused before any remote call is
// made; users whose fetch failed or came back empty are omitted silently.
func (t *Tracker) Digest(ctx context.Context) string {
	usernames := t.registry.List()
	if len(usernames) > t.maxDigestUsers {
		return msgTooManyUsers
	}

	results := t.repo.RecentSubmissionsForAll(ctx, usernames)

	var sb strings.Builder
	for _, username := range usernames {
		result := results[username]
		if result.Err != nil {
			log.Warn("Skipping user in digest", "username", username, "error", result.Err)
			continue
		}
		if len(result.Submissions) == 0 {
			continue
		}
		sb.WriteString(format.DigestBlock(username, result.Submissions))
	}
	return sb.String()
}

// WeeklyRecap renders the trailing-week leaderboard: distinct accepted
// problems per user, most productive first.  Users whose fetch failed count
// as zero rather than dropping off the board.
func (t *Tracker) WeeklyRecap(ctx context.Context) string {
	usernames := t.registry.List()
	cutoff := t.now().Add(-stats.WeekWindow).Unix()

	results := t.repo.RecentSubmissionsForAll(ctx, usernames)

	tallies := make([]stats.Tally, 0, len(usernames))
	for _, username := range usernames {
		result := results[username]
		solved := 0
		if result.Err == nil {
			solved = stats.CountSolvedSince(result.Submissions, cutoff)
		} else {
			log.Warn("Counting user as zero in recap", "username", username, "error", result.Err)
		}
		tallies = append(tallies, stats.Tally{Username: username, Solved: solved})
	}

	stats.SortTallies(tallies)
	return format.Leaderboard(tallies)
}

// suggest returns the closest tracked username to the given name, or "" when
// nothing tracked resembles it.
func (t *Tracker) suggest(username string) string {
	ranks := fuzzy.RankFindFold(username, t.registry.List())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// validUsername rejects names the platform could never know: empty strings
// and anything containing whitespace.
func validUsername(username string) bool {
	if username == "" {
		return false
	}
	return strings.IndexFunc(username, unicode.IsSpace) < 0
}
