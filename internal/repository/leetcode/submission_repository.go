package leetcode

import (
	"context"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/machinebox/graphql"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/singleflight"

	"lcwatch/internal/domain"
	"lcwatch/internal/log"
)

const recentSubmissionsQuery = `
	query getRecentSubmissionList($username: String!, $limit: Int) {
		recentSubmissionList(username: $username, limit: $limit) {
			title
			titleSlug
			timestamp
			statusDisplay
			lang
		}
	}
`

// SubmissionRepository fetches recent submission lists from LeetCode,
// one query per username.
type SubmissionRepository struct {
	client      *Client
	limit       int
	maxInFlight int
	flight      singleflight.Group
}

func NewSubmissionRepository(client *Client, limit, maxInFlight int) domain.SubmissionRepository {
	if limit <= 0 {
		limit = 20
	}
	if maxInFlight <= 0 {
		maxInFlight = 10
	}
	return &SubmissionRepository{
		client:      client,
		limit:       limit,
		maxInFlight: maxInFlight,
	}
}

// RecentSubmissions retrieves one user's recent submissions, newest first.
// Concurrent fetches for the same username are collapsed into one remote call.
func (r *SubmissionRepository) RecentSubmissions(ctx context.Context, username string) ([]domain.Submission, error) {
	// The shared flight may outlive any single caller, so it runs on a
	// detached context; the HTTP client timeout still bounds it.  Each
	// caller waits on its own ctx and bails out alone when that expires.
	ch := r.flight.DoChan(username, func() (interface{}, error) {
		return r.fetch(context.WithoutCancel(ctx), username)
	})
	select {
	case res := <-ch:
		if res.Shared {
			log.Debug("Collapsed duplicate in-flight fetch", "username", username)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Submission), nil
	case <-ctx.Done():
		return nil, errors.Mark(
			errors.Wrapf(ctx.Err(), "fetch submissions for %q", username),
			domain.ErrTransport)
	}
}

func (r *SubmissionRepository) fetch(ctx context.Context, username string) ([]domain.Submission, error) {
	req := graphql.NewRequest(recentSubmissionsQuery)
	req.Var("username", username)
	req.Var("limit", r.limit)

	var response struct {
		RecentSubmissionList []struct {
			Title         string `json:"title"`
			TitleSlug     string `json:"titleSlug"`
			Timestamp     string `json:"timestamp"`
			StatusDisplay string `json:"statusDisplay"`
			Lang          string `json:"lang"`
		} `json:"recentSubmissionList"`
	}

	if err := r.client.Query(ctx, req, &response); err != nil {
		log.Warn("Fetching recent submissions failed", "username", username, "error", err)
		return nil, classify(err, username)
	}

	submissions := make([]domain.Submission, 0, len(response.RecentSubmissionList))
	for _, item := range response.RecentSubmissionList {
		// The API string-encodes the epoch seconds
		ts, err := strconv.ParseInt(item.Timestamp, 10, 64)
		if err != nil {
			return nil, errors.Mark(
				errors.Wrapf(err, "malformed timestamp %q for %q", item.Timestamp, username),
				domain.ErrTransport)
		}
		submissions = append(submissions, domain.Submission{
			Title:     item.Title,
			TitleSlug: item.TitleSlug,
			Timestamp: ts,
			Status:    item.StatusDisplay,
			Lang:      item.Lang,
		})
	}

	log.Debug("Fetched recent submissions", "username", username, "count", len(submissions))
	return submissions, nil
}

// RecentSubmissionsForAll fans the fetches out over a bounded worker pool and
// returns the per-user outcome keyed by username.  Completion order is
// irrelevant to the caller because the correlation is explicit.
func (r *SubmissionRepository) RecentSubmissionsForAll(ctx context.Context, usernames []string) map[string]domain.FetchResult {
	out := make(map[string]domain.FetchResult, len(usernames))
	if len(usernames) == 0 {
		return out
	}

	type row struct {
		username string
		result   domain.FetchResult
	}
	results := make(chan row, len(usernames))

	pool, err := ants.NewPool(r.maxInFlight)
	if err != nil {
		// Degrade to serial fetching rather than failing the whole batch
		log.Error("Unable to create worker pool, fetching serially", "error", err)
		for _, username := range usernames {
			submissions, err := r.RecentSubmissions(ctx, username)
			out[username] = domain.FetchResult{Submissions: submissions, Err: err}
		}
		return out
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, username := range usernames {
		username := username // pin per-iteration copy; go directive is below 1.22
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			submissions, err := r.RecentSubmissions(ctx, username)
			results <- row{username: username, result: domain.FetchResult{Submissions: submissions, Err: err}}
		}); err != nil {
			workers.Done()
			results <- row{username: username, result: domain.FetchResult{
				Err: errors.Mark(errors.Wrap(err, "submit fetch to worker pool"), domain.ErrTransport),
			}}
		}
	}

	workers.Wait()
	close(results)

	for item := range results {
		out[item.username] = item.result
	}
	return out
}
