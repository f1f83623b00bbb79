package leetcode

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/machinebox/graphql"

	"lcwatch/internal/domain"
)

const defaultEndpoint = "https://leetcode.com/graphql"

// ClientConfig carries the transport settings for the LeetCode client.
// Zero values fall back to the defaults the rest of the app expects.
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// Client is the generic LeetCode client for making queries to the LeetCode graphql API
type Client struct {
	client *graphql.Client
}

func NewClient(cfg ClientConfig) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// The timeout lives on the HTTP client so every query, batched or not,
	// has a bounded wait.
	httpClient := &http.Client{
		Timeout: timeout,
	}

	return &Client{
		client: graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
	}
}

// Query runs a single GraphQL request against the API.
func (c *Client) Query(ctx context.Context, req *graphql.Request, result interface{}) error {
	return c.client.Run(ctx, req, result)
}

// classify resolves any error coming out of the GraphQL client into one of
// the domain error kinds.  Network failures, non-2xx statuses and payloads
// that fail to decode are transport errors; everything else is the API's
// errors field, which for this query only ever signals an unknown username.
func classify(err error, username string) error {
	if err == nil {
		return nil
	}

	wrapped := errors.Wrapf(err, "fetch submissions for %q", username)

	var netErr *url.Error
	if errors.As(err, &netErr) ||
		strings.Contains(err.Error(), "non-200 status code") ||
		strings.Contains(err.Error(), "decoding response") ||
		errors.Is(err, context.DeadlineExceeded) {
		return errors.Mark(wrapped, domain.ErrTransport)
	}

	return errors.Mark(wrapped, domain.ErrUserNotFound)
}
