// Package gh is the paginated client for the hosting API. It knows nothing
// about caching or ranking; each call either returns the complete repository
// list or a typed failure, never a partial result.
package gh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	"github.com/inovacc/repojump/internal/model"
)

// pageSize is the fixed page size requested from the API. A page shorter
// than this (including an empty one) always terminates pagination.
const pageSize = 100

// ErrUnauthorized reports a rejected credential (HTTP 401). All other
// fetch failures are surfaced as generic sync errors.
var ErrUnauthorized = errors.New("github: unauthorized")

// Client wraps a go-github client bound to a single access token.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates a client authenticated with the given token.
func NewClient(ctx context.Context, token string, logger *slog.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		gh:     github.NewClient(tc),
		logger: logger,
	}
}

// SetBaseURL points the client at an alternate API host (GitHub Enterprise
// or a test server). The URL must include a trailing slash for go-github;
// one is appended if missing.
func (c *Client) SetBaseURL(u *url.URL) {
	copied := *u
	if !strings.HasSuffix(copied.Path, "/") {
		copied.Path += "/"
	}

	c.gh.BaseURL = &copied
}

// FetchAll retrieves the authenticated user's complete repository list,
// requesting fixed-size pages until a short page ends the sequence. On any
// non-success response the accumulated pages are discarded and a typed
// failure is returned.
func (c *Client) FetchAll(ctx context.Context) ([]model.Repository, error) {
	opt := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: pageSize, Page: 1},
	}

	var all []model.Repository

	for {
		repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opt)
		if err != nil {
			var ghErr *github.ErrorResponse
			if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnauthorized {
				return nil, fmt.Errorf("listing repositories: %w", ErrUnauthorized)
			}

			return nil, fmt.Errorf("listing repositories page %d: %w", opt.Page, err)
		}

		for _, r := range repos {
			all = append(all, model.Repository{
				FullName: r.GetFullName(),
				HTMLURL:  r.GetHTMLURL(),
				Archived: r.GetArchived(),
			})
		}

		c.logger.Debug("fetched repository page",
			slog.Int("page", opt.Page),
			slog.Int("count", len(repos)),
		)

		// A short page ends pagination regardless of any Link header.
		if len(repos) < pageSize {
			break
		}

		opt.Page++
	}

	return all, nil
}
