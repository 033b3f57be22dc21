// Package directory resolves primary emails against the league's member
// directory, attaching external account ids to parsed hierarchies. The
// engine only ever sees the resulting email-to-id mapping.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/barsleague/rosterize/internal/model"
)

// ErrNotFound reports that the directory has no account for an email.
var ErrNotFound = errors.New("no directory account for email")

// StatusError is a non-2xx directory response, kept typed so the resolver
// can classify transient codes.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// Client looks up single emails against the member directory over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a directory client from configuration. The rate limiter
// spans all workers so bulk enrichment stays polite to the directory.
func NewClient(cfg model.DirectoryConfig) *Client {
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(perSec), burst),
	}
}

type lookupResponse struct {
	ID string `json:"id"`
}

// Lookup resolves one email to its directory account id. Returns
// ErrNotFound on a 404, a StatusError on other non-2xx responses.
func (c *Client) Lookup(ctx context.Context, email string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/members?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if lr.ID == "" {
		return "", ErrNotFound
	}
	return lr.ID, nil
}
