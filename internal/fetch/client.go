// Package fetch provides a typed HTTP GET client with exponential-backoff
// retry. Transport failures and non-2xx statuses are retried until the
// policy's elapsed-time ceiling; JSON decoding is attempted exactly once.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BackoffPolicy parameterizes the retry envelope shared by every request.
type BackoffPolicy struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultPolicy retries from 10ms up to a 3s cumulative budget.
func DefaultPolicy() BackoffPolicy {
	return BackoffPolicy{
		InitialInterval: 10 * time.Millisecond,
		MaxElapsedTime:  3 * time.Second,
	}
}

func (p BackoffPolicy) backOff() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(p.InitialInterval),
		backoff.WithMaxElapsedTime(p.MaxElapsedTime),
	)
}

// Credentials carries whatever auth a remote source needs. Either field may
// be empty; set fields become headers on every request.
type Credentials struct {
	Bearer string // Authorization: Bearer <token>
	Cookie string // Cookie: <value>
}

// Client issues GET requests against a single base URL.
type Client struct {
	base   *url.URL
	creds  Credentials
	http   *http.Client
	policy BackoffPolicy
}

// NewClient parses the base URL and returns a client using the given
// credentials and retry policy.
func NewClient(baseURL string, creds Credentials, policy BackoffPolicy) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	return &Client{
		base:   base,
		creds:  creds,
		http:   &http.Client{},
		policy: policy,
	}, nil
}

// get retrieves path relative to the base URL, retrying per the policy.
// Returns the raw body on the first 2xx response.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing path %q: %w", path, err)
	}
	target := c.base.ResolveReference(ref).String()

	op := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("creating request for %s: %w", path, err))
		}
		if c.creds.Bearer != "" {
			req.Header.Set("Authorization", "Bearer "+c.creds.Bearer)
		}
		if c.creds.Cookie != "" {
			req.Header.Set("Cookie", c.creds.Cookie)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &TransportError{Path: path, Cause: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{Path: path, Code: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &TransportError{Path: path, Cause: err}
		}
		return body, nil
	}

	body, err := backoff.RetryWithData(op, backoff.WithContext(c.policy.backOff(), ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch %s: %w", path, err)
		}
		return nil, fmt.Errorf("fetch %s: %w: %w", path, ErrRetryExhausted, err)
	}
	return body, nil
}

// GetJSON fetches path and decodes the body into T. The decode happens once;
// a decode failure is permanent and carries the JSON field path that failed.
func GetJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.get(ctx, path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &DecodeError{Path: path, FieldPath: fieldPath(err), Cause: err}
	}
	return out, nil
}

// GetHTML fetches path and returns the raw body as a string.
func GetHTML(ctx context.Context, c *Client, path string) (string, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func fieldPath(err error) string {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return typeErr.Field
	}
	return ""
}
