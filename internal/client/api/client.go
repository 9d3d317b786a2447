package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terrabond/terrabond-cli/internal/common"
)

// TokenSource supplies the current session token for outbound requests.
// An empty string means "no session"; the Authorization header is then
// omitted. The session manager implements this interface.
type TokenSource interface {
	Token() string
}

// staticToken pins the bearer token for a single request instead of
// resolving it through the live source. The logout notify needs this: by
// the time the request is built, the stored token is already gone.
type staticToken string

func (s staticToken) Token() string { return string(s) }

// Client is the shared HTTP plumbing behind the per-service wrappers.
// One Client is bound to one service base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// New returns a Client for the service rooted at baseURL. A nil tokens
// source is valid and produces unauthenticated requests.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

// envelope is the uniform response wrapper used by every TerraBond service.
// Timestamp is kept as raw text: the services emit it in a local-time format
// the client never consumes.
type envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp,omitempty"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	return req, nil
}

// do executes one request/response cycle against the service and decodes the
// envelope's data field into T. fallback is the display message used when
// the service rejects the request without supplying one of its own.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, fallback string) (T, error) {
	var zero T

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return zero, common.ErrorUnauthorized
	}

	var env envelope[T]
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		if res.StatusCode >= 500 {
			return zero, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
		}
		return zero, &Error{Message: fallback}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return zero, &Error{Message: msg}
	}

	return env.Data, nil
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, query, nil, fallback)
}

func post[T any](ctx context.Context, c *Client, path string, body any, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, nil, body, fallback)
}

func put[T any](ctx context.Context, c *Client, path string, body any, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, nil, body, fallback)
}

func patch[T any](ctx context.Context, c *Client, path string, body any, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodPatch, path, nil, body, fallback)
}

func del[T any](ctx context.Context, c *Client, path string, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, nil, fallback)
}

// pageQuery builds the paging query string shared by feed-style endpoints.
func pageQuery(page int, size int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	if size > 0 {
		q.Set("size", fmt.Sprintf("%d", size))
	}
	return q
}
