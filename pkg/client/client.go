// Package client is a typed SDK for the SkattaJobs HTTP API.
//
// The bearer token is read from a session.Store before every call. Login and
// register store the returned token; logout and any 401 response clear it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/skattajobs/marketplace-api/pkg/session"
)

const (
	// BaseURLEnv overrides DefaultBaseURL.
	BaseURLEnv     = "SKATTA_API_BASE_URL"
	DefaultBaseURL = "http://localhost:3001/api"

	// LoginPath is where callers are sent after a 401.
	LoginPath = "/login"

	defaultTimeout = 10 * time.Second
	fallbackMsg    = "Une erreur est survenue"
)

// APIError is a non-2xx response.
type APIError struct {
	Status int
	// Message is the user-facing text.
	Message string
	// Code is the server's English error text, when sent.
	Code string
	// RedirectTo is LoginPath when the session was invalidated.
	RedirectTo string
}

func (e *APIError) Error() string { return e.Message }

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL string
	http    *http.Client
	session session.Store
}

type Option func(*Client)

// WithBaseURL sets the API root, e.g. "https://api.example.com/api".
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client bound to store. A nil store keeps the session in memory.
func New(store session.Store, opts ...Option) *Client {
	if store == nil {
		store = session.NewMemoryStore(session.State{})
	}
	base := os.Getenv(BaseURLEnv)
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client calls.
func (c *Client) BaseURL() string { return c.baseURL }

// Session returns the stored authentication state.
func (c *Client) Session(ctx context.Context) (session.State, error) {
	return c.session.Load(ctx)
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, reader, contentType, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	state, err := c.session.Load(ctx)
	if err != nil {
		return err
	}
	if state.Token != "" {
		req.Header.Set("Authorization", "Bearer "+state.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(ctx, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(ctx context.Context, resp *http.Response) error {
	var env errorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &env)

	apiErr := &APIError{Status: resp.StatusCode, Code: env.Error, Message: env.Message}
	if apiErr.Message == "" {
		apiErr.Message = env.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMsg
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(ctx); err != nil {
			return errors.Join(apiErr, err)
		}
		apiErr.RedirectTo = LoginPath
	}
	return apiErr
}
