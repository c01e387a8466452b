// Package adminclient talks to the admin API. Its Persister lets a
// reorder.Controller save drag results through PATCH .../reorder.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"studio-site/internal/dto/response"
	"studio-site/pkg/middleware"
	"studio-site/pkg/reorder"

	"go.uber.org/zap"
)

// Collection names a reorderable admin collection.
type Collection string

const (
	Packages     Collection = "packages"
	Portfolio    Collection = "portfolio"
	Testimonials Collection = "testimonials"
)

// APIError is a non-2xx answer from the admin API.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("admin api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("admin api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	secret  string
	log     *zap.Logger

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSharedSecret authenticates with the x-admin-password header instead of a session.
func WithSharedSecret(secret string) Option {
	return func(c *Client) { c.secret = secret }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("client", "admin"))
	return c
}

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Login exchanges the admin credential for a session token kept on the client.
func (c *Client) Login(ctx context.Context, username, password string) (*response.LoginResponse, error) {
	var out response.LoginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", body, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()

	return &out, nil
}

// Logout revokes the current session token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return nil
}

// Reorder writes display_order for every position of the collection.
func (c *Client) Reorder(ctx context.Context, collection Collection, positions []reorder.Position) error {
	body := struct {
		Items []reorder.Position `json:"items"`
	}{Items: positions}

	path := fmt.Sprintf("/api/admin/%s/reorder", collection)
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		c.log.Warn("Reorder failed",
			zap.Error(err),
			zap.String("collection", string(collection)),
			zap.Int("count", len(positions)),
		)
		return err
	}
	return nil
}

// Persister adapts Reorder for a reorder.Controller.
func (c *Client) Persister(collection Collection) reorder.Persister {
	return reorder.PersistFunc(func(ctx context.Context, positions []reorder.Position) error {
		return c.Reorder(ctx, collection, positions)
	})
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	switch {
	case token != "":
		req.Header.Set("Authorization", "Bearer "+token)
	case c.secret != "":
		req.Header.Set(middleware.AdminPasswordHeader, c.secret)
	}
}
