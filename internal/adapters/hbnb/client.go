// internal/adapters/hbnb/client.go
package hbnb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a client for the HBnB REST API rooted at base (e.g. http://localhost:5000/api).
// The http.Client carries no timeout: callers bound each call with their context.
func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("API base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// ListPlaces fetches every place visible to the bearer of token. One attempt, no retry.
func (c *Client) ListPlaces(ctx context.Context, token string) ([]domain.Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/places", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var out []domain.Place
	if err := c.do(req, "places", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token via POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out loginResponse
	if err := c.do(req, "auth_login", &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", domain.ErrNoToken
	}
	return out.AccessToken, nil
}

// ---- Internals ----

// do sends req once and decodes a 2xx JSON body into out.
// Non-2xx answers become *domain.StatusError; transport and decode failures *domain.NetworkError.
func (c *Client) do(req *http.Request, endpoint string, out any) error {
	ctx := req.Context()
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return &domain.NetworkError{Op: endpoint, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hbnb-web/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hbnb", endpoint, 0, time.Since(start))
		return &domain.NetworkError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hbnb", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.StatusError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &domain.NetworkError{Op: endpoint, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}
