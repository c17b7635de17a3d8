// Package checkin holds the client side of the submission pipeline: an HTTP
// client for the remote check-in endpoint and the online/offline submission
// router.
package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// package-level logger for pkg/checkin; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/checkin. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// ClientConfig configures the remote endpoint client.
type ClientConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Token   string        `yaml:"token"`
}

// APIError is a non-2xx response from the endpoint, carrying the server's
// error body when one was parseable.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("checkin endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("checkin endpoint returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the remote check-in endpoint. Each call is a single
// attempt with a per-request timeout; retry policy belongs to the offline
// queue, not here, so a hung request cannot stall a sync pass beyond the
// timeout and a failed one is simply retried on the next pass.
type Client struct {
	cfg    ClientConfig
	client *http.Client
}

// NewClient creates a client for the remote endpoint. httpClient may be nil.
func NewClient(cfg ClientConfig, httpClient *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 15 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}
	return &Client{cfg: cfg, client: httpClient}, nil
}

type submitRequest struct {
	Answers        models.Answers `json:"answers"`
	ReflectionNote string         `json:"reflection_note,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// SubmitCheckin posts one check-in and returns the authoritative
// server-computed result. Implements queue.Submitter.
func (c *Client) SubmitCheckin(ctx context.Context, answers models.Answers, reflectionNote string) (*models.CheckinResult, error) {
	body, err := json.Marshal(submitRequest{Answers: answers, ReflectionNote: reflectionNote})
	if err != nil {
		return nil, fmt.Errorf("marshal checkin: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/v1/checkins", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post checkin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eresp errorResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&eresp); decErr == nil {
			apiErr.Message = eresp.Error
		}
		return nil, apiErr
	}

	var result models.CheckinResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode checkin result: %w", err)
	}
	return &result, nil
}

// Health probes the endpoint's open health route. Callers use it as the
// best-effort connectivity hint fed into the router; a nil error means
// "probably online", nothing stronger.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body *bytes.Reader) (*http.Request, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	// JoinPath keeps any prefix on the base URL (e.g. a reverse-proxied /api)
	u := base.JoinPath(path)

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
	}
	if err != nil {
		return nil, err
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	return req, nil
}

// Close releases idle connections held by the underlying transport. Safe to
// call multiple times.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
		tr.CloseIdleConnections()
	}
	return nil
}
