// Package client fetches reports from the Weather Underground API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jackwink/weather/src/format"
)

const (
	// DefaultBaseURL is the Weather Underground API host.
	DefaultBaseURL = "http://api.wunderground.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client requests weather reports for one API key.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserAgent returns the User-Agent string.
func UserAgent() string {
	return "weather/" + Version
}

// URL returns the report URL for the selected sections and location words.
func (c *Client) URL(s Sections, location []string) string {
	return fmt.Sprintf("%s/api/%s/%sq/%s.json",
		c.BaseURL,
		url.PathEscape(c.APIKey),
		QueryPath(s),
		url.PathEscape(LocationQuery(location)),
	)
}

// Fetch requests the report and decodes it. Numbers are kept as json.Number
// so that the printers show them exactly as the API sent them.
func (c *Client) Fetch(ctx context.Context, s Sections, location []string) (format.Record, error) {
	endpoint := c.URL(s, location)
	c.logger.Debug("requesting report",
		zap.String("features", QueryPath(s)),
		zap.String("location", LocationQuery(location)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Host: c.BaseURL, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var data format.Record
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if data == nil {
		return nil, errors.New("decode response: empty document")
	}
	return data, nil
}

// checkStatus maps error statuses to a StatusError, using the body's message
// when it has one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	msg := strings.TrimSpace(string(body))

	var errorResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil {
		switch {
		case errorResp.Error != "":
			msg = errorResp.Error
		case errorResp.Message != "":
			msg = errorResp.Message
		}
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}
