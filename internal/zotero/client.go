package zotero

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Zotero Web API base URL.
	BaseURL = "https://api.zotero.org"

	// APIVersion is sent as the Zotero-API-Version header.
	APIVersion = "3"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is the default number of requests per second.
	RateLimit = 10.0

	// PageSize is the number of items requested per collection page.
	PageSize = 100

	// BatchSize is the maximum number of item keys per bibliography request.
	BatchSize = 50
)

// Library identifies a user or group library.
type Library struct {
	ID      string
	IsGroup bool
}

// Path returns the API path prefix for the library, e.g. "/groups/123".
func (l Library) Path() string {
	kind := "users"
	if l.IsGroup {
		kind = "groups"
	}
	return "/" + kind + "/" + url.PathEscape(l.ID)
}

// Client is a rate-limited HTTP client for one Zotero library.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	library    Library
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key sent as a bearer token.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL sets a custom base URL (for testing or self-hosted mirrors).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithRateLimit sets the maximum request rate. Zero or less disables limiting.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLogger sets the logger used for progress lines.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new client for the given library.
func NewClient(lib Library, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		logger:     slog.Default(),
		baseURL:    BaseURL,
		library:    lib,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// libraryURL builds an absolute URL below the library prefix.
func (c *Client) libraryURL(path string, query url.Values) string {
	u := c.baseURL + c.library.Path() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get performs a GET request and returns the response headers and body.
// Any non-2xx status is returned as an *APIError.
func (c *Client) get(ctx context.Context, rawURL string, acceptJSON bool) (http.Header, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Zotero-API-Version", APIVersion)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if acceptJSON {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, rawURL); err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading body of %s: %v", ErrNetworkError, rawURL, err)
	}

	return resp.Header, body, nil
}
