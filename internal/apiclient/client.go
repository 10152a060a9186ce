package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gracewaylabs/graceway-admin/pkg/config"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/logger"
	"github.com/gracewaylabs/graceway-admin/pkg/metrics"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const (
	headerRequestedWith = "X-Requested-With"
	headerRequestID     = "X-Request-Id"

	requestedWithValue = "XMLHttpRequest"
)

// Client is the single chokepoint between the admin tooling and the backend:
// it owns the HTTP transport, the token lifecycle, the one-shot 401
// refresh-retry, and response envelope normalization. Every feature service
// calls through it exclusively.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenManager
	norm       *Normalizer
	logg       *logger.Logger
	metrics    *metrics.ClientMetrics

	// onAuthExpired runs after a refresh cycle fails terminally, once the
	// tokens are cleared. Browser shims navigate to /login here.
	onAuthExpired func()

	refreshMu sync.Mutex
	inflight  *refreshCall
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithNormalizer overrides the default response normalizer.
func WithNormalizer(norm *Normalizer) Option {
	return func(c *Client) {
		if norm != nil {
			c.norm = norm
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		c.logg = logg
	}
}

// WithMetrics attaches request/refresh instrumentation.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithAuthExpiredHook registers the hook invoked on terminal auth failure.
func WithAuthExpiredHook(hook func()) Option {
	return func(c *Client) {
		c.onAuthExpired = hook
	}
}

// NewClient builds a client against the configured base URL. The token
// manager is a required capability; use a manager with nil storage for
// unauthenticated contexts.
func NewClient(cfg config.APIConfig, tokens *TokenManager, opts ...Option) (*Client, error) {
	if tokens == nil {
		return nil, fmt.Errorf("token manager is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		norm:       NewNormalizer(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Tokens exposes the token lifecycle manager.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

// BaseURL reports the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions carries per-call header and query overrides. Caller headers
// win over the client defaults.
type RequestOptions struct {
	Headers http.Header
	Query   url.Values
}

// Get issues a GET and returns the normalized payload.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) (any, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts)
}

// Post issues a POST with a JSON body and returns the normalized payload.
func (c *Client) Post(ctx context.Context, path string, body any, opts *RequestOptions) (any, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts)
}

// Put issues a PUT with a JSON body and returns the normalized payload.
func (c *Client) Put(ctx context.Context, path string, body any, opts *RequestOptions) (any, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts)
}

// Patch issues a PATCH with a JSON body and returns the normalized payload.
func (c *Client) Patch(ctx context.Context, path string, body any, opts *RequestOptions) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts)
}

// Delete issues a DELETE and returns the normalized payload.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts)
}

// Do performs one request with auth headers, recovering transparently from a
// single expired-access-token failure. A 401 triggers at most one refresh
// and one retried request; a second 401 is terminal. All other errors
// propagate untouched.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts *RequestOptions) (any, error) {
	fullURL, err := c.resolveURL(path, opts)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "encode request body")
		}
	}

	started := time.Now()
	resp, err := c.send(ctx, method, fullURL, payload, opts, c.tokens.AccessToken())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("%s %s failed", method, path))
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokens.RefreshToken() != "" {
		closeBody(resp)
		token, ok := c.refreshAccessToken(ctx)
		if !ok {
			c.tokens.ClearTokens(ctx)
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
			return nil, pkgerrors.New(pkgerrors.CodeAuthExpired, "authentication failed")
		}
		resp, err = c.send(ctx, method, fullURL, payload, opts, token)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("%s %s failed", method, path))
		}
	}
	defer closeBody(resp)

	c.observe(method, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}

	return c.decodeSuccess(fullURL, resp)
}

func (c *Client) resolveURL(path string, opts *RequestOptions) (string, error) {
	full := path
	if parsed, err := url.Parse(path); err != nil || parsed.Scheme == "" {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		full = c.baseURL + path
	}
	if opts != nil && len(opts.Query) > 0 {
		parsed, err := url.Parse(full)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request url")
		}
		query := parsed.Query()
		for key, values := range opts.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		parsed.RawQuery = query.Encode()
		full = parsed.String()
	}
	return full, nil
}

func (c *Client) send(ctx context.Context, method, fullURL string, payload []byte, opts *RequestOptions, accessToken string) (*http.Response, error) {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestedWith, requestedWithValue)
	req.Header.Set(headerRequestID, uuid.NewString())
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if opts != nil {
		for key, values := range opts.Headers {
			req.Header.Del(key)
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}

	if c.logg != nil {
		c.logg.Debug(c.logg.WithEndpoint(ctx, method, req.URL.Path), "api request")
	}

	return c.httpClient.Do(req)
}

func (c *Client) decodeSuccess(fullURL string, resp *http.Response) (any, error) {
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		// Empty or non-JSON success bodies (204 and friends) are a valid
		// empty result, not an error.
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response body")
	}
	return c.norm.Normalize(fullURL, decoded)
}

// errorFromResponse extracts a human-readable message from a JSON error
// body, falling back to the HTTP status text for anything unparseable.
func (c *Client) errorFromResponse(resp *http.Response) error {
	message := extractErrorMessage(resp)
	code := pkgerrors.CodeForStatus(resp.StatusCode)
	return pkgerrors.New(code, message)
}

func extractErrorMessage(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if fallback == "" {
		fallback = resp.Status
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fallback
	}
	if message, ok := body["message"].(string); ok && message != "" {
		return message
	}
	if data, ok := body["data"].(map[string]any); ok {
		if message, ok := data["message"].(string); ok && message != "" {
			return message
		}
	}
	if message, ok := body["error"].(string); ok && message != "" {
		return message
	}
	return fallback
}

func (c *Client) observe(method string, status int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRequest(method, strconv.Itoa(status), time.Since(started))
}

func closeBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_ = resp.Body.Close()
}

// Decode converts a normalized payload into a typed value via a JSON
// round-trip.
func Decode[T any](payload any) (T, error) {
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "encode normalized payload")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode normalized payload")
	}
	return out, nil
}

// List is the generic paginated shape most list endpoints normalize to.
type List[T any] struct {
	Data []T             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}
