package slack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/roivaz/slack-toolbridge/internal/logging"
)

// DefaultBaseURL is the production Slack Web API root.
const DefaultBaseURL = "https://slack.com/api"

// Client performs Web API calls. One form-encoded POST per method; every
// method accepts that shape. The zero-retry default performs exactly one
// call per invocation. Client is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	retries int
	base    *http.Client
	log     logging.Logger

	mu      sync.Mutex
	clients map[string]*http.Client
}

type Option func(*Client)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries enables up to n additional attempts with exponential backoff
// for transport-level failures. Protocol-level failures are never retried.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.base = h }
}

// WithLogger attaches a logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 30 * time.Second,
		base:    &http.Client{},
		log:     logging.New(logr.Discard()),
		clients: make(map[string]*http.Client),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// httpClient returns an HTTP client that injects the bearer token, built
// once per token through an oauth2 static token source. The lock guards
// only the cache map, never a network call.
func (c *Client) httpClient(token string) *http.Client {
	if token == "" {
		return c.base
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.clients[token]; ok {
		return cl
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	cl := &http.Client{Transport: &oauth2.Transport{Source: src, Base: c.base.Transport}}
	c.clients[token] = cl
	return cl
}

// Call invokes a single Web API method with the given arguments and returns
// the decoded payload. Failures come back as *TransportError (request never
// evaluated remotely) or *APIError (Slack answered ok:false).
func (c *Client) Call(ctx context.Context, op, token string, args map[string]string) (map[string]any, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if c.retries <= 0 {
		return c.do(ctx, op, token, args)
	}

	var out map[string]any
	attempt := func() error {
		payload, err := c.do(ctx, op, token, args)
		if err != nil {
			var te *TransportError
			if errors.As(err, &te) {
				return err
			}
			return backoff.Permanent(err)
		}
		out = payload
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.retries)), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, token string, args map[string]string) (map[string]any, error) {
	form := url.Values{}
	for k, v := range args {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient(token).Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)}
	}
	if !gjson.ValidBytes(body) {
		return nil, &TransportError{Op: op, Err: errors.New("malformed response body")}
	}

	if !gjson.GetBytes(body, "ok").Bool() {
		code := gjson.GetBytes(body, "error").String()
		if code == "" {
			code = "unknown_error"
		}
		c.log.Debug("slack call rejected", "method", op, "code", code, "elapsed", time.Since(start).String())
		return nil, &APIError{Op: op, Code: code}
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	c.log.Debug("slack call succeeded", "method", op, "elapsed", time.Since(start).String())
	return payload, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
