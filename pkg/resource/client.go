// Package resource is a client for CRUD-style REST resources.
//
// A Client holds what every request shares: the backend base URL, the HTTP
// client, credentials, the optional read cache and metrics. A Transport
// binds one resource path and turns typed operations into HTTP calls,
// classifying failures into the ErrNotReachable, ErrInvalidInput,
// ErrNotFound and ErrServerError kinds. A Store caches one collection on top
// of a Transport and exposes a loading/error state machine to its consumer.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 32 << 20
)

var ErrInvalidConfig = errors.New("invalid client configuration")

type Config struct {
	// BaseURL of the backend, including any API prefix, e.g.
	// "https://cms.example.com/api".
	BaseURL string
	// Timeout of a single request. Defaults to 30 seconds.
	Timeout time.Duration
	// Token is sent as a bearer token when not empty.
	Token     string
	UserAgent string
}

// Client is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string

	cache   Cache
	metrics *Metrics
	logger  *zap.Logger

	// cacheGen counts invalidations per key prefix. cacheMu also orders
	// cache writes against invalidations.
	cacheMu  sync.Mutex
	cacheGen map[string]uint64
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Config.Timeout is
// ignored in that case.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithCache shares a read cache between every Transport of the client.
func WithCache(cache Cache) Option {
	return func(client *Client) {
		client.cache = cache
	}
}

func WithMetrics(m *Metrics) Option {
	return func(client *Client) {
		client.metrics = m
	}
}

func NewClient(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		logger:    logger,

		cacheGen: map[string]uint64{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ResolveURL turns a media reference returned by the backend into an
// absolute URL. Absolute references (http, https, data, blob) are returned
// unchanged; anything else is appended to the base URL.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" {
		return ""
	}

	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}

	return strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(ref, "/")
}

type call struct {
	op          Op
	resource    string
	method      string
	path        string
	query       url.Values
	noCache     bool
	body        io.Reader
	contentType string
}

// send performs one HTTP exchange. A non-nil error means no response was
// received; status classification is left to the caller.
func (c *Client) send(ctx context.Context, cl call) (int, []byte, error) {
	u := c.baseURL.JoinPath(cl.path)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), cl.body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if cl.noCache {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	logger := c.logger.With(
		zap.String("resource", cl.resource),
		zap.String("op", string(cl.op)),
		zap.String("method", cl.method),
		zap.String("request_id", requestID),
	)
	logger.Debug("sending request", zap.String("url", u.String()))

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(cl.resource, cl.method, "error", time.Since(started))
		logger.Error("request failed", zap.Error(err))
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.metrics.observe(cl.resource, cl.method, strconv.Itoa(resp.StatusCode), time.Since(started))
	if err != nil {
		logger.Error("failed to read response body", zap.Int("status", resp.StatusCode), zap.Error(err))
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("response received", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))

	return resp.StatusCode, body, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return data, ok
}

// cacheGeneration is taken before a read is sent. cacheSet drops the
// result when prefix was invalidated in the meantime.
func (c *Client) cacheGeneration(prefix string) uint64 {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	return c.cacheGen[prefix]
}

func (c *Client) cacheSet(ctx context.Context, prefix string, generation uint64, key string, data []byte) {
	if c.cache == nil {
		return
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.cacheGen[prefix] != generation {
		c.logger.Debug("read raced a mutation, not cached", zap.String("key", key))
		return
	}

	if err := c.cache.Set(ctx, key, data); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Client) cacheInvalidate(ctx context.Context, prefix string) {
	if c.cache == nil {
		return
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cacheGen[prefix]++

	if err := c.cache.Invalidate(ctx, prefix); err != nil {
		c.logger.Warn("cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
