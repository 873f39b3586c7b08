// Package api is the REST client for the meetup backend. Every call carries
// the session's bearer token; failures come back as *domain.RemoteError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/pkg/ctxutil"
)

const (
	maxResponseBytes = 4 << 20
	maxLoggedBody    = 512
)

type session interface {
	Token() string
	Require(now time.Time) error
}

type recorder interface {
	ObserveRequest(operation, code string, d time.Duration)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RPS       float64
	Burst     int
	UserAgent string
	// Transport replaces http.DefaultTransport, mainly for tests.
	Transport http.RoundTripper
}

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    session
	metrics    recorder
	log        *slog.Logger
	now        func() time.Time
}

// NewClient creates a Client. metrics may be nil.
func NewClient(opts Options, sess session, metrics recorder, logger *slog.Logger) *Client {
	log := logger.With("adapter", "api")

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), max(opts.Burst, 1))
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = "meetup-client"
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rt := Chain(
		RequestID(),
		UserAgent(ua),
		RateLimit(limiter),
		Logger(log),
	)(base)

	if metrics == nil {
		metrics = nopRecorder{}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: rt},
		session:    sess,
		metrics:    metrics,
		log:        log,
		now:        time.Now,
	}
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded from
// a non-empty 2xx body when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if err := c.session.Require(c.now()); err != nil {
		return fmt.Errorf("api: %s: %w", op, err)
	}

	requestID := ctxutil.RequestIDFromCtx(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
		ctx = ctxutil.WithRequestID(ctx, requestID)
	}
	ctx = ctxutil.WithOperation(ctx, op)

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: %s: encode json: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: %s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token())
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(op, string(domain.CodeNetwork), time.Since(start))
		return &domain.RemoteError{Op: op, Code: domain.CodeNetwork, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.ObserveRequest(op, string(domain.CodeNetwork), time.Since(start))
		return &domain.RemoteError{Op: op, Status: resp.StatusCode, Code: domain.CodeNetwork, RequestID: requestID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := decodeError(op, resp.StatusCode, requestID, raw)
		c.metrics.ObserveRequest(op, string(rerr.Code), time.Since(start))
		c.log.WarnContext(ctx, "api error response",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.String("code", rerr.Code.String()),
			slog.String("request_id", requestID),
			slog.String("body", truncate(string(raw), maxLoggedBody)),
		)
		return rerr
	}

	c.metrics.ObserveRequest(op, "ok", time.Since(start))

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s: decode json: %w", op, err)
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, string, time.Duration) {}
