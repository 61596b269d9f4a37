package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
)

const (
	maxResponseBytes  = 1 << 20
	maxErrorBodyBytes = 512

	DefaultMaxAttempts    = 3
	DefaultRetryDelay     = 5 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

type Options struct {
	BaseURL        string
	MaxAttempts    int
	RetryDelay     time.Duration
	RequestTimeout time.Duration
	// MaxElapsedTime caps the whole retry sequence. Zero leaves MaxAttempts as
	// the only bound.
	MaxElapsedTime time.Duration
	Headers        http.Header
}

type Request struct {
	Method string
	Path   string
	Body   any
	Token  domain.Token
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Client sends requests with a fixed retry policy: every failure, network or
// non-2xx, is retried after the same delay until the attempts run out.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	maxAttempts    int
	retryDelay     time.Duration
	requestTimeout time.Duration
	maxElapsedTime time.Duration
	headers        http.Header
	logger         *log.Logger
}

type statusError struct {
	statusCode int
	body       []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.statusCode)
}

func NewClient(opts Options, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	baseURL, err := ParseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	retryDelay := opts.RetryDelay
	if retryDelay < 0 {
		retryDelay = 0
	}
	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		maxAttempts:    maxAttempts,
		retryDelay:     retryDelay,
		requestTimeout: requestTimeout,
		maxElapsedTime: max(opts.MaxElapsedTime, 0),
		headers:        opts.Headers.Clone(),
		logger:         logger,
	}, nil
}

func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	endpoint := c.baseURL.JoinPath(req.Path).String()

	var payload []byte
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return Response{}, fmt.Errorf("encode %s %s body: %w", req.Method, req.Path, err)
		}
		payload = encoded
	}

	attempt := 0
	operation := func() (Response, error) {
		attempt++
		resp, err := c.send(ctx, req.Method, endpoint, payload, req.Token)
		if err != nil {
			return Response{}, err
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return resp, &statusError{statusCode: resp.StatusCode, body: resp.Body}
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(uint(c.maxAttempts)),
		backoff.WithMaxElapsedTime(c.maxElapsedTime),
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.logger.Warn("request failed, retrying",
				"method", req.Method,
				"path", req.Path,
				"attempt", attempt,
				"max_attempts", c.maxAttempts,
				"delay", delay.String(),
				"error", err,
			)
		}),
	)
	if err != nil {
		transportErr := &domain.TransportError{
			Method:   req.Method,
			Path:     req.Path,
			Attempts: attempt,
			Err:      err,
		}
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			transportErr.StatusCode = statusErr.statusCode
			transportErr.Body = truncateBody(statusErr.body)
		}
		return Response{}, transportErr
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, token domain.Token) (Response, error) {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, method, endpoint, body)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token.String())
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}

// ParseBaseURL accepts absolute http(s) URLs with a host.
func ParseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	return parsed, nil
}

func truncateBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > maxErrorBodyBytes {
		return trimmed[:maxErrorBodyBytes] + "..."
	}
	return trimmed
}
