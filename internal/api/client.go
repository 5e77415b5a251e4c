package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	apperrors "taskboard.com/taskboard/internal/errors"
)

const (
	// DefaultTimeout bounds a single call when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// Client is the HTTP Executor for the tasks API. It does not retry.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	timeout  time.Duration
	notifier Notifier
	schemas  *responseSchemas
}

// envelope holds the fields every API response may carry.
type envelope struct {
	Msg string `json:"msg"`
}

func NewClient(baseURL string, timeout time.Duration, notifier Notifier) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if notifier == nil {
		notifier = NewLogNotifier(nil)
	}

	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:  base,
		http:     &http.Client{},
		timeout:  timeout,
		notifier: notifier,
		schemas:  schemas,
	}, nil
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) Do(ctx context.Context, req Request, opts Options, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.roundTrip(ctx, req)
	if err != nil {
		log.Debug("api request failed", "method", req.Method, "url", req.URL, "err", err)
		if opts.ShowErrorNotice {
			c.notify(ctx, Notice{Kind: NoticeError, Message: apperrors.Message(err)})
		}
		return err
	}

	if len(body) > 0 {
		var env envelope
		if err := json.Unmarshal(body, &env); err == nil && env.Msg != "" && opts.ShowSuccessNotice {
			c.notify(ctx, Notice{Kind: NoticeSuccess, Message: env.Msg})
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL.JoinPath(req.URL)

	var reader io.Reader
	if req.Data != nil {
		payload, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAPIUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", apperrors.ErrInvalidResponse, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var env envelope
		_ = json.Unmarshal(body, &env)
		return nil, apperrors.New(resp.StatusCode, env.Msg)
	}

	if schema := c.schemas.lookup(method, req.URL); schema != nil {
		var doc any
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
		}
		if err := schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidResponse, describeValidation(err))
		}
	}

	return body, nil
}

func (c *Client) notify(ctx context.Context, notice Notice) {
	c.notifier.Notify(ctx, notice)
	if scoped := notifierFrom(ctx); scoped != nil {
		scoped.Notify(ctx, notice)
	}
}
