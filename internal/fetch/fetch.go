// Package fetch is the single HTTP GET path shared by all provider clients.
// Every request gets its own 15s budget; a tool call that issues two
// sequential requests (lookup then download) can therefore take up to ~2x
// the timeout.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"oto2mcp/internal/model"
)

const (
	// DefaultTimeout bounds each individual request, not a whole tool call.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxRedirects bounds redirect chains; upstream audio hosts
	// redirect to CDN URLs but never legitimately more than a hop or two.
	DefaultMaxRedirects = 5

	// bodyExcerptLimit caps how much upstream error body is echoed back.
	bodyExcerptLimit = 512
)

// Result is a fully buffered GET response.
type Result struct {
	StatusCode int
	Body       []byte
}

// Fetcher issues GET requests with redirect following and a fixed timeout.
type Fetcher struct {
	HTTPClient *http.Client
}

// New builds a Fetcher. Non-positive arguments fall back to the defaults.
func New(timeout time.Duration, maxRedirects int) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxRedirects <= 0 {
		maxRedirects = DefaultMaxRedirects
	}
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Get fetches rawURL and returns the status plus the fully buffered body.
// Redirects resolve transparently; the caller sees only the final response.
// Non-2xx statuses are returned as a Result, not an error, so adapters can
// decide how to report them.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{}, &model.ProviderError{
			Code:      "UPSTREAM_HTTP",
			Message:   "failed to build request",
			Retryable: false,
			Cause:     err,
		}
	}

	httpClient := f.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Result{}, &model.ProviderError{
				Code:      "TIMEOUT",
				Message:   "request exceeded deadline",
				Retryable: true,
				Cause:     err,
			}
		}
		return Result{}, &model.ProviderError{
			Code:      "UPSTREAM_HTTP",
			Message:   "request failed",
			Retryable: true,
			Cause:     err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return Result{}, &model.ProviderError{
				Code:      "TIMEOUT",
				Message:   "request exceeded deadline while reading body",
				Retryable: true,
				Cause:     err,
			}
		}
		return Result{}, &model.ProviderError{
			Code:       "UPSTREAM_HTTP",
			Message:    "failed to read response body",
			Retryable:  true,
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	return Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// StatusError converts a non-2xx Result into the canonical upstream error,
// including a bounded excerpt of the body.
func StatusError(provider string, res Result) error {
	excerpt := strings.TrimSpace(string(res.Body))
	if len(excerpt) > bodyExcerptLimit {
		excerpt = excerpt[:bodyExcerptLimit]
	}
	message := fmt.Sprintf("%s returned status %d", provider, res.StatusCode)
	if excerpt != "" {
		message += ": " + excerpt
	}
	return &model.ProviderError{
		Code:       "UPSTREAM_HTTP",
		Message:    message,
		Retryable:  res.StatusCode >= http.StatusInternalServerError,
		StatusCode: res.StatusCode,
	}
}

// OK reports whether the status is in the 2xx range.
func (r Result) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
