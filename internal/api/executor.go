// Package api performs calls against the remote tasks API.
package api

import "context"

// Request describes one call to the tasks API. URL is relative to the
// configured base URL.
type Request struct {
	URL     string
	Method  string
	Data    any
	Headers map[string]string
}

// Options controls how the outcome of a call is reported to the user.
type Options struct {
	ShowSuccessNotice bool
	ShowErrorNotice   bool
}

// DefaultOptions reports both successes and failures.
func DefaultOptions() Options {
	return Options{ShowSuccessNotice: true, ShowErrorNotice: true}
}

// Silent suppresses the success notice; failures are still reported.
func Silent() Options {
	return Options{ShowErrorNotice: true}
}

// Executor performs a request and decodes the response body into out when
// out is non-nil.
type Executor interface {
	Do(ctx context.Context, req Request, opts Options, out any) error
}
