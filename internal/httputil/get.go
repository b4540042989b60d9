// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps how much of a response body Get will read.
const DefaultMaxBodyBytes = 16 << 20

// ErrBodyTooLarge is returned when a response exceeds the body limit.
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// StatusError reports a non-200 response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Options tunes a single GET request.
type Options struct {
	UserAgent string
	Accept    string

	// MaxBodyBytes limits the body size; 0 uses DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// Get fetches url and returns the full body of a 200 response. Any other
// status yields a *StatusError. The request honours ctx, so callers bound
// each fetch with context.WithTimeout.
func Get(ctx context.Context, client *http.Client, url string, opts Options) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	if opts.Accept != "" {
		req.Header.Set("Accept", opts.Accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	limit := opts.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
