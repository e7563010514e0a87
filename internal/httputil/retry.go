// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the index client.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// retriable responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// Retriable reports whether an HTTP status is a transient failure worth
// retrying: 429 or any 5xx.
func Retriable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// DoWithRetry executes an HTTP request and retries transient failures
// (transport errors, HTTP 429, HTTP 5xx) with exponential backoff. The
// delay starts at RetryBaseDelay and doubles each attempt.
//
// When maxRetries is 0 the default (3) is used. On each retriable response
// the body is drained and closed before sleeping. If the context is
// cancelled during a backoff wait the function returns ctx.Err(). After
// exhausting retries the last response (or last transport error) is
// returned so the caller can classify it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err == nil && !Retriable(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
		} else {
			lastErr = nil
			if attempt >= maxRetries {
				// Exhausted retries; hand back the response as-is.
				return resp, nil
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		if attempt >= maxRetries {
			return nil, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
