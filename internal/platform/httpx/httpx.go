// Package httpx holds the HTTP plumbing shared by the outbound API adapters:
// status-code errors and a bounded retry loop. Adapters keep their own
// request construction (base URL, auth) and hand the rest to this package.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// StatusError is returned for any response with a 4xx/5xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Do sends the request and turns error statuses into a *StatusError with the
// response body drained into it.
func Do(session *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// DoWithRetry retries transient failures (network errors, 429 and 5xx
// responses) using exponential backoff while respecting context
// cancellation. makeReq builds a fresh request per attempt so bodies are
// never re-read.
func DoWithRetry(
	ctx context.Context,
	session *http.Client,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := Do(session, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var se *StatusError
		if errors.As(err, &se) {
			switch se.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
