package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// postJSON sends body to url and decodes a 200 response into out.
// Rate limiting and server errors are marked retryable; other statuses are permanent.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return common.Permanent(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return common.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &common.RetryableError{Err: fmt.Errorf("%w: request failed: %w", common.ErrRemoteUnavailable, err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &common.RetryableError{Err: fmt.Errorf("failed to read response: %w", err), Retryable: true}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		err := fmt.Errorf("%w: %s", common.ErrRateLimit, string(respBody))
		if after := retryAfter(resp.Header.Get("Retry-After")); after > 0 {
			return common.RetryAfter(err, after)
		}
		return err
	case resp.StatusCode >= 500:
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: API error (status %d): %s", common.ErrRemoteUnavailable, resp.StatusCode, string(respBody)),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		return common.Permanent(fmt.Errorf("%w: API error (status %d): %s", common.ErrRemoteUnavailable, resp.StatusCode, string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return common.Permanent(fmt.Errorf("%w: failed to parse response: %w", ErrMalformedResponse, err))
	}
	return nil
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
