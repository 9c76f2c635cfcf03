package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrMissingAPIKey is returned when a proxy endpoint is hit without its
// upstream credential configured.
var ErrMissingAPIKey = errors.New("upstream API key is not configured")

// UpstreamError carries a non-2xx reply from a third-party data API so
// handlers can surface it as a gateway failure.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

var upstreamClient = &http.Client{Timeout: 10 * time.Second}

// fetchJSON performs a GET against base with the given query and returns the
// raw body on 2xx. Upstream error bodies are reduced to their message field.
func fetchJSON(ctx context.Context, base string, query url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := upstreamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := resp.Status
		var parsed struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
			msg = parsed.Message
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	return json.RawMessage(body), nil
}
