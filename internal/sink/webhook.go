package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pardivkamishetty/outliner/internal/outline"
)

// WebhookSink POSTs each finished document to a remote endpoint.
type WebhookSink struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewWebhookSink(url, apiKey string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// webhookPayload is the body for POST {url}.
type webhookPayload struct {
	Name    string            `json:"name"`
	Outline *outline.Document `json:"outline"`
}

func (s *WebhookSink) Write(ctx context.Context, name string, doc *outline.Document) error {
	body, err := json.Marshal(webhookPayload{Name: name, Outline: doc})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return &RetryableError{Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusAccepted {
		return nil
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	return fmt.Errorf("webhook %s: status %d: %s", name, resp.StatusCode, string(respBody))
}

// Close releases idle connections.
func (s *WebhookSink) Close() {
	s.httpClient.CloseIdleConnections()
}

// RetryableError indicates a transient delivery failure.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
