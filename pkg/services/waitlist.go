package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workblox-site/pkg/models"
)

// Submitter forwards a beta signup to the marketing-automation upstream.
type Submitter interface {
	Submit(ctx context.Context, email string, questions []models.Question) error
}

// WaitlistClient is the HTTP Submitter. It is a straight passthrough: no
// retries and no validation beyond what the upstream enforces.
type WaitlistClient struct {
	upstreamURL string
	client      *http.Client
	logger      *slog.Logger
}

func NewWaitlistClient(upstreamURL string, logger *slog.Logger) *WaitlistClient {
	return &WaitlistClient{
		upstreamURL: upstreamURL,
		client:      &http.Client{Timeout: 15 * time.Second},
		logger:      logger.With("component", "waitlist"),
	}
}

// Submit posts the signup form-encoded to the upstream. Questions travel as a
// single JSON-serialized field, matching what the upstream form expects.
func (w *WaitlistClient) Submit(ctx context.Context, email string, questions []models.Question) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	form := url.Values{
		"email":     {email},
		"questions": {string(payload)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.upstreamURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Error("upstream request failed", "error", err)
		return fmt.Errorf("submit waitlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		w.logger.Error("upstream rejected signup", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("upstream returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	w.logger.Info("signup forwarded", "questions", len(questions))
	return nil
}
