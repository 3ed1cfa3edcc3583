package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sajidbaba1/yt/pkg/logger"
)

type webhookNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     logger.Logger
}

func NewWebhookNotifier(webhookURL string, log logger.Logger) Notifier {
	return &webhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

type webhookPayload struct {
	Outcome   Outcome `json:"outcome"`
	Title     string  `json:"title"`
	Detail    string  `json:"detail"`
	Timestamp int64   `json:"timestamp"`
}

func (n *webhookNotifier) Notify(ctx context.Context, outcome Outcome, title string, detail string) {
	payload, err := json.Marshal(webhookPayload{
		Outcome:   outcome,
		Title:     title,
		Detail:    detail,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		n.logger.Errorf("notify: failed to marshal payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		n.logger.Errorf("notify: failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Errorf("notify: webhook call failed: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Errorf("notify: webhook returned status %d", resp.StatusCode)
	}
}
