// Package notify delivers external notifications for catalog events. The
// Gateway interface is what the movie update orchestrator depends on; the
// concrete implementation speaks the Telegram Bot API.
//
// Failure semantics matter more than the transport here: every path that is
// not an explicit "ok" from the remote API — connection errors, timeouts,
// non-2xx statuses, ok=false payloads — returns an error. The orchestrator
// relies on that to abort updates, so nothing in this package may treat
// silence as success.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Button is the call-to-action attached to a notification message.
type Button struct {
	Label string
	URL   string
}

// Gateway is the outbound notification contract consumed by the movie
// update orchestrator. Both calls are blocking and must honor ctx.
type Gateway interface {
	// SendImage delivers a standalone image by URL.
	SendImage(ctx context.Context, photoURL string) error
	// SendMessage delivers an HTML-formatted text with one action button.
	SendMessage(ctx context.Context, text string, btn Button) error
}

var (
	// deliveries counts gateway calls by method and outcome. Registered
	// once at package init; safe for concurrent use.
	deliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_deliveries_total",
			Help: "Total notification gateway calls by method and outcome.",
		},
		[]string{"method", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(deliveries)
}

// Telegram implements Gateway against the Telegram Bot API.
//
// BaseURL defaults to the public API host and exists as a seam for tests
// and self-hosted bot API servers.
type Telegram struct {
	Token   string
	ChatID  string
	BaseURL string
	Client  *http.Client
}

// NewTelegram constructs a Telegram gateway with a timeout-bounded HTTP
// client. The timeout caps each individual API call; a timed-out call is a
// failure, never a success-by-default.
func NewTelegram(token, chatID string, timeout time.Duration) *Telegram {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Telegram{
		Token:   token,
		ChatID:  chatID,
		BaseURL: "https://api.telegram.org",
		Client:  &http.Client{Timeout: timeout},
	}
}

// apiResponse is the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendImage posts a sendPhoto call with the image URL.
func (t *Telegram) SendImage(ctx context.Context, photoURL string) error {
	payload := map[string]any{
		"chat_id": t.ChatID,
		"photo":   photoURL,
	}
	return t.call(ctx, "sendPhoto", payload)
}

// SendMessage posts a sendMessage call with HTML parse mode and a single
// inline URL button.
func (t *Telegram) SendMessage(ctx context.Context, text string, btn Button) error {
	payload := map[string]any{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if btn.URL != "" {
		payload["reply_markup"] = map[string]any{
			"inline_keyboard": [][]map[string]string{
				{{"text": btn.Label, "url": btn.URL}},
			},
		}
	}
	return t.call(ctx, "sendMessage", payload)
}

// call executes one Bot API method and normalizes every failure mode into
// an error.
func (t *Telegram) call(ctx context.Context, method string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		deliveries.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("notify: encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", t.BaseURL, t.Token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		deliveries.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("notify: build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client().Do(req)
	if err != nil {
		deliveries.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("notify: %s: %w", method, err)
	}
	defer resp.Body.Close()

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		deliveries.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("notify: decode %s response: %w", method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !ar.OK {
		deliveries.WithLabelValues(method, "rejected").Inc()
		return fmt.Errorf("notify: %s rejected (status %d): %s", method, resp.StatusCode, ar.Description)
	}

	deliveries.WithLabelValues(method, "ok").Inc()
	return nil
}

func (t *Telegram) client() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}
