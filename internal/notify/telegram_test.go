package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*Telegram, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewTelegram("test-token", "42", 2*time.Second)
	g.BaseURL = srv.URL
	return g, srv
}

func TestSendImage_PostsPhotoPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	if err := g.SendImage(context.Background(), "https://cdn.example.com/poster.jpg"); err != nil {
		t.Fatalf("SendImage: %v", err)
	}
	if gotPath != "/bottest-token/sendPhoto" {
		t.Fatalf("wrong path: %s", gotPath)
	}
	if gotBody["photo"] != "https://cdn.example.com/poster.jpg" || gotBody["chat_id"] != "42" {
		t.Fatalf("wrong payload: %v", gotBody)
	}
}

func TestSendMessage_IncludesActionButton(t *testing.T) {
	var gotBody map[string]any

	g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	btn := Button{Label: "Go to watch", URL: "https://example.com/movie/dune"}
	if err := g.SendMessage(context.Background(), "<b>Dune</b> is out", btn); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if gotBody["parse_mode"] != "HTML" {
		t.Fatalf("expected HTML parse mode, got %v", gotBody["parse_mode"])
	}
	markup, ok := gotBody["reply_markup"].(map[string]any)
	if !ok {
		t.Fatalf("missing reply_markup: %v", gotBody)
	}
	raw, _ := json.Marshal(markup)
	if !strings.Contains(string(raw), "Go to watch") || !strings.Contains(string(raw), "https://example.com/movie/dune") {
		t.Fatalf("button not encoded: %s", raw)
	}
}

func TestCall_RejectedPayloadIsError(t *testing.T) {
	g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "chat not found"})
	})

	err := g.SendMessage(context.Background(), "hi", Button{})
	if err == nil {
		t.Fatalf("expected error for rejected payload")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("error should carry API description, got %v", err)
	}
}

func TestCall_OKFalseWith200IsStillError(t *testing.T) {
	g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "flood control"})
	})

	if err := g.SendImage(context.Background(), "x"); err == nil {
		t.Fatalf("ok=false must be an error even with HTTP 200")
	}
}

func TestCall_TimeoutIsFailureNotSuccess(t *testing.T) {
	g, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := g.SendMessage(ctx, "late", Button{}); err == nil {
		t.Fatalf("expected context deadline to surface as an error")
	}
}

func TestCall_UnreachableGateway(t *testing.T) {
	g, srv := newGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	if err := g.SendImage(context.Background(), "x"); err == nil {
		t.Fatalf("expected connection error for closed server")
	}
}
