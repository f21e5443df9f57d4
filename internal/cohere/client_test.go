package cohere

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New("test-key", srv.URL, "command-r-plus", "preamble text", 5*time.Second, logger)
}

func TestChatSendsWireFormat(t *testing.T) {
	t.Parallel()

	var got chatRequest
	var gotPath, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(chatResponse{Text: "привет"})
	})

	history := []Turn{
		{Role: RoleUser, Message: "как дела"},
		{Role: RoleChatbot, Message: "отлично"},
	}
	text, err := client.Chat(t.Context(), "расскажи анекдот", history)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if text != "привет" {
		t.Errorf("text = %q, want %q", text, "привет")
	}

	if gotPath != "/v1/chat" {
		t.Errorf("path = %q, want /v1/chat", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q, want bearer token", gotAuth)
	}
	if got.Model != "command-r-plus" {
		t.Errorf("model = %q, want command-r-plus", got.Model)
	}
	if got.Message != "расскажи анекдот" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Preamble != "preamble text" {
		t.Errorf("preamble = %q", got.Preamble)
	}
	if len(got.ChatHistory) != 2 || got.ChatHistory[0].Role != "USER" || got.ChatHistory[1].Role != "CHATBOT" {
		t.Errorf("chat_history = %+v", got.ChatHistory)
	}
}

func TestChatStatusError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	_, err := client.Chat(t.Context(), "prompt", nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Errorf("code = %d, want %d", statusErr.Code, http.StatusTooManyRequests)
	}
}

func TestChatMissingTextIsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generation_id": "abc"}`))
	})

	text, err := client.Chat(t.Context(), "prompt", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestChatTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New("k", srv.URL, "m", "p", time.Second, logger)

	_, err := client.Chat(t.Context(), "prompt", nil)
	if err == nil {
		t.Fatal("expected a transport error for a closed server")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport failure must not be a StatusError, got %v", err)
	}
}
