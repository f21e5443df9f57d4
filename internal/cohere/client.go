// Package cohere implements a minimal JSON-over-HTTP client for the Cohere
// chat endpoint.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Roles accepted by the chat endpoint's history entries.
const (
	RoleUser    = "USER"
	RoleChatbot = "CHATBOT"
)

// Turn is one entry of the running chat history sent with a request.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// StatusError reports a non-2xx response from the endpoint. The caller can
// surface the code to the user.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cohere: unexpected status %d: %s", e.Code, e.Body)
}

// Client calls POST {base_url}/v1/chat. One outbound request per Chat call,
// no retries.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	preamble   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client. The timeout bounds each request through both the
// http.Client and the per-call context.
func New(apiKey, baseURL, model, preamble string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		preamble:   preamble,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "cohere"),
	}
}

type chatRequest struct {
	Model       string `json:"model"`
	Message     string `json:"message"`
	ChatHistory []Turn `json:"chat_history"`
	Preamble    string `json:"preamble"`
}

type chatResponse struct {
	Text string `json:"text"`
}

// Chat sends the prompt with the given history and returns the generated
// text. A body without text yields an empty string and a nil error; a
// non-2xx status yields a *StatusError.
func (c *Client) Chat(ctx context.Context, prompt string, history []Turn) (string, error) {
	if c.httpClient.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	buf, err := json.Marshal(chatRequest{
		Model:       c.model,
		Message:     prompt,
		ChatHistory: history,
		Preamble:    c.preamble,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode, Body: string(bodyBytes)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	c.logger.DebugContext(ctx, "Chat completion finished",
		"model", c.model,
		"history_len", len(history),
		"duration", time.Since(start))

	return parsed.Text, nil
}
