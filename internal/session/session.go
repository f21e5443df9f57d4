// Package session keeps per-user conversation history and drives the
// generation client, turning its failures into user-facing replies.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/rookingit/korallbot/internal/cohere"
)

// maxTurns bounds each user's history to the most recent turns, oldest
// evicted first.
const maxTurns = 10

// emptyReply stands in for a successful response that carried no text.
const emptyReply = "(пустой ответ)"

// Generator produces a reply for a prompt given the running chat history.
// *cohere.Client satisfies it.
type Generator interface {
	Chat(ctx context.Context, prompt string, history []cohere.Turn) (string, error)
}

// Manager holds conversation state for all users. Safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	generator Generator
	logger    *slog.Logger
	histories map[int64][]cohere.Turn
}

// NewManager creates a Manager on top of the given generation client.
func NewManager(generator Generator, logger *slog.Logger) *Manager {
	return &Manager{
		generator: generator,
		logger:    logger.With("component", "session"),
		histories: make(map[int64][]cohere.Turn),
	}
}

// Converse appends the prompt as a USER turn, makes one generation call with
// the full current history, and returns the reply text. Generation failures
// become user-facing error strings, never errors; the USER turn stays in
// history either way.
func (m *Manager) Converse(ctx context.Context, userID int64, prompt string) string {
	m.mu.Lock()
	m.appendLocked(userID, cohere.Turn{Role: cohere.RoleUser, Message: prompt})
	history := slices.Clone(m.histories[userID])
	m.mu.Unlock()

	text, err := m.generator.Chat(ctx, prompt, history)
	if err != nil {
		var statusErr *cohere.StatusError
		if errors.As(err, &statusErr) {
			m.logger.WarnContext(ctx, "Generation returned an error status", "user_id", userID, "status", statusErr.Code)
			return fmt.Sprintf("❌ Ошибка AI: %d", statusErr.Code)
		}
		m.logger.WarnContext(ctx, "Generation request failed", "user_id", userID, "error", err)
		return fmt.Sprintf("💥 Ошибка при запросе: %v", err)
	}

	if text == "" {
		text = emptyReply
	}

	m.mu.Lock()
	m.appendLocked(userID, cohere.Turn{Role: cohere.RoleChatbot, Message: text})
	m.mu.Unlock()

	return text
}

// History returns a copy of the user's current conversation history.
func (m *Manager) History(userID int64) []cohere.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.histories[userID])
}

func (m *Manager) appendLocked(userID int64, turn cohere.Turn) {
	history := append(m.histories[userID], turn)
	if len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	m.histories[userID] = history
}
