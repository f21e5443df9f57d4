package database

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    chat_id INTEGER NOT NULL,
    user_id INTEGER NOT NULL,
    content TEXT NOT NULL,
    timestamp DATETIME NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);`

func newTestStore(t *testing.T) Store {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	return NewStore(db, nil)
}

func TestSaveAndCountMessages(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for i := range 3 {
		msg := &Message{
			ChatID:    -100,
			UserID:    int64(i + 1),
			Content:   "привет",
			Timestamp: time.Now().UTC(),
		}
		if err := store.SaveMessage(ctx, msg); err != nil {
			t.Fatalf("SaveMessage: %v", err)
		}
		if msg.ID == 0 {
			t.Error("expected the generated id to be backfilled")
		}
	}

	count, err := store.CountMessagesInChat(ctx, -100)
	if err != nil {
		t.Fatalf("CountMessagesInChat: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	count, err = store.CountMessagesInChat(ctx, -200)
	if err != nil {
		t.Fatalf("CountMessagesInChat: %v", err)
	}
	if count != 0 {
		t.Errorf("count for untouched chat = %d, want 0", count)
	}
}

func TestSaveMessageValidation(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		msg  *Message
	}{
		{"nil message", nil},
		{"zero chat", &Message{UserID: 1, Content: "x"}},
		{"zero user", &Message{ChatID: -100, Content: "x"}},
		{"empty content", &Message{ChatID: -100, UserID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SaveMessage(ctx, tt.msg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestRecentMessagesInChat(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		msg := &Message{
			ChatID:    -100,
			UserID:    1,
			Content:   string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.SaveMessage(ctx, msg); err != nil {
			t.Fatalf("SaveMessage: %v", err)
		}
	}

	messages, err := store.RecentMessagesInChat(ctx, -100, 3)
	if err != nil {
		t.Fatalf("RecentMessagesInChat: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	if messages[0].Content != "e" || messages[2].Content != "c" {
		t.Errorf("messages not ordered newest first: %v, %v", messages[0].Content, messages[2].Content)
	}
}

func TestRunMaintenance(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.RunMaintenance(context.Background()); err != nil {
		t.Fatalf("RunMaintenance: %v", err)
	}
}
