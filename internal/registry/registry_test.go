package registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "participants.txt")
	return New(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeChatAPI struct {
	admins    []models.ChatMember
	adminsErr error
	count     int
	countErr  error
}

func (f *fakeChatAPI) GetChatAdministrators(_ context.Context, _ *bot.GetChatAdministratorsParams) ([]models.ChatMember, error) {
	return f.admins, f.adminsErr
}

func (f *fakeChatAPI) GetChatMemberCount(_ context.Context, _ *bot.GetChatMemberCountParams) (int, error) {
	return f.count, f.countErr
}

func TestRecordActivityIdempotent(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 1, "@alice", ActionMessage)
	r.RecordActivity(-100, 1, "@alice", ActionMedia)
	r.RecordActivity(-100, 1, "@alice", ActionMessage)

	data, err := os.ReadFile(r.path)
	if err != nil {
		t.Fatalf("reading participant log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %q", len(lines), lines)
	}
	want := "Chat: -100, User: 1, Name: @alice, Action: message"
	if lines[0] != want {
		t.Errorf("record = %q, want %q", lines[0], want)
	}
}

func TestRecordActivityFirstActionSticks(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 7, "Боб", ActionReaction)
	r.RecordActivity(-100, 7, "Боб", ActionButtonRegister)

	data, err := os.ReadFile(r.path)
	if err != nil {
		t.Fatalf("reading participant log: %v", err)
	}
	if got := strings.Count(string(data), "User: 7"); got != 1 {
		t.Fatalf("expected one record for user 7, got %d", got)
	}
	if !strings.Contains(string(data), "Action: reaction") {
		t.Errorf("first-seen action should stick, log: %q", string(data))
	}
}

func TestRecordActivitySeparateChats(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 1, "@alice", ActionMessage)
	r.RecordActivity(-200, 1, "@alice", ActionMessage)

	if got := r.DurableParticipants(-100); len(got) != 1 || got[0] != 1 {
		t.Errorf("chat -100 participants = %v, want [1]", got)
	}
	if got := r.DurableParticipants(-200); len(got) != 1 || got[0] != 1 {
		t.Errorf("chat -200 participants = %v, want [1]", got)
	}
}

func TestDurableParticipantsMissingFile(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	if got := r.DurableParticipants(-100); len(got) != 0 {
		t.Errorf("expected empty list for missing file, got %v", got)
	}
}

func TestDurableParticipantsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 30, "c", ActionMessage)
	r.RecordActivity(-100, 10, "a", ActionMessage)
	r.RecordActivity(-100, 20, "b", ActionMessage)

	got := r.DurableParticipants(-100)
	want := []int64{30, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("participants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("participants = %v, want %v", got, want)
		}
	}
}

func TestUnionParticipants(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 1, "@alice", ActionMessage)

	// Simulate a cache-only participant whose file append was lost.
	r.mu.Lock()
	if r.members[-100] == nil {
		r.members[-100] = make(map[int64]struct{})
	}
	r.members[-100][2] = struct{}{}
	r.mu.Unlock()

	got := r.UnionParticipants(-100)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("union = %v, want [1 2]", got)
	}
}

func TestUnionCacheOnlyDegradation(t *testing.T) {
	t.Parallel()

	// A directory as log path makes every file operation fail, leaving only
	// the in-memory cache.
	r := New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.RecordActivity(-100, 5, "@eve", ActionMessage)

	got := r.UnionParticipants(-100)
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("union = %v, want [5]", got)
	}
}

func TestSelectPair(t *testing.T) {
	t.Parallel()

	t.Run("insufficient with seeded caller only", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		if _, _, err := r.SelectPair(-100, 42); !errors.Is(err, ErrInsufficientParticipants) {
			t.Errorf("err = %v, want ErrInsufficientParticipants", err)
		}
	})

	t.Run("insufficient with one durable participant", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		r.RecordActivity(-100, 1, "@alice", ActionMessage)
		if _, _, err := r.SelectPair(-100, 1); !errors.Is(err, ErrInsufficientParticipants) {
			t.Errorf("err = %v, want ErrInsufficientParticipants", err)
		}
	})

	t.Run("two participants always form the pair", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		r.RecordActivity(-100, 1, "@alice", ActionMessage)
		r.RecordActivity(-100, 2, "@bob", ActionMessage)

		for range 50 {
			a, b, err := r.SelectPair(-100, 1)
			if err != nil {
				t.Fatalf("SelectPair: %v", err)
			}
			if a == b {
				t.Fatalf("pair members must be distinct, got (%d, %d)", a, b)
			}
			if !(a == 1 && b == 2) && !(a == 2 && b == 1) {
				t.Fatalf("pair (%d, %d) not drawn from {1, 2}", a, b)
			}
		}
	})

	t.Run("pair drawn from union", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		ids := map[int64]struct{}{1: {}, 2: {}, 3: {}, 4: {}}
		for id := range ids {
			r.RecordActivity(-100, id, "x", ActionMessage)
		}
		for range 50 {
			a, b, err := r.SelectPair(-100, 1)
			if err != nil {
				t.Fatalf("SelectPair: %v", err)
			}
			if a == b {
				t.Fatalf("pair members must be distinct, got (%d, %d)", a, b)
			}
			if _, ok := ids[a]; !ok {
				t.Fatalf("id %d not in union", a)
			}
			if _, ok := ids[b]; !ok {
				t.Fatalf("id %d not in union", b)
			}
		}
	})
}

func TestTwoSendersScenario(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 1, "@alice", ActionMessage)
	r.RecordActivity(-100, 2, "@bob", ActionMessage)

	union := r.UnionParticipants(-100)
	if len(union) != 2 || union[0] != 1 || union[1] != 2 {
		t.Fatalf("union = %v, want [1 2]", union)
	}

	a, b, err := r.SelectPair(-100, 1)
	if err != nil {
		t.Fatalf("SelectPair: %v", err)
	}
	if !(a == 1 && b == 2) && !(a == 2 && b == 1) {
		t.Errorf("pair (%d, %d), want a permutation of (1, 2)", a, b)
	}
}

func TestRefreshAdmins(t *testing.T) {
	t.Parallel()

	t.Run("drops bot accounts", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		api := &fakeChatAPI{admins: []models.ChatMember{
			{Owner: &models.ChatMemberOwner{User: &models.User{ID: 10}}},
			{Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 20, IsBot: true}}},
			{Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 30}}},
		}}

		r.RefreshAdmins(context.Background(), api, -100)

		got := r.Admins(-100)
		if len(got) != 2 || got[0] != 10 || got[1] != 30 {
			t.Errorf("admins = %v, want [10 30]", got)
		}
	})

	t.Run("transport error clears the set", func(t *testing.T) {
		t.Parallel()
		r := newTestRegistry(t)
		r.RefreshAdmins(context.Background(), &fakeChatAPI{admins: []models.ChatMember{
			{Owner: &models.ChatMemberOwner{User: &models.User{ID: 10}}},
		}}, -100)
		if got := r.Admins(-100); len(got) != 1 {
			t.Fatalf("admins = %v, want one entry", got)
		}

		r.RefreshAdmins(context.Background(), &fakeChatAPI{adminsErr: errors.New("boom")}, -100)
		if got := r.Admins(-100); len(got) != 0 {
			t.Errorf("admins after failed refresh = %v, want empty", got)
		}
	})
}

func TestRefreshMemberCount(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RefreshMemberCount(context.Background(), &fakeChatAPI{count: 12}, -100)
	if got := r.MemberCount(-100); got != 12 {
		t.Errorf("member count = %d, want 12", got)
	}

	r.RefreshMemberCount(context.Background(), &fakeChatAPI{countErr: errors.New("boom")}, -100)
	if got := r.MemberCount(-100); got != 12 {
		t.Errorf("member count after failed refresh = %d, want previous value 12", got)
	}
}

func TestHasButtonRegistration(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.RecordActivity(-100, 1, "@alice", ActionButtonRegister)
	r.RecordActivity(-100, 2, "@bob", ActionMessage)

	if !r.HasButtonRegistration(-100, 1) {
		t.Error("expected button registration for user 1")
	}
	if r.HasButtonRegistration(-100, 2) {
		t.Error("user 2 registered via message, not button")
	}
	if r.HasButtonRegistration(-200, 1) {
		t.Error("registration must be chat-scoped")
	}
}

func TestTracked(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	if r.Tracked(-100) {
		t.Error("chat should not be tracked before any activity")
	}
	r.RecordActivity(-100, 1, "@alice", ActionMessage)
	if !r.Tracked(-100) {
		t.Error("chat should be tracked after activity")
	}

	chats := r.TrackedChats()
	if len(chats) != 1 || chats[0] != -100 {
		t.Errorf("tracked chats = %v, want [-100]", chats)
	}
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want record
		ok   bool
	}{
		{
			name: "plain",
			line: "Chat: -100, User: 1, Name: @alice, Action: message",
			want: record{chatID: -100, userID: 1, name: "@alice", action: "message"},
			ok:   true,
		},
		{
			name: "name with comma",
			line: "Chat: -100, User: 2, Name: Иван, Грозный, Action: button_register",
			want: record{chatID: -100, userID: 2, name: "Иван, Грозный", action: "button_register"},
			ok:   true,
		},
		{
			name: "missing action",
			line: "Chat: -100, User: 2, Name: Иван",
			ok:   false,
		},
		{
			name: "garbage",
			line: "hello world",
			ok:   false,
		},
		{
			name: "non-numeric user",
			line: "Chat: -100, User: abc, Name: x, Action: message",
			ok:   false,
		},
		{
			name: "empty",
			line: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseRecord(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("record = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{"username", &models.User{ID: 1, Username: "alice", FirstName: "Alice"}, "@alice"},
		{"first name only", &models.User{ID: 2, FirstName: "Боб"}, "Боб"},
		{"bare id", &models.User{ID: 3}, "User_3"},
		{"nil user", nil, "User_0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayName(tt.user); got != tt.want {
				t.Errorf("DisplayName = %q, want %q", got, tt.want)
			}
		})
	}
}
