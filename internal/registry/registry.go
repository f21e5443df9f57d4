// Package registry tracks group-chat participants in an append-only flat
// file plus in-memory caches, and keeps per-chat admin sets and member
// counts for the lifetime of the process.
package registry

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Activity action tags recorded in the participant log.
const (
	ActionMessage        = "message"
	ActionMedia          = "media"
	ActionReaction       = "reaction"
	ActionButtonRegister = "button_register"
)

// ErrInsufficientParticipants is returned by SelectPair when a chat has
// fewer than two known participants.
var ErrInsufficientParticipants = errors.New("not enough participants in chat")

// ChatAPI is the slice of the Telegram transport the registry needs for
// admin and member-count refreshes. *bot.Bot satisfies it.
type ChatAPI interface {
	GetChatAdministrators(ctx context.Context, params *bot.GetChatAdministratorsParams) ([]models.ChatMember, error)
	GetChatMemberCount(ctx context.Context, params *bot.GetChatMemberCountParams) (int, error)
}

// Registry owns the participant state for all chats. All methods are safe
// for concurrent use; the Telegram library dispatches handlers concurrently.
type Registry struct {
	mu          sync.Mutex
	path        string
	logger      *slog.Logger
	members     map[int64]map[int64]struct{}
	admins      map[int64]map[int64]struct{}
	memberCount map[int64]int
}

// New creates a Registry backed by the participant log at path. The file is
// created lazily on first append.
func New(path string, logger *slog.Logger) *Registry {
	return &Registry{
		path:        path,
		logger:      logger.With("component", "registry"),
		members:     make(map[int64]map[int64]struct{}),
		admins:      make(map[int64]map[int64]struct{}),
		memberCount: make(map[int64]int),
	}
}

// RecordActivity registers a participant sighting. The in-memory cache is
// updated unconditionally; the durable log gains at most one record per
// (chat, user) pair, so the first-seen action tag sticks. File errors are
// logged and swallowed, degrading to cache-only tracking.
func (r *Registry) RecordActivity(chatID, userID int64, displayName, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.members[chatID] == nil {
		r.members[chatID] = make(map[int64]struct{})
	}
	r.members[chatID][userID] = struct{}{}

	known, err := r.durableSet(chatID)
	if err != nil {
		r.logger.Warn("Failed to read participant log", "path", r.path, "error", err)
		return
	}
	if _, ok := known[userID]; ok {
		return
	}

	line := fmt.Sprintf("Chat: %d, User: %d, Name: %s, Action: %s\n", chatID, userID, displayName, action)
	if err := r.appendLine(line); err != nil {
		r.logger.Warn("Failed to append to participant log", "path", r.path, "error", err)
	}
}

// DurableParticipants returns the distinct user ids recorded for the chat in
// the flat file, in first-seen order. A missing file yields an empty list.
func (r *Registry) DurableParticipants(chatID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.durableParticipantsLocked(chatID)
}

// UnionParticipants returns the union of durable and cached participants for
// the chat: durable ids in first-seen order, then cache-only ids.
func (r *Registry) UnionParticipants(chatID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unionLocked(chatID)
}

// SelectPair picks two distinct participants of the chat uniformly at random
// without replacement. An empty union is seeded with the caller; with fewer
// than two distinct ids it returns ErrInsufficientParticipants.
func (r *Registry) SelectPair(chatID, callerID int64) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool := r.unionLocked(chatID)
	if len(pool) == 0 {
		pool = []int64{callerID}
	}
	if len(pool) < 2 {
		return 0, 0, ErrInsufficientParticipants
	}

	i := rand.IntN(len(pool))
	j := rand.IntN(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j], nil
}

// RefreshAdmins replaces the chat's admin set with the live administrator
// list, excluding bot accounts. On transport failure the set becomes empty
// and the error is logged, never returned.
func (r *Registry) RefreshAdmins(ctx context.Context, api ChatAPI, chatID int64) {
	set := make(map[int64]struct{})

	admins, err := api.GetChatAdministrators(ctx, &bot.GetChatAdministratorsParams{ChatID: chatID})
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to fetch chat administrators", "chat_id", chatID, "error", err)
	} else {
		for _, member := range admins {
			user := adminUser(member)
			if user == nil || user.IsBot {
				continue
			}
			set[user.ID] = struct{}{}
		}
	}

	r.mu.Lock()
	r.admins[chatID] = set
	r.mu.Unlock()
}

// RefreshMemberCount stores the chat's current member count. Best effort,
// errors are logged and swallowed.
func (r *Registry) RefreshMemberCount(ctx context.Context, api ChatAPI, chatID int64) {
	count, err := api.GetChatMemberCount(ctx, &bot.GetChatMemberCountParams{ChatID: chatID})
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to fetch chat member count", "chat_id", chatID, "error", err)
		return
	}

	r.mu.Lock()
	r.memberCount[chatID] = count
	r.mu.Unlock()
}

// HasButtonRegistration reports whether the durable log already holds a
// button_register record for the user in the chat.
func (r *Registry) HasButtonRegistration(chatID, userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	err := r.scan(func(rec record) {
		if rec.chatID == chatID && rec.userID == userID && rec.action == ActionButtonRegister {
			found = true
		}
	})
	if err != nil {
		r.logger.Warn("Failed to read participant log", "path", r.path, "error", err)
	}
	return found
}

// Tracked reports whether the chat has been seen this process lifetime.
func (r *Registry) Tracked(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, inMembers := r.members[chatID]
	_, inAdmins := r.admins[chatID]
	return inMembers || inAdmins
}

// TrackedChats returns all chat ids seen this process lifetime, ascending.
func (r *Registry) TrackedChats() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, len(r.members)+len(r.admins))
	for id := range r.members {
		seen[id] = struct{}{}
	}
	for id := range r.admins {
		seen[id] = struct{}{}
	}

	chats := make([]int64, 0, len(seen))
	for id := range seen {
		chats = append(chats, id)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats
}

// Admins returns the cached admin ids for the chat, ascending.
func (r *Registry) Admins(chatID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.admins[chatID]))
	for id := range r.admins[chatID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MemberCount returns the last fetched member count for the chat, zero when
// never fetched.
func (r *Registry) MemberCount(chatID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.memberCount[chatID]
}

// CachedParticipants returns the in-memory participant ids for the chat,
// ascending.
func (r *Registry) CachedParticipants(chatID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.members[chatID]))
	for id := range r.members[chatID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DisplayName derives a participant's display name: the @handle when the
// user has one, else the first name, else a User_<id> placeholder.
func DisplayName(user *models.User) string {
	if user == nil {
		return "User_0"
	}
	if user.Username != "" {
		return "@" + user.Username
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	return fmt.Sprintf("User_%d", user.ID)
}

func adminUser(member models.ChatMember) *models.User {
	switch {
	case member.Owner != nil:
		return member.Owner.User
	case member.Administrator != nil:
		return &member.Administrator.User
	}
	return nil
}

func (r *Registry) unionLocked(chatID int64) []int64 {
	ids := r.durableParticipantsLocked(chatID)
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	cached := make([]int64, 0, len(r.members[chatID]))
	for id := range r.members[chatID] {
		if _, ok := seen[id]; !ok {
			cached = append(cached, id)
		}
	}
	sort.Slice(cached, func(i, j int) bool { return cached[i] < cached[j] })
	return append(ids, cached...)
}

func (r *Registry) durableParticipantsLocked(chatID int64) []int64 {
	var ids []int64
	seen := make(map[int64]struct{})
	err := r.scan(func(rec record) {
		if rec.chatID != chatID {
			return
		}
		if _, ok := seen[rec.userID]; ok {
			return
		}
		seen[rec.userID] = struct{}{}
		ids = append(ids, rec.userID)
	})
	if err != nil {
		r.logger.Warn("Failed to read participant log", "path", r.path, "error", err)
	}
	return ids
}

func (r *Registry) durableSet(chatID int64) (map[int64]struct{}, error) {
	set := make(map[int64]struct{})
	err := r.scan(func(rec record) {
		if rec.chatID == chatID {
			set[rec.userID] = struct{}{}
		}
	})
	return set, err
}

type record struct {
	chatID int64
	userID int64
	name   string
	action string
}

// scan streams well-formed records from the participant log. Malformed lines
// are skipped; a missing file is treated as an empty log.
func (r *Registry) scan(fn func(record)) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if rec, ok := parseRecord(scanner.Text()); ok {
			fn(rec)
		}
	}
	return scanner.Err()
}

// parseRecord parses one log line. Display names are arbitrary text and may
// contain commas, so the action separator is matched from the right.
func parseRecord(line string) (record, bool) {
	rest, ok := strings.CutPrefix(line, "Chat: ")
	if !ok {
		return record{}, false
	}
	chatStr, rest, ok := strings.Cut(rest, ", User: ")
	if !ok {
		return record{}, false
	}
	userStr, rest, ok := strings.Cut(rest, ", Name: ")
	if !ok {
		return record{}, false
	}
	idx := strings.LastIndex(rest, ", Action: ")
	if idx < 0 {
		return record{}, false
	}

	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		return record{}, false
	}
	userID, err := strconv.ParseInt(userStr, 10, 64)
	if err != nil {
		return record{}, false
	}

	return record{
		chatID: chatID,
		userID: userID,
		name:   rest[:idx],
		action: rest[idx+len(", Action: "):],
	}, true
}

func (r *Registry) appendLine(line string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line)
	return err
}
