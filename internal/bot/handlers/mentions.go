package handlers

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// memberAPI is the slice of the transport needed to render mentions.
// *tgbot.Bot satisfies it.
type memberAPI interface {
	GetChatMember(ctx context.Context, params *tgbot.GetChatMemberParams) (*models.ChatMember, error)
}

// userMention renders a MarkdownV2 mention for the user: the escaped @handle
// when a username exists, else an escaped first-name link. On transport
// failure it falls back to a generic id link so the caller never sees the
// error.
func userMention(ctx context.Context, api memberAPI, chatID, userID int64) string {
	fallback := fmt.Sprintf("[User %d](tg://user?id=%d)", userID, userID)

	member, err := api.GetChatMember(ctx, &tgbot.GetChatMemberParams{ChatID: chatID, UserID: userID})
	if err != nil || member == nil {
		return fallback
	}

	user := memberUser(member)
	if user == nil {
		return fallback
	}
	if user.Username != "" {
		return "@" + tgbot.EscapeMarkdown(user.Username)
	}
	return fmt.Sprintf("[%s](tg://user?id=%d)", tgbot.EscapeMarkdown(user.FirstName), userID)
}

// memberUser extracts the user from the tagged chat-member union.
func memberUser(member *models.ChatMember) *models.User {
	switch {
	case member.Owner != nil:
		return member.Owner.User
	case member.Administrator != nil:
		return &member.Administrator.User
	case member.Member != nil:
		return member.Member.User
	case member.Restricted != nil:
		return member.Restricted.User
	case member.Left != nil:
		return member.Left.User
	case member.Banned != nil:
		return member.Banned.User
	}
	return nil
}
