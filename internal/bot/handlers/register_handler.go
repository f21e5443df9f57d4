package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/rookingit/korallbot/internal/registry"
)

// NewRegisterHandler returns the handler for register_<chat>_<user>
// callback queries produced by the участие button.
func NewRegisterHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return registerHandler{deps}.Handle
}

type registerHandler struct {
	deps HandlerDeps
}

func (h registerHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil {
		return
	}
	log := h.deps.Logger.With("handler", "register", "user_id", cq.From.ID)

	chatID, userID, ok := parseRegisterData(cq.Data)
	if !ok {
		log.WarnContext(ctx, "Malformed registration callback data", "data", cq.Data)
		return
	}

	if h.deps.Registry.HasButtonRegistration(chatID, userID) {
		h.answer(ctx, b, cq.ID, alreadyInList)
		return
	}

	h.deps.Registry.RecordActivity(chatID, userID, registry.DisplayName(&cq.From), registry.ActionButtonRegister)
	h.answer(ctx, b, cq.ID, addedToList)

	if cq.Message.Message == nil {
		return
	}

	name := cq.From.FirstName
	if cq.From.Username != "" {
		name = "@" + cq.From.Username
	}
	_, err := b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:    cq.Message.Message.Chat.ID,
		MessageID: cq.Message.Message.ID,
		Text:      fmt.Sprintf("🎉 %s добавлен(а) в список участников группы!", name),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to update registration message", "chat_id", chatID, "error", err)
	}
}

func (h registerHandler) answer(ctx context.Context, b *tgbot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to answer callback query", "error", err)
	}
}

// parseRegisterData parses "register_<chat>_<user>". Chat ids are negative
// for groups, so the payload is split from the right.
func parseRegisterData(data string) (chatID, userID int64, ok bool) {
	payload, found := strings.CutPrefix(data, "register_")
	if !found {
		return 0, 0, false
	}
	idx := strings.LastIndex(payload, "_")
	if idx < 0 {
		return 0, 0, false
	}

	chatID, err := strconv.ParseInt(payload[:idx], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(payload[idx+1:], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return chatID, userID, true
}
