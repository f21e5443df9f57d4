package handlers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/rookingit/korallbot/internal/database"
	"github.com/rookingit/korallbot/internal/registry"
)

// NewChatHandler returns the default handler: it records participant
// activity, archives group messages, and dispatches the keyword vocabulary.
func NewChatHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return chatHandler{deps}.Handle
}

type chatHandler struct {
	deps HandlerDeps
}

func (h chatHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.MessageReaction != nil {
		h.handleReaction(ctx, update.MessageReaction)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message
	log := h.deps.Logger.With("handler", "chat", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	if msg.Text == "" {
		// Stickers, photos and other media still count as activity.
		if isGroupChat(msg) {
			h.deps.Registry.RecordActivity(msg.Chat.ID, msg.From.ID, registry.DisplayName(msg.From), registry.ActionMedia)
		}
		return
	}

	if isGroupChat(msg) {
		h.deps.Registry.RecordActivity(msg.Chat.ID, msg.From.ID, registry.DisplayName(msg.From), registry.ActionMessage)
		h.archive(ctx, msg.Chat.ID, msg.From.ID, msg.Text)

		// First sighting of a chat pulls the admin set and member count.
		if !h.deps.Registry.Tracked(msg.Chat.ID) {
			h.deps.Registry.RefreshAdmins(ctx, b, msg.Chat.ID)
			h.deps.Registry.RefreshMemberCount(ctx, b, msg.Chat.ID)
		}
	}

	cmd := Classify(msg.Text)
	if cmd.Kind == CommandNone {
		return
	}

	if cmd.GroupOnly() && !isGroupChat(msg) {
		h.reply(ctx, b, msg, groupOnlyReply, "")
		return
	}

	log.DebugContext(ctx, "Dispatching command", "kind", int(cmd.Kind))

	switch cmd.Kind {
	case CommandAsk:
		h.handleAsk(ctx, b, msg, cmd.Payload)
	case CommandPing:
		h.reply(ctx, b, msg, pick(pingReplies), "")
	case CommandHelp:
		h.reply(ctx, b, msg, helpText, models.ParseModeMarkdownV1)
	case CommandJoin:
		h.handleJoin(ctx, b, msg)
	case CommandPair:
		h.handlePair(ctx, b, msg)
	case CommandPrediction:
		h.reply(ctx, b, msg, pick(predictions), "")
	case CommandMission:
		h.reply(ctx, b, msg, "🎯 Твоя миссия: "+pick(missions), "")
	case CommandQuote:
		h.reply(ctx, b, msg, pick(quotes), "")
	case CommandFact:
		h.reply(ctx, b, msg, pick(facts), "")
	case CommandCompliment:
		h.reply(ctx, b, msg, pick(compliments), "")
	case CommandMotivation:
		h.reply(ctx, b, msg, pick(motivations), "")
	case CommandQuiz:
		h.reply(ctx, b, msg, pick(quizQuestions), "")
	case CommandChallenge:
		h.reply(ctx, b, msg, "🏆 Челлендж дня: "+pick(challenges), "")
	case CommandHoroscope:
		sign := zodiacSigns[rand.IntN(len(zodiacSigns))]
		h.reply(ctx, b, msg, sign.Sign+": "+pick(sign.Predictions), "")
	case CommandRecipe:
		h.reply(ctx, b, msg, "👨‍🍳 Рецепт дня:\n"+pick(recipes), "")
	case CommandGame:
		h.reply(ctx, b, msg, "🎮 "+pick(games), "")
	case CommandRiddle:
		h.reply(ctx, b, msg, "🧩 "+pick(riddles), "")
	case CommandStory:
		h.reply(ctx, b, msg, "📜 "+pick(stories), "")
	case CommandPoker:
		i := rand.IntN(len(pokerCards))
		h.reply(ctx, b, msg, fmt.Sprintf("🎰 Ваша карта: %s %s", pokerCards[i], pokerCardNames[i]), "")
	case CommandCoin:
		h.reply(ctx, b, msg, "🎯 "+pick(coinResults), "")
	case CommandDice:
		i := rand.IntN(len(diceFaces))
		h.reply(ctx, b, msg, fmt.Sprintf("🎲 Выпало: %s (%d)", diceFaces[i], i+1), "")
	case CommandStats:
		h.handleStats(ctx, b, msg)
	case CommandAdmins:
		h.handleAdmins(ctx, b, msg)
	}
}

func (h chatHandler) handleReaction(ctx context.Context, reaction *models.MessageReactionUpdated) {
	if reaction.User == nil {
		return
	}
	if reaction.Chat.Type != models.ChatTypeGroup && reaction.Chat.Type != models.ChatTypeSupergroup {
		return
	}
	h.deps.Registry.RecordActivity(reaction.Chat.ID, reaction.User.ID, registry.DisplayName(reaction.User), registry.ActionReaction)
}

func (h chatHandler) handleAsk(ctx context.Context, b *tgbot.Bot, msg *models.Message, prompt string) {
	if prompt == "" {
		h.reply(ctx, b, msg, listenPrompt, "")
		return
	}
	response := h.deps.Session.Converse(ctx, msg.From.ID, prompt)
	h.reply(ctx, b, msg, response, models.ParseModeMarkdownV1)
}

func (h chatHandler) handleJoin(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{{
			Text:         joinButtonText,
			CallbackData: fmt.Sprintf("register_%d_%d", msg.Chat.ID, msg.From.ID),
		}}},
	}

	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        joinPrompt,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send registration prompt", "chat_id", msg.Chat.ID, "error", err)
	}
}

func (h chatHandler) handlePair(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	first, second, err := h.deps.Registry.SelectPair(msg.Chat.ID, msg.From.ID)
	if err != nil {
		h.reply(ctx, b, msg, tooFewReply, "")
		return
	}

	m1 := userMention(ctx, b, msg.Chat.ID, first)
	m2 := userMention(ctx, b, msg.Chat.ID, second)
	text := "💕 Пмисиарочка: " + m1 + " и " + m2 + tgbot.EscapeMarkdown(". "+pick(wishes))
	h.reply(ctx, b, msg, text, models.ParseModeMarkdown)
}

func (h chatHandler) handleStats(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	h.deps.Registry.RefreshAdmins(ctx, b, msg.Chat.ID)
	h.deps.Registry.RefreshMemberCount(ctx, b, msg.Chat.ID)

	durable := h.deps.Registry.DurableParticipants(msg.Chat.ID)
	cached := h.deps.Registry.CachedParticipants(msg.Chat.ID)
	union := h.deps.Registry.UnionParticipants(msg.Chat.ID)
	admins := h.deps.Registry.Admins(msg.Chat.ID)

	var archived int64
	if h.deps.Store != nil {
		count, err := h.deps.Store.CountMessagesInChat(ctx, msg.Chat.ID)
		if err != nil {
			h.deps.Logger.WarnContext(ctx, "Failed to count archived messages", "chat_id", msg.Chat.ID, "error", err)
		} else {
			archived = count
		}
	}

	stats := fmt.Sprintf(`📊 *Статистика группы:*

👥 Всего участников: %d
📝 Участников в файле: %d
💬 Активных в кэше: %d
👑 Админов: %d
🧮 Участников по данным Telegram: %d
🗃 Сообщений в архиве: %d
🐙 Коралл активен и готов помочь!`,
		len(union), len(durable), len(cached), len(admins),
		h.deps.Registry.MemberCount(msg.Chat.ID), archived)

	h.reply(ctx, b, msg, stats, models.ParseModeMarkdownV1)
}

func (h chatHandler) handleAdmins(ctx context.Context, b *tgbot.Bot, msg *models.Message) {
	h.deps.Registry.RefreshAdmins(ctx, b, msg.Chat.ID)

	adminIDs := h.deps.Registry.Admins(msg.Chat.ID)
	if len(adminIDs) == 0 {
		h.reply(ctx, b, msg, noAdminsReply, "")
		return
	}

	lines := make([]string, 0, len(adminIDs))
	for _, id := range adminIDs {
		lines = append(lines, "👑 "+userMention(ctx, b, msg.Chat.ID, id))
	}
	text := "*Администраторы группы:*\n\n" + strings.Join(lines, "\n")
	h.reply(ctx, b, msg, text, models.ParseModeMarkdown)
}

// reply sends text to the message's chat and archives the bot's own reply
// when it happens in a group.
func (h chatHandler) reply(ctx context.Context, b *tgbot.Bot, msg *models.Message, text string, parseMode models.ParseMode) {
	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    msg.Chat.ID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send reply", "chat_id", msg.Chat.ID, "error", err)
		return
	}

	if isGroupChat(msg) {
		h.archive(ctx, msg.Chat.ID, h.deps.Config.Telegram.BotInfo.ID, text)
	}
}

// archive stores one message best effort; failures never block handling.
func (h chatHandler) archive(ctx context.Context, chatID, userID int64, content string) {
	if h.deps.Store == nil {
		return
	}
	err := h.deps.Store.SaveMessage(ctx, &database.Message{
		ChatID:    chatID,
		UserID:    userID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.deps.Logger.WarnContext(ctx, "Failed to archive message", "chat_id", chatID, "error", err)
	}
}

func isGroupChat(msg *models.Message) bool {
	return msg.Chat.Type == models.ChatTypeGroup || msg.Chat.Type == models.ChatTypeSupergroup
}
