package handlers

import "strings"

// CommandKind identifies one entry of the keyword vocabulary.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandAsk
	CommandPing
	CommandHelp
	CommandJoin
	CommandPair
	CommandPrediction
	CommandMission
	CommandQuote
	CommandFact
	CommandCompliment
	CommandMotivation
	CommandQuiz
	CommandChallenge
	CommandHoroscope
	CommandRecipe
	CommandGame
	CommandRiddle
	CommandStory
	CommandPoker
	CommandCoin
	CommandDice
	CommandStats
	CommandAdmins
)

// Command is the result of classifying one message text. Payload carries the
// assistant prompt (original casing) for CommandAsk and is empty otherwise.
type Command struct {
	Kind    CommandKind
	Payload string
}

// askPrefixes trigger the assistant. They are matched case-insensitively
// against the start of the message.
var askPrefixes = []string{"коралл", "coral"}

var exactCommands = map[string]CommandKind{
	"пинг":         CommandPing,
	"ping":         CommandPing,
	"помощь":       CommandHelp,
	"команды":      CommandHelp,
	"help":         CommandHelp,
	"участие":      CommandJoin,
	"шип":          CommandPair,
	"предсказание": CommandPrediction,
	"миссия":       CommandMission,
	"цитата":       CommandQuote,
	"факт":         CommandFact,
	"комплимент":   CommandCompliment,
	"мотивация":    CommandMotivation,
	"викторина":    CommandQuiz,
	"челлендж":     CommandChallenge,
	"гороскоп":     CommandHoroscope,
	"рецепт":       CommandRecipe,
	"игра":         CommandGame,
	"загадка":      CommandRiddle,
	"история":      CommandStory,
	"покер":        CommandPoker,
	"монетка":      CommandCoin,
	"кубик":        CommandDice,
	"статистика":   CommandStats,
	"админы":       CommandAdmins,
}

// groupOnlyCommands must be invoked from a group or supergroup chat.
var groupOnlyCommands = map[CommandKind]bool{
	CommandJoin:   true,
	CommandPair:   true,
	CommandStats:  true,
	CommandAdmins: true,
}

// Classify parses a message text into a Command. Matching is
// case-insensitive on the trimmed text; unknown text yields CommandNone.
func Classify(text string) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	for _, prefix := range askPrefixes {
		if strings.HasPrefix(lower, prefix) {
			// Lowercasing Cyrillic keeps the UTF-8 byte length, so the
			// prefix length indexes safely into the original text.
			return Command{Kind: CommandAsk, Payload: strings.TrimSpace(trimmed[len(prefix):])}
		}
	}

	if kind, ok := exactCommands[lower]; ok {
		return Command{Kind: kind}
	}
	return Command{Kind: CommandNone}
}

// GroupOnly reports whether the command only works in group chats.
func (c Command) GroupOnly() bool {
	return groupOnlyCommands[c.Kind]
}
