// Package tasks implements scheduled tasks for the bot: periodic admin
// refresh and database maintenance.
package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/rookingit/korallbot/internal/config"
	"github.com/rookingit/korallbot/internal/database"
	"github.com/rookingit/korallbot/internal/registry"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Store    database.Store
	Registry *registry.Registry
	TG       *tgbot.Bot
	Config   *config.Config
}
