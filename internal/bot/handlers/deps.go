package handlers

import (
	"log/slog"

	"github.com/rookingit/korallbot/internal/config"
	"github.com/rookingit/korallbot/internal/database"
	"github.com/rookingit/korallbot/internal/registry"
	"github.com/rookingit/korallbot/internal/session"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Registry *registry.Registry
	Session  *session.Manager
}
