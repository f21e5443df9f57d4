package tasks

import (
	"context"
	"time"
)

// newAdminRefreshTask creates the scheduled task that re-fetches admin sets
// and member counts for every chat seen this process lifetime. Per-chat
// refresh failures are absorbed by the registry, so the task itself only
// fails on cancellation.
func newAdminRefreshTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "admin_refresh")

	return func(ctx context.Context) error {
		chats := deps.Registry.TrackedChats()
		if len(chats) == 0 {
			log.DebugContext(ctx, "No tracked chats to refresh")
			return nil
		}

		log.InfoContext(ctx, "Refreshing admin sets", "chats", len(chats))
		startTime := time.Now()

		for _, chatID := range chats {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			deps.Registry.RefreshAdmins(ctx, deps.TG, chatID)
			deps.Registry.RefreshMemberCount(ctx, deps.TG, chatID)
		}

		log.InfoContext(ctx, "Admin refresh completed", "chats", len(chats), "duration", time.Since(startTime))
		return nil
	}
}
