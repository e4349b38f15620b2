package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/salekeeper/salekeeper/internal/client/syncer"
)

func (c *Cli) runWatch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(c.out, "Watching sync status (Ctrl-C to stop)...")

	unsubscribe := c.manager.Subscribe(func(status syncer.Status) {
		online := "online"
		if !status.IsOnline {
			online = "offline"
		}

		lastSynced := "never"
		if !status.LastSyncedAt.IsZero() {
			lastSynced = status.LastSyncedAt.Format(time.RFC3339)
		}

		fmt.Fprintf(c.out, "[%s] %s  pending=%d failed=%d syncing=%v last_synced=%s\n",
			time.Now().Format("15:04:05"), online,
			status.Pending, status.Failed, status.Syncing, lastSynced)
	})
	defer unsubscribe()

	// Фоновая рассылка по таймеру, пока не прервут
	c.manager.Run(ctx)

	fmt.Fprintln(c.out, "Stopped.")

	return nil
}
