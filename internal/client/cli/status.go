package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status := c.manager.Status()

	fmt.Fprintln(c.out, "=== Sync Status ===")
	fmt.Fprintln(c.out)

	if status.IsOnline {
		fmt.Fprintln(c.out, "Connectivity: online")
	} else {
		fmt.Fprintln(c.out, "Connectivity: offline")
	}

	fmt.Fprintf(c.out, "Queue size:   %d\n", status.QueueSize)
	fmt.Fprintf(c.out, "Pending:      %d\n", status.Pending)
	fmt.Fprintf(c.out, "Failed:       %d\n", status.Failed)

	if status.LastSyncedAt.IsZero() {
		fmt.Fprintln(c.out, "Last synced:  never")
	} else {
		fmt.Fprintf(c.out, "Last synced:  %s\n", status.LastSyncedAt.Format(time.RFC3339))
	}

	fmt.Fprintln(c.out)

	switch {
	case status.HasFailed:
		fmt.Fprintln(c.out, "⚠️  Some operations need attention. Run 'salekeeper list' to inspect them.")
	case status.HasPending:
		fmt.Fprintln(c.out, "Run 'salekeeper sync' to replay pending operations.")
	default:
		fmt.Fprintln(c.out, "✓ All local changes synchronized")
	}

	return nil
}
