package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	result, err := c.manager.RequestSync(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.InProgress {
		fmt.Fprintln(c.out, "Sync already in progress, try again later.")
		return nil
	}

	fmt.Fprintf(c.out, "Sync complete: %d synced, %d failed\n", result.Synced, result.Failed)

	status := c.manager.Status()
	if status.HasPending {
		fmt.Fprintf(c.out, "%d operation(s) still pending (connectivity lost mid-pass?)\n", status.Pending)
	}
	if status.HasFailed {
		fmt.Fprintf(c.out, "⚠️  %d operation(s) exhausted retries. Run 'salekeeper list' to inspect.\n", status.Failed)
	}

	return nil
}
