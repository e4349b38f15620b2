package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runList(ctx context.Context) error {
	ops, err := c.manager.ListOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	if len(ops) == 0 {
		fmt.Fprintln(c.out, "Queue is empty.")
		return nil
	}

	fmt.Fprintf(c.out, "=== Queued Operations (%d) ===\n", len(ops))
	fmt.Fprintln(c.out)

	for _, op := range ops {
		fmt.Fprintf(c.out, "ID:        %s\n", op.ID)
		fmt.Fprintf(c.out, "Operation: %s %s", op.Kind, op.Table)
		if op.RecordID != "" {
			fmt.Fprintf(c.out, " (%s)", op.RecordID)
		}
		fmt.Fprintln(c.out)
		fmt.Fprintf(c.out, "Status:    %s\n", op.Status)
		fmt.Fprintf(c.out, "Retries:   %d\n", op.RetryCount)
		fmt.Fprintf(c.out, "Enqueued:  %s\n", op.EnqueuedAt.Format(time.RFC3339))

		if op.LastError != "" {
			fmt.Fprintf(c.out, "Error:     %s\n", op.LastError)
		}

		fmt.Fprintln(c.out)
	}

	return nil
}
