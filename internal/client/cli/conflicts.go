package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	records, err := c.conflictLog.ListConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No conflicts recorded.")
		return nil
	}

	fmt.Fprintf(c.out, "=== Conflict Log (%d) ===\n", len(records))
	fmt.Fprintln(c.out)

	for _, rec := range records {
		fmt.Fprintf(c.out, "Recorded:  %s\n", rec.RecordedAt.Format(time.RFC3339))
		fmt.Fprintf(c.out, "Record:    %s/%s\n", rec.Table, rec.RecordID)
		fmt.Fprintf(c.out, "Strategy:  %s\n", rec.Strategy)
		fmt.Fprintf(c.out, "Versions:  server=%d client=%d\n",
			rec.ServerVersionTimestamp, rec.ClientVersionTimestamp)

		if len(rec.PayloadKeys) > 0 {
			fmt.Fprintf(c.out, "Fields:    %s\n", strings.Join(rec.PayloadKeys, ", "))
		}

		fmt.Fprintln(c.out)
	}

	return nil
}
