package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: salekeeper retry <operation-id>")
	}

	if err := c.manager.RetryOperation(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to retry operation: %w", err)
	}

	fmt.Fprintf(c.out, "Operation %s reset to pending. Run 'salekeeper sync' to replay it.\n", args[0])

	return nil
}
