package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDiscard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: salekeeper discard <operation-id>")
	}

	if err := c.manager.RemoveOperation(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to discard operation: %w", err)
	}

	fmt.Fprintf(c.out, "Operation %s discarded.\n", args[0])

	return nil
}
