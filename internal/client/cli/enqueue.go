package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/salekeeper/salekeeper/internal/client/syncer"
	"github.com/salekeeper/salekeeper/internal/models"
)

const enqueueUsage = `usage: salekeeper enqueue <table> create <json-payload>
       salekeeper enqueue <table> update <record-id> <json-payload>
       salekeeper enqueue <table> delete <record-id>`

func (c *Cli) runEnqueue(ctx context.Context, args []string) error {
	req, err := parseEnqueueArgs(args)
	if err != nil {
		return err
	}

	result, err := c.router.QueueOrExecute(ctx, *req)
	if err != nil {
		return fmt.Errorf("failed to route mutation: %w", err)
	}

	if result.Queued {
		fmt.Fprintf(c.out, "Offline: mutation queued as operation %s\n", result.OperationID)
		return nil
	}

	fmt.Fprintln(c.out, "Mutation applied.")
	if result.Record != nil {
		fmt.Fprintf(c.out, "Record:  %s/%s\n", result.Record.Table, result.Record.ID)
		fmt.Fprintf(c.out, "Version: %d\n", result.Record.VersionTimestamp)
	}

	return nil
}

// parseEnqueueArgs разбирает позиционные аргументы команды enqueue
func parseEnqueueArgs(args []string) (*syncer.ExecuteRequest, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s", enqueueUsage)
	}

	req := syncer.ExecuteRequest{
		Table: args[0],
		Kind:  models.OperationKind(args[1]),
	}

	switch req.Kind {
	case models.OperationCreate:
		if len(args) != 3 {
			return nil, fmt.Errorf("%s", enqueueUsage)
		}
		if err := json.Unmarshal([]byte(args[2]), &req.Payload); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
	case models.OperationUpdate:
		if len(args) != 4 {
			return nil, fmt.Errorf("%s", enqueueUsage)
		}
		req.RecordID = args[2]
		if err := json.Unmarshal([]byte(args[3]), &req.Payload); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
	case models.OperationDelete:
		if len(args) != 3 {
			return nil, fmt.Errorf("%s", enqueueUsage)
		}
		req.RecordID = args[2]
	default:
		return nil, fmt.Errorf("unknown operation kind: %s", args[1])
	}

	return &req, nil
}
