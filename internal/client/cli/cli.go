package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/salekeeper/salekeeper/internal/client/router"
	"github.com/salekeeper/salekeeper/internal/client/storage"
	"github.com/salekeeper/salekeeper/internal/client/syncer"
)

// Cli владеет операторскими командами поверх очереди синхронизации
type Cli struct {
	manager     *syncer.Manager
	router      *router.Router
	conflictLog storage.ConflictLog
	out         io.Writer
}

// New creates a new CLI instance
func New(manager *syncer.Manager, execRouter *router.Router, conflictLog storage.ConflictLog) *Cli {
	return &Cli{
		manager:     manager,
		router:      execRouter,
		conflictLog: conflictLog,
		out:         os.Stdout,
	}
}

// Run выполняет команду и возвращает ошибку выполнения.
// Неизвестная команда печатает usage.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx)
	case "conflicts":
		return c.runConflicts(ctx)
	case "sync":
		return c.runSync(ctx)
	case "retry":
		return c.runRetry(ctx, args)
	case "discard":
		return c.runDiscard(ctx, args)
	case "enqueue":
		return c.runEnqueue(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	fmt.Fprintln(c.out, `Usage: salekeeper [flags] <command> [args]

Commands:
  status                                Show queue and connectivity status
  list                                  List queued operations
  conflicts                             Show the conflict audit log
  sync                                  Run a sync pass now
  retry <operation-id>                  Reset a failed operation to pending
  discard <operation-id>                Remove an operation from the queue
  enqueue <table> <kind> [id] [json]    Route a mutation (create|update|delete)
  watch                                 Stream status snapshots until interrupted

Flags:
  -server string   Server URL (default "http://localhost:8080")
  -db string       Path to local database (default "salekeeper-client.db")
  -offline         Start with connectivity marked as lost
  -version         Show version information`)
}
