package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/salekeeper/salekeeper/internal/client/api"
	"github.com/salekeeper/salekeeper/internal/client/cli"
	"github.com/salekeeper/salekeeper/internal/client/conflict"
	"github.com/salekeeper/salekeeper/internal/client/router"
	"github.com/salekeeper/salekeeper/internal/client/storage/boltdb"
	"github.com/salekeeper/salekeeper/internal/client/syncer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "salekeeper-client.db", "Path to local database")
	offline := flag.Bool("offline", false, "Start with connectivity marked as lost")
	strictPersist := flag.Bool("strict-persist", false, "Fail enqueue when the local database write fails")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	args := flag.Args()
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// Собираем движок синхронизации
	apiClient := api.NewClient(*serverURL)
	detector := conflict.NewDetector(apiClient, boltStorage, logger)

	cfg := syncer.DefaultConfig()
	cfg.StrictPersist = *strictPersist

	manager := syncer.NewManager(cfg, apiClient, boltStorage, detector, logger)
	manager.SetOnline(!*offline)

	execRouter := router.NewRouter(manager, logger)

	app := cli.New(manager, execRouter, boltStorage)

	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("SaleKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
