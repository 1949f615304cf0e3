package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/metrondb/metrond/internal/config"
	"github.com/metrondb/metrond/internal/grpc"
	"github.com/metrondb/metrond/internal/httpapi"
	"github.com/metrondb/metrond/internal/ingest"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/query"
	"github.com/metrondb/metrond/internal/storage"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	httpapi.Version = Version

	logger.Info("metrond starting", "version", Version, "commit", GitCommit)

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Fatal("Failed to create data directory", "error", err)
	}

	// 3. Open the store once; it is shared by ingestion and queries for
	// the process lifetime.
	engine, err := storage.Open(cfg.Storage.Location)
	if err != nil {
		logger.Fatal("Failed to open storage", "location", cfg.Storage.Location, "error", err)
	}
	defer func() { _ = engine.Close() }()

	logger.Info("Storage opened",
		"location", cfg.Storage.Location,
		"in_memory", engine.InMemory())

	writer := ingest.NewWriter(engine, logger)
	queries := query.NewEngine(engine, logger)

	grpcServer := grpc.NewServer(cfg.GRPCAddress(), writer, queries, logger)
	opsServer := httpapi.NewServer(engine, logger)

	// 4. Run both servers until a shutdown signal arrives
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return grpcServer.Start(gctx)
	})

	g.Go(func() error {
		return opsServer.Listen(cfg.HTTPAddress())
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return opsServer.Shutdown(shutdownCtx)
	})

	logger.Info("metrond started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress())

	if err := g.Wait(); err != nil {
		logger.Error("Service error", "error", err)
	}

	logger.Info("metrond stopped")
}
