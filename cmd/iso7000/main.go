package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gauravmm/typst-iso-7000/internal/adapters/driven/config/file"
	"github.com/gauravmm/typst-iso-7000/internal/adapters/driven/storage/fs"
	"github.com/gauravmm/typst-iso-7000/internal/adapters/driven/storage/sqlite"
	"github.com/gauravmm/typst-iso-7000/internal/adapters/driven/wikimedia"
	"github.com/gauravmm/typst-iso-7000/internal/adapters/driving/cli"
	"github.com/gauravmm/typst-iso-7000/internal/core/services"
)

func main() {
	cli.SetAppFactory(buildApp)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildApp wires the driven adapters and core services from the data
// directory and flags cobra parsed.
func buildApp(dataDir string, verbose bool) (*cli.App, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := file.Load(dataDir)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, err
	}

	artifacts, err := fs.NewArtifactStore(dataDir)
	if err != nil {
		return nil, err
	}

	client := wikimedia.NewClient(wikimedia.Config{
		Endpoint: cfg.Endpoint,
		PageSize: cfg.PageSize,
		RateLimit: wikimedia.RateLimitConfig{
			RequestsPerSecond: cfg.RequestsPerSecond,
			BurstSize:         cfg.Burst,
		},
		Logger: logger,
	})

	return &cli.App{
		Catalogue: services.NewCatalogueService(client, store, logger),
		Download:  services.NewDownloadService(client, artifacts, logger),
		Process:   services.NewPipelineService(artifacts, logger, cfg.CanonicalSize),
		Library:   services.NewLibraryService(artifacts, logger),
		Logger:    logger,
		RawDir:    artifacts.RawDir(),
	}, nil
}
