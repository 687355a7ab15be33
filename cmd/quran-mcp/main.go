// Package main provides the entry point for the quran-mcp MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raphaelgruber/quran-mcp-go/internal/config"
	"github.com/raphaelgruber/quran-mcp-go/internal/quran"
	"github.com/raphaelgruber/quran-mcp-go/internal/server"
	"github.com/raphaelgruber/quran-mcp-go/internal/tools"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	// Missing credentials are fatal before any tool is registered.
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	environment := quran.ParseEnvironment(cfg.Environment)

	// Log startup info (never the secret)
	logger.Info("quran-mcp starting",
		"version", version,
		"environment", environment,
		"client_id", cfg.ClientID,
		"language", cfg.Language,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create and setup server
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools with one shared client cache. The client itself is
	// built lazily on the first tool call.
	deps := &tools.Dependencies{
		Cache: quran.NewClientCache(),
		ClientConfig: quran.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Language:     cfg.Language,
			Environment:  environment,
		},
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info("tools registered", "count", 3)

	// Log ready state
	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("quran-mcp stopped")
}
