// Command hello-world-mcp is a minimal MCP server demonstrating the
// three capability kinds — tools, resources, and prompts — over the
// stdio transport. It takes no command-line arguments; see the config
// package for the environment variables it reads.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/mcp-go"
	"go.uber.org/zap"

	"github.com/hellomcp/hello-world-mcp/internal/config"
	"github.com/hellomcp/hello-world-mcp/internal/content"
	"github.com/hellomcp/hello-world-mcp/internal/logging"
	"github.com/hellomcp/hello-world-mcp/internal/mcpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hello-world-mcp: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hello-world-mcp: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Hello World MCP Server...",
		zap.String("version", content.ServerVersion),
		zap.Strings("capabilities", content.Features()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		logger.Info("Received shutdown signal, stopping server...")
		cancel()
	}()

	meta := content.NewMetadata(time.Now())
	srv := mcpserver.New(meta)
	stack := mcpserver.Middleware(logging.NewAdapter(logger), cfg.RequestTimeout.Std())

	err = mcp.ServeStdio(ctx, srv, mcp.WithMiddleware(stack...))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("Hello World MCP Server shutting down...")
}
