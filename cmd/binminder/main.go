package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"binminder/internal/cli"
)

func main() {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
