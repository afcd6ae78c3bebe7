// Package main is the entry point for the todocsv CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todocsv/internal/cli"
	"todocsv/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.CSVStoreFactory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
