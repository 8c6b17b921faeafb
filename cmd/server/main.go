// Package main starts the ledger HTTP API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"finance-ledger/internal/app"
	"finance-ledger/internal/config"
)

func main() {
	log.SetPrefix("[SERVER] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunServer(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
