// Package main applies database migrations and seed files.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"finance-ledger/internal/app"
	"finance-ledger/internal/config"
)

func main() {
	var opts app.MigrateOptions
	flag.BoolVar(&opts.Seed, "seed", false, "load db/seeds after migrating")
	flag.BoolVar(&opts.Status, "status", false, "print the current schema version and exit")
	flag.Parse()

	log.SetPrefix("[MIGRATE] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunMigrate(ctx, cfg, opts); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
