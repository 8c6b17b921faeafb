// Package main runs the budget alert sweep.
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
	var opts app.WorkerOptions
	flag.StringVar(&opts.MetricsAddr, "metrics-addr", os.Getenv("WORKER_METRICS_ADDR"), "address to serve /metrics on (disabled when empty)")
	flag.BoolVar(&opts.Once, "once", false, "run a single sweep and exit")
	flag.Parse()

	log.SetPrefix("[WORKER] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunWorker(ctx, cfg, opts); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
