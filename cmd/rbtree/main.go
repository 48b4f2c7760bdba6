// Command rbtree runs randomized trials against the red black
// tree, verifying its invariants and comparing it with a reference
// implementation, and prints a JSON report to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/eaugeas/rbtree/config"
	"github.com/eaugeas/rbtree/logs"
	"github.com/eaugeas/rbtree/stress"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := &stress.Config{}
	parser, err := config.Generate("rbtree", cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = parser.Usage()
		return 2
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logs.WithTraceID(ctx, time.Now().UnixNano())

	logger.Info(ctx, "running trials", logs.MapFields{
		"trials":      cfg.TrialCount,
		"size":        cfg.Size,
		"removals":    cfg.Removals,
		"key_range":   cfg.KeyRange,
		"seed":        cfg.Seed,
		"concurrency": cfg.Concurrency,
	})

	report, err := stress.NewRunner(logger, cfg.Concurrency).Run(ctx, cfg.Trials())
	if err != nil {
		logger.Error(ctx, "trials interrupted", logs.MapFields{"err": err.Error()})
		return 1
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logger.Error(ctx, "failed to encode report", logs.MapFields{"err": err.Error()})
		return 1
	}

	if report.Failed > 0 {
		return 1
	}

	return 0
}
