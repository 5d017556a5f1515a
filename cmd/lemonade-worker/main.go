package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"lemonade/internal/cli"
	"lemonade/internal/config"

	"github.com/robfig/cron/v3"
)

// The worker drives an unattended game: on every cron tick it asks the
// API to simulate the current day, spending a fixed advertising budget.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	client := cli.NewClient(cfg.Worker.APIBaseURL)

	simulate := func() {
		res, err := client.Simulate(ctx, cfg.Worker.AdSpend)
		if err != nil {
			logger.Error("simulate failed", "err", err)
			return
		}
		if res.GameOver {
			logger.Info("season finished", "message", res.Message)
			return
		}
		logger.Info("day simulated", "message", res.Message, "day", res.State.Day)
	}

	runOnce := strings.EqualFold(strings.TrimSpace(os.Getenv("LEMONADE_WORKER_RUN_ONCE")), "true")
	if runOnce {
		simulate()
		logger.Info("worker run-once completed")
		return
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Worker.SimulateCron, simulate); err != nil {
		logger.Error("register simulate task failed", "err", err, "cron", cfg.Worker.SimulateCron)
		os.Exit(1)
	}
	c.Start()
	logger.Info("worker started", "cron", cfg.Worker.SimulateCron, "api", cfg.Worker.APIBaseURL)

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("worker shutdown")
}
