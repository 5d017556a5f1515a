package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lemonade/internal/api"
	"lemonade/internal/config"
	"lemonade/internal/game"
	"lemonade/internal/recorder"

	"github.com/shopspring/decimal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			logger.Error("open result recorder failed", "err", err, "path", cfg.Database.SQLitePath)
			os.Exit(1)
		}
		rec = sqlRec
	}
	defer rec.Close()

	gameSvc := game.NewService(game.Config{
		TotalDays:      cfg.Game.TotalDays,
		InitialCapital: decimal.NewFromFloat(cfg.Game.InitialCapital),
		DefaultPrice:   decimal.NewFromFloat(cfg.Game.DefaultPrice),
		RandSeed:       cfg.Game.RandSeed,
	}, logger, rec)

	server := api.New(logger, gameSvc)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("lemonade api listening", "addr", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
