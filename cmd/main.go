package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"hsc_predictor/internal/application"
	"hsc_predictor/pkg/logx"
)

type logConfig struct {
	Level   slog.Level `env:"LOG_LEVEL"    envDefault:"info"`
	NoColor bool       `env:"LOG_NO_COLOR"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	var lc logConfig
	if err := env.Parse(&lc); err != nil {
		lc = logConfig{Level: slog.LevelInfo}
	}

	log := logx.NewLogger(os.Stdout, lc.Level, lc.NoColor)
	slog.SetDefault(log)

	if err := application.Run(ctx, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
