package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/a2sh3r/bono/internal/app"
	"github.com/a2sh3r/bono/internal/config"
	"github.com/a2sh3r/bono/internal/logger"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	cfg.ParseFlags()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	newApp, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := newApp.Run(ctx); err != nil {
		logger.Log.Error("server stopped with error", zap.Error(err))
	}

	if err := newApp.Close(); err != nil {
		panic(err)
	}
	_ = logger.Log.Sync()
}
