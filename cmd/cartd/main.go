package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/cartstate-demo/internal/app"
	"github.com/nikolayk812/cartstate-demo/internal/config"
	"github.com/nikolayk812/cartstate-demo/internal/logger"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	nLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalln(err)
	}
	defer func() { _ = nLogger.Sync() }()

	server, err := app.NewServer(cfg, nLogger)
	if err != nil {
		nLogger.Error("create server", zap.Error(err))
		os.Exit(1)
	}

	if err := server.Run(ctx); err != nil {
		nLogger.Error("run server", zap.Error(err))
		os.Exit(1)
	}
}
