package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/config"
	"github.com/Suraj999-github/MauiBankApp/internal/server"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger.InitWithLevel(cfg.LogLevel)

	httpServer, err := server.NewServer(cfg)
	if err != nil {
		logger.Error("server init failed", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", httpServer.Addr, "platform", cfg.Biometric.Platform, "store", cfg.Store.Backend)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(httpServer)
}

func waitForShutdown(httpServer *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutdown started")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}
