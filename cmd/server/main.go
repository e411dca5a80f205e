package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ng-jenkins-demo/internal/config"
	tlog "ng-jenkins-demo/internal/log"
	"ng-jenkins-demo/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := config.LoadConfig(ctx)
	if err != nil {
		tlog.New("ng-jenkins-demo").Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := tlog.New("ng-jenkins-demo")
	if c.Server.Dev {
		logger = tlog.NewDebug("ng-jenkins-demo")
	}
	ctx = tlog.IntoContext(ctx, logger)

	s, err := server.New(ctx, c, server.Options{})
	if err != nil {
		logger.Error("failed to set up server", "err", err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
