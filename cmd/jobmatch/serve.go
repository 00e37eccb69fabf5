package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	server, cleanup, err := app.Bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("cleanup failed", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		errCh <- server.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Fiber.ShutdownWithContext(shutdownCtx)
	}
}
