package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	lfecho "github.com/jbetz/lessonforge/echo"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown after an interrupt.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := lfecho.NewServer()
	srv.Addr = c.Addr
	srv.Extractor = deps.Pipeline
	srv.Scrapes = deps.Scrapes
	srv.MonthlyLimit = c.MonthlyLimit
	srv.Logger = deps.Logger

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Logger.Info("server listening", "addr", c.Addr)
		if err := srv.Open(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Close(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
