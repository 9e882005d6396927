package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/shoping-pos/internal/platform"
	"github.com/dwikikusuma/shoping-pos/pkg/config"
	"github.com/dwikikusuma/shoping-pos/pkg/logger"
	"github.com/dwikikusuma/shoping-pos/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	app, err := platform.New(ctx, cfg, log)
	if err != nil {
		log.Error("store open failed", slog.String("driver", cfg.Store.Driver), slog.Any("err", err))
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// covers the longest payment a confirm may wait for
		WriteTimeout: 15*time.Second + cfg.Payment.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("store", cfg.Store.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return app.Watch(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		return shutdown.Graceful(10*time.Second, server.Shutdown)
	})

	if err := g.Wait(); err != nil {
		log.Error("gateway stopped with error", slog.Any("err", err))
	}
	if err := shutdown.Graceful(5*time.Second, app.Close); err != nil {
		log.Error("store close failed", slog.Any("err", err))
	}
	log.Info("bye")
}
