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

	"golang.org/x/sync/errgroup"

	"bistro/pkg/api"
	"bistro/pkg/config"
	"bistro/pkg/logger"
	"bistro/pkg/menu"
	menumem "bistro/pkg/menu/memory"
	"bistro/pkg/order"
	ordermem "bistro/pkg/order/memory"
	"bistro/pkg/otel"
	"bistro/pkg/seed"
)

// @title Bistro API
// @version 1.0
// @description Menu and table orders for the restaurant
// @host localhost:8000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid LOG_LEVEL:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, level, cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	if err := run(log, cfg); err != nil {
		log.Error(context.Background(), "service stopped", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.Tracing.Host,
		Probability: cfg.Tracing.Probability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn(sctx, "flush traces", "error", err)
		}
	}()

	var (
		dishes []menu.Dish
		orders []order.Order
	)
	if cfg.Seed {
		dishes, orders = seed.Dishes(), seed.Orders()
	}
	handlers := api.New(log, menumem.New(dishes...), ordermem.New(orders...), tp.Tracer(cfg.ServiceName))
	log.Info(ctx, "stores ready", "dishes", len(dishes), "orders", len(orders))

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handlers.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "listening", "addr", srv.Addr, "tls", cfg.HTTP.TLS())
		var err error
		if cfg.HTTP.TLS() {
			err = srv.ListenAndServeTLS(cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info(sctx, "shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
