package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HerbHall/diskprices/internal/analytics"
	"github.com/HerbHall/diskprices/internal/event"
	"github.com/HerbHall/diskprices/internal/metrics"
	"github.com/HerbHall/diskprices/internal/plugin"
	"github.com/HerbHall/diskprices/internal/server"
	"github.com/HerbHall/diskprices/internal/storefront"
	"github.com/HerbHall/diskprices/internal/version"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the listing API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger
	logger.Info("DiskPrices server starting", version.Fields()...)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promReg)
	bus := event.NewBus(logger.Named("event"))

	registry := plugin.NewRegistry(logger)
	plugins := []plugin.Plugin{
		storefront.New(a.source(), bus, m),
		analytics.New(bus, m),
	}
	for _, p := range plugins {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register plugin: %w", err)
		}
	}
	if err := registry.InitAll(a.cfg.Viper()); err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		return err
	}
	defer registry.StopAll()

	addr := a.cfg.Addr()
	srv := server.New(addr, registry, promReg, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			return err
		}
		return nil
	})

	logger.Info("DiskPrices server ready", zap.String("addr", addr))
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("DiskPrices server stopped")
	return nil
}
