package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/saludconecta/internal/buildinfo"
	"github.com/dmitrijs2005/saludconecta/internal/client/cli"
	"github.com/dmitrijs2005/saludconecta/internal/client/config"
	"github.com/dmitrijs2005/saludconecta/internal/filex"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	for _, p := range []string{cfg.LogFile, cfg.DatabasePath} {
		if err := filex.EnsureParentDir(p); err != nil {
			log.Fatalf("%v", err)
		}
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer f.Close()
	logger := logging.NewTextLogger(f, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(reg)

	go func() {
		if err := metrics.Serve(ctx, cfg.MetricsAddr, metrics.NewRouter(reg), logger); err != nil {
			logger.Error(ctx, "metrics endpoint stopped", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, collector, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}

}
