package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/server"
	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/config"
	"github.com/atinyakov/catfeed/internal/logger"
	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/models"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func main() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	options, err := config.Parse()
	if err != nil {
		return err
	}

	l := logger.New()
	defer l.Sync()

	if err := l.Init(options.LogLevel); err != nil {
		return err
	}
	zapLogger := l.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	loc, err := options.Location()
	if err != nil {
		return err
	}
	models.SetLocalZone(loc)

	st, err := openStores(options, zapLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			zapLogger.Warn("closing storage", zap.Error(err))
		}
	}()

	svc := service.NewRecords(st.feedings, st.messages, st.images, zapLogger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	r, err := server.Init(options, svc, zapLogger, loc, reg)
	if err != nil {
		return err
	}

	srv := server.New(options, r, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zapLogger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
