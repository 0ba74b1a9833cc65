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

	"github.com/goodnatureofminers/blkdelta/internal/metrics"
	"github.com/goodnatureofminers/blkdelta/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blkdelta/internal/service/ingester"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BLK_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Dir           string        `long:"dir" env:"BLK_INGESTER_DIR" description:"directory with blk files" required:"true"`
	Workers       int           `long:"workers" env:"BLK_INGESTER_WORKERS" description:"number of files ingested concurrently" default:"4"`
	Follow        bool          `long:"follow" env:"BLK_INGESTER_FOLLOW" description:"keep polling the directory for new files"`
	PollInterval  time.Duration `long:"poll-interval" env:"BLK_INGESTER_POLL_INTERVAL" description:"pause between scans in follow mode" default:"30s"`
	FlushRPS      int           `long:"flush-rps" env:"BLK_INGESTER_FLUSH_RPS" description:"max batch inserts per second per file" default:"20"`
	MetricsAddr   string        `long:"metrics-addr" env:"BLK_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("blk ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository failed", zap.Error(err))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		return err
	}

	svc, err := ingester.NewService(repo, metrics.NewIngester(), ingester.Config{
		Dir:          cfg.Dir,
		Workers:      cfg.Workers,
		Follow:       cfg.Follow,
		PollInterval: cfg.PollInterval,
		FlushRPS:     cfg.FlushRPS,
	}, logger.Named("ingester"))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	srvCtx, stopServer := context.WithCancel(ctx)
	g.Go(func() error {
		return serveMetrics(srvCtx, cfg.MetricsAddr, logger)
	})
	g.Go(func() error {
		// A single pass ends the process, metrics server included.
		defer stopServer()
		return svc.Run(ctx)
	})
	return g.Wait()
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown metrics server", zap.Error(err))
	}
	return <-errCh
}
