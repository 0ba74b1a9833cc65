// Package ingester loads blk files from a directory into ClickHouse.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/clock"
	"github.com/goodnatureofminers/blkdelta/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes a Service. Zero values fall back to defaults.
type Config struct {
	Dir          string
	Workers      int
	Follow       bool
	PollInterval time.Duration
	// FlushRPS caps batch inserts per second for each file being written.
	FlushRPS int
}

type Service struct {
	logger       *zap.Logger
	repository   ClickhouseRepository
	metrics      Metrics
	sleep        clock.SleepFunc
	follow       bool
	pollInterval time.Duration
	workerCount  int
	fileLister   FileLister
	processor    FileProcessor
}

func NewService(
	repo ClickhouseRepository,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ingester repository is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if cfg.Dir == "" {
		return nil, errors.New("ingester directory is required")
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.FlushRPS < 1 {
		cfg.FlushRPS = defaultBatcherFlushPerSec
	}

	logger = logger.With(zap.String("dir", cfg.Dir))

	return &Service{
		logger:       logger,
		repository:   repo,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		follow:       cfg.Follow,
		pollInterval: cfg.PollInterval,
		workerCount:  cfg.Workers,
		fileLister: &dirLister{
			dir:        cfg.Dir,
			repository: repo,
		},
		processor: &blkFileProcessor{
			repository: repo,
			metrics:    metrics,
			newWriter: func(l *zap.Logger) ChangeWriter {
				return newChangeWriter(repo, cfg.FlushRPS, l.Named("writer"))
			},
			now:    time.Now,
			logger: logger.Named("fileProcessor"),
		},
	}, nil
}

// Run ingests pending files once, or keeps polling for new ones in follow
// mode until ctx is done. In follow mode a failed pass is logged and retried
// after a pause.
func (s *Service) Run(ctx context.Context) error {
	s.logStoredHeight(ctx)

	for {
		err := s.run(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !s.follow {
			return err
		}

		pause := s.pollInterval
		if err != nil {
			pause = errorSleepDuration
			s.logger.Warn("ingest pass failed, backing off", zap.Error(err), zap.Duration("sleep", pause))
		}
		if sleepErr := s.sleep(ctx, pause); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	paths, err := s.fileLister.List(ctx)
	s.metrics.ObserveScan(err, len(paths))
	if err != nil {
		s.logger.Error("list pending files failed", zap.Error(err))
		return fmt.Errorf("list pending files: %w", err)
	}

	if len(paths) == 0 {
		s.logger.Info("no pending blk files")
		return nil
	}

	s.logger.Info("ingesting blk files", zap.Int("file_count", len(paths)))
	started := time.Now()
	err = workerpool.Process(ctx, s.workerCount, paths, func(ctx context.Context, _ int, path string) error {
		return s.processor.Process(ctx, path)
	})
	if err != nil {
		s.logger.Error("ingest pass failed", zap.Int("file_count", len(paths)), zap.Error(err))
		return err
	}

	s.logger.Info("ingest pass done",
		zap.Int("file_count", len(paths)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func (s *Service) logStoredHeight(ctx context.Context) {
	height, ok, err := s.repository.MaxBlockHeight(ctx)
	switch {
	case err != nil:
		s.logger.Warn("read stored block height failed", zap.Error(err))
	case !ok:
		s.logger.Info("no blocks stored yet")
	default:
		s.logger.Info("resuming ingestion", zap.Uint32("max_block_height", height))
	}
}
