package ingester

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"github.com/goodnatureofminers/blkdelta/internal/blk/filesource"
	"github.com/goodnatureofminers/blkdelta/internal/model"
	"github.com/goodnatureofminers/blkdelta/internal/service/aggregator"
	"github.com/goodnatureofminers/blkdelta/internal/service/checker"
	"github.com/goodnatureofminers/blkdelta/pkg/safe"
	"go.uber.org/zap"
)

// blkFileProcessor decodes one blk file into ClickHouse rows and records the
// outcome. A file that fails to decode is still recorded, with status failed,
// after the rows decoded before the failure are written.
type blkFileProcessor struct {
	repository ClickhouseRepository
	metrics    Metrics
	newWriter  func(logger *zap.Logger) ChangeWriter
	now        func() time.Time
	logger     *zap.Logger
}

func (p *blkFileProcessor) Process(ctx context.Context, path string) (err error) {
	started := time.Now()
	var (
		invalid bool
		size    uint64
	)
	defer func() {
		p.metrics.ObserveFile(err, invalid, size, started)
	}()

	name := filepath.Base(path)
	logger := p.logger.With(zap.String("file", name))

	src, err := filesource.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Warn("close file source failed", zap.Error(closeErr))
		}
	}()

	size, err = safe.Uint64(src.Size())
	if err != nil {
		return fmt.Errorf("size of %s: %w", name, err)
	}

	writer := p.newWriter(logger)
	writer.Start(ctx)
	defer writer.Stop()

	parseCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	sink := newChangeSink(parseCtx, cancel, name, writer)
	agg := aggregator.New(name, sink.WriteBlock, logger.Named("aggregator"))
	chk := checker.NewSequentialChecker(logger.Named("checker"))

	parseStarted := time.Now()
	cur := newDigestCursor(src.Bytes())
	stats, parseErr := blk.ParseWithStats(blk.WithContext(parseCtx, cur), blk.MultiCallback{chk, agg, sink})
	p.metrics.ObserveParse(stats, parseErr, parseStarted)
	agg.Close()

	if err = sink.Err(); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	if parseErr != nil && !errors.Is(parseErr, blk.ErrTruncated) && !errors.Is(parseErr, blk.ErrBadMagic) {
		return fmt.Errorf("parse %s: %w", name, parseErr)
	}

	if err = writer.Flush(ctx); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}

	summary := chk.Summary()
	digest := cur.Digest()
	file := model.File{
		Name:        name,
		Size:        size,
		Digest:      digest.String(),
		Records:     stats.Records,
		Changes:     stats.Changes,
		Status:      model.FileProcessed,
		ProcessedAt: p.now().UTC(),
	}
	if summary.Blocks > 0 {
		file.LastBlock = summary.LastBlock
	}
	if parseErr != nil {
		invalid = true
		file.Status = model.FileFailed
		file.Error = parseErr.Error()
		logger.Warn("blk file is malformed", zap.Error(parseErr), zap.Uint64("records", stats.Records))
	}

	if err = p.repository.InsertFiles(ctx, []model.File{file}); err != nil {
		return fmt.Errorf("record %s: %w", name, err)
	}

	logger.Info("blk file ingested",
		zap.String("status", string(file.Status)),
		zap.Uint64("records", stats.Records),
		zap.Uint64("changes", stats.Changes),
		zap.Uint32("last_block", file.LastBlock),
		zap.Uint64("sequence_violations", summary.Violations),
	)
	return nil
}
