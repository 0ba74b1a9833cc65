package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blkdelta/internal/model"
	"github.com/goodnatureofminers/blkdelta/pkg/batcher"
	"go.uber.org/zap"
)

// changeWriter batches the rows of one file into ClickHouse.
type changeWriter struct {
	repo          ClickhouseRepository
	logger        *zap.Logger
	changeBatcher *batcher.Batcher[model.Change]
	blockBatcher  *batcher.Batcher[model.Block]
}

func newChangeWriter(repo ClickhouseRepository, rps int, logger *zap.Logger) *changeWriter {
	w := &changeWriter{
		repo:   repo,
		logger: logger,
	}

	w.changeBatcher = batcher.New[model.Change](
		logger.Named("changeBatcher"),
		w.flushChanges,
		changeBatcherCapacity,
		batcherFlushInterval,
		rps,
	)
	w.blockBatcher = batcher.New[model.Block](
		logger.Named("blockBatcher"),
		w.flushBlocks,
		blockBatcherCapacity,
		batcherFlushInterval,
		rps,
	)
	return w
}

func (w *changeWriter) Start(ctx context.Context) {
	w.changeBatcher.Start(ctx)
	w.blockBatcher.Start(ctx)
}

func (w *changeWriter) Stop() {
	w.changeBatcher.Stop()
	w.blockBatcher.Stop()
}

func (w *changeWriter) WriteChange(ctx context.Context, c model.Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.changeBatcher.Add(ctx, c)
}

func (w *changeWriter) WriteBlock(ctx context.Context, b model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.blockBatcher.Add(ctx, b)
}

// Flush writes everything queued so far. Changes go first so a stored block
// summary never refers to changes that are still buffered.
func (w *changeWriter) Flush(ctx context.Context) error {
	if err := w.changeBatcher.Flush(ctx); err != nil {
		return fmt.Errorf("flush changes: %w", err)
	}
	if err := w.blockBatcher.Flush(ctx); err != nil {
		return fmt.Errorf("flush blocks: %w", err)
	}
	return nil
}

func (w *changeWriter) flushChanges(ctx context.Context, changes []model.Change) error {
	if err := w.repo.InsertChanges(ctx, changes); err != nil {
		return err
	}
	w.logger.Debug("InsertChanges", zap.Int("count", len(changes)))
	return nil
}

func (w *changeWriter) flushBlocks(ctx context.Context, blocks []model.Block) error {
	if err := w.repo.InsertBlocks(ctx, blocks); err != nil {
		return err
	}
	w.logger.Debug("InsertBlocks", zap.Int("count", len(blocks)))
	return nil
}
