package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/model"
)

const insertChangesQuery = `
INSERT INTO blk_changes (
	file,
	block_height,
	seq,
	height,
	amount,
	is_null_delta
) VALUES`

// InsertChanges stores decoded change rows.
func (r *Repository) InsertChanges(ctx context.Context, changes []model.Change) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_changes", len(changes), err, start)
	}()

	if len(changes) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertChangesQuery)
	if err != nil {
		return fmt.Errorf("prepare changes batch: %w", err)
	}

	for _, ch := range changes {
		if err = batch.Append(
			ch.File,
			ch.BlockHeight,
			ch.Seq,
			ch.Height,
			ch.Amount,
			ch.IsNullDelta,
		); err != nil {
			return fmt.Errorf("append change: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert changes: %w", err)
	}
	return nil
}
