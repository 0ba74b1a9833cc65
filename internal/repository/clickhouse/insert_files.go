package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/model"
)

const insertFilesQuery = `
INSERT INTO blk_files (
	name,
	size,
	digest,
	records,
	changes,
	last_block,
	status,
	error,
	processed_at
) VALUES`

// InsertFiles records ingested files.
func (r *Repository) InsertFiles(ctx context.Context, files []model.File) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_files", len(files), err, start)
	}()

	if len(files) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertFilesQuery)
	if err != nil {
		return fmt.Errorf("prepare files batch: %w", err)
	}

	for _, f := range files {
		if err = batch.Append(
			f.Name,
			f.Size,
			f.Digest,
			f.Records,
			f.Changes,
			f.LastBlock,
			string(f.Status),
			f.Error,
			f.ProcessedAt,
		); err != nil {
			return fmt.Errorf("append file: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert files: %w", err)
	}
	return nil
}
