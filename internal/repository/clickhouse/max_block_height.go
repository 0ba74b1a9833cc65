package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxBlockHeightQuery = `
SELECT
	max(height) AS max_height,
	count() AS blocks
FROM blk_blocks`

// MaxBlockHeight returns the highest stored block height; ok is false when no
// block has been stored yet.
func (r *Repository) MaxBlockHeight(ctx context.Context) (height uint32, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", 0, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockHeightQuery)
	if err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = fmt.Errorf("max block height not found")
		return 0, false, err
	}

	var blocks uint64
	if err = rows.Scan(&height, &blocks); err != nil {
		return 0, false, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, blocks > 0, nil
}
