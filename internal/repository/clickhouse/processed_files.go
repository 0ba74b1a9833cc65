package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const processedFilesQuery = `
SELECT DISTINCT name
FROM blk_files
ORDER BY name`

// ProcessedFiles returns the names of every file already recorded, whether it
// decoded cleanly or not.
func (r *Repository) ProcessedFiles(ctx context.Context) (names []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("processed_files", 0, err, start)
	}()

	rows, err := r.conn.Query(ctx, processedFilesQuery)
	if err != nil {
		return nil, fmt.Errorf("query processed files: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan processed file: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processed files: %w", err)
	}

	return names, nil
}
