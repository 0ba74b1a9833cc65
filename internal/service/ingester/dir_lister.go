package ingester

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// dirLister finds blk files in a directory that have no file record yet.
type dirLister struct {
	dir        string
	repository ClickhouseRepository
}

func (l *dirLister) List(ctx context.Context) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(l.dir, "*"+fileExtension))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", l.dir, err)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	processed, err := l.repository.ProcessedFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load processed files: %w", err)
	}
	done := make(map[string]struct{}, len(processed))
	for _, name := range processed {
		done[name] = struct{}{}
	}

	pending := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, ok := done[filepath.Base(path)]; ok {
			continue
		}
		pending = append(pending, path)
	}

	sort.Slice(pending, func(i, j int) bool {
		return strings.Compare(filepath.Base(pending[i]), filepath.Base(pending[j])) < 0
	})
	return pending, nil
}
