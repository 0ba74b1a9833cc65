package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"github.com/goodnatureofminers/blkdelta/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FileLister interface {
		List(ctx context.Context) ([]string, error)
	}
	FileProcessor interface {
		Process(ctx context.Context, path string) error
	}
	ChangeWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteChange(ctx context.Context, c model.Change) error
		WriteBlock(ctx context.Context, b model.Block) error
		Flush(ctx context.Context) error
	}
	Metrics interface {
		ObserveScan(err error, files int)
		ObserveFile(err error, invalid bool, size uint64, started time.Time)
		ObserveParse(stats blk.Stats, err error, started time.Time)
	}
	ClickhouseRepository interface {
		ProcessedFiles(ctx context.Context) ([]string, error)
		MaxBlockHeight(ctx context.Context) (uint32, bool, error)
		InsertChanges(ctx context.Context, changes []model.Change) error
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertFiles(ctx context.Context, files []model.File) error
	}
)
