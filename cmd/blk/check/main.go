// Command blk-check decodes blk files and reports whether each one parses
// cleanly, along with the last block and the number of changes seen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"github.com/goodnatureofminers/blkdelta/internal/blk/filesource"
	"github.com/goodnatureofminers/blkdelta/internal/metrics"
	"github.com/goodnatureofminers/blkdelta/internal/service/checker"
	"github.com/goodnatureofminers/blkdelta/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Workers int  `long:"workers" env:"BLK_CHECK_WORKERS" description:"number of files decoded concurrently" default:"1"`
	Verbose bool `long:"verbose" env:"BLK_CHECK_VERBOSE" description:"log decoder progress"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

// result is the outcome for one file; openErr is set when the file could not
// be read at all.
type result struct {
	path     string
	openErr  error
	parseErr error
	summary  checker.Summary
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("blk check failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// run checks every file and writes the report to out in argument order. It
// fails only when some file could not be opened; malformed content is
// reported but is not an error.
func run(ctx context.Context, cfg config, out io.Writer, logger *zap.Logger) error {
	files := cfg.Args.Files
	results := make([]result, len(files))
	observer := metrics.NewDecoder("blk-check")

	err := workerpool.Process(ctx, cfg.Workers, files, func(ctx context.Context, i int, path string) error {
		results[i] = checkFile(ctx, path, observer, logger.With(zap.String("file", path)))
		return nil
	})
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if len(files) > 1 {
			fmt.Fprintf(out, "%s:\n", r.path)
		}
		if r.openErr != nil {
			failed++
			fmt.Fprintf(out, "cannot open file: %v\n", r.openErr)
			continue
		}
		if r.parseErr != nil {
			fmt.Fprintf(out, "something bad happened: %v\n", r.parseErr)
		} else {
			fmt.Fprintln(out, "parsing successful!")
		}
		fmt.Fprintln(out, r.summary)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be opened", failed, len(files))
	}
	return nil
}

func checkFile(ctx context.Context, path string, observer *metrics.Decoder, logger *zap.Logger) result {
	res := result{path: path}

	src, err := filesource.Open(path)
	if err != nil {
		res.openErr = err
		return res
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("close file source failed", zap.Error(err))
		}
	}()

	chk := checker.NewSequentialChecker(logger)
	started := time.Now()
	stats, err := blk.ParseWithStats(src.CursorContext(ctx), chk)
	observer.ObserveParse(stats, err, started)

	res.parseErr = err
	res.summary = chk.Summary()
	logger.Debug("file checked",
		zap.Uint64("records", stats.Records),
		zap.Uint64("changes", stats.Changes),
		zap.Uint64("null_deltas", stats.NullDeltas),
		zap.Int64("bytes", stats.Bytes),
		zap.Duration("elapsed", time.Since(started)),
	)
	return res
}
