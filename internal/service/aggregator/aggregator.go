// Package aggregator folds decoded changes into per-block summaries.
package aggregator

import (
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"github.com/goodnatureofminers/blkdelta/internal/model"
	"go.uber.org/zap"
)

var _ blk.BlockCallback = (*Aggregator)(nil)

// Totals accumulates over every block emitted by an Aggregator.
type Totals struct {
	Blocks    uint64
	Changes   uint64
	Created   uint64
	Destroyed uint64
}

// Aggregator builds a model.Block per record and passes it to emit once the
// record is known to be complete: at the next BeginBlock, a matching
// EndBlock, or Close.
type Aggregator struct {
	file    string
	emit    func(model.Block)
	logger  *zap.Logger
	current *model.Block
	totals  Totals
}

// New returns an Aggregator tagging blocks with file.
func New(file string, emit func(model.Block), logger *zap.Logger) *Aggregator {
	return &Aggregator{
		file:   file,
		emit:   emit,
		logger: logger,
	}
}

func (a *Aggregator) BeginBlock(blockHeight uint32) {
	a.flush()
	a.current = &model.Block{File: a.file, Height: blockHeight}
}

func (a *Aggregator) Change(_ uint32, amountSatoshi int64, isNullDelta bool) {
	if a.current == nil {
		return
	}
	a.current.Changes++
	if isNullDelta {
		a.current.NullDeltas++
	}
	if amountSatoshi >= 0 {
		a.current.Created += uint64(amountSatoshi)
	} else {
		// uint64 holds the magnitude of math.MinInt64.
		a.current.Destroyed += uint64(-amountSatoshi)
	}
}

func (a *Aggregator) EndBlock(blockHeight uint32) {
	if a.current != nil && a.current.Height == blockHeight {
		a.flush()
	}
}

// Close emits the block in progress. A stream ends its last block implicitly,
// so callers close the aggregator once parsing returns.
func (a *Aggregator) Close() {
	a.flush()
}

// Totals reports the sums over emitted blocks.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

func (a *Aggregator) flush() {
	if a.current == nil {
		return
	}
	b := *a.current
	a.current = nil

	a.totals.Blocks++
	a.totals.Changes += uint64(b.Changes)
	a.totals.Created += b.Created
	a.totals.Destroyed += b.Destroyed

	a.logger.Debug("block aggregated",
		zap.Uint32("height", b.Height),
		zap.Uint32("changes", b.Changes),
		amountField("created", b.Created),
		amountField("destroyed", b.Destroyed),
	)
	if a.emit != nil {
		a.emit(b)
	}
}

// amountField renders satoshi as BTC while it fits btcutil.Amount.
func amountField(key string, sat uint64) zap.Field {
	if sat > math.MaxInt64 {
		return zap.Uint64(key+"_sat", sat)
	}
	return zap.Stringer(key, btcutil.Amount(sat))
}
