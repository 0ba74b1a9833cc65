package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blkdelta/internal/model"
	"github.com/goodnatureofminers/blkdelta/pkg/safe"
)

// changeSink turns parser callbacks into rows for a ChangeWriter. The first
// write error is kept and cancels the parse through cancel; later events are
// dropped.
type changeSink struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	file   string
	writer ChangeWriter

	blockHeight uint32
	seq         int
	err         error
}

func newChangeSink(ctx context.Context, cancel context.CancelCauseFunc, file string, writer ChangeWriter) *changeSink {
	return &changeSink{ctx: ctx, cancel: cancel, file: file, writer: writer}
}

func (s *changeSink) BeginBlock(blockHeight uint32) {
	s.blockHeight = blockHeight
	s.seq = 0
}

func (s *changeSink) Change(blockHeight uint32, amountSatoshi int64, isNullDelta bool) {
	if s.err != nil {
		return
	}

	seq, err := safe.Uint32(s.seq)
	if err != nil {
		s.fail(fmt.Errorf("change sequence in block %d: %w", s.blockHeight, err))
		return
	}
	s.seq++

	if err := s.writer.WriteChange(s.ctx, model.Change{
		File:        s.file,
		BlockHeight: s.blockHeight,
		Seq:         seq,
		Height:      blockHeight,
		Amount:      amountSatoshi,
		IsNullDelta: isNullDelta,
	}); err != nil {
		s.fail(fmt.Errorf("write change %d of block %d: %w", seq, s.blockHeight, err))
	}
}

func (s *changeSink) EndBlock(uint32) {}

// WriteBlock is the aggregator's emit hook.
func (s *changeSink) WriteBlock(b model.Block) {
	if s.err != nil {
		return
	}
	if err := s.writer.WriteBlock(s.ctx, b); err != nil {
		s.fail(fmt.Errorf("write block %d: %w", b.Height, err))
	}
}

func (s *changeSink) Err() error {
	return s.err
}

func (s *changeSink) fail(err error) {
	s.err = err
	if s.cancel != nil {
		s.cancel(err)
	}
}
