package blk

import (
	"context"
	"io"
)

// Cursor is a forward-only byte source. ReadByte returns io.EOF once the
// input is exhausted; bytes are never handed out twice.
type Cursor interface {
	ReadByte() (byte, error)
}

var _ Cursor = (io.ByteReader)(nil)

// SliceCursor walks an in-memory byte slice once.
type SliceCursor struct {
	data []byte
	pos  int
}

// NewSliceCursor returns a cursor positioned at the first byte of data.
func NewSliceCursor(data []byte) *SliceCursor {
	return &SliceCursor{data: data}
}

func (c *SliceCursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Remaining reports how many bytes are left to read.
func (c *SliceCursor) Remaining() int {
	return len(c.data) - c.pos
}

const contextCheckInterval = 64 << 10

type contextCursor struct {
	ctx   context.Context
	c     Cursor
	count int
}

// WithContext stops c once ctx is done. The context is polled every 64KiB, so
// a canceled parse fails with the context error shortly after cancellation.
func WithContext(ctx context.Context, c Cursor) Cursor {
	return &contextCursor{ctx: ctx, c: c}
}

func (c *contextCursor) ReadByte() (byte, error) {
	if c.count%contextCheckInterval == 0 {
		if err := c.ctx.Err(); err != nil {
			return 0, err
		}
	}
	c.count++
	return c.c.ReadByte()
}

// countingCursor tracks the absolute offset of the next byte.
type countingCursor struct {
	c   Cursor
	off int64
}

func (c *countingCursor) ReadByte() (byte, error) {
	b, err := c.c.ReadByte()
	if err == nil {
		c.off++
	}
	return b, err
}
