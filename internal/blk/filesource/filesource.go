// Package filesource exposes a blk file as a forward-only byte cursor backed
// by a read-only memory mapping.
package filesource

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
)

var errClosed = errors.New("file source is closed")

// FileSource is a blk file mapped into memory.
type FileSource struct {
	path   string
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Path returns the path the source was opened from.
func (s *FileSource) Path() string {
	return s.path
}

// Size returns the file size in bytes.
func (s *FileSource) Size() int64 {
	return int64(len(s.data))
}

// Bytes exposes the mapped file. The slice is only valid until Close.
func (s *FileSource) Bytes() []byte {
	return s.data
}

// Cursor returns a cursor over the whole file, starting at the first byte.
func (s *FileSource) Cursor() *blk.SliceCursor {
	return blk.NewSliceCursor(s.data)
}

// CursorContext is Cursor that stops yielding bytes once ctx is done.
func (s *FileSource) CursorContext(ctx context.Context) blk.Cursor {
	return blk.WithContext(ctx, s.Cursor())
}

// Close releases the mapping. Cursors obtained earlier must not be used
// afterwards.
func (s *FileSource) Close() error {
	if s.closed {
		return errClosed
	}
	s.closed = true
	data := s.data
	s.data = nil
	if s.unmap == nil || len(data) == 0 {
		return nil
	}
	return s.unmap(data)
}
