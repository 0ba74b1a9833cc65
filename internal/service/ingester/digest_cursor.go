package ingester

import (
	"crypto/sha256"
	"hash"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const digestChunkSize = 64 << 10

// digestCursor walks a mapped file once and feeds the bytes it has passed
// into SHA-256 a chunk at a time, so the file digest is taken on the same
// sequential pass as the parse.
type digestCursor struct {
	data   []byte
	pos    int
	hashed int
	h      hash.Hash
}

func newDigestCursor(data []byte) *digestCursor {
	return &digestCursor{data: data, h: sha256.New()}
}

func (c *digestCursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	if c.pos-c.hashed >= digestChunkSize {
		c.h.Write(c.data[c.hashed:c.pos])
		c.hashed = c.pos
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Digest hashes the bytes the parse did not reach and returns the double
// SHA-256 of the whole file.
func (c *digestCursor) Digest() chainhash.Hash {
	c.h.Write(c.data[c.hashed:])
	c.hashed = len(c.data)
	return chainhash.HashH(c.h.Sum(nil))
}
