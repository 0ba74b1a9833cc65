// Package blk decodes blk files: a stream of framed records, one per block,
// listing every UTXO created or destroyed in that block as delta-encoded
// amount/height changes.
package blk

import (
	"errors"
	"fmt"
	"io"
)

// Magic opens every record; on the wire it is the bytes "BLK\x00".
const Magic uint32 = 0x004b4c42

// firstChangeSize is the size of the absolute amount (8) and height (4) that
// open the change section.
const firstChangeSize = 12

// Stats summarizes a parse call.
type Stats struct {
	// Records counts fully decoded records.
	Records uint64
	// Changes counts Change callbacks, including those of an unfinished record.
	Changes    uint64
	NullDeltas uint64
	// Bytes is the number of bytes consumed from the cursor.
	Bytes int64
}

// Parse decodes records from c until it is exhausted at a record boundary,
// calling cb for each event as soon as it is decoded. Events delivered before
// a failure are not retracted.
func Parse(c Cursor, cb BlockCallback) error {
	_, err := ParseWithStats(c, cb)
	return err
}

// ParseWithStats is Parse that also reports what was decoded, up to the
// failure if there was one.
func ParseWithStats(c Cursor, cb BlockCallback) (Stats, error) {
	p := parser{r: &countingCursor{c: c}, cb: cb}
	err := p.run()
	p.stats.Bytes = p.r.off
	return p.stats, err
}

type parser struct {
	r     *countingCursor
	cb    BlockCallback
	stats Stats
}

func (p *parser) run() error {
	for {
		start := p.r.off
		magic, err := ReadU32(p.r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return p.fail("magic", start, err)
		}
		if magic != Magic {
			return &ParseError{
				Kind:   KindBadMagic,
				Field:  "magic",
				Offset: start,
				Err:    fmt.Errorf("got %#08x, want %#08x", magic, Magic),
			}
		}
		if err := p.record(); err != nil {
			return err
		}
		p.stats.Records++
	}
}

// record decodes one record after its magic. Running amount and height live
// only in this frame.
func (p *parser) record() error {
	start := p.r.off
	blockHeight, err := ReadU32(p.r)
	if err != nil {
		return p.fail("block_height", start, err)
	}
	p.cb.BeginBlock(blockHeight)

	start = p.r.off
	sectionLength, err := ReadU32(p.r)
	if err != nil {
		return p.fail("section_length", start, err)
	}

	start = p.r.off
	amount, err := ReadI64(p.r)
	if err != nil {
		return p.fail("amount", start, err)
	}
	start = p.r.off
	height, err := ReadU32(p.r)
	if err != nil {
		return p.fail("height", start, err)
	}
	p.change(height, amount, false)

	bytesRead := uint64(firstChangeSize)
	for bytesRead < uint64(sectionLength) {
		start = p.r.off
		amountDelta, n, err := ReadVarUint(p.r)
		if err != nil {
			return p.fail("amount_delta", start, err)
		}
		bytesRead += uint64(n)
		amount += int64(amountDelta)

		start = p.r.off
		heightDelta, n, err := ReadVarZigzagI32(p.r)
		if err != nil {
			return p.fail("height_delta", start, err)
		}
		bytesRead += uint64(n)
		height += uint32(heightDelta)

		p.change(height, amount, amountDelta == 0 && heightDelta == 0)
	}
	return nil
}

func (p *parser) change(height uint32, amount int64, isNullDelta bool) {
	p.stats.Changes++
	if isNullDelta {
		p.stats.NullDeltas++
	}
	p.cb.Change(height, amount, isNullDelta)
}

func (p *parser) fail(field string, offset int64, err error) error {
	kind := KindIO
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		kind = KindTruncated
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Kind: kind, Field: field, Offset: offset, Err: err}
}
