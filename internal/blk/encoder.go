package blk

import (
	"errors"
	"fmt"
	"math"
)

// Change is one UTXO change as it appears after decoding.
type Change struct {
	Height uint32
	Amount int64
}

// Record is one block's worth of changes.
type Record struct {
	BlockHeight uint32
	Changes     []Change
}

// ErrEmptyRecord is returned when encoding a record without changes; the
// format has no way to express one.
var ErrEmptyRecord = errors.New("record has no changes")

// AppendRecord appends the wire form of r to dst. The first change is stored
// in full and every following one as deltas against its predecessor.
func AppendRecord(dst []byte, r Record) ([]byte, error) {
	if len(r.Changes) == 0 {
		return dst, ErrEmptyRecord
	}

	section := make([]byte, 0, firstChangeSize+4*(len(r.Changes)-1))
	first := r.Changes[0]
	section = AppendU64(section, uint64(first.Amount))
	section = AppendU32(section, first.Height)

	prev := first
	for _, ch := range r.Changes[1:] {
		section = AppendVarUint(section, uint64(ch.Amount-prev.Amount))
		section = AppendVarUint(section, EncodeZigzag32(int32(ch.Height-prev.Height)))
		prev = ch
	}
	if uint64(len(section)) > math.MaxUint32 {
		return dst, fmt.Errorf("block %d: change section of %d bytes does not fit a uint32", r.BlockHeight, len(section))
	}

	dst = AppendU32(dst, Magic)
	dst = AppendU32(dst, r.BlockHeight)
	dst = AppendU32(dst, uint32(len(section)))
	return append(dst, section...), nil
}

// Encode concatenates the wire form of records.
func Encode(records ...Record) ([]byte, error) {
	var (
		out []byte
		err error
	)
	for _, r := range records {
		if out, err = AppendRecord(out, r); err != nil {
			return nil, err
		}
	}
	return out, nil
}
