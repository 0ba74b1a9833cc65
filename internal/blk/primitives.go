package blk

import (
	"encoding/binary"
	"errors"
	"io"
)

// readFull follows io.ReadFull: io.EOF when nothing was read,
// io.ErrUnexpectedEOF when the cursor ran dry part way through buf.
func readFull(c Cursor, buf []byte) error {
	for i := range buf {
		b, err := c.ReadByte()
		if err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		buf[i] = b
	}
	return nil
}

// ReadU32 reads a little-endian uint32.
func ReadU32(c Cursor) (uint32, error) {
	var buf [4]byte
	if err := readFull(c, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadU64 reads a little-endian uint64.
func ReadU64(c Cursor) (uint64, error) {
	var buf [8]byte
	if err := readFull(c, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadI64 reads a little-endian uint64 and reinterprets it as two's complement.
func ReadI64(c Cursor) (int64, error) {
	v, err := ReadU64(c)
	return int64(v), err
}

// ReadVarUint reads an unsigned LEB128 value and the number of bytes it took.
// The first byte carries the least significant 7 bits. Groups past the 64th
// bit are shifted out.
func ReadVarUint(c Cursor) (uint64, int, error) {
	var (
		v uint64
		n int
	)
	for {
		b, err := c.ReadByte()
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return 0, n, io.ErrUnexpectedEOF
			}
			return 0, n, err
		}
		if shift := 7 * n; shift < 64 {
			v |= uint64(b&0x7f) << shift
		}
		n++
		if b < 0x80 {
			return v, n, nil
		}
	}
}

// ReadVarZigzagI32 reads a zigzag-encoded LEB128 value truncated to int32.
func ReadVarZigzagI32(c Cursor) (int32, int, error) {
	raw, n, err := ReadVarUint(c)
	if err != nil {
		return 0, n, err
	}
	return DecodeZigzag32(raw), n, nil
}

// DecodeZigzag32 maps 2n to n and 2n+1 to -n-1, keeping the low 32 bits.
func DecodeZigzag32(raw uint64) int32 {
	return int32((raw >> 1) ^ -(raw & 1))
}

// EncodeZigzag32 is the inverse of DecodeZigzag32.
func EncodeZigzag32(v int32) uint64 {
	return uint64(uint32((v << 1) ^ (v >> 31)))
}

// AppendU32 appends v in little-endian order.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendU64 appends v in little-endian order.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendVarUint appends v as unsigned LEB128.
func AppendVarUint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}
