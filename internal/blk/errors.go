package blk

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports input that ended in the middle of a record.
	ErrTruncated = errors.New("truncated input")
	// ErrBadMagic reports a record whose magic field does not match Magic.
	ErrBadMagic = errors.New("bad record magic")
)

// Kind discriminates parse failures.
type Kind int

const (
	KindNone Kind = iota
	KindTruncated
	KindBadMagic
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTruncated:
		return "truncated"
	case KindBadMagic:
		return "bad_magic"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseError describes where and why decoding stopped.
type ParseError struct {
	Kind   Kind
	Field  string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("blk: %s reading %s at offset %d: %v", e.Kind, e.Field, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrTruncated:
		return e.Kind == KindTruncated
	case ErrBadMagic:
		return e.Kind == KindBadMagic
	}
	return false
}

// KindOf returns the failure kind carried by err, KindNone for nil and KindIO
// for errors that did not come from the parser.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindIO
}
