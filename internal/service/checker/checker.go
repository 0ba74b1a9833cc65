// Package checker verifies that blocks in a blk file appear in order.
package checker

import (
	"fmt"
	"math"

	"github.com/goodnatureofminers/blkdelta/internal/blk"
	"go.uber.org/zap"
)

var _ blk.BlockCallback = (*SequentialChecker)(nil)

// Summary is what a SequentialChecker has seen so far.
type Summary struct {
	LastBlock  uint32
	Blocks     uint64
	Changes    uint64
	Violations uint64
}

func (s Summary) String() string {
	return fmt.Sprintf("last block: %d, num changes: %d", s.LastBlock, s.Changes)
}

// SequentialChecker expects block heights 0, 1, 2, ... and reports every gap
// or repeat. It only observes; decoding continues regardless.
type SequentialChecker struct {
	logger     *zap.Logger
	lastBlock  uint32
	blocks     uint64
	changes    uint64
	violations uint64
}

// NewSequentialChecker returns a checker expecting block 0 first.
func NewSequentialChecker(logger *zap.Logger) *SequentialChecker {
	return &SequentialChecker{
		logger:    logger,
		lastBlock: math.MaxUint32,
	}
}

func (c *SequentialChecker) BeginBlock(blockHeight uint32) {
	if expected := c.lastBlock + 1; blockHeight != expected {
		c.violations++
		c.logger.Warn("unexpected block height",
			zap.Uint32("expected", expected),
			zap.Uint32("got", blockHeight),
		)
	}
	c.lastBlock = blockHeight
	c.blocks++
}

func (c *SequentialChecker) Change(uint32, int64, bool) {
	c.changes++
}

func (c *SequentialChecker) EndBlock(blockHeight uint32) {
	if blockHeight != c.lastBlock {
		c.violations++
		c.logger.Warn("end of block does not match current block",
			zap.Uint32("expected", c.lastBlock),
			zap.Uint32("got", blockHeight),
		)
	}
}

// Summary reports the last block seen and the counts so far.
func (c *SequentialChecker) Summary() Summary {
	return Summary{
		LastBlock:  c.lastBlock,
		Blocks:     c.blocks,
		Changes:    c.changes,
		Violations: c.violations,
	}
}
