package blk

// BlockCallback receives decoded events in stream order.
type BlockCallback interface {
	// BeginBlock is called when a record starts, before any of its changes
	// are known to be valid.
	BeginBlock(blockHeight uint32)

	// Change is called for every UTXO created (positive amount) or destroyed
	// (negative amount) in the current block. blockHeight is the height of
	// the UTXO itself. isNullDelta is true when both deltas of a non-first
	// change were zero.
	Change(blockHeight uint32, amountSatoshi int64, isNullDelta bool)

	// EndBlock is part of the consumer contract but the parser never calls
	// it; a block ends at the next BeginBlock or at the end of the stream.
	EndBlock(blockHeight uint32)
}

// MultiCallback fans every event out to each callback in order.
type MultiCallback []BlockCallback

func (m MultiCallback) BeginBlock(blockHeight uint32) {
	for _, cb := range m {
		cb.BeginBlock(blockHeight)
	}
}

func (m MultiCallback) Change(blockHeight uint32, amountSatoshi int64, isNullDelta bool) {
	for _, cb := range m {
		cb.Change(blockHeight, amountSatoshi, isNullDelta)
	}
}

func (m MultiCallback) EndBlock(blockHeight uint32) {
	for _, cb := range m {
		cb.EndBlock(blockHeight)
	}
}

// CallbackFuncs adapts plain functions to BlockCallback. Nil fields are skipped.
type CallbackFuncs struct {
	OnBeginBlock func(blockHeight uint32)
	OnChange     func(blockHeight uint32, amountSatoshi int64, isNullDelta bool)
	OnEndBlock   func(blockHeight uint32)
}

func (f CallbackFuncs) BeginBlock(blockHeight uint32) {
	if f.OnBeginBlock != nil {
		f.OnBeginBlock(blockHeight)
	}
}

func (f CallbackFuncs) Change(blockHeight uint32, amountSatoshi int64, isNullDelta bool) {
	if f.OnChange != nil {
		f.OnChange(blockHeight, amountSatoshi, isNullDelta)
	}
}

func (f CallbackFuncs) EndBlock(blockHeight uint32) {
	if f.OnEndBlock != nil {
		f.OnEndBlock(blockHeight)
	}
}
