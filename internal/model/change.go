// Package model defines the rows produced from decoded blk files.
package model

// Change is one decoded UTXO change.
type Change struct {
	File string
	// BlockHeight is the height of the record the change was listed under.
	BlockHeight uint32
	// Seq is the position of the change within its record, starting at 0.
	Seq uint32
	// Height is the height of the UTXO itself.
	Height      uint32
	Amount      int64
	IsNullDelta bool
}
