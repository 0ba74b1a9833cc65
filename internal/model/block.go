package model

// Block summarizes the changes listed under one record.
type Block struct {
	File       string
	Height     uint32
	Changes    uint32
	NullDeltas uint32
	// Created is the sum of positive amounts, Destroyed the sum of the
	// magnitudes of negative ones, both in satoshi.
	Created   uint64
	Destroyed uint64
}

// Net returns created minus destroyed satoshi, wrapping like the decoded
// amounts do.
func (b Block) Net() int64 {
	return int64(b.Created - b.Destroyed)
}
