package model

import "time"

// FileStatus describes the outcome of ingesting a blk file.
type FileStatus string

var (
	// FileProcessed marks a file decoded to the end without errors.
	FileProcessed FileStatus = "processed"
	// FileFailed marks a file whose decoding stopped on malformed input.
	FileFailed FileStatus = "failed"
)

// File records one ingested blk file.
type File struct {
	Name        string
	Size        uint64
	Digest      string
	Records     uint64
	Changes     uint64
	LastBlock   uint32
	Status      FileStatus
	Error       string
	ProcessedAt time.Time
}
