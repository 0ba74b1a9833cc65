//go:build !unix

package filesource

import (
	"fmt"
	"os"
)

// Open reads path into memory on platforms without mmap support.
func Open(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &FileSource{path: path, data: data}, nil
}
