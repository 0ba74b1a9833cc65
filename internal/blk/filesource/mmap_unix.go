//go:build unix

package filesource

import (
	"fmt"
	"os"

	"github.com/goodnatureofminers/blkdelta/pkg/safe"
	"golang.org/x/sys/unix"
)

// Open maps path read-only. Empty files are not mapped.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return &FileSource{path: path}, nil
	}

	size, err := safe.Int(info.Size())
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	// The parser reads front to back exactly once.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &FileSource{path: path, data: data, unmap: unix.Munmap}, nil
}
