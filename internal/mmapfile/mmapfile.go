// Package mmapfile memory-maps a whole file for read-only access, the
// byte source behind internal/gif's decode_path entry point. Adapted
// from the teacher's internal/mmap package, trimmed from an
// offset/length disk-region mapper down to "map one file, whole"; the
// platform-specific mapping itself moves to golang.org/x/sys/unix
// instead of raw syscall numbers.
package mmapfile

import (
	"fmt"
	"os"
)

// File is a memory-mapped, read-only view of a file's contents.
type File struct {
	data []byte
	f    *os.File
}

// Bytes returns the file's entire contents. The slice is only valid
// until Close.
func (m *File) Bytes() []byte {
	return m.data
}

// Open maps path into memory. Empty files return an error since there
// is nothing to mmap (mmap(2) itself rejects a zero-length region).
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: open %q: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: stat %q: %w", path, err)
	}
	if fi.Size() == 0 {
		f.Close()
		return nil, fmt.Errorf("mmapfile: %q is empty", path)
	}

	data, err := mmap(f, int(fi.Size()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapfile: mmap %q: %w", path, err)
	}

	return &File{data: data, f: f}, nil
}

// Close unmaps the region and closes the underlying file.
func (m *File) Close() error {
	var err error
	if m.data != nil {
		err = munmap(m.data)
		m.data = nil
	}
	if closeErr := m.f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
