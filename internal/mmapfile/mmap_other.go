//go:build !unix

package mmapfile

import "os"

// mmap falls back to a plain read on platforms x/sys/unix doesn't
// cover; the decoder only ever needs the bytes, not the mapping.
func mmap(f *os.File, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

func munmap(data []byte) error {
	return nil
}
