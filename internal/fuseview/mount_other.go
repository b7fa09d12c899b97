//go:build !linux
// +build !linux

package fuseview

import "fmt"

func Mount(mountpoint string, pngFrames [][]byte) error {
	return fmt.Errorf("fuseview: FUSE mount is only supported on Linux")
}
