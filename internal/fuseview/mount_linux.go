//go:build linux
// +build linux

// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package fuseview

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	utilos "github.com/ostafen/gifdecode/pkg/util/os"
)

// Mount serves pngFrames as a read-only directory at mountpoint until
// a termination signal arrives or the filesystem is unmounted.
func Mount(mountpoint string, pngFrames [][]byte) error {
	created, err := utilos.EnsureDir(mountpoint, true)
	if err != nil {
		return err
	}
	if created {
		defer os.Remove(mountpoint)
	}

	c, err := fuse.Mount(mountpoint)
	if err != nil {
		return err
	}
	defer c.Close()

	ffs := New(pngFrames)

	go func() {
		srv := fusefs.New(c, nil)
		if err := srv.Serve(ffs); err != nil {
			log.Fatalf("fuseview: serve error: %v", err)
		}
	}()
	return waitForUmount(mountpoint)
}

func waitForUmount(mountpoint string) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	log.Println("fuseview: waiting for termination signal...")

	const maxUnmountRetries = 3
	unmountAttempts := 0
	for sig := range sigc {
		log.Printf("fuseview: signal received: %v", sig)

		if unmountAttempts >= maxUnmountRetries {
			log.Fatalf("fuseview: exceeded %d unmount retries for %s, exiting", maxUnmountRetries, mountpoint)
		}

		log.Printf("fuseview: attempting unmount of %s (attempt %d/%d)", mountpoint, unmountAttempts+1, maxUnmountRetries)
		if err := fuse.Unmount(mountpoint); err == nil {
			log.Println("fuseview: unmounted successfully")
			return nil
		} else {
			unmountAttempts++
			log.Printf("fuseview: unmount failed: %v, waiting for another signal", err)
		}
	}
	return nil
}
