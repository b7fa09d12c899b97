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

// Package fuseview exposes a decoded Gif's rendered frames as a
// read-only directory of PNG files, one entry per frame. Adapted from
// the teacher's internal/fuse RecoverFS, which served carved files
// from byte ranges of a disk image; here the "files" are pre-rendered
// in-memory PNGs instead of ranges of an underlying reader.
package fuseview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// FrameFS is a read-only filesystem with one PNG file per frame.
type FrameFS struct {
	mtx     sync.RWMutex
	entries map[string][]byte
	names   []string
}

// New builds a FrameFS from already-rendered PNG buffers, named
// frame0000.png, frame0001.png, ...
func New(pngFrames [][]byte) *FrameFS {
	entries := make(map[string][]byte, len(pngFrames))
	names := make([]string, len(pngFrames))
	for i, data := range pngFrames {
		name := fmt.Sprintf("frame%04d.png", i)
		entries[name] = data
		names[i] = name
	}
	return &FrameFS{entries: entries, names: names}
}

func (ffs *FrameFS) Root() (fs.Node, error) {
	return &dir{fs: ffs}, nil
}

// dir implements both fs.Node and fs.HandleReadDirAller.
type dir struct {
	fs *FrameFS
}

func (*dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	data, ok := d.fs.entries[name]
	if !ok {
		return nil, fuse.ENOENT
	}
	return file{data: data}, nil
}

func (d dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mtx.RLock()
	defer d.fs.mtx.RUnlock()

	dirEntries := make([]fuse.Dirent, len(d.fs.names))
	for i, name := range d.fs.names {
		dirEntries[i] = fuse.Dirent{Inode: uint64(i + 1), Name: name, Type: fuse.DT_File}
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name < dirEntries[j].Name
	})
	return dirEntries, nil
}

// file implements both fs.Node and fs.HandleReader.
type file struct {
	data []byte
}

func (f file) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = 0444
	a.Size = uint64(len(f.data))
	a.Mtime = time.Now()
	return nil
}

func (f file) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	r := io.NewSectionReader(bytes.NewReader(f.data), 0, int64(len(f.data)))

	size := req.Size
	offset := req.Offset
	if offset >= int64(len(f.data)) {
		resp.Data = []byte{}
		return nil
	}
	if offset+int64(size) > int64(len(f.data)) {
		size = int(int64(len(f.data)) - offset)
	}

	buf := make([]byte, size)
	n, err := r.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return err
	}
	resp.Data = buf[:n]
	return nil
}
