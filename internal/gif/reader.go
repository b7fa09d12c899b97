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
package gif

import (
	"bufio"
	"io"
)

// byteReader is a position-tracked view over the input byte sequence,
// with bounds-checked reads. It wraps a bufio.Reader so the container
// parser can walk GIF's tagged block stream one field at a time without
// re-reading the underlying source.
type byteReader struct {
	buf *bufio.Reader
	n   uint64
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{buf: bufio.NewReaderSize(r, 4096)}
}

func (r *byteReader) ReadByte() (byte, error) {
	b, err := r.buf.ReadByte()
	if err == nil {
		r.n++
	}
	return b, err
}

// readFull reads exactly len(buf) bytes or returns ErrTruncated.
func (r *byteReader) readFull(buf []byte) error {
	n, err := io.ReadFull(r.buf, buf)
	r.n += uint64(n)
	if err != nil {
		return ErrTruncated
	}
	return nil
}

// discard skips n bytes, returning ErrTruncated if fewer were available.
func (r *byteReader) discard(n int) error {
	k, err := r.buf.Discard(n)
	r.n += uint64(k)
	if err != nil {
		return ErrTruncated
	}
	return nil
}

func (r *byteReader) bytesRead() uint64 {
	return r.n
}
