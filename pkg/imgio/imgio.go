// Package imgio writes decoded RGBA frame buffers out as PNG files for
// the render CLI command. No example in the corpus encodes images, so
// this sticks to image/png rather than inventing a grounding that
// doesn't exist; see DESIGN.md.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes an RGBA buffer of the given dimensions to path.
func WritePNG(path string, width, height int, rgba []byte) error {
	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}
	return nil
}

// EncodePNG encodes an RGBA buffer to an in-memory PNG, used by the
// mount command to serve frames through fuseview without touching disk.
func EncodePNG(width, height int, rgba []byte) ([]byte, error) {
	img := &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imgio: encode: %w", err)
	}
	return buf.Bytes(), nil
}
