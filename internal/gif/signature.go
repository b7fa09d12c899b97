package gif

import "bytes"

var gifMagic = []byte("GIF")

// hasGIFSignature checks the 3-byte "GIF" magic per spec.md §4.2/§6;
// the following version bytes are passed through verbatim, never
// validated against "87a"/"89a" specifically.
func hasGIFSignature(b []byte) bool {
	return bytes.Equal(b, gifMagic)
}
