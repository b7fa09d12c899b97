package gif

import "errors"

// Sentinel errors surfaced to callers, per spec.md §7.
var (
	// ErrTruncated: a read crossed end-of-input during a required field.
	ErrTruncated = errors.New("gif: truncated input")
	// ErrBadSignature: the first three bytes are not "GIF".
	ErrBadSignature = errors.New("gif: bad signature")
	// ErrBadEncoding: signature/version bytes are not valid ASCII.
	ErrBadEncoding = errors.New("gif: bad encoding")
	// ErrInsufficientBits: an LZW bit read ran out of sub-blocks.
	ErrInsufficientBits = errors.New("gif: insufficient bits")
	// ErrOutOfRangeFrameIndex: a caller asked for a frame beyond len(Frames).
	ErrOutOfRangeFrameIndex = errors.New("gif: frame index out of range")
)
