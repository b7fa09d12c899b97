package gif

// Options controls how Gif.DecodeFrame(s) renders pixels, per spec.md §6.
type Options struct {
	// ImplementDisposalPrevious honors disposal method 3 (restore to the
	// pre-previous-frame state). When false, disposal 3 is treated as
	// "do not dispose" instead.
	ImplementDisposalPrevious bool
	// StoreCache retains composed RGBA buffers per frame after rendering.
	StoreCache bool
	// DisableDisposalMethods skips base-canvas setup entirely and renders
	// onto an all-transparent canvas.
	DisableDisposalMethods bool
	// RawDecode emits only the frame rectangle's pixels, with no canvas
	// and no disposal handling.
	RawDecode bool
}

// DefaultOptions matches spec.md §6's default column.
func DefaultOptions() Options {
	return Options{
		ImplementDisposalPrevious: true,
		StoreCache:                true,
		DisableDisposalMethods:    false,
		RawDecode:                 false,
	}
}
