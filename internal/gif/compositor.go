package gif

// DecodeFrames composes every frame in g, in ascending order, per
// spec.md §5's sequential-composition requirement (frame k may depend
// on k-1's state, so frames are never rendered out of order here).
func (g *Gif) DecodeFrames(opts Options) ([][]byte, error) {
	out := make([][]byte, len(g.Frames))
	for i := range g.Frames {
		buf, err := g.DecodeFrame(i, opts)
		if err != nil {
			return nil, err
		}
		out[i] = buf
	}
	return out, nil
}

// DecodeFrame renders frame index as an RGBA buffer, per spec.md §4.4.
func (g *Gif) DecodeFrame(index int, opts Options) ([]byte, error) {
	if index < 0 || index >= len(g.Frames) {
		return nil, ErrOutOfRangeFrameIndex
	}
	if opts.RawDecode {
		return g.decodeRaw(index), nil
	}
	return g.composeFrame(index, opts)
}

// decodeRaw emits only frame index's rectangle, scan order, with no
// canvas and no disposal handling: spec.md §4.4's raw-decode mode.
func (g *Gif) decodeRaw(index int) []byte {
	f := &g.Frames[index]
	out := make([]byte, f.IM.Width*f.IM.Height*4)
	for i, idx := range f.IndexStream {
		if int(idx) >= len(f.ColorTable) {
			continue
		}
		c := f.ColorTable[idx]
		alpha := byte(255)
		if f.GCD.TransparentColorFlag && int(idx) == int(f.GCD.TransparentColorIndex) {
			alpha = 0
		}
		o := i * 4
		out[o], out[o+1], out[o+2], out[o+3] = c.Red, c.Green, c.Blue, alpha
	}
	return out
}

func (g *Gif) composeFrame(index int, opts Options) ([]byte, error) {
	f := &g.Frames[index]
	if opts.StoreCache && f.cachedFrame != nil {
		return f.cachedFrame, nil
	}

	canvas, err := g.baseCanvas(index, opts)
	if err != nil {
		return nil, err
	}

	prevDisposal := DisposalUnspecified
	if index > 0 {
		prevDisposal = g.disposalOf(index - 1)
	}
	if prevDisposal == DisposalPrevious && !opts.ImplementDisposalPrevious {
		prevDisposal = DisposalNone
	}
	g.paintFrame(canvas, f, prevDisposal)

	if opts.StoreCache {
		f.cachedFrame = canvas
	}

	if g.hasDisposalPrevious() && f.GCD.DisposalMethod != DisposalUnspecified && f.GCD.DisposalMethod != DisposalPrevious {
		if opts.StoreCache {
			snapshot := make([]byte, len(canvas))
			copy(snapshot, canvas)
			f.previousPixels = snapshot
		}
	}

	return canvas, nil
}

// baseCanvas establishes the RGBA buffer frame index is painted onto,
// chosen from the previous frame's disposal method, per spec.md §4.4
// step 2.
func (g *Gif) baseCanvas(index int, opts Options) ([]byte, error) {
	canvasLen := g.LSD.Width * g.LSD.Height * 4
	if opts.DisableDisposalMethods || index == 0 {
		return make([]byte, canvasLen), nil
	}

	prev := index - 1
	switch g.disposalOf(prev) {
	case DisposalPrevious:
		if !opts.ImplementDisposalPrevious {
			return g.composedOrRecurse(prev, opts)
		}
		return g.restoreToPrevious(prev, opts)
	case DisposalBackground:
		return g.backgroundCanvas(prev), nil
	default: // 0 (unspecified), 1 (do-not-dispose)
		return g.composedOrRecurse(prev, opts)
	}
}

// composedOrRecurse returns a fresh copy of frame i's fully composed
// buffer, using its cache when available and recursing into
// composeFrame otherwise.
func (g *Gif) composedOrRecurse(i int, opts Options) ([]byte, error) {
	var buf []byte
	if opts.StoreCache && g.Frames[i].cachedFrame != nil {
		buf = g.Frames[i].cachedFrame
	} else {
		composed, err := g.composeFrame(i, opts)
		if err != nil {
			return nil, err
		}
		buf = composed
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// restoreToPrevious finds the canvas that frame prev (itself disposal
// method 3) was painted onto: the nearest ancestor's retained
// previous_pixels snapshot, walking back further if one frame's
// snapshot is missing, falling back to on-demand recursion when
// store_cache left nothing retained at all. Per spec.md §4.4 step 2
// and the store_cache/previous_pixels interaction in §9.
func (g *Gif) restoreToPrevious(prev int, opts Options) ([]byte, error) {
	for j := prev - 1; j >= 0; j-- {
		if g.Frames[j].previousPixels != nil {
			out := make([]byte, len(g.Frames[j].previousPixels))
			copy(out, g.Frames[j].previousPixels)
			return out, nil
		}
	}
	return g.baseCanvas(prev, opts)
}

// backgroundCanvas implements spec.md §4.4's disposal-2 rule: an
// all-transparent canvas with the global background color painted
// across frame prev's rectangle, transparent itself when the
// background index is indistinguishable from frame prev's transparent
// index.
func (g *Gif) backgroundCanvas(prev int) []byte {
	out := make([]byte, g.LSD.Width*g.LSD.Height*4)
	f := &g.Frames[prev]

	bgIdx := int(g.LSD.BackgroundColorIndex)
	var bg Color
	if bgIdx < len(g.GlobalTable) {
		bg = g.GlobalTable[bgIdx]
	}

	alpha := byte(255)
	if isBackgroundTransparent(f, bgIdx) {
		alpha = 0
	}

	for y := 0; y < f.IM.Height; y++ {
		cy := f.IM.Top + y
		if cy < 0 || cy >= g.LSD.Height {
			continue
		}
		for x := 0; x < f.IM.Width; x++ {
			cx := f.IM.Left + x
			if cx < 0 || cx >= g.LSD.Width {
				continue
			}
			o := (cy*g.LSD.Width + cx) * 4
			out[o], out[o+1], out[o+2], out[o+3] = bg.Red, bg.Green, bg.Blue, alpha
		}
	}
	return out
}

func isBackgroundTransparent(f *Frame, bgIdx int) bool {
	if !f.GCD.TransparentColorFlag {
		return false
	}
	ti := int(f.GCD.TransparentColorIndex)
	if bgIdx == ti {
		return true
	}
	return ti >= len(f.ColorTable) && bgIdx == 0
}

// paintFrame writes frame f's pixels onto canvas in row-major order,
// per spec.md §4.4 step 3.
func (g *Gif) paintFrame(canvas []byte, f *Frame, prevDisposal int) {
	skipTransparent := prevDisposal == DisposalUnspecified || prevDisposal == DisposalNone

	for y := 0; y < f.IM.Height; y++ {
		cy := f.IM.Top + y
		for x := 0; x < f.IM.Width; x++ {
			cx := f.IM.Left + x

			idx := f.IndexStream[y*f.IM.Width+x]
			if int(idx) >= len(f.ColorTable) {
				continue
			}

			transparent := f.GCD.TransparentColorFlag && int(idx) == int(f.GCD.TransparentColorIndex)
			if skipTransparent && transparent {
				continue
			}
			if cy < 0 || cy >= g.LSD.Height || cx < 0 || cx >= g.LSD.Width {
				continue
			}

			c := f.ColorTable[idx]
			alpha := byte(255)
			if transparent {
				alpha = 0
			}
			o := (cy*g.LSD.Width + cx) * 4
			canvas[o], canvas[o+1], canvas[o+2], canvas[o+3] = c.Red, c.Green, c.Blue, alpha
		}
	}
}
