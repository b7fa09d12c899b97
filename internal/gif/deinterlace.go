package gif

// deinterlace reorders an interlaced index_stream into true row order.
// GIF interlacing writes rows in four passes (offsets 0,4,2,1; steps
// 8,8,4,2); width is im.width, row count is len(pixels)/width, per
// spec.md §4.5 and the reference decoder's deinterlace function.
func deinterlace(pixels []byte, width int) []byte {
	if width <= 0 {
		return pixels
	}
	rows := len(pixels) / width

	out := make([]byte, len(pixels))
	offsets := [4]int{0, 4, 2, 1}
	steps := [4]int{8, 8, 4, 2}

	src := 0
	for pass := 0; pass < 4; pass++ {
		for row := offsets[pass]; row < rows; row += steps[pass] {
			copy(out[row*width:(row+1)*width], pixels[src*width:(src+1)*width])
			src++
		}
	}
	return out
}
