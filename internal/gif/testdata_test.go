package gif_test

// Shared helpers for building small, hand-assembled GIF byte streams
// for decoder_test.go and compositor_test.go — standing in for real
// sample files, since the scenarios in spec.md §8 are specified by
// their decoded behavior rather than by fixture bytes.

const testMaxDict = 4096

type gceSpec struct {
	disposal         int
	transparentFlag  bool
	transparentIndex byte
}

type frameSpec struct {
	left, top, width, height int
	interlace                bool
	indices                  []byte
	hasGCE                   bool
	gce                      gceSpec
}

// buildGIF assembles a minimal GIF89a byte stream: a global color
// table, then one image block per frame (each optionally preceded by
// a Graphics Control Extension), then the trailer.
func buildGIF(width, height int, globalColors [][3]byte, frames []frameSpec) []byte {
	var b []byte
	b = append(b, 'G', 'I', 'F', '8', '9', 'a')

	b = append(b, byte(width), byte(width>>8), byte(height), byte(height>>8))

	gctSize := colorTableSizeField(len(globalColors))
	packed := byte(0x80) | gctSize
	b = append(b, packed, 0x00, 0x00)

	for _, c := range globalColors {
		b = append(b, c[0], c[1], c[2])
	}

	for _, f := range frames {
		if f.hasGCE {
			b = append(b, 0x21, 0xF9, 0x04)
			gcePacked := byte(f.gce.disposal<<2) | boolBit(f.gce.transparentFlag, 0)
			b = append(b, gcePacked, 0x00, 0x00, f.gce.transparentIndex, 0x00)
		}

		b = append(b, 0x2C)
		b = append(b, le16(f.left)...)
		b = append(b, le16(f.top)...)
		b = append(b, le16(f.width)...)
		b = append(b, le16(f.height)...)

		imPacked := byte(0)
		if f.interlace {
			imPacked |= 0x40
		}
		b = append(b, imPacked)

		const minCodeSize = 2
		b = append(b, minCodeSize)
		b = append(b, chunkSubBlocks(lzwEncodeLiteral(minCodeSize, f.indices))...)
	}

	b = append(b, 0x3B)
	return b
}

func le16(v int) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

func boolBit(v bool, shift uint) byte {
	if v {
		return 1 << shift
	}
	return 0
}

// colorTableSizeField returns the packed-byte size field n such that
// 2^(n+1) == count.
func colorTableSizeField(count int) byte {
	n := byte(0)
	for (1 << (n + 1)) < count {
		n++
	}
	return n
}

func chunkSubBlocks(data []byte) []byte {
	var out []byte
	for len(data) > 0 {
		n := len(data)
		if n > 255 {
			n = 255
		}
		out = append(out, byte(n))
		out = append(out, data[:n]...)
		data = data[n:]
	}
	out = append(out, 0x00)
	return out
}

// lzwEncodeLiteral encodes indices as a run of literal codes (each
// below the clear code), mirroring the decoder's dictionary-growth
// bookkeeping exactly so the resulting stream round-trips.
func lzwEncodeLiteral(minCodeSize byte, indices []byte) []byte {
	clearCode := uint32(1) << minCodeSize
	eoiCode := clearCode + 1
	available := clearCode + 2
	codeSize := uint(minCodeSize) + 1
	codeMask := uint32(1)<<codeSize - 1

	var datum uint32
	var bits uint
	var out []byte

	emit := func(code uint32) {
		datum |= code << bits
		bits += codeSize
		for bits >= 8 {
			out = append(out, byte(datum))
			datum >>= 8
			bits -= 8
		}
	}

	emit(clearCode)
	for i, idx := range indices {
		emit(uint32(idx))
		if i == 0 {
			continue
		}
		if available < testMaxDict {
			available++
			if available&codeMask == 0 && available < testMaxDict {
				codeSize++
				codeMask = uint32(1)<<codeSize - 1
			}
		}
	}
	emit(eoiCode)
	if bits > 0 {
		out = append(out, byte(datum))
	}
	return out
}
