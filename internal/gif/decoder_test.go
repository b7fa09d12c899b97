package gif_test

import (
	"testing"

	"github.com/ostafen/gifdecode/internal/gif"
	"github.com/stretchr/testify/require"
)

// Scenario 1 from spec.md §8: a minimal 1x1 GIF.
func TestDecodeBuffer_Minimal1x1(t *testing.T) {
	data := []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61,
		0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF,
		0x2C, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0x02, 0x02, 0x44, 0x01, 0x00,
		0x3B,
	}

	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)
	require.Equal(t, "89a", g.Version)
	require.Len(t, g.Frames, 1)
	require.Equal(t, []byte{0}, g.Frames[0].IndexStream)

	rgba, err := g.DecodeFrame(0, gif.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0xFF}, rgba)
}

// Scenario 2 from spec.md §8: a 2x2 frame with a transparent pixel.
func TestDecodeBuffer_TransparentPixel(t *testing.T) {
	data := buildGIF(2, 2, [][3]byte{{0, 0, 0}, {10, 20, 30}}, []frameSpec{
		{
			width: 2, height: 2,
			indices: []byte{0, 1, 0, 1},
			hasGCE:  true,
			gce:     gceSpec{disposal: 0, transparentFlag: true, transparentIndex: 1},
		},
	})

	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)
	require.Len(t, g.Frames, 1)
	require.Equal(t, []byte{0, 1, 0, 1}, g.Frames[0].IndexStream)

	rgba, err := g.DecodeFrame(0, gif.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rgba, 2*2*4)

	var alphas []byte
	for i := 0; i < 4; i++ {
		alphas = append(alphas, rgba[i*4+3])
	}
	require.Equal(t, []byte{255, 0, 255, 0}, alphas)
}

// spec.md §3: a GCE with no following image descriptor yields no frame.
func TestDecodeBuffer_OrphanGCEYieldsNoFrame(t *testing.T) {
	data := []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61,
		0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF,
		0x21, 0xF9, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x3B,
	}

	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)
	require.Empty(t, g.Frames)
}

func TestDecodeBuffer_BadSignature(t *testing.T) {
	_, err := gif.DecodeBuffer([]byte("not-a-gif-at-all-but-long-enough"))
	require.ErrorIs(t, err, gif.ErrBadSignature)
}

func TestDecodeBuffer_Truncated(t *testing.T) {
	_, err := gif.DecodeBuffer([]byte("GIF89a\x01"))
	require.ErrorIs(t, err, gif.ErrTruncated)
}

// Scenario 6 from spec.md §8: truncated mid-LZW-stream still succeeds
// with a zero-padded index stream.
func TestDecodeBuffer_TruncatedLZWZeroPads(t *testing.T) {
	full := buildGIF(2, 1, [][3]byte{{0, 0, 0}, {1, 1, 1}}, []frameSpec{
		{width: 2, height: 1, indices: []byte{1, 1}},
	})
	truncated := full[:len(full)-4]

	g, err := gif.DecodeBuffer(truncated)
	require.NoError(t, err)
	require.Len(t, g.Frames, 1)
	require.Len(t, g.Frames[0].IndexStream, 2)
}

// Scenario 5 from spec.md §8: the same 8-row image encoded interlaced
// vs non-interlaced must decode to identical composed buffers.
func TestDecodeBuffer_InterlaceMatchesSequential(t *testing.T) {
	trueOrder := []byte{0, 1, 0, 1, 0, 1, 0, 1}
	interlacedOrder := []byte{0, 0, 0, 0, 1, 1, 1, 1} // rows 0,4,2,6,1,3,5,7

	colors := [][3]byte{{0, 0, 0}, {200, 100, 50}}

	sequential := buildGIF(1, 8, colors, []frameSpec{
		{width: 1, height: 8, indices: trueOrder},
	})
	interlaced := buildGIF(1, 8, colors, []frameSpec{
		{width: 1, height: 8, interlace: true, indices: interlacedOrder},
	})

	a, err := gif.DecodeBuffer(sequential)
	require.NoError(t, err)
	b, err := gif.DecodeBuffer(interlaced)
	require.NoError(t, err)

	require.Equal(t, a.Frames[0].IndexStream, b.Frames[0].IndexStream)

	rgbaA, err := a.DecodeFrame(0, gif.DefaultOptions())
	require.NoError(t, err)
	rgbaB, err := b.DecodeFrame(0, gif.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, rgbaA, rgbaB)
}
