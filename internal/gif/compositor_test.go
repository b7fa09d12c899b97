package gif_test

import (
	"testing"

	"github.com/ostafen/gifdecode/internal/gif"
	"github.com/stretchr/testify/require"
)

var fourColors = [][3]byte{
	{0, 0, 0},       // 0 black
	{255, 0, 0},     // 1 red
	{0, 0, 255},     // 2 blue
	{255, 255, 255}, // 3 unused padding
}

// Scenario 3 from spec.md §8: disposal-2 base canvas is the
// background, not the leftover previous frame.
func TestCompositor_Disposal2RestoresBackground(t *testing.T) {
	data := buildGIF(2, 1, fourColors, []frameSpec{
		{
			width: 2, height: 1, indices: []byte{1, 1},
			hasGCE: true,
			gce:    gceSpec{disposal: 2},
		},
		{
			left: 0, top: 0, width: 1, height: 1,
			indices: []byte{1},
		},
	})

	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)
	require.Len(t, g.Frames, 2)

	rgba, err := g.DecodeFrame(1, gif.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, []byte{255, 0, 0, 255}, rgba[0:4], "frame 1 painted its own pixel")
	require.Equal(t, []byte{0, 0, 0, 255}, rgba[4:8], "untouched pixel shows the background, not leftover red")
}

// Scenario 4 from spec.md §8: disposal-3 previous_pixels snapshotting.
func TestCompositor_Disposal3RestoresPrevious(t *testing.T) {
	data := buildGIF(2, 1, fourColors, []frameSpec{
		{width: 2, height: 1, indices: []byte{1, 1}},
		{
			left: 0, top: 0, width: 1, height: 1,
			hasGCE:  true,
			gce:     gceSpec{disposal: 3},
			indices: []byte{2},
		},
		{
			left: 1, top: 0, width: 1, height: 1,
			indices: []byte{0},
		},
	})

	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)
	require.Len(t, g.Frames, 3)

	rgba, err := g.DecodeFrame(2, gif.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, []byte{255, 0, 0, 255}, rgba[0:4], "untouched pixel reverts to the pre-frame-1 red, not the blue overlay")
	require.Equal(t, []byte{0, 0, 0, 255}, rgba[4:8], "frame 2 painted its own pixel black")
}

func TestCompositor_StoreCacheIsIdempotent(t *testing.T) {
	data := buildGIF(1, 1, [][3]byte{{0, 0, 0}, {1, 2, 3}}, []frameSpec{
		{width: 1, height: 1, indices: []byte{1}},
	})
	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)

	opts := gif.DefaultOptions()
	first, err := g.DecodeFrame(0, opts)
	require.NoError(t, err)
	second, err := g.DecodeFrame(0, opts)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompositor_RawDecode(t *testing.T) {
	data := buildGIF(3, 3, [][3]byte{{0, 0, 0}, {9, 9, 9}}, []frameSpec{
		{left: 1, top: 1, width: 1, height: 1, indices: []byte{1}},
	})
	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)

	opts := gif.DefaultOptions()
	opts.RawDecode = true
	rgba, err := g.DecodeFrame(0, opts)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9, 9, 255}, rgba)
}

func TestCompositor_OutOfRangeFrameIndex(t *testing.T) {
	data := buildGIF(1, 1, [][3]byte{{0, 0, 0}, {1, 1, 1}}, []frameSpec{
		{width: 1, height: 1, indices: []byte{0}},
	})
	g, err := gif.DecodeBuffer(data)
	require.NoError(t, err)

	_, err = g.DecodeFrame(5, gif.DefaultOptions())
	require.ErrorIs(t, err, gif.ErrOutOfRangeFrameIndex)
}
