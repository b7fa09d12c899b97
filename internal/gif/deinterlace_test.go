package gif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeinterlace_EightRows(t *testing.T) {
	width := 1
	// Encoded in interlace order (offsets 0,4,2,1 / steps 8,8,4,2):
	// pass1 row 0; pass2 row 4; pass3 rows 2,6; pass4 rows 1,3,5,7,
	// so the row order read is 0,4, 2,6, 1,3,5,7.
	encoded := []byte{0, 4, 2, 6, 1, 3, 5, 7}

	out := deinterlace(encoded, width)
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, out)
}

func TestDeinterlace_ZeroWidthIsNoop(t *testing.T) {
	require.Equal(t, []byte{1, 2, 3}, deinterlace([]byte{1, 2, 3}, 0))
}
