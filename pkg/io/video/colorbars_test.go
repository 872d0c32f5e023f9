package video

import (
	"testing"

	"github.com/pion/pixfmt/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorBars(t *testing.T) {
	const w, h = 14, 8

	card, err := ColorBars(frame.FormatI444, w, h, 0)
	require.NoError(t, err)
	l, err := card.Planes()
	require.NoError(t, err)

	// Red is the sixth bar.
	assert.Equal(t, uint8(82*75/100), l.Y[10])
	assert.Equal(t, uint8(90), l.U[10])
	assert.Equal(t, uint8(240), l.V[10])

	// Bottom row: ramp then noise, both achromatic.
	row := (h - 1) * l.YStride
	assert.Equal(t, uint8(0), l.Y[row])
	for x := 0; x < w; x++ {
		assert.Equal(t, uint8(128), l.U[row+x])
	}
	for x := w * 5 / 7; x < w; x++ {
		assert.Contains(t, []uint8{0, 255}, l.Y[row+x])
	}

	again, err := ColorBars(frame.FormatI444, w, h, 0)
	require.NoError(t, err)
	assert.Equal(t, card.Pix, again.Pix)
}

func TestColorBarsFormats(t *testing.T) {
	for _, f := range frame.Formats() {
		card, err := ColorBars(f, 8, 4, 1)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, card.Format)
		assert.Len(t, card.Pix, frame.FrameSize(f, 8, 4), f.String())
	}
}
