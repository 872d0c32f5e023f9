package convert

import (
	"testing"

	"github.com/pion/pixfmt/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLuma = []byte{
	0xF0, 0x10, 0x00, 0x00,
	0x00, 0x00, 0x40, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x80, 0x30, 0x00,
}

func join(planes ...[]byte) []byte {
	var out []byte
	for _, p := range planes {
		out = append(out, p...)
	}
	return out
}

func TestConvertYUVDecimate(t *testing.T) {
	cases := map[string]struct {
		src      frame.Format
		in       []byte
		expected []byte
	}{
		"I444": {
			src: frame.FormatI444,
			in: join(testLuma,
				[]byte{
					0xF0, 0xF0, 0x80, 0x80,
					0xF0, 0xF0, 0x80, 0x80,
					0x80, 0x80, 0x30, 0x30,
					0x80, 0x80, 0x30, 0x30,
				},
				[]byte{
					0x10, 0x10, 0x40, 0x40,
					0x10, 0x10, 0x40, 0x40,
					0x80, 0x80, 0x80, 0x80,
					0x80, 0x80, 0x80, 0x80,
				},
			),
			expected: join(testLuma,
				[]byte{0xF0, 0x80, 0x80, 0x30},
				[]byte{0x10, 0x40, 0x80, 0x80},
			),
		},
		"I422": {
			src: frame.FormatI422,
			in: join(testLuma,
				[]byte{
					0xF0, 0x80,
					0xF0, 0x80,
					0x80, 0x30,
					0x80, 0x30,
				},
				[]byte{
					0x10, 0x40,
					0x10, 0x40,
					0x80, 0x80,
					0x80, 0x80,
				},
			),
			expected: join(testLuma,
				[]byte{0xF0, 0x80, 0x80, 0x30},
				[]byte{0x10, 0x40, 0x80, 0x80},
			),
		},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			out := make([]byte, frame.FrameSize(frame.FormatI420, 4, 4))
			require.NoError(t, Convert(c.in, out, 4, 4, 4, c.src, frame.FormatI420))
			assert.Equal(t, c.expected, out)
		})
	}
}

func TestConvertYUVReplicate(t *testing.T) {
	in := join(testLuma,
		[]byte{0xF0, 0x80, 0x80, 0x30},
		[]byte{0x10, 0x40, 0x80, 0x80},
	)

	t.Run("I444", func(t *testing.T) {
		out := make([]byte, frame.FrameSize(frame.FormatI444, 4, 4))
		require.NoError(t, Convert(in, out, 4, 4, 4, frame.FormatI420, frame.FormatI444))
		assert.Equal(t, join(testLuma,
			[]byte{
				0xF0, 0xF0, 0x80, 0x80,
				0xF0, 0xF0, 0x80, 0x80,
				0x80, 0x80, 0x30, 0x30,
				0x80, 0x80, 0x30, 0x30,
			},
			[]byte{
				0x10, 0x10, 0x40, 0x40,
				0x10, 0x10, 0x40, 0x40,
				0x80, 0x80, 0x80, 0x80,
				0x80, 0x80, 0x80, 0x80,
			},
		), out)
	})
	t.Run("I422", func(t *testing.T) {
		out := make([]byte, frame.FrameSize(frame.FormatI422, 4, 4))
		require.NoError(t, Convert(in, out, 4, 4, 4, frame.FormatI420, frame.FormatI422))
		assert.Equal(t, join(testLuma,
			[]byte{
				0xF0, 0x80,
				0xF0, 0x80,
				0x80, 0x30,
				0x80, 0x30,
			},
			[]byte{
				0x10, 0x40,
				0x10, 0x40,
				0x80, 0x80,
				0x80, 0x80,
			},
		), out)
	})
}

func TestConvertYUVPlaneOrder(t *testing.T) {
	y := []byte{1, 2, 3, 4}
	i420 := join(y, []byte{5}, []byte{6})

	cases := map[string]struct {
		format frame.Format
		data   []byte
	}{
		"YV12": {frame.FormatYV12, join(y, []byte{6}, []byte{5})},
		"NV12": {frame.FormatNV12, join(y, []byte{5, 6})},
		"NV21": {frame.FormatNV21, join(y, []byte{6, 5})},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			out := make([]byte, 6)
			require.NoError(t, Convert(i420, out, 2, 2, 2, frame.FormatI420, c.format))
			assert.Equal(t, c.data, out)

			back := make([]byte, 6)
			require.NoError(t, Convert(c.data, back, 2, 2, 2, c.format, frame.FormatI420))
			assert.Equal(t, i420, back)
		})
	}
}

func TestConvertPackedToPlanar(t *testing.T) {
	// 4x2, each row carries its own chroma pair.
	yuy2 := []byte{
		1, 10, 2, 20, 3, 11, 4, 21,
		5, 12, 6, 22, 7, 13, 8, 23,
	}
	uyvy := []byte{
		10, 1, 20, 2, 11, 3, 21, 4,
		12, 5, 22, 6, 13, 7, 23, 8,
	}
	expected := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		10, 11,
		20, 21,
	}

	out := make([]byte, len(expected))
	require.NoError(t, YUY2ToI420(yuy2, out, 4, 4, 2))
	assert.Equal(t, expected, out)

	out = make([]byte, len(expected))
	require.NoError(t, UYVYToI420(uyvy, out, 4, 4, 2))
	assert.Equal(t, expected, out)

	back := make([]byte, len(yuy2))
	require.NoError(t, I420ToYUY2(expected, back, 4, 4, 2))
	assert.Equal(t, []byte{
		1, 10, 2, 20, 3, 11, 4, 21,
		5, 10, 6, 20, 7, 11, 8, 21,
	}, back)
}

func TestConvertPackedOddWidth(t *testing.T) {
	// 3x2 I420 into YUY2: the lone pixel of every row gets the row's last U.
	src := []byte{
		1, 2, 3,
		4, 5, 6,
		7,
		9,
	}
	out := filled(12, canary)
	require.NoError(t, Convert(src, out, 3, 3, 2, frame.FormatI420, frame.FormatYUY2))
	assert.Equal(t, []byte{
		1, 7, 2, 9, 3, 7,
		4, 7, 5, 9, 6, 7,
	}, out)

	back := filled(8, canary)
	require.NoError(t, Convert(out, back, 3, 3, 2, frame.FormatYUY2, frame.FormatI420))
	assert.Equal(t, src, back)
}

func TestConvertPaddedPlanes(t *testing.T) {
	// I444 at pitch 3 carrying a 2x2 frame into a tightly packed NV12.
	src := &frame.Image{
		Pix: []byte{
			1, 2, 0,
			3, 4, 0,
			5, 0, 0,
			0, 0, 0,
			6, 0, 0,
			0, 0, 0,
		},
		Pitch:  3,
		Width:  2,
		Height: 2,
		Format: frame.FormatI444,
	}
	dst := frame.NewImage(frame.FormatNV12, 2, 2)
	require.NoError(t, ConvertImage(src, dst))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, dst.Pix)
}
