package convert

import (
	"errors"
	"testing"

	"github.com/pion/pixfmt/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccelerator struct {
	calls int
	err   error
}

func (a *fakeAccelerator) FormatPairSupported(src, dst frame.Format) bool {
	return true
}

func (a *fakeAccelerator) Convert(src, dst *frame.Image) error {
	a.calls++
	if a.err != nil {
		return a.err
	}
	for i := range dst.Pix {
		dst.Pix[i] = 0x42
	}
	return nil
}

func TestAcceleratorDelegation(t *testing.T) {
	a := &fakeAccelerator{}
	e := NewEngine(WithAccelerator(a))

	src := make([]byte, 12)
	dst := make([]byte, 12)
	require.NoError(t, e.Convert(src, dst, 2, 2, 2, frame.FormatRGB888, frame.FormatBGR888))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, filled(12, 0x42), dst)
}

func TestAcceleratorMasked(t *testing.T) {
	cases := map[string]struct {
		src, dst frame.Format
	}{
		"ARGB1555": {frame.FormatRGB565, frame.FormatARGB1555},
		"RGBA5551": {frame.FormatRGB565, frame.FormatRGBA5551},
		"Alpha8":   {frame.FormatRGB888, frame.FormatAlpha8},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			a := &fakeAccelerator{}
			e := NewEngine(WithAccelerator(a))

			src := make([]byte, frame.FrameSize(c.src, 2, 2))
			dst := filled(frame.FrameSize(c.dst, 2, 2), canary)
			require.NoError(t, e.Convert(src, dst, 2, 2, 2, c.src, c.dst))
			assert.Zero(t, a.calls)

			want := make([]byte, len(dst))
			require.NoError(t, Convert(src, want, 2, 2, 2, c.src, c.dst))
			assert.Equal(t, want, dst)
		})
	}
}

func TestAcceleratorError(t *testing.T) {
	errBackend := errors.New("backend failed")
	a := &fakeAccelerator{err: errBackend}
	e := NewEngine(WithAccelerator(a))

	err := e.Convert(make([]byte, 16), make([]byte, 16), 2, 2, 2, frame.FormatARGB8888, frame.FormatRGBA8888)
	require.ErrorIs(t, err, errBackend)
	assert.False(t, IsError(err))
}

func TestAcceleratorAfterValidation(t *testing.T) {
	a := &fakeAccelerator{}
	e := NewEngine(WithAccelerator(a), WithoutPair(frame.FormatRGB888, frame.FormatRGBA8888))

	src := make([]byte, 12)
	require.ErrorIs(t, e.Convert(nil, make([]byte, 12), 2, 2, 2, frame.FormatRGB888, frame.FormatBGR888), ErrNullPointer)
	require.ErrorIs(t, e.Convert(src, make([]byte, 12), 2, 2, 2, frame.FormatRGB888, frame.FormatRGB888), ErrFormatMismatch)
	require.ErrorIs(t, e.Convert(src, make([]byte, 16), 2, 2, 2, frame.FormatRGB888, frame.FormatRGBA8888), ErrUnsupportedFormat)
	require.Error(t, e.Convert(src, make([]byte, 11), 2, 2, 2, frame.FormatRGB888, frame.FormatBGR888))
	require.NoError(t, e.Convert(src, make([]byte, 12), 0, 0, 2, frame.FormatRGB888, frame.FormatBGR888))
	assert.Zero(t, a.calls)
}
