package frame

import (
	"fmt"

	mio "github.com/pion/pixfmt/pkg/io"
)

// Layout is the resolved memory layout of one frame. Each plane slice starts at
// the plane origin and extends to the end of the frame buffer, so a row may be
// read past its nominal plane end when the pitch is smaller than the width.
//
// RGB and alpha frames only populate Y.
type Layout struct {
	Format Format

	Y, U, V                   []byte
	YOffset, UOffset, VOffset int

	// Byte distance between vertically adjacent samples.
	YStride, CStride int
	// Byte distance between horizontally adjacent samples.
	YStep, CStep int
	// Bytes occupied by one sample of the first plane.
	SampleBytes int

	Subsampling Subsampling
}

// HasChroma reports whether the layout carries U and V samples.
func (l *Layout) HasChroma() bool {
	return l.Format.Category().IsYUV()
}

// ChromaSize returns the chroma sample grid for a width x height frame. Trailing
// luma columns or rows beyond the grid share the last chroma sample.
func (l *Layout) ChromaSize(width, height int) (int, int) {
	if !l.HasChroma() || width <= 0 || height <= 0 {
		return 0, 0
	}
	return width >> l.Subsampling.H, height >> l.Subsampling.V
}

// Extent returns the number of bytes, counted from the start of the frame
// buffer, that a width x height conversion touches.
func (l *Layout) Extent(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n := l.YOffset + (height-1)*l.YStride + (width-1)*l.YStep + l.SampleBytes
	if !l.HasChroma() {
		return n
	}

	cw, ch := l.ChromaSize(width, height)
	ucw := cw
	if l.Format.Category() == CategoryYUVPacked {
		// The lone pixel of an odd row still owns a U byte.
		ucw = (width + 1) >> 1
	}
	if e := chromaExtent(l.UOffset, l.CStride, l.CStep, ucw, ch); e > n {
		n = e
	}
	if e := chromaExtent(l.VOffset, l.CStride, l.CStep, cw, ch); e > n {
		n = e
	}
	return n
}

func chromaExtent(offset, stride, step, cw, ch int) int {
	if cw == 0 || ch == 0 {
		return 0
	}
	return offset + (ch-1)*stride + (cw-1)*step + 1
}

func tail(buf []byte, off int) []byte {
	if off > len(buf) {
		off = len(buf)
	}
	return buf[off:]
}

// Planes computes where each plane of a frame of format f lives inside buf. The
// result depends on pitch rather than width, so it is recomputed for every
// frame.
func Planes(buf []byte, pitch, height int, f Format) (Layout, error) {
	if !f.Valid() {
		return Layout{}, fmt.Errorf("frame: %s is not supported", f)
	}
	if pitch < 0 || height < 0 {
		pitch, height = 0, 0
	}
	if required := FrameSize(f, pitch, height); len(buf) < required {
		return Layout{}, &mio.InsufficientBufferError{RequiredSize: required}
	}

	d := f.Descriptor()
	size := pitch * height
	l := Layout{
		Format:      f,
		YStride:     pitch,
		YStep:       1,
		SampleBytes: 1,
		Subsampling: d.Subsampling,
	}

	switch f {
	case FormatI420:
		l.UOffset, l.VOffset = size, size+size/4
		l.CStride, l.CStep = pitch/2, 1
	case FormatYV12:
		l.VOffset, l.UOffset = size, size+size/4
		l.CStride, l.CStep = pitch/2, 1
	case FormatNV12:
		l.UOffset, l.VOffset = size, size+1
		l.CStride, l.CStep = pitch, 2
	case FormatNV21:
		l.VOffset, l.UOffset = size, size+1
		l.CStride, l.CStep = pitch, 2
	case FormatYUY2:
		// Y0 U Y1 V
		l.YOffset, l.UOffset, l.VOffset = 0, 1, 3
		l.YStride, l.YStep = 2*pitch, 2
		l.CStride, l.CStep = 2*pitch, 4
	case FormatUYVY:
		// U Y0 V Y1
		l.UOffset, l.YOffset, l.VOffset = 0, 1, 2
		l.YStride, l.YStep = 2*pitch, 2
		l.CStride, l.CStep = 2*pitch, 4
	case FormatI422:
		l.UOffset, l.VOffset = size, size+size/2
		l.CStride, l.CStep = pitch/2, 1
	case FormatI444:
		l.UOffset, l.VOffset = size, 2*size
		l.CStride, l.CStep = pitch, 1
	default:
		bpp := d.BytesPerPixel()
		l.YStride, l.YStep, l.SampleBytes = pitch*bpp, bpp, bpp
	}

	l.Y = tail(buf, l.YOffset)
	if l.HasChroma() {
		l.U = tail(buf, l.UOffset)
		l.V = tail(buf, l.VOffset)
	}
	return l, nil
}
