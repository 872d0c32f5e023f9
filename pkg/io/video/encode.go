package video

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/pion/pixfmt/pkg/convert"
	"github.com/pion/pixfmt/pkg/frame"
	mio "github.com/pion/pixfmt/pkg/io"
)

// ImageToFrame renders src into dst. src is first normalised to RGBA8888, so
// any image.Image is accepted; its bounds must match dst's dimensions.
//
// Note: *image.YCbCr sources go through the full-range colour model of package
// image/color before the video-range forward matrix runs.
func ImageToFrame(src image.Image, dst *frame.Image) error {
	if src == nil || dst == nil {
		return convert.ErrNullPointer
	}
	b := src.Bounds()
	if b.Dx() != dst.Width || b.Dy() != dst.Height {
		return convert.ErrSizeMismatch
	}

	if dst.Format == frame.FormatRGBA8888 {
		if dst.Pix == nil {
			return convert.ErrNullPointer
		}
		l, err := dst.Planes()
		if err != nil {
			return err
		}
		n := l.Extent(dst.Width, dst.Height)
		if n > len(dst.Pix) {
			return &mio.InsufficientBufferError{RequiredSize: n}
		}
		// Render straight into the destination buffer.
		canvas := &image.RGBA{
			Pix:    dst.Pix[:n:n],
			Stride: 4 * dst.Pitch,
			Rect:   image.Rect(0, 0, dst.Width, dst.Height),
		}
		draw.Draw(canvas, canvas.Rect, src, b.Min, draw.Src)
		return nil
	}

	return convert.ConvertImage(rgbaFrame(toRGBA(src)), dst)
}

// toRGBA copies src into a new RGBA image anchored at the origin.
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

func rgbaFrame(img *image.RGBA) *frame.Image {
	return &frame.Image{
		Pix:    img.Pix,
		Pitch:  img.Stride / 4,
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		Format: frame.FormatRGBA8888,
	}
}
