package video

import (
	"fmt"
	"image"

	"github.com/pion/pixfmt/pkg/convert"
	"github.com/pion/pixfmt/pkg/frame"
)

// FrameToImage exposes a raw frame as an image.Image. YUV frames become
// *image.YCbCr and share img's buffer when the format is planar and the
// dimensions fill the chroma grid; everything else is converted into a new
// buffer, RGB and alpha frames as *image.RGBA.
func FrameToImage(img *frame.Image) (image.Image, error) {
	if img == nil {
		return nil, convert.ErrNullPointer
	}
	if img.Format.Category().IsYUV() {
		return decodeYCbCr(img)
	}
	return decodeRGBA(img)
}

func decodeRGBA(img *frame.Image) (image.Image, error) {
	r := image.Rect(0, 0, img.Width, img.Height)
	if img.Format == frame.FormatRGBA8888 {
		size := frame.FrameSize(img.Format, img.Pitch, img.Height)
		if size > len(img.Pix) {
			return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(img.Pix), size)
		}
		return &image.RGBA{
			Pix:    img.Pix[:size:size],
			Stride: 4 * img.Pitch,
			Rect:   r,
		}, nil
	}

	dst := image.NewRGBA(r)
	err := convert.ConvertImage(img, &frame.Image{
		Pix:    dst.Pix,
		Pitch:  img.Width,
		Width:  img.Width,
		Height: img.Height,
		Format: frame.FormatRGBA8888,
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// planarTarget picks the planar format that keeps every chroma sample of f.
func planarTarget(f frame.Format, width, height int) (frame.Format, image.YCbCrSubsampleRatio) {
	s := f.Descriptor().Subsampling
	oddWidth := s.H > 0 && width&1 == 1
	oddHeight := s.V > 0 && height&1 == 1
	switch {
	case oddWidth || oddHeight || s == frame.Subsample444:
		// image.YCbCr rounds chroma dimensions up; replicate into 4:4:4
		// instead so the lone-pixel chroma matches the converter.
		return frame.FormatI444, image.YCbCrSubsampleRatio444
	case s == frame.Subsample422:
		return frame.FormatI422, image.YCbCrSubsampleRatio422
	default:
		if f == frame.FormatYV12 {
			return frame.FormatYV12, image.YCbCrSubsampleRatio420
		}
		return frame.FormatI420, image.YCbCrSubsampleRatio420
	}
}

func decodeYCbCr(img *frame.Image) (image.Image, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return &image.YCbCr{SubsampleRatio: image.YCbCrSubsampleRatio444}, nil
	}
	target, ratio := planarTarget(img.Format, img.Width, img.Height)
	planar := img
	if target != img.Format {
		planar = frame.NewImage(target, img.Width, img.Height)
		if err := convert.ConvertImage(img, planar); err != nil {
			return nil, err
		}
	}

	l, err := planar.Planes()
	if err != nil {
		return nil, err
	}
	if n := l.Extent(planar.Width, planar.Height); n > len(planar.Pix) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(planar.Pix), n)
	}
	cw, ch := l.ChromaSize(planar.Width, planar.Height)
	yi := (planar.Height-1)*l.YStride + planar.Width
	ci := 0
	if cw > 0 && ch > 0 {
		ci = (ch-1)*l.CStride + cw
	}

	return &image.YCbCr{
		Y:              l.Y[:yi:yi],
		YStride:        l.YStride,
		Cb:             l.U[:ci:ci],
		Cr:             l.V[:ci:ci],
		CStride:        l.CStride,
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, planar.Width, planar.Height),
	}, nil
}
