package video

import (
	"image"

	"github.com/pion/pixfmt/internal/logging"
	"github.com/pion/pixfmt/pkg/frame"
)

var logger = logging.NewLogger("pixfmt/io/video")

// ToFormat passes every frame through the raw format f and back, so downstream
// readers see exactly what a sink storing f would show. The returned images
// are only valid until the next Read.
func ToFormat(f frame.Format) TransformFunc {
	return func(r Reader) Reader {
		buff := NewFrameBuffer(0)
		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, func() {}, err
			}
			defer release()

			b := img.Bounds()
			raw := buff.Image(f, b.Dx(), b.Dy())
			if err := ImageToFrame(img, raw); err != nil {
				logger.Errorf("failed to store frame as %s: %v", f, err)
				return nil, func() {}, err
			}

			out, err := FrameToImage(raw)
			if err != nil {
				return nil, func() {}, err
			}
			return out, func() {}, nil
		})
	}
}
