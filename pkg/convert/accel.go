package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// Accelerator is an optional backend that can take over some format pairs. It
// must produce the same bytes as the portable kernels.
type Accelerator interface {
	// FormatPairSupported reports whether Convert can handle src -> dst.
	FormatPairSupported(src, dst frame.Format) bool
	// Convert runs the conversion. Both images have already been validated.
	Convert(src, dst *frame.Image) error
}

// Destinations whose accelerated behaviour is unresolved always stay on the
// portable path, whatever the accelerator reports.
func acceleratorMasked(dst frame.Format) bool {
	switch dst {
	case frame.FormatARGB1555, frame.FormatRGBA5551, frame.FormatAlpha8:
		return true
	default:
		return false
	}
}
