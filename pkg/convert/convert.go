// Package convert converts raw frames between the pixel formats of package
// frame. Every entry point validates its buffers before writing anything, so a
// failed call leaves the destination untouched.
package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

var defaultEngine = NewEngine()

// Convert converts with the default, portable-only engine. See Engine.Convert.
func Convert(src, dst []byte, pitch, width, height int, srcFormat, dstFormat frame.Format) error {
	return defaultEngine.Convert(src, dst, pitch, width, height, srcFormat, dstFormat)
}

// ConvertImage converts with the default engine. See Engine.ConvertImage.
func ConvertImage(src, dst *frame.Image) error {
	return defaultEngine.ConvertImage(src, dst)
}

// Supported reports whether the default engine can convert src to dst.
func Supported(src, dst frame.Format) bool {
	return defaultEngine.Supported(src, dst)
}
