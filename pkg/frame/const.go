package frame

import (
	"fmt"
	"strings"
)

// Format identifies a raw pixel encoding. The numeric values are part of the
// public contract and never change.
//
// Names follow two conventions. Formats with sub-byte channels (RGB565,
// ARGB1555, RGBA5551, ARGB4444, RGBA4444) name their bit fields from the most
// significant bit of a little-endian 16-bit word, so ARGB4444 keeps A in the
// top nibble of the word. Formats with 8-bit channels name their bytes in
// memory order, so ARGB8888 stores A in the first byte, which is the low byte
// of a little-endian 32-bit word.
type Format uint8

const (
	// Alpha Formats

	// FormatAlpha8 is a single 8-bit sample per pixel
	FormatAlpha8 Format = 1

	// RGB Formats

	// FormatRGB565 is a little-endian 16-bit word, R in the high bits
	FormatRGB565 Format = 2
	// FormatARGB1555 is a little-endian 16-bit word with a 1-bit alpha on top
	FormatARGB1555 Format = 3
	// FormatRGBA5551 is a little-endian 16-bit word with a 1-bit alpha at the bottom
	FormatRGBA5551 Format = 4
	// FormatARGB4444 is a little-endian 16-bit word, A in the high nibble
	FormatARGB4444 Format = 5
	// FormatRGBA4444 is a little-endian 16-bit word, A in the low nibble
	FormatRGBA4444 Format = 6
	// FormatRGB888 stores bytes in R, G, B order
	FormatRGB888 Format = 7
	// FormatBGR888 stores bytes in B, G, R order
	FormatBGR888 Format = 8
	// FormatARGB8888 stores bytes in A, R, G, B order
	FormatARGB8888 Format = 9
	// FormatABGR8888 stores bytes in A, B, G, R order
	FormatABGR8888 Format = 10
	// FormatRGBA8888 stores bytes in R, G, B, A order
	FormatRGBA8888 Format = 11
	// FormatBGRA8888 stores bytes in B, G, R, A order
	FormatBGRA8888 Format = 12

	// YUV Formats

	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 Format = 13
	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = 14
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = 15
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = 16
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = 17
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = 18
	// FormatI422 is a planar YUV format with horizontal-only chroma sub-sampling
	FormatI422 Format = 19
	// FormatI444 is a YUV format without sub-sampling
	FormatI444 Format = 20

	formatEnd = FormatI444 + 1
)

// YUV aliases

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2

var formatNames = [formatEnd]string{
	FormatAlpha8:   "ALPHA8",
	FormatRGB565:   "RGB565",
	FormatARGB1555: "ARGB1555",
	FormatRGBA5551: "RGBA5551",
	FormatARGB4444: "ARGB4444",
	FormatRGBA4444: "RGBA4444",
	FormatRGB888:   "RGB888",
	FormatBGR888:   "BGR888",
	FormatARGB8888: "ARGB8888",
	FormatABGR8888: "ABGR8888",
	FormatRGBA8888: "RGBA8888",
	FormatBGRA8888: "BGRA8888",
	FormatYV12:     "YV12",
	FormatI420:     "I420",
	FormatNV12:     "NV12",
	FormatNV21:     "NV21",
	FormatYUY2:     "YUY2",
	FormatUYVY:     "UYVY",
	FormatI422:     "I422",
	FormatI444:     "I444",
}

// Formats returns every known format in ascending numeric order.
func Formats() []Format {
	formats := make([]Format, 0, formatEnd-1)
	for f := FormatAlpha8; f < formatEnd; f++ {
		formats = append(formats, f)
	}
	return formats
}

// Valid reports whether f is part of the catalogue.
func (f Format) Valid() bool {
	return f >= FormatAlpha8 && f < formatEnd
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// ParseFormat looks a format up by name. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "YUYV" {
		return FormatYUYV, nil
	}
	for f := FormatAlpha8; f < formatEnd; f++ {
		if formatNames[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("frame: unknown format %q", name)
}
