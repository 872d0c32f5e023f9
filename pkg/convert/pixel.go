package convert

import (
	"encoding/binary"

	"github.com/pion/pixfmt/pkg/frame"
)

func loadPixel(p []byte, bpp int) uint32 {
	switch bpp {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(p))
	case 3:
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	default:
		return binary.LittleEndian.Uint32(p)
	}
}

func storePixel(p []byte, bpp int, v uint32) {
	switch bpp {
	case 1:
		p[0] = uint8(v)
	case 2:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case 3:
		p[0], p[1], p[2] = uint8(v), uint8(v>>8), uint8(v>>16)
	default:
		binary.LittleEndian.PutUint32(p, v)
	}
}

// unpackRGB returns the colour channels of px at their native widths.
func unpackRGB(d *frame.Descriptor, px uint32) (r, g, b uint32) {
	return d.Red.Extract(px), d.Green.Extract(px), d.Blue.Extract(px)
}

// packRGB8 narrows 8-bit channels to the widths of d and builds a pixel word.
// Formats with alpha get an opaque pixel.
func packRGB8(d *frame.Descriptor, r, g, b uint32) uint32 {
	px := d.Red.Insert(requantize(r, 8, d.Red.Bits)) |
		d.Green.Insert(requantize(g, 8, d.Green.Bits)) |
		d.Blue.Insert(requantize(b, 8, d.Blue.Bits))
	if d.HasAlpha() {
		px |= d.Alpha.Insert(d.Alpha.Max())
	}
	return px
}
