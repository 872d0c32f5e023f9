package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// widen stretches v from `from` to `to` bits by repeating its bit pattern, so
// that an all-ones input stays all ones (a nibble n becomes n*0x11).
func widen(v uint32, from, to uint8) uint32 {
	var out uint32
	for shift := int(to) - int(from); shift > -int(from); shift -= int(from) {
		if shift >= 0 {
			out |= v << uint(shift)
		} else {
			out |= v >> uint(-shift)
		}
	}
	return out
}

// narrow drops the low bits of v. There is no rounding.
func narrow(v uint32, from, to uint8) uint32 {
	return v >> (from - to)
}

func requantize(v uint32, from, to uint8) uint32 {
	switch {
	case from == to:
		return v
	case from == 0:
		return 0
	case from < to:
		return widen(v, from, to)
	default:
		return narrow(v, from, to)
	}
}

// convertRGB converts between two RGB encodings pixel by pixel.
func convertRGB(src, dst *frame.Layout, width, height int) {
	sd, dd := src.Format.Descriptor(), dst.Format.Descriptor()
	if sd.ByteAligned() && dd.ByteAligned() {
		reorderRGB(src, dst, &sd, &dd, width, height)
		return
	}

	sbpp, dbpp := sd.BytesPerPixel(), dd.BytesPerPixel()
	for row := 0; row < height; row++ {
		s := src.Y[row*src.YStride:]
		d := dst.Y[row*dst.YStride:]
		for x := 0; x < width; x++ {
			px := loadPixel(s[x*sbpp:], sbpp)
			r, g, b := unpackRGB(&sd, px)

			out := dd.Red.Insert(requantize(r, sd.Red.Bits, dd.Red.Bits)) |
				dd.Green.Insert(requantize(g, sd.Green.Bits, dd.Green.Bits)) |
				dd.Blue.Insert(requantize(b, sd.Blue.Bits, dd.Blue.Bits))
			if dd.HasAlpha() {
				a := dd.Alpha.Max()
				if sd.HasAlpha() {
					a = requantize(sd.Alpha.Extract(px), sd.Alpha.Bits, dd.Alpha.Bits)
				}
				out |= dd.Alpha.Insert(a)
			}
			storePixel(d[x*dbpp:], dbpp, out)
		}
	}
}

// reorderRGB moves whole bytes between 24 and 32-bit formats using their
// channel orders. RGB888 and BGR888 share this path with swapped offsets.
func reorderRGB(src, dst *frame.Layout, sd, dd *frame.Descriptor, width, height int) {
	sbpp, dbpp := sd.BytesPerPixel(), dd.BytesPerPixel()
	sr, sg, sb := sd.ColorBase+sd.Order.R, sd.ColorBase+sd.Order.G, sd.ColorBase+sd.Order.B
	dr, dg, db := dd.ColorBase+dd.Order.R, dd.ColorBase+dd.Order.G, dd.ColorBase+dd.Order.B
	sa, da := sd.AlphaOffset, dd.AlphaOffset

	for row := 0; row < height; row++ {
		s := src.Y[row*src.YStride:]
		d := dst.Y[row*dst.YStride:]
		for x := 0; x < width; x++ {
			sp := s[x*sbpp : x*sbpp+sbpp : x*sbpp+sbpp]
			dp := d[x*dbpp : x*dbpp+dbpp : x*dbpp+dbpp]
			r, g, b := sp[sr], sp[sg], sp[sb]
			dp[dr], dp[dg], dp[db] = r, g, b
			if da >= 0 {
				if sa >= 0 {
					dp[da] = sp[sa]
				} else {
					dp[da] = 0xFF
				}
			}
		}
	}
}
