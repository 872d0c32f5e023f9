package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// BT.601 video range fixed point coefficients, scaled by 256. The 8-bit row is
// the reference; the other rows are the same weights rescaled by
// 255/(2^bits-1) so a channel can be fed at its native width.
//
//	Y = (66R + 129G +  25B + 128) >> 8 + 16
//	U = (-38R - 74G + 112B + 128) >> 8 + 128
//	V = (112R - 94G -  18B + 128) >> 8 + 128
type channelWeights struct {
	Y, U, V int32
}

var forwardWeights = [9]struct {
	R, G, B channelWeights
}{
	4: {R: channelWeights{1122, -646, 1904}, G: channelWeights{2193, -1258, -1598}, B: channelWeights{425, 1904, -306}},
	5: {R: channelWeights{543, -313, 921}, G: channelWeights{1061, -609, -773}, B: channelWeights{206, 921, -148}},
	6: {R: channelWeights{267, -154, 453}, G: channelWeights{522, -300, -380}, B: channelWeights{101, 453, -73}},
	8: {R: channelWeights{66, -38, 112}, G: channelWeights{129, -74, -94}, B: channelWeights{25, 112, -18}},
}

const (
	lumaMin   = 16
	lumaMax   = 235
	chromaMin = 16
	chromaMax = 240
)

// forwardMatrix is the RGB to YUV transform for one source encoding.
type forwardMatrix struct {
	r, g, b channelWeights
}

func newForwardMatrix(d *frame.Descriptor) forwardMatrix {
	return forwardMatrix{
		r: forwardWeights[d.Red.Bits].R,
		g: forwardWeights[d.Green.Bits].G,
		b: forwardWeights[d.Blue.Bits].B,
	}
}

func (m *forwardMatrix) luma(r, g, b uint32) uint8 {
	y := (m.r.Y*int32(r)+m.g.Y*int32(g)+m.b.Y*int32(b)+128)>>8 + 16
	return clamp(y, lumaMin, lumaMax)
}

func (m *forwardMatrix) chroma(r, g, b uint32) (uint8, uint8) {
	u := (m.r.U*int32(r)+m.g.U*int32(g)+m.b.U*int32(b)+128)>>8 + 128
	v := (m.r.V*int32(r)+m.g.V*int32(g)+m.b.V*int32(b)+128)>>8 + 128
	return clamp(u, chromaMin, chromaMax), clamp(v, chromaMin, chromaMax)
}

// yuvToRGB8 is the inverse transform. Every channel saturates to [0, 255].
func yuvToRGB8(y, u, v uint8) (uint32, uint32, uint32) {
	c := (int32(y) - 16) * 298
	d := int32(u) - 128
	e := int32(v) - 128
	r := (c + 409*e + 128) >> 8
	g := (c - 100*d - 208*e + 128) >> 8
	b := (c + 516*d + 128) >> 8
	return uint32(clamp(r, 0, 255)), uint32(clamp(g, 0, 255)), uint32(clamp(b, 0, 255))
}

func clamp(v, lo, hi int32) uint8 {
	if v < lo {
		return uint8(lo)
	}
	if v > hi {
		return uint8(hi)
	}
	return uint8(v)
}
