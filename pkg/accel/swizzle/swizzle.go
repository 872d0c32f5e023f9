// Package swizzle is an accelerated backend for convert.Engine. It reorders the
// bytes of 24 and 32-bit RGB pixels a machine word at a time, four pixels per
// step with a scalar remainder.
package swizzle

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/pion/pixfmt/pkg/frame"
)

const chunk = 4

var errUnsupported = errors.New("swizzle: unsupported format pair")

// Accelerator implements convert.Accelerator.
type Accelerator struct{}

// New returns an Accelerator.
func New() *Accelerator {
	return &Accelerator{}
}

// FormatPairSupported reports whether src and dst are both byte-aligned RGB
// formats of the same size.
func (a *Accelerator) FormatPairSupported(src, dst frame.Format) bool {
	sd, dd := src.Descriptor(), dst.Descriptor()
	return src != dst && sd.ByteAligned() && dd.ByteAligned() && sd.BitsPerPixel == dd.BitsPerPixel
}

// Convert reorders src into dst.
func (a *Accelerator) Convert(src, dst *frame.Image) error {
	if !a.FormatPairSupported(src.Format, dst.Format) {
		return errUnsupported
	}
	sd, dd := src.Format.Descriptor(), dst.Format.Descriptor()
	bpp := sd.BytesPerPixel()
	p := newPermutation(&sd, &dd)

	for row := 0; row < src.Height; row++ {
		s := src.Pix[row*src.Pitch*bpp:]
		d := dst.Pix[row*dst.Pitch*bpp:]
		if bpp == 4 {
			p.apply32(d, s, src.Width)
		} else {
			p.apply24(d, s, src.Width)
		}
	}
	return nil
}

// permutation maps every destination byte of a pixel to the source byte it
// comes from.
type permutation struct {
	from   [4]int
	rotate int // bits to rotate a 32-bit word left, or -1
}

func newPermutation(sd, dd *frame.Descriptor) permutation {
	var p permutation
	p.from[dd.ColorBase+dd.Order.R] = sd.ColorBase + sd.Order.R
	p.from[dd.ColorBase+dd.Order.G] = sd.ColorBase + sd.Order.G
	p.from[dd.ColorBase+dd.Order.B] = sd.ColorBase + sd.Order.B
	if dd.AlphaOffset >= 0 {
		p.from[dd.AlphaOffset] = sd.AlphaOffset
	}

	p.rotate = -1
	if sd.BitsPerPixel == 32 {
		// A rotation moves every byte by the same distance, e.g. ARGB <-> RGBA.
		k := p.from[0]
		rotation := true
		for i := 1; i < 4; i++ {
			if (p.from[i]-i+4)%4 != k {
				rotation = false
				break
			}
		}
		if rotation {
			p.rotate = -8 * k
		}
	}
	return p
}

func (p *permutation) word(v uint32) uint32 {
	if p.rotate != -1 {
		return bits.RotateLeft32(v, p.rotate)
	}
	return (v>>(8*p.from[0]))&0xFF |
		((v>>(8*p.from[1]))&0xFF)<<8 |
		((v>>(8*p.from[2]))&0xFF)<<16 |
		((v>>(8*p.from[3]))&0xFF)<<24
}

func (p *permutation) apply32(d, s []byte, width int) {
	n := width &^ (chunk - 1)
	i := 0
	for ; i < n*4; i += chunk * 4 {
		binary.LittleEndian.PutUint32(d[i:], p.word(binary.LittleEndian.Uint32(s[i:])))
		binary.LittleEndian.PutUint32(d[i+4:], p.word(binary.LittleEndian.Uint32(s[i+4:])))
		binary.LittleEndian.PutUint32(d[i+8:], p.word(binary.LittleEndian.Uint32(s[i+8:])))
		binary.LittleEndian.PutUint32(d[i+12:], p.word(binary.LittleEndian.Uint32(s[i+12:])))
	}
	// Remainder.
	for ; i < width*4; i += 4 {
		binary.LittleEndian.PutUint32(d[i:], p.word(binary.LittleEndian.Uint32(s[i:])))
	}
}

func (p *permutation) apply24(d, s []byte, width int) {
	n := width &^ (chunk - 1)
	i := 0
	// Four 24-bit pixels are exactly three 32-bit words.
	for ; i < n*3; i += chunk * 3 {
		px := s[i : i+12 : i+12]
		out := d[i : i+12 : i+12]
		for j := 0; j < 12; j += 3 {
			out[j], out[j+1], out[j+2] = px[j+p.from[0]], px[j+p.from[1]], px[j+p.from[2]]
		}
	}
	for ; i < width*3; i += 3 {
		d[i], d[i+1], d[i+2] = s[i+p.from[0]], s[i+p.from[1]], s[i+p.from[2]]
	}
}
