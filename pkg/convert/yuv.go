package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

const neutralChroma = 128

// convertRGBToYUV runs the forward matrix. Luma is written for every pixel in
// one pass; chroma is written in a second pass, one sample per block, taken
// from the top-left pixel of the block. An alpha destination only receives the
// luma pass.
func convertRGBToYUV(src, dst *frame.Layout, width, height int) {
	sd := src.Format.Descriptor()
	m := newForwardMatrix(&sd)
	bpp := sd.BytesPerPixel()

	for row := 0; row < height; row++ {
		s := src.Y[row*src.YStride:]
		d := dst.Y[row*dst.YStride:]
		for x := 0; x < width; x++ {
			r, g, b := unpackRGB(&sd, loadPixel(s[x*bpp:], bpp))
			d[x*dst.YStep] = m.luma(r, g, b)
		}
	}

	if !dst.HasChroma() {
		return
	}

	cw, ch := dst.ChromaSize(width, height)
	if cw == 0 {
		// Width 1 at 4:2:x: only a packed lone U byte remains.
		ch = 0
	}
	hs, vs := dst.Subsampling.H, dst.Subsampling.V
	for cy := 0; cy < ch; cy++ {
		s := src.Y[(cy<<vs)*src.YStride:]
		u := dst.U[cy*dst.CStride:]
		v := dst.V[cy*dst.CStride:]
		for cx := 0; cx < cw; cx++ {
			r, g, b := unpackRGB(&sd, loadPixel(s[(cx<<hs)*bpp:], bpp))
			u[cx*dst.CStep], v[cx*dst.CStep] = m.chroma(r, g, b)
		}
	}
	fillPackedTail(dst, width, height)
}

// convertYUVToRGB runs the inverse matrix. Each chroma sample feeds the luma
// samples of its block; luma columns and rows past the chroma grid reuse the
// last chroma sample. Sources without chroma use neutral chroma.
func convertYUVToRGB(src, dst *frame.Layout, width, height int) {
	dd := dst.Format.Descriptor()
	bpp := dd.BytesPerPixel()
	cw, ch := src.ChromaSize(width, height)
	block := 1 << src.Subsampling.H

	for row := 0; row < height; row++ {
		ys := src.Y[row*src.YStride:]
		d := dst.Y[row*dst.YStride:]

		u, v := uint8(neutralChroma), uint8(neutralChroma)
		x := 0
		if cw > 0 && ch > 0 {
			cy := row >> src.Subsampling.V
			if cy >= ch {
				cy = ch - 1
			}
			us := src.U[cy*src.CStride:]
			vs := src.V[cy*src.CStride:]
			for cx := 0; cx < cw; cx++ {
				u, v = us[cx*src.CStep], vs[cx*src.CStep]
				for end := x + block; x < end; x++ {
					r, g, b := yuvToRGB8(ys[x*src.YStep], u, v)
					storePixel(d[x*bpp:], bpp, packRGB8(&dd, r, g, b))
				}
			}
		}
		// Lone luma columns reuse the last chroma sample.
		for ; x < width; x++ {
			r, g, b := yuvToRGB8(ys[x*src.YStep], u, v)
			storePixel(d[x*bpp:], bpp, packRGB8(&dd, r, g, b))
		}
	}
}

// fillPackedTail gives the lone pixel of an odd-width packed 4:2:2 row the
// last U sample of the row, so every byte of the row is written.
func fillPackedTail(dst *frame.Layout, width, height int) {
	if dst.Format.Category() != frame.CategoryYUVPacked || width&1 == 0 {
		return
	}
	cw := width >> 1
	for row := 0; row < height; row++ {
		u := dst.U[row*dst.CStride:]
		if cw == 0 {
			u[0] = neutralChroma
			continue
		}
		u[cw*dst.CStep] = u[(cw-1)*dst.CStep]
	}
}
