package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
	mio "github.com/pion/pixfmt/pkg/io"
)

// convertYUV moves samples between YUV layouts and subsampling ratios, with
// ALPHA8 standing in as a luma-only layout. Luma is copied unchanged. Chroma
// is decimated or replicated with nearest-neighbour addressing and is never
// filtered.
func convertYUV(src, dst *frame.Layout, width, height int) {
	copyLuma(src, dst, width, height)

	if !dst.HasChroma() {
		return
	}

	dcw, dch := dst.ChromaSize(width, height)
	scw, sch := src.ChromaSize(width, height)
	switch {
	case scw == 0 || sch == 0:
		fillChroma(dst, dcw, dch, neutralChroma)
	case src.Subsampling == dst.Subsampling && src.CStep == 1 && dst.CStep == 1:
		// Same ratio, planar to planar: only the plane order can differ.
		copyPlane(src.U, dst.U, src.CStride, dst.CStride, dcw, dch)
		copyPlane(src.V, dst.V, src.CStride, dst.CStride, dcw, dch)
	default:
		resampleChroma(src, dst, scw, sch, dcw, dch)
	}
	fillPackedTail(dst, width, height)
}

func copyLuma(src, dst *frame.Layout, width, height int) {
	if src.YStep == 1 && dst.YStep == 1 {
		copyPlane(src.Y, dst.Y, src.YStride, dst.YStride, width, height)
		return
	}
	for row := 0; row < height; row++ {
		s := src.Y[row*src.YStride:]
		d := dst.Y[row*dst.YStride:]
		for x := 0; x < width; x++ {
			d[x*dst.YStep] = s[x*src.YStep]
		}
	}
}

func copyPlane(src, dst []byte, srcStride, dstStride, width, height int) {
	// Lengths were checked before the kernel ran.
	_, _ = mio.CopyRows(dst, src, dstStride, srcStride, width, height)
}

// resampleChroma maps every destination chroma sample to the source sample
// covering the same top-left luma position. Samples past the source grid reuse
// the last source column or row.
func resampleChroma(src, dst *frame.Layout, scw, sch, dcw, dch int) {
	if dcw == 0 {
		return
	}
	for cy := 0; cy < dch; cy++ {
		sy := (cy << dst.Subsampling.V) >> src.Subsampling.V
		if sy >= sch {
			sy = sch - 1
		}
		su := src.U[sy*src.CStride:]
		sv := src.V[sy*src.CStride:]
		du := dst.U[cy*dst.CStride:]
		dv := dst.V[cy*dst.CStride:]
		for cx := 0; cx < dcw; cx++ {
			sx := (cx << dst.Subsampling.H) >> src.Subsampling.H
			if sx >= scw {
				sx = scw - 1
			}
			du[cx*dst.CStep] = su[sx*src.CStep]
			dv[cx*dst.CStep] = sv[sx*src.CStep]
		}
	}
}

func fillChroma(dst *frame.Layout, cw, ch int, value uint8) {
	if cw == 0 {
		return
	}
	for cy := 0; cy < ch; cy++ {
		u := dst.U[cy*dst.CStride:]
		v := dst.V[cy*dst.CStride:]
		for cx := 0; cx < cw; cx++ {
			u[cx*dst.CStep] = value
			v[cx*dst.CStep] = value
		}
	}
}
