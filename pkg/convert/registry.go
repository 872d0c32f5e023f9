package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// kernel converts width x height pixels between two resolved layouts. Kernels
// never fail; every precondition is checked before one runs.
type kernel func(src, dst *frame.Layout, width, height int)

type route struct {
	src, dst frame.Category
}

// routes is keyed by category rather than by concrete format: the layout and
// descriptor carry everything that differs between formats of one category.
var routes = buildRoutes()

func buildRoutes() map[route]kernel {
	lumaChroma := []frame.Category{
		frame.CategoryAlpha,
		frame.CategoryYUVPlanar,
		frame.CategoryYUVSemiPlanar,
		frame.CategoryYUVPacked,
	}

	m := map[route]kernel{
		{frame.CategoryRGB, frame.CategoryRGB}: convertRGB,
	}
	for _, c := range lumaChroma {
		m[route{frame.CategoryRGB, c}] = convertRGBToYUV
		m[route{c, frame.CategoryRGB}] = convertYUVToRGB
		for _, d := range lumaChroma {
			if c == frame.CategoryAlpha && d == frame.CategoryAlpha {
				continue
			}
			m[route{c, d}] = convertYUV
		}
	}
	return m
}

type pair struct {
	src, dst frame.Format
}
