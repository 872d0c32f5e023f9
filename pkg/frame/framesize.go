package frame

// FrameSizeMap holds, per format, a function returning the number of bytes a frame
// will occupy for the given pitch (in pixels) and height
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatAlpha8:   frameSizePacked(8),
	FormatRGB565:   frameSizePacked(16),
	FormatARGB1555: frameSizePacked(16),
	FormatRGBA5551: frameSizePacked(16),
	FormatARGB4444: frameSizePacked(16),
	FormatRGBA4444: frameSizePacked(16),
	FormatRGB888:   frameSizePacked(24),
	FormatBGR888:   frameSizePacked(24),
	FormatARGB8888: frameSizePacked(32),
	FormatABGR8888: frameSizePacked(32),
	FormatRGBA8888: frameSizePacked(32),
	FormatBGRA8888: frameSizePacked(32),
	FormatI420:     frameSizeI420,
	FormatYV12:     frameSizeI420, // YV12 only swaps the chroma planes
	FormatNV12:     frameSizeNV21,
	FormatNV21:     frameSizeNV21,
	FormatYUY2:     frameSizeYUY2,
	FormatUYVY:     frameSizeYUY2, // UYVY and YUY2 have the same frame size
	FormatI422:     frameSizeI422,
	FormatI444:     frameSizeI444,
}

type frameSizeFunc func(pitch, height int) int

// FrameSize returns the number of bytes a frame of format f occupies, or 0 for
// an unknown format.
func FrameSize(f Format, pitch, height int) int {
	fn, ok := FrameSizeMap[f]
	if !ok || pitch <= 0 || height <= 0 {
		return 0
	}
	return fn(pitch, height)
}

func frameSizePacked(bpp int) frameSizeFunc {
	return func(pitch, height int) int {
		return pitch * height * bpp / 8
	}
}

func frameSizeYUY2(pitch, height int) int {
	yi := pitch * height
	// ci := yi / 2
	// fi := yi + 2*ci
	return 2 * yi
}

func frameSizeI420(pitch, height int) int {
	yi := pitch * height
	cbi := yi + yi/4
	cri := cbi + yi/4
	return cri
}

func frameSizeNV21(pitch, height int) int {
	yi := pitch * height
	return yi + yi/2
}

func frameSizeI422(pitch, height int) int {
	yi := pitch * height
	return yi + 2*(yi/2)
}

func frameSizeI444(pitch, height int) int {
	return 3 * pitch * height
}
