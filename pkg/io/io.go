// Package io holds the buffer helpers shared by the frame and convert packages.
package io

// Copy copies data from src to dst. If dst is not big enough, return an
// InsufficientBufferError.
func Copy(dst, src []byte) (n int, err error) {
	if len(dst) < len(src) {
		return 0, &InsufficientBufferError{len(src)}
	}

	return copy(dst, src), nil
}

// CopyRows copies height rows of width bytes from a plane with rows srcStride
// bytes apart into a plane with rows dstStride bytes apart. Both planes are
// checked before anything is written.
func CopyRows(dst, src []byte, dstStride, srcStride, width, height int) (n int, err error) {
	if width <= 0 || height <= 0 {
		return 0, nil
	}
	if required := (height-1)*dstStride + width; len(dst) < required {
		return 0, &InsufficientBufferError{required}
	}
	if required := (height-1)*srcStride + width; len(src) < required {
		return 0, &InsufficientBufferError{required}
	}

	if srcStride == width && dstStride == width {
		// Both planes are tightly packed
		return Copy(dst, src[:width*height])
	}
	for row := 0; row < height; row++ {
		n += copy(dst[row*dstStride:row*dstStride+width], src[row*srcStride:row*srcStride+width])
	}
	return n, nil
}
