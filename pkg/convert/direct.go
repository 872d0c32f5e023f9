package convert

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// I420ToRGB888 converts a frame from I420 to RGB888 through the default engine.
func I420ToRGB888(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatI420, frame.FormatRGB888)
}

// RGB888ToI420 converts a frame from RGB888 to I420 through the default engine.
func RGB888ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatRGB888, frame.FormatI420)
}

// ARGB8888ToI420 converts a frame from ARGB8888 to I420 through the default engine.
func ARGB8888ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatARGB8888, frame.FormatI420)
}

// I420ToARGB8888 converts a frame from I420 to ARGB8888 through the default engine.
func I420ToARGB8888(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatI420, frame.FormatARGB8888)
}

// NV12ToI420 converts a frame from NV12 to I420 through the default engine.
func NV12ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatNV12, frame.FormatI420)
}

// I420ToNV12 converts a frame from I420 to NV12 through the default engine.
func I420ToNV12(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatI420, frame.FormatNV12)
}

// NV21ToI420 converts a frame from NV21 to I420 through the default engine.
func NV21ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatNV21, frame.FormatI420)
}

// YUY2ToI420 converts a frame from YUY2 to I420 through the default engine.
func YUY2ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatYUY2, frame.FormatI420)
}

// UYVYToI420 converts a frame from UYVY to I420 through the default engine.
func UYVYToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatUYVY, frame.FormatI420)
}

// I420ToYUY2 converts a frame from I420 to YUY2 through the default engine.
func I420ToYUY2(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatI420, frame.FormatYUY2)
}

// YV12ToI420 converts a frame from YV12 to I420 through the default engine.
func YV12ToI420(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatYV12, frame.FormatI420)
}

// RGB565ToRGB888 converts a frame from RGB565 to RGB888 through the default engine.
func RGB565ToRGB888(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatRGB565, frame.FormatRGB888)
}

// RGB888ToRGB565 converts a frame from RGB888 to RGB565 through the default engine.
func RGB888ToRGB565(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatRGB888, frame.FormatRGB565)
}

// RGB888ToBGR888 converts a frame from RGB888 to BGR888 through the default engine.
func RGB888ToBGR888(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatRGB888, frame.FormatBGR888)
}

// ARGB8888ToAlpha8 converts a frame from ARGB8888 to Alpha8 through the default engine.
func ARGB8888ToAlpha8(src, dst []byte, pitch, width, height int) error {
	return Convert(src, dst, pitch, width, height, frame.FormatARGB8888, frame.FormatAlpha8)
}
