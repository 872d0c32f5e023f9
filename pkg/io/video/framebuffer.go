package video

import (
	"github.com/pion/pixfmt/pkg/frame"
)

// FrameBuffer hands out raw frames backed by one reusable buffer.
type FrameBuffer struct {
	buffer []uint8
	img    frame.Image
}

// NewFrameBuffer creates a new FrameBuffer instance and initialize internal buffer
// with initialSize
func NewFrameBuffer(initialSize int) *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]uint8, initialSize),
	}
}

// Image returns a tightly packed frame of the requested shape. The backing
// memory is only reallocated when it is too small, so the returned frame is
// valid until the next call.
func (buff *FrameBuffer) Image(f frame.Format, width, height int) *frame.Image {
	neededSize := frame.FrameSize(f, width, height)
	if len(buff.buffer) < neededSize {
		if cap(buff.buffer) >= neededSize {
			buff.buffer = buff.buffer[:neededSize]
		} else {
			buff.buffer = make([]uint8, neededSize)
		}
	}

	buff.img = frame.Image{
		Pix:    buff.buffer[:neededSize],
		Pitch:  width,
		Width:  width,
		Height: height,
		Format: f,
	}
	return &buff.img
}
