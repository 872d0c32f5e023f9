package frame

// Image is a view over a caller-owned frame buffer. Pitch is the row stride in
// pixels and may exceed Width.
type Image struct {
	Pix    []byte
	Pitch  int
	Width  int
	Height int
	Format Format
}

// NewImage allocates a tightly packed frame.
func NewImage(f Format, width, height int) *Image {
	return &Image{
		Pix:    make([]byte, FrameSize(f, width, height)),
		Pitch:  width,
		Width:  width,
		Height: height,
		Format: f,
	}
}

// Planes resolves the plane layout of img.
func (img *Image) Planes() (Layout, error) {
	return Planes(img.Pix, img.Pitch, img.Height, img.Format)
}
