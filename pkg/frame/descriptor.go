package frame

// Category groups formats that share a conversion kernel.
type Category uint8

const (
	// CategoryAlpha is a single 8-bit sample per pixel.
	CategoryAlpha Category = iota + 1
	// CategoryRGB covers every RGB encoding, packed bit fields or whole bytes.
	CategoryRGB
	// CategoryYUVPlanar stores Y, U and V in separate planes.
	CategoryYUVPlanar
	// CategoryYUVSemiPlanar stores Y followed by one interleaved chroma plane.
	CategoryYUVSemiPlanar
	// CategoryYUVPacked interleaves luma and chroma in a single plane.
	CategoryYUVPacked
)

func (c Category) String() string {
	switch c {
	case CategoryAlpha:
		return "alpha"
	case CategoryRGB:
		return "rgb"
	case CategoryYUVPlanar:
		return "yuv-planar"
	case CategoryYUVSemiPlanar:
		return "yuv-semi-planar"
	case CategoryYUVPacked:
		return "yuv-packed"
	default:
		return "unknown"
	}
}

// IsYUV reports whether c stores luma and chroma samples.
func (c Category) IsYUV() bool {
	return c == CategoryYUVPlanar || c == CategoryYUVSemiPlanar || c == CategoryYUVPacked
}

// Channel is a bit field inside a little-endian pixel word.
type Channel struct {
	Shift uint8
	Bits  uint8
}

// Max is the largest value the channel can hold, 0 when the channel is absent.
func (c Channel) Max() uint32 {
	return 1<<c.Bits - 1
}

// Extract returns the channel value from px at its native width.
func (c Channel) Extract(px uint32) uint32 {
	return (px >> c.Shift) & c.Max()
}

// Insert places v, already at native width, at the channel position.
func (c Channel) Insert(v uint32) uint32 {
	return (v & c.Max()) << c.Shift
}

// ChannelOrder holds the byte positions of red, green and blue inside a colour
// triple. The offsets are always a permutation of {0, 1, 2}.
type ChannelOrder struct {
	R, G, B int
}

var (
	// OrderRGB stores red first.
	OrderRGB = ChannelOrder{R: 0, G: 1, B: 2}
	// OrderBGR stores blue first.
	OrderBGR = ChannelOrder{R: 2, G: 1, B: 0}
)

// Valid reports whether o is a permutation of {0, 1, 2}.
func (o ChannelOrder) Valid() bool {
	var seen [3]bool
	for _, v := range [3]int{o.R, o.G, o.B} {
		if v < 0 || v > 2 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Subsampling is the log2 chroma decimation factor on each axis.
type Subsampling struct {
	H, V uint8
}

var (
	// Subsample444 keeps one chroma sample per pixel.
	Subsample444 = Subsampling{}
	// Subsample422 halves chroma horizontally.
	Subsample422 = Subsampling{H: 1}
	// Subsample420 halves chroma on both axes.
	Subsample420 = Subsampling{H: 1, V: 1}
)

// Descriptor is the static metadata of a format.
type Descriptor struct {
	Category     Category
	BitsPerPixel int

	// RGB bit fields inside the little-endian pixel word.
	Red, Green, Blue, Alpha Channel

	// Byte addressing for formats with 8-bit channels. AlphaOffset is -1 when
	// the format has no alpha.
	ColorBase   int
	Order       ChannelOrder
	AlphaOffset int

	Subsampling Subsampling
}

// BytesPerPixel is the distance between horizontally adjacent pixels of the
// first plane.
func (d Descriptor) BytesPerPixel() int {
	switch d.Category {
	case CategoryRGB, CategoryYUVPacked:
		return d.BitsPerPixel / 8
	default:
		return 1
	}
}

// HasAlpha reports whether the format stores an alpha channel.
func (d Descriptor) HasAlpha() bool {
	return d.Alpha.Bits > 0
}

// ByteAligned reports whether every channel is a whole byte.
func (d Descriptor) ByteAligned() bool {
	return d.Category == CategoryRGB &&
		d.Red.Bits == 8 && d.Green.Bits == 8 && d.Blue.Bits == 8 &&
		(d.Alpha.Bits == 0 || d.Alpha.Bits == 8)
}

func bitFormat(bpp int, r, g, b, a Channel) Descriptor {
	return Descriptor{
		Category:     CategoryRGB,
		BitsPerPixel: bpp,
		Red:          r,
		Green:        g,
		Blue:         b,
		Alpha:        a,
		AlphaOffset:  -1,
	}
}

// byteFormat describes a format whose name lists its bytes in memory order.
// Channel shifts are derived from the byte offsets, so Red, Green and Blue
// still address the same bytes when the pixel is loaded as a little-endian word.
func byteFormat(bpp, base int, order ChannelOrder, alpha int) Descriptor {
	d := Descriptor{
		Category:     CategoryRGB,
		BitsPerPixel: bpp,
		Red:          Channel{Shift: uint8(8 * (base + order.R)), Bits: 8},
		Green:        Channel{Shift: uint8(8 * (base + order.G)), Bits: 8},
		Blue:         Channel{Shift: uint8(8 * (base + order.B)), Bits: 8},
		ColorBase:    base,
		Order:        order,
		AlphaOffset:  alpha,
	}
	if alpha >= 0 {
		d.Alpha = Channel{Shift: uint8(8 * alpha), Bits: 8}
	}
	return d
}

func yuvFormat(c Category, bpp int, s Subsampling) Descriptor {
	return Descriptor{Category: c, BitsPerPixel: bpp, Subsampling: s, AlphaOffset: -1}
}

var descriptors = [formatEnd]Descriptor{
	FormatAlpha8: {Category: CategoryAlpha, BitsPerPixel: 8, AlphaOffset: -1},

	FormatRGB565:   bitFormat(16, Channel{11, 5}, Channel{5, 6}, Channel{0, 5}, Channel{}),
	FormatARGB1555: bitFormat(16, Channel{10, 5}, Channel{5, 5}, Channel{0, 5}, Channel{15, 1}),
	FormatRGBA5551: bitFormat(16, Channel{11, 5}, Channel{6, 5}, Channel{1, 5}, Channel{0, 1}),
	FormatARGB4444: bitFormat(16, Channel{8, 4}, Channel{4, 4}, Channel{0, 4}, Channel{12, 4}),
	FormatRGBA4444: bitFormat(16, Channel{12, 4}, Channel{8, 4}, Channel{4, 4}, Channel{0, 4}),

	FormatRGB888:   byteFormat(24, 0, OrderRGB, -1),
	FormatBGR888:   byteFormat(24, 0, OrderBGR, -1),
	FormatARGB8888: byteFormat(32, 1, OrderRGB, 0),
	FormatABGR8888: byteFormat(32, 1, OrderBGR, 0),
	FormatRGBA8888: byteFormat(32, 0, OrderRGB, 3),
	FormatBGRA8888: byteFormat(32, 0, OrderBGR, 3),

	FormatYV12: yuvFormat(CategoryYUVPlanar, 12, Subsample420),
	FormatI420: yuvFormat(CategoryYUVPlanar, 12, Subsample420),
	FormatNV12: yuvFormat(CategoryYUVSemiPlanar, 12, Subsample420),
	FormatNV21: yuvFormat(CategoryYUVSemiPlanar, 12, Subsample420),
	FormatYUY2: yuvFormat(CategoryYUVPacked, 16, Subsample422),
	FormatUYVY: yuvFormat(CategoryYUVPacked, 16, Subsample422),
	FormatI422: yuvFormat(CategoryYUVPlanar, 16, Subsample422),
	FormatI444: yuvFormat(CategoryYUVPlanar, 24, Subsample444),
}

// Descriptor returns the static metadata of f. Unknown formats yield the zero
// Descriptor.
func (f Format) Descriptor() Descriptor {
	if !f.Valid() {
		return Descriptor{}
	}
	return descriptors[f]
}

// Category is a shortcut for f.Descriptor().Category.
func (f Format) Category() Category {
	return f.Descriptor().Category
}
