package frame

import (
	"testing"
)

func TestFormatValuesAreStable(t *testing.T) {
	expected := map[Format]uint8{
		FormatAlpha8:   1,
		FormatRGB565:   2,
		FormatARGB1555: 3,
		FormatRGBA5551: 4,
		FormatARGB4444: 5,
		FormatRGBA4444: 6,
		FormatRGB888:   7,
		FormatBGR888:   8,
		FormatARGB8888: 9,
		FormatABGR8888: 10,
		FormatRGBA8888: 11,
		FormatBGRA8888: 12,
		FormatYV12:     13,
		FormatI420:     14,
		FormatNV12:     15,
		FormatNV21:     16,
		FormatYUY2:     17,
		FormatUYVY:     18,
		FormatI422:     19,
		FormatI444:     20,
	}
	for f, v := range expected {
		if uint8(f) != v {
			t.Errorf("%s: expected value %d, got %d", f, v, uint8(f))
		}
	}
	if n := len(Formats()); n != len(expected) {
		t.Errorf("expected %d formats, got %d", len(expected), n)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		parsed, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != f {
			t.Errorf("expected %s, got %s", f, parsed)
		}
	}

	if f, err := ParseFormat(" yuyv "); err != nil || f != FormatYUY2 {
		t.Errorf("expected YUYV to alias YUY2, got %s (%v)", f, err)
	}
	if _, err := ParseFormat("MJPEG"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestFormatString(t *testing.T) {
	if s := Format(0).String(); s != "Format(0)" {
		t.Errorf("unexpected name for the zero format: %s", s)
	}
	if s := FormatNV21.String(); s != "NV21" {
		t.Errorf("unexpected name: %s", s)
	}
}

func TestDescriptor(t *testing.T) {
	cases := map[string]struct {
		format      Format
		category    Category
		bpp         int
		alpha       bool
		byteAligned bool
		subsampling Subsampling
	}{
		"Alpha8":   {FormatAlpha8, CategoryAlpha, 8, false, false, Subsample444},
		"RGB565":   {FormatRGB565, CategoryRGB, 16, false, false, Subsample444},
		"ARGB1555": {FormatARGB1555, CategoryRGB, 16, true, false, Subsample444},
		"RGB888":   {FormatRGB888, CategoryRGB, 24, false, true, Subsample444},
		"BGRA8888": {FormatBGRA8888, CategoryRGB, 32, true, true, Subsample444},
		"NV12":     {FormatNV12, CategoryYUVSemiPlanar, 12, false, false, Subsample420},
		"UYVY":     {FormatUYVY, CategoryYUVPacked, 16, false, false, Subsample422},
		"I422":     {FormatI422, CategoryYUVPlanar, 16, false, false, Subsample422},
		"I444":     {FormatI444, CategoryYUVPlanar, 24, false, false, Subsample444},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			d := c.format.Descriptor()
			if d.Category != c.category {
				t.Errorf("expected category %s, got %s", c.category, d.Category)
			}
			if d.BitsPerPixel != c.bpp {
				t.Errorf("expected %d bits per pixel, got %d", c.bpp, d.BitsPerPixel)
			}
			if d.HasAlpha() != c.alpha {
				t.Errorf("expected HasAlpha() to be %v", c.alpha)
			}
			if d.ByteAligned() != c.byteAligned {
				t.Errorf("expected ByteAligned() to be %v", c.byteAligned)
			}
			if d.Subsampling != c.subsampling {
				t.Errorf("expected subsampling %+v, got %+v", c.subsampling, d.Subsampling)
			}
		})
	}
}

func TestChannelOrders(t *testing.T) {
	for _, f := range Formats() {
		d := f.Descriptor()
		if !d.ByteAligned() {
			continue
		}
		if !d.Order.Valid() {
			t.Errorf("%s: channel order %+v is not a permutation", f, d.Order)
		}
	}
	if (ChannelOrder{R: 0, G: 0, B: 2}).Valid() {
		t.Error("expected a repeated offset to be rejected")
	}
}

func TestChannelBitFields(t *testing.T) {
	// ARGB1555 word: A=1, R=0x1F, G=0x00, B=0x15
	const px = 1<<15 | 0x1F<<10 | 0x15
	d := FormatARGB1555.Descriptor()
	if v := d.Alpha.Extract(px); v != 1 {
		t.Errorf("alpha: expected 1, got %d", v)
	}
	if v := d.Red.Extract(px); v != 0x1F {
		t.Errorf("red: expected 0x1F, got %#x", v)
	}
	if v := d.Green.Extract(px); v != 0 {
		t.Errorf("green: expected 0, got %#x", v)
	}
	if v := d.Blue.Extract(px); v != 0x15 {
		t.Errorf("blue: expected 0x15, got %#x", v)
	}
	if w := d.Alpha.Insert(1) | d.Red.Insert(0x1F) | d.Blue.Insert(0x15); w != px {
		t.Errorf("expected %#x, got %#x", px, w)
	}
}

func TestCatalogueIncludesI444(t *testing.T) {
	if !FormatI444.Valid() {
		t.Fatal("expected I444 to be part of the catalogue")
	}
	formats := Formats()
	if last := formats[len(formats)-1]; last != FormatI444 {
		t.Errorf("expected I444 to close the catalogue, got %s", last)
	}
	if s := FormatI444.String(); s != "I444" {
		t.Errorf("unexpected name: %s", s)
	}
	if c := FormatI444.Category(); c != CategoryYUVPlanar {
		t.Errorf("expected I444 to be planar, got %s", c)
	}
	if Format(21).Valid() {
		t.Error("expected 21 to be outside the catalogue")
	}
}

func TestChannelConventions(t *testing.T) {
	// Sub-byte formats name bits from the top of the word.
	if a := FormatARGB4444.Descriptor().Alpha; a.Shift != 12 || a.Bits != 4 {
		t.Errorf("ARGB4444 alpha: expected the top nibble, got %+v", a)
	}
	// Byte formats name bytes in memory order: A is byte 0, the low byte of the word.
	d := FormatARGB8888.Descriptor()
	if d.AlphaOffset != 0 || d.Alpha.Shift != 0 {
		t.Errorf("ARGB8888 alpha: expected byte 0, got offset %d shift %d", d.AlphaOffset, d.Alpha.Shift)
	}
	if d.Red.Shift != 8 || d.Blue.Shift != 24 {
		t.Errorf("ARGB8888: expected R in byte 1 and B in byte 3, got %+v %+v", d.Red, d.Blue)
	}
}
