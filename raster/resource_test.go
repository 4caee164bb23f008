package raster

import "testing"

// testFont is a 4x8 two-glyph font: 'A' is a solid 4x8 block, 'B' fills
// the top four rows only.
func testFont() *Font {
	return &Font{
		W:       4,
		H:       8,
		Charmap: "AB",
		Data: []byte{
			0xFF, 0xFF, 0xFF, 0xFF, // A
			0x0F, 0x0F, 0x0F, 0x0F, // B
		},
	}
}

func TestFontGlyphBytes(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{"4x8 single page", 4, 8, 4},
		{"7x13 two pages", 7, 13, 14},
		{"8x16 two pages", 8, 16, 16},
		{"5x7 partial page", 5, 7, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Font{W: tt.w, H: tt.h}
			if got := f.GlyphBytes(); got != tt.want {
				t.Errorf("GlyphBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFontGlyphOffset(t *testing.T) {
	f := testFont()

	tests := []struct {
		ch   byte
		want int
	}{
		{'A', 0},
		{'B', 4},
		{'Z', -1},
		{' ', -1},
	}

	for _, tt := range tests {
		if got := f.GlyphOffset(tt.ch); got != tt.want {
			t.Errorf("GlyphOffset(%q) = %d, want %d", tt.ch, got, tt.want)
		}
	}
}

func TestFontTextWidth(t *testing.T) {
	f := testFont()

	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"A", 4},
		{"ABAB", 16},
	}

	for _, tt := range tests {
		if got := f.TextWidth(tt.s); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestGlyph(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)
	f := testFont()

	c.Glyph(f, 'A', 2, 3, false)
	for y := 3; y < 11; y++ {
		for x := 2; x < 6; x++ {
			if !buf.BitAt(x, y) {
				t.Errorf("pixel (%d, %d) = Off, want On", x, y)
			}
		}
	}
	if got := countOn(buf); got != 32 {
		t.Errorf("pixel count = %d, want 32", got)
	}
}

func TestGlyphAbsentChar(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)

	c.Glyph(testFont(), 'Z', 0, 0, false)
	if got := countOn(buf); got != 0 {
		t.Errorf("absent glyph set %d pixels, want 0", got)
	}
}

func TestGlyphTransparentBackground(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)
	f := testFont()

	// 'B' covers rows 0-3 only; the unset rows must not clear existing
	// buffer content.
	c.Rect(0, 0, 15, 15, true, true)
	c.Glyph(f, 'B', 0, 0, false)
	if got := countOn(buf); got != 256 {
		t.Errorf("pixel count = %d, want 256", got)
	}
}

func TestGlyphInvert(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)
	f := testFont()

	c.Rect(0, 0, 15, 15, true, true)
	c.Glyph(f, 'B', 0, 0, true)
	// Set glyph bits clear the buffer, unset glyph bits leave it alone.
	if buf.BitAt(0, 0) {
		t.Error("pixel (0, 0) still On after inverted glyph")
	}
	if !buf.BitAt(0, 4) {
		t.Error("pixel (0, 4) cleared by an unset glyph bit")
	}
	if got := countOn(buf); got != 256-16 {
		t.Errorf("pixel count = %d, want %d", got, 256-16)
	}
}

func TestGlyphRegion(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)
	f := testFont()

	// Columns 1-2 of 'A' only.
	c.GlyphRegion(f, 'A', 5, 0, 1, 0, 2, 8, false)
	for y := 0; y < 8; y++ {
		if !buf.BitAt(5, y) || !buf.BitAt(6, y) {
			t.Errorf("row %d not fully set in the region", y)
		}
	}
	if got := countOn(buf); got != 16 {
		t.Errorf("pixel count = %d, want 16", got)
	}
}

func TestBlit(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)

	// Column 0: rows 0 and 7. Column 1: rows 3 and 4.
	img := &Image{W: 2, H: 8, Data: []byte{0x81, 0x18}}
	c.Blit(img, 5, 5, false)

	for _, p := range []struct{ x, y int }{{5, 5}, {5, 12}, {6, 8}, {6, 9}} {
		if !buf.BitAt(p.x, p.y) {
			t.Errorf("pixel (%d, %d) = Off, want On", p.x, p.y)
		}
	}
	if got := countOn(buf); got != 4 {
		t.Errorf("pixel count = %d, want 4", got)
	}
}

func TestBlitRegionClampsToSource(t *testing.T) {
	c, buf := newCanvas(t, 16, 16)

	img := &Image{W: 2, H: 8, Data: []byte{0xFF, 0xFF}}
	// Region wider and taller than the source gets clamped.
	c.BlitRegion(img, 0, 0, 0, 0, 10, 20, false)
	if got := countOn(buf); got != 16 {
		t.Errorf("pixel count = %d, want 16", got)
	}
}
