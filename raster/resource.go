package raster

// Font is an immutable packed bitmap font resource.
//
// Glyphs are stored back to back in Data, one cell of W x H pixels each.
// Within a glyph, bytes hold 8 vertical pixels per column with the least
// significant bit at the top row (the framebuffer page layout), columns
// left to right, page groups top to bottom. Charmap lists the covered
// characters in glyph order.
//
// The font data is borrowed, never copied: it must outlive every widget
// referencing it.
type Font struct {
	W, H    int    // glyph cell size in pixels
	Charmap string // characters in glyph storage order
	Data    []byte
}

// GlyphBytes returns the storage size of one glyph cell.
func (f *Font) GlyphBytes() int {
	return f.W * ((f.H + 7) / 8)
}

// GlyphOffset returns the offset of the glyph for ch within Data, or -1
// if the font does not cover ch.
func (f *Font) GlyphOffset(ch byte) int {
	for i := 0; i < len(f.Charmap); i++ {
		if f.Charmap[i] == ch {
			return i * f.GlyphBytes()
		}
	}
	return -1
}

// TextWidth returns the pixel width of s rendered in f.
func (f *Font) TextWidth(s string) int {
	return len(s) * f.W
}

// Image is an immutable packed bitmap image resource with the same byte
// layout as a Font glyph: 8 vertical pixels per byte, LSB at the top.
// Like Font data it is borrowed by any widget referencing it.
type Image struct {
	W, H int
	Data []byte
}
