package widget

import "github.com/karakirimu/mgui/raster"

// Text draws a string in a packed bitmap font, optionally scrolling it
// through a viewport (marquee) when the rendered width exceeds the
// viewport width.
type Text struct {
	X, Y   int
	Invert bool

	font *raster.Font
	text string

	viewW, viewH int
	move         bool
	step         int
	offset       int
}

// NewText returns a Text rendering s in f at (x, y). The font is
// borrowed and must outlive the widget.
func NewText(f *raster.Font, s string, x, y int) *Text {
	return &Text{font: f, text: s, X: x, Y: y}
}

// SetText replaces the rendered string and restarts any marquee.
func (t *Text) SetText(s string) {
	t.text = s
	t.offset = 0
}

// Text returns the rendered string.
func (t *Text) Text() string {
	return t.text
}

// Font returns the borrowed font resource.
func (t *Text) Font() *raster.Font {
	return t.font
}

// Width returns the natural pixel width of the text.
func (t *Text) Width() int {
	if t.font == nil {
		return 0
	}
	return t.font.TextWidth(t.text)
}

// Height returns the pixel height of one text row.
func (t *Text) Height() int {
	if t.font == nil {
		return 0
	}
	return t.font.H
}

// SetViewport limits drawing to a w x h window at (X, Y). A zero width
// or height leaves that axis unclipped.
func (t *Text) SetViewport(w, h int) {
	t.viewW = w
	t.viewH = h
}

// SetMove enables or disables the marquee, advancing step pixels per
// frame. Steps below 1 advance 1 pixel. The marquee only takes effect
// when the text is wider than the viewport width.
func (t *Text) SetMove(enabled bool, step int) {
	if step < 1 {
		step = 1
	}
	t.move = enabled
	t.step = step
	if !enabled {
		t.offset = 0
	}
}

// Kind implements Object.
func (t *Text) Kind() Kind { return KindText }

// Update implements Object.
func (t *Text) Update(ctx *Context) {
	if t.font == nil || t.text == "" {
		return
	}
	h := t.font.H
	if t.viewH > 0 && t.viewH < h {
		h = t.viewH
	}

	if t.move && t.viewW > 0 && t.Width() > t.viewW {
		t.drawMarquee(ctx, h)
		return
	}
	for i := 0; i < len(t.text); i++ {
		t.drawGlyph(ctx, t.text[i], t.X+i*t.font.W, h)
	}
}

// drawMarquee draws one marquee frame and advances the scroll offset.
// The text enters from the right edge of the viewport, scrolls fully out
// on the left and wraps around.
func (t *Text) drawMarquee(ctx *Context, h int) {
	startX := t.X + t.viewW - t.offset
	for i := 0; i < len(t.text); i++ {
		t.drawGlyph(ctx, t.text[i], startX+i*t.font.W, h)
	}
	t.offset += t.step
	if t.offset > t.viewW+t.Width() {
		t.offset = 0
	}
}

// drawGlyph blits one glyph at dstX, clipped to the viewport when one is
// set.
func (t *Text) drawGlyph(ctx *Context, ch byte, dstX, h int) {
	srcX := 0
	w := t.font.W
	if t.viewW > 0 {
		if dstX < t.X {
			srcX = t.X - dstX
		}
		if end := t.X + t.viewW - dstX; end < w {
			w = end
		}
		if w <= srcX {
			return
		}
	}
	ctx.Canvas.GlyphRegion(t.font, ch, dstX+srcX, t.Y, srcX, 0, w-srcX, h, t.Invert)
}
