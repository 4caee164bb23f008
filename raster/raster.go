// Package raster draws primitives into 1 bit per pixel, page-packed
// buffers.
//
// All routines are integer-only (Bresenham / midpoint algorithms) and
// write through the Buffer interface, which image1bit.VerticalLSB and
// image1bit.VerticalMSB both satisfy. Coordinates outside the buffer
// bounds are silently dropped by the buffer itself, so callers may pass
// partially off-screen geometry.
package raster

import (
	"image"

	"github.com/karakirimu/mgui/image1bit"
)

// Buffer is the destination of all drawing operations.
type Buffer interface {
	SetBit(x, y int, b image1bit.Bit)
	BitAt(x, y int) image1bit.Bit
	Bounds() image.Rectangle
}

// Canvas wraps a Buffer with drawing primitives.
type Canvas struct {
	buf Buffer
}

// NewCanvas returns a Canvas drawing into buf.
func NewCanvas(buf Buffer) *Canvas {
	return &Canvas{buf: buf}
}

// Buffer returns the underlying buffer.
func (c *Canvas) Buffer() Buffer {
	return c.buf
}

// Pixel sets or clears a single pixel.
func (c *Canvas) Pixel(x, y int, on bool) {
	c.buf.SetBit(x, y, image1bit.Bit(on))
}

// TogglePixel inverts a single pixel.
func (c *Canvas) TogglePixel(x, y int) {
	c.buf.SetBit(x, y, !c.buf.BitAt(x, y))
}

// HLine draws a horizontal run of length pixels starting at (x, y),
// growing to the right.
func (c *Canvas) HLine(x, y, length int, on bool) {
	for i := 0; i < length; i++ {
		c.Pixel(x+i, y, on)
	}
}

// VLine draws a vertical run of length pixels starting at (x, y),
// growing downward.
func (c *Canvas) VLine(x, y, length int, on bool) {
	for i := 0; i < length; i++ {
		c.Pixel(x, y+i, on)
	}
}

// Line draws a line from (x0, y0) to (x1, y1) using the integer
// Bresenham algorithm. Both endpoints are plotted; a degenerate
// single-point line plots that point.
func (c *Canvas) Line(x0, y0, x1, y1 int, on bool) {
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	dx := sx * (x1 - x0)
	dy := -sy * (y1 - y0)
	err := dx + dy

	for {
		c.Pixel(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		} else {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle of radius r centered at (x0, y0) using the
// midpoint algorithm with 8-way symmetry. When fill is set, each step's
// x-span is swept as a horizontal run.
func (c *Canvas) Circle(x0, y0, r int, fill, on bool) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	f := -(r << 1) + 3

	for x >= y {
		if fill {
			c.HLine(x0-x, y0+y, 2*x+1, on)
			c.HLine(x0-x, y0-y, 2*x+1, on)
			c.HLine(x0-y, y0+x, 2*y+1, on)
			c.HLine(x0-y, y0-x, 2*y+1, on)
		} else {
			c.Pixel(x0+x, y0+y, on)
			c.Pixel(x0-x, y0+y, on)
			c.Pixel(x0+x, y0-y, on)
			c.Pixel(x0-x, y0-y, on)
			c.Pixel(x0+y, y0+x, on)
			c.Pixel(x0-y, y0+x, on)
			c.Pixel(x0+y, y0-x, on)
			c.Pixel(x0-y, y0-x, on)
		}
		if f >= 0 {
			x--
			f -= x << 2
		}
		y++
		f += (y << 2) + 2
	}
}

// Rect draws the rectangle with corners (x0, y0) and (x1, y1), both
// inclusive. When fill is set every interior pixel is written.
func (c *Canvas) Rect(x0, y0, x1, y1 int, fill, on bool) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if fill {
		for y := y0; y <= y1; y++ {
			c.HLine(x0, y, x1-x0+1, on)
		}
		return
	}
	c.HLine(x0, y0, x1-x0+1, on)
	c.HLine(x0, y1, x1-x0+1, on)
	c.VLine(x0, y0, y1-y0+1, on)
	c.VLine(x1, y0, y1-y0+1, on)
}

// RoundRect draws a rectangle with corners rounded to radius r. The four
// corner arcs are produced by the midpoint algorithm offset to each
// corner center; straight edges connect them. When fill is set the
// corner rows are swept as horizontal runs and the body between the
// rounded rows is delegated to Rect.
func (c *Canvas) RoundRect(x0, y0, x1, y1, r int, fill, on bool) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if r <= 0 {
		c.Rect(x0, y0, x1, y1, fill, on)
		return
	}
	if m := min(x1-x0, y1-y0) / 2; r > m {
		r = m
	}

	// Corner arc centers.
	px0 := x0 + r
	px1 := x1 - r
	py0 := y0 + r
	py1 := y1 - r

	x := r
	y := 0
	f := -(r << 1) + 3

	for x >= y {
		if fill {
			c.HLine(px0-x, py0-y, px1-px0+2*x+1, on)
			c.HLine(px0-y, py0-x, px1-px0+2*y+1, on)
			c.HLine(px0-x, py1+y, px1-px0+2*x+1, on)
			c.HLine(px0-y, py1+x, px1-px0+2*y+1, on)
		} else {
			// Top-right, top-left.
			c.Pixel(px1+x, py0-y, on)
			c.Pixel(px1+y, py0-x, on)
			c.Pixel(px0-x, py0-y, on)
			c.Pixel(px0-y, py0-x, on)
			// Bottom-right, bottom-left.
			c.Pixel(px1+x, py1+y, on)
			c.Pixel(px1+y, py1+x, on)
			c.Pixel(px0-x, py1+y, on)
			c.Pixel(px0-y, py1+x, on)
		}
		if f >= 0 {
			x--
			f -= x << 2
		}
		y++
		f += (y << 2) + 2
	}

	if fill {
		c.Rect(x0, py0, x1, py1, true, on)
		return
	}
	c.HLine(px0, y0, px1-px0+1, on)
	c.HLine(px0, y1, px1-px0+1, on)
	c.VLine(x0, py0, py1-py0+1, on)
	c.VLine(x1, py0, py1-py0+1, on)
}

// Triangle draws the outline of a triangle as three independent lines.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, on bool) {
	c.Line(x0, y0, x1, y1, on)
	c.Line(x1, y1, x2, y2, on)
	c.Line(x2, y2, x0, y0, on)
}

// Glyph blits the glyph for ch at (x, y). Only set bits of the glyph are
// plotted (transparent background); with invert they are cleared instead
// of set. Characters absent from the font are a no-op.
func (c *Canvas) Glyph(f *Font, ch byte, x, y int, invert bool) {
	c.GlyphRegion(f, ch, x, y, 0, 0, f.W, f.H, invert)
}

// GlyphRegion blits the sub-rectangle (srcX, srcY, w, h) of the glyph
// for ch to (x, y). Partial regions support marquee clipping of text
// wider than its viewport.
func (c *Canvas) GlyphRegion(f *Font, ch byte, x, y, srcX, srcY, w, h int, invert bool) {
	offset := f.GlyphOffset(ch)
	if offset < 0 {
		return
	}
	c.blit(f.Data[offset:offset+f.GlyphBytes()], f.W, f.H, x, y, srcX, srcY, w, h, invert)
}

// Blit copies the whole image resource to (x, y) with transparent
// background, optionally inverted.
func (c *Canvas) Blit(img *Image, x, y int, invert bool) {
	c.BlitRegion(img, x, y, 0, 0, img.W, img.H, invert)
}

// BlitRegion copies the sub-rectangle (srcX, srcY, w, h) of the image
// resource to (x, y).
func (c *Canvas) BlitRegion(img *Image, x, y, srcX, srcY, w, h int, invert bool) {
	c.blit(img.Data, img.W, img.H, x, y, srcX, srcY, w, h, invert)
}

// blit copies a sub-rectangle of a page-packed resource. Resource bytes
// hold 8 vertical pixels with the LSB at the top row, the same layout as
// the framebuffer, so the source bit for (sx, sy) lives at
// data[(sy/8)*width + sx] bit sy%8.
func (c *Canvas) blit(data []byte, width, height, x, y, srcX, srcY, w, h int, invert bool) {
	if srcX < 0 {
		w += srcX
		x -= srcX
		srcX = 0
	}
	if srcY < 0 {
		h += srcY
		y -= srcY
		srcY = 0
	}
	if srcX+w > width {
		w = width - srcX
	}
	if srcY+h > height {
		h = height - srcY
	}
	for sy := srcY; sy < srcY+h; sy++ {
		for sx := srcX; sx < srcX+w; sx++ {
			i := (sy>>3)*width + sx
			if i >= len(data) {
				return
			}
			if data[i]&(1<<uint(sy&7)) != 0 {
				c.Pixel(x+sx-srcX, y+sy-srcY, !invert)
			}
		}
	}
}
