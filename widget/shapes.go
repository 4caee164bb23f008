package widget

import "github.com/karakirimu/mgui/raster"

// Pixel draws a single pixel. With Invert set the pixel toggles whatever
// earlier widgets left in the buffer instead of writing On.
type Pixel struct {
	X, Y   int
	On     bool
	Invert bool
}

// NewPixel returns a Pixel drawing on at (x, y).
func NewPixel(x, y int) *Pixel {
	return &Pixel{X: x, Y: y, On: true}
}

// Kind implements Object.
func (p *Pixel) Kind() Kind { return KindPixel }

// Update implements Object.
func (p *Pixel) Update(ctx *Context) {
	if p.Invert {
		ctx.Canvas.TogglePixel(p.X, p.Y)
		return
	}
	ctx.Canvas.Pixel(p.X, p.Y, p.On)
}

// Line draws a straight line between two points.
type Line struct {
	X0, Y0 int
	X1, Y1 int
	On     bool
}

// NewLine returns a Line drawing on from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 int) *Line {
	return &Line{X0: x0, Y0: y0, X1: x1, Y1: y1, On: true}
}

// Kind implements Object.
func (l *Line) Kind() Kind { return KindLine }

// Update implements Object.
func (l *Line) Update(ctx *Context) {
	ctx.Canvas.Line(l.X0, l.Y0, l.X1, l.Y1, l.On)
}

// Circle draws a circle outline, or a filled disc when Fill is set.
type Circle struct {
	X, Y   int
	Radius int
	Fill   bool
	On     bool
}

// NewCircle returns a Circle of radius r centered at (x, y).
func NewCircle(x, y, r int) *Circle {
	return &Circle{X: x, Y: y, Radius: r, On: true}
}

// Kind implements Object.
func (c *Circle) Kind() Kind { return KindCircle }

// Update implements Object.
func (c *Circle) Update(ctx *Context) {
	ctx.Canvas.Circle(c.X, c.Y, c.Radius, c.Fill, c.On)
}

// Rect draws a rectangle, optionally filled, optionally with rounded
// corners when Radius is positive.
type Rect struct {
	X, Y   int
	W, H   int
	Radius int
	Fill   bool
	On     bool
}

// NewRect returns a Rect of size w x h with its top-left at (x, y).
func NewRect(x, y, w, h int) *Rect {
	return &Rect{X: x, Y: y, W: w, H: h, On: true}
}

// Kind implements Object.
func (r *Rect) Kind() Kind { return KindRect }

// Update implements Object.
func (r *Rect) Update(ctx *Context) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	if r.Radius > 0 {
		ctx.Canvas.RoundRect(r.X, r.Y, x1, y1, r.Radius, r.Fill, r.On)
		return
	}
	ctx.Canvas.Rect(r.X, r.Y, x1, y1, r.Fill, r.On)
}

// Triangle draws a triangle outline as three lines.
type Triangle struct {
	X0, Y0 int
	X1, Y1 int
	X2, Y2 int
	On     bool
}

// NewTriangle returns a Triangle with the given corner points.
func NewTriangle(x0, y0, x1, y1, x2, y2 int) *Triangle {
	return &Triangle{X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2, On: true}
}

// Kind implements Object.
func (t *Triangle) Kind() Kind { return KindTriangle }

// Update implements Object.
func (t *Triangle) Update(ctx *Context) {
	ctx.Canvas.Triangle(t.X0, t.Y0, t.X1, t.Y1, t.X2, t.Y2, t.On)
}

// Image blits a packed bitmap resource.
type Image struct {
	Img    *raster.Image
	X, Y   int
	Invert bool
}

// NewImage returns an Image drawing img with its top-left at (x, y).
func NewImage(img *raster.Image, x, y int) *Image {
	return &Image{Img: img, X: x, Y: y}
}

// Kind implements Object.
func (i *Image) Kind() Kind { return KindImage }

// Update implements Object.
func (i *Image) Update(ctx *Context) {
	if i.Img == nil {
		return
	}
	ctx.Canvas.Blit(i.Img, i.X, i.Y, i.Invert)
}
