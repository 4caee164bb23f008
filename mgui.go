package mgui

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/karakirimu/mgui/container"
	"github.com/karakirimu/mgui/image1bit"
	"github.com/karakirimu/mgui/input"
	"github.com/karakirimu/mgui/raster"
	"github.com/karakirimu/mgui/widget"
)

// Opts is the configuration for a Scene or Multi.
type Opts struct {
	// Display dimensions in pixels.
	W int // Width (default: 128)
	H int // Height (default: 64, must be a multiple of 8)
}

// validate applies defaults and checks the options.
func (o *Opts) validate() (int, int, error) {
	w, h := o.W, o.H
	if w == 0 && h == 0 {
		w, h = 128, 64
	}
	if w <= 0 {
		return 0, 0, errors.New("mgui: width must be positive")
	}
	if h <= 0 || h%8 != 0 {
		return 0, 0, errors.New("mgui: height must be a positive multiple of 8")
	}
	return w, h, nil
}

// Scene owns the packed framebuffer and a flat, ordered list of
// drawables rendered once per Update call.
//
// Rendering order is insertion order: later objects draw on top of
// earlier ones, last write wins per pixel. The scene is single buffered;
// a display collaborator must copy the buffer out before the next
// Update.
type Scene struct {
	rect    image.Rectangle
	frame   *image1bit.VerticalLSB
	canvas  *raster.Canvas
	objects container.List[widget.Object]
	in      input.Aggregator
}

// New creates a Scene with a zeroed framebuffer.
//
// opts can be nil to use the default 128x64 geometry.
func New(opts *Opts) (*Scene, error) {
	if opts == nil {
		opts = &Opts{}
	}
	w, h, err := opts.validate()
	if err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, w, h)
	frame := image1bit.NewVerticalLSB(rect)
	return &Scene{
		rect:   rect,
		frame:  frame,
		canvas: raster.NewCanvas(frame),
	}, nil
}

// Add appends obj to the render list.
func (s *Scene) Add(obj widget.Object) {
	s.objects.Add(obj)
}

// Remove deletes obj from the render list. Removing an absent object is
// a no-op.
func (s *Scene) Remove(obj widget.Object) {
	s.objects.Remove(obj)
}

// Clear empties the render list. The framebuffer keeps its last
// contents until the next Update.
func (s *Scene) Clear() {
	s.objects.Clear()
}

// Input returns the scene's input aggregator. Register all sources
// before the first Update.
func (s *Scene) Input() *input.Aggregator {
	return &s.in
}

// Update renders one frame: refresh the input readings, zero the
// buffer, then update every object in insertion order.
func (s *Scene) Update() {
	s.in.Update()
	zero(s.frame.Pix)
	ctx := widget.NewContext(s.canvas, s.rect.Dx(), s.rect.Dy(), s.in.Readings(), nil)
	s.objects.Each(func(obj widget.Object) {
		obj.Update(ctx)
	})
}

// Buffer returns the framebuffer image. The buffer is owned by the
// scene and overwritten by every Update.
func (s *Scene) Buffer() *image1bit.VerticalLSB {
	return s.frame
}

// LCD returns the raw packed buffer, width*height/8 bytes in the
// VerticalLSB page layout display drivers consume.
func (s *Scene) LCD() []byte {
	return s.frame.Pix
}

// ColorModel returns the buffer's color model.
func (s *Scene) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the screen bounds.
func (s *Scene) Bounds() image.Rectangle {
	return s.rect
}

// String returns a string representation of the scene.
func (s *Scene) String() string {
	return fmt.Sprintf("mgui.Scene{%dx%d}", s.rect.Dx(), s.rect.Dy())
}

// zero clears a packed buffer.
func zero(pix []byte) {
	for i := range pix {
		pix[i] = 0
	}
}
