// Package widget implements the retained-mode drawable tree rendered by
// the mgui orchestrators.
//
// The drawable set is closed: every variant reports a Kind tag and
// renders itself through Update, drawing into the frame's Canvas. No
// widget owns the framebuffer, and font/image resources are borrowed
// from the caller, which must keep them alive for as long as any widget
// references them.
//
// Interactive widgets (Button, Menu, MenuItem, Group) optionally carry a
// handler invoked at the start of their Update with the frame's input
// readings; handlers translate raw readings into widget operations and
// may switch the active named view.
package widget

import (
	"github.com/karakirimu/mgui/input"
	"github.com/karakirimu/mgui/raster"
)

// Kind identifies a drawable variant.
type Kind int

// The closed set of drawable variants.
const (
	KindPixel Kind = iota
	KindLine
	KindCircle
	KindRect
	KindTriangle
	KindText
	KindImage
	KindButton
	KindMenuItem
	KindMenu
	KindGroup
	KindVScroll
)

// Context carries the per-frame draw state passed to every widget.
type Context struct {
	// Canvas draws into the frame's packed buffer.
	Canvas *raster.Canvas
	// W, H are the screen dimensions in pixels.
	W, H int
	// Inputs holds this frame's readings, indexed by source
	// registration order. Empty when the scene has no aggregator.
	Inputs []input.Reading

	view *string
}

// NewContext returns a Context for a single-view scene. view may be nil;
// SwitchView is then a no-op.
func NewContext(canvas *raster.Canvas, w, h int, inputs []input.Reading, view *string) *Context {
	return &Context{Canvas: canvas, W: w, H: h, Inputs: inputs, view: view}
}

// SwitchView selects the named view starting with the next frame. It is
// a no-op in single-view scenes.
func (c *Context) SwitchView(name string) {
	if c.view != nil {
		*c.view = name
	}
}

// Object is the polymorphic contract every drawable satisfies.
type Object interface {
	// Kind reports the variant tag.
	Kind() Kind
	// Update renders the widget for this frame.
	Update(ctx *Context)
}

// Interactor is the contract Group members satisfy: focusable and
// pressable widgets. Selection marks focus, press marks activation; the
// two are independent.
type Interactor interface {
	Object
	SetSelected(selected bool)
	Selected() bool
	SetPressed(pressed bool)
	Pressed() bool
}
