package mgui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/karakirimu/mgui/container"
	"github.com/karakirimu/mgui/image1bit"
	"github.com/karakirimu/mgui/input"
	"github.com/karakirimu/mgui/raster"
	"github.com/karakirimu/mgui/widget"
)

// Multi is the multi-view variant of Scene: drawables are grouped under
// named views and exactly one view is rendered per frame.
//
// Views are created on first Add under a new name; the first view ever
// added becomes the selected one. Widget handlers switch views through
// Context.SwitchView, which takes effect on the frame after the one that
// requested it.
type Multi struct {
	rect     image.Rectangle
	frame    *image1bit.VerticalLSB
	canvas   *raster.Canvas
	views    container.StringMap[*container.List[widget.Object]]
	selected string
	in       input.Aggregator
}

// NewMulti creates a Multi with a zeroed framebuffer and no views.
//
// opts can be nil to use the default 128x64 geometry.
func NewMulti(opts *Opts) (*Multi, error) {
	if opts == nil {
		opts = &Opts{}
	}
	w, h, err := opts.validate()
	if err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, w, h)
	frame := image1bit.NewVerticalLSB(rect)
	return &Multi{
		rect:   rect,
		frame:  frame,
		canvas: raster.NewCanvas(frame),
	}, nil
}

// Add appends obj to the named view, creating the view on first use. The
// first view created is auto-selected.
func (m *Multi) Add(view string, obj widget.Object) {
	list := m.views.Get(view)
	if list == nil {
		m.views.Insert(view, &container.List[widget.Object]{})
		list = m.views.Get(view)
		if m.views.Len() == 1 {
			m.selected = view
		}
	}
	(*list).Add(obj)
}

// Remove deletes obj from the named view. Removing from an absent view
// is a no-op.
func (m *Multi) Remove(view string, obj widget.Object) {
	if list := m.views.Get(view); list != nil {
		(*list).Remove(obj)
	}
}

// Clear empties the named view's render list, keeping the view
// registered.
func (m *Multi) Clear(view string) {
	if list := m.views.Get(view); list != nil {
		(*list).Clear()
	}
}

// Select makes the named view the rendered one.
func (m *Multi) Select(view string) error {
	if m.views.Get(view) == nil {
		return fmt.Errorf("mgui: unknown view %q", view)
	}
	m.selected = view
	return nil
}

// SelectedView returns the name of the rendered view, or "" when no view
// has been added yet.
func (m *Multi) SelectedView() string {
	return m.selected
}

// Views returns the registered view names in creation order.
func (m *Multi) Views() []string {
	return m.views.Keys()
}

// Input returns the aggregator shared by all views. Register all sources
// before the first Update.
func (m *Multi) Input() *input.Aggregator {
	return &m.in
}

// Update renders one frame of the selected view: refresh the input
// readings, zero the buffer, then update the view's objects in insertion
// order. A view switch requested by a handler applies to the next frame.
func (m *Multi) Update() {
	m.in.Update()
	zero(m.frame.Pix)
	list := m.views.Get(m.selected)
	if list == nil {
		return
	}
	ctx := widget.NewContext(m.canvas, m.rect.Dx(), m.rect.Dy(), m.in.Readings(), &m.selected)
	(*list).Each(func(obj widget.Object) {
		obj.Update(ctx)
	})
}

// Buffer returns the framebuffer image. The buffer is owned by the
// orchestrator and overwritten by every Update.
func (m *Multi) Buffer() *image1bit.VerticalLSB {
	return m.frame
}

// LCD returns the raw packed buffer in the VerticalLSB page layout.
func (m *Multi) LCD() []byte {
	return m.frame.Pix
}

// ColorModel returns the buffer's color model.
func (m *Multi) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the screen bounds.
func (m *Multi) Bounds() image.Rectangle {
	return m.rect
}

// String returns a string representation of the orchestrator.
func (m *Multi) String() string {
	return fmt.Sprintf("mgui.Multi{%dx%d}", m.rect.Dx(), m.rect.Dy())
}
