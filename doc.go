// Package mgui is a retained-mode GUI toolkit for monochrome displays.
//
// The toolkit renders a widget tree into a 1 bit per pixel, page-packed
// framebuffer (the native layout of SSD1306-class OLED controllers) and
// is driven by a single render loop fed from physical inputs such as
// buttons and rotary encoders. There is no depth buffer and no partial
// redraw: every Update zeroes the buffer and redraws the active widget
// list in insertion order, last write wins per pixel.
//
// # Packages
//
//   - image1bit: the packed 1bpp buffer formats (VerticalLSB is the
//     wire contract, VerticalMSB covers bottom-up panels)
//   - raster: integer-only drawing primitives and the packed font/image
//     resource contract
//   - widget: the closed drawable set, from plain shapes up to the
//     hierarchical menu state machine
//   - container: the list/stack/string-map collections the tree uses
//   - input: the per-frame input aggregator and edge detector
//   - ssd1306: an I2C display collaborator consuming the buffer
//
// # Basic Usage
//
// A single-view scene drawing static shapes:
//
//	g, err := mgui.New(&mgui.Opts{W: 128, H: 64})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g.Add(widget.NewCircle(20, 20, 10))
//	g.Add(widget.NewRect(40, 8, 30, 20))
//
//	for {
//		g.Update()
//		dev.Write(g.LCD()) // any display collaborator
//	}
//
// # Menus
//
// Menus nest through property handles. Entering a submenu item pushes
// the current level onto a stack and switches to the child's; a return
// item (or Return) pops it, restoring the parent's selection:
//
//	child := widget.NewMenu(128, 64)
//	child.Add(widget.NewMenuItemText(backLabel))
//
//	entry := widget.NewMenuItemText(entryLabel)
//	entry.SetMenu(child.Property())
//
//	menu := widget.NewMenu(128, 64)
//	menu.Add(entry)
//
// # Input
//
// Input sources are sampled once per frame in registration order; each
// writes one {kind, value} reading into its slot. Widget handlers read
// the slots positionally and translate raw levels into operations:
//
//	g.Input().Add(input.SourceFunc(func(r *input.Reading) {
//		r.Kind = input.Single
//		r.Value = buttonLevel()
//	}))
//
//	menu.Handler = func(ctx *widget.Context, m *widget.Menu) {
//		m.SetOnEnter(ctx.Inputs[0].Value != 0)
//	}
//
// # Named Views
//
// The Multi orchestrator groups drawables under named views and renders
// exactly one per frame; handlers switch views with Context.SwitchView.
//
// # Wire Contract
//
// The framebuffer byte for pixel (x, y) is Pix[(y/8)*width + x], bit
// 1<<(y%8), least significant bit at the top row of the page. Display
// drivers consume LCD() as-is; the buffer is single buffered and must
// be copied out before the next Update.
//
// # Concurrency
//
// The toolkit is single-threaded and cooperative: everything happens
// inside one render loop iteration. Fonts, images and child-menu
// property handles are borrowed by the widgets referencing them and
// must outlive the tree.
package mgui
