package widget

import (
	"image"
	"testing"

	"github.com/karakirimu/mgui/image1bit"
	"github.com/karakirimu/mgui/input"
	"github.com/karakirimu/mgui/raster"
)

func testCtx(w, h int) (*Context, *image1bit.VerticalLSB) {
	buf := image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))
	return NewContext(raster.NewCanvas(buf), w, h, nil, nil), buf
}

func countOn(buf *image1bit.VerticalLSB) int {
	n := 0
	for _, b := range buf.Pix {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// testFont is a 4x8 two-glyph font: 'A' is a solid 4x8 block, 'B' fills
// the top four rows only.
func testFont() *raster.Font {
	return &raster.Font{
		W:       4,
		H:       8,
		Charmap: "AB",
		Data: []byte{
			0xFF, 0xFF, 0xFF, 0xFF, // A
			0x0F, 0x0F, 0x0F, 0x0F, // B
		},
	}
}

func TestPixelWidget(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	p := NewPixel(3, 4)
	p.Update(ctx)
	if !buf.BitAt(3, 4) {
		t.Error("pixel (3, 4) = Off, want On")
	}

	p.On = false
	p.Update(ctx)
	if buf.BitAt(3, 4) {
		t.Error("pixel (3, 4) = On after clearing, want Off")
	}
}

func TestPixelWidgetInvert(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	p := NewPixel(3, 4)
	p.Invert = true
	p.Update(ctx)
	if !buf.BitAt(3, 4) {
		t.Error("first inverted pass did not set the pixel")
	}
	p.Update(ctx)
	if buf.BitAt(3, 4) {
		t.Error("second inverted pass did not toggle the pixel back")
	}
}

func TestLineWidget(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	NewLine(1, 1, 10, 1).Update(ctx)
	if !buf.BitAt(1, 1) || !buf.BitAt(10, 1) {
		t.Error("line endpoints not set")
	}
	if got := countOn(buf); got != 10 {
		t.Errorf("pixel count = %d, want 10", got)
	}
}

func TestCircleWidget(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	c := NewCircle(8, 8, 4)
	c.Update(ctx)
	if !buf.BitAt(12, 8) || !buf.BitAt(4, 8) {
		t.Error("circle outline extremes not set")
	}
	if buf.BitAt(8, 8) {
		t.Error("center set on an outline circle")
	}

	c.Fill = true
	c.Update(ctx)
	if !buf.BitAt(8, 8) {
		t.Error("center not set on a filled circle")
	}
}

func TestRectWidget(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	r := NewRect(2, 2, 8, 6)
	r.Update(ctx)
	// Inclusive corners derived from width and height.
	if !buf.BitAt(2, 2) || !buf.BitAt(9, 7) {
		t.Error("rectangle corners not set")
	}
	if buf.BitAt(5, 4) {
		t.Error("interior set on an outline rectangle")
	}
}

func TestRectWidgetRounded(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	r := NewRect(2, 2, 10, 10)
	r.Radius = 2
	r.Update(ctx)
	if buf.BitAt(2, 2) {
		t.Error("sharp corner set on a rounded rectangle")
	}
	if countOn(buf) == 0 {
		t.Error("rounded rectangle drew no pixels")
	}
}

func TestRectWidgetDegenerate(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	r := NewRect(2, 2, 0, 5)
	r.Update(ctx)
	if got := countOn(buf); got != 0 {
		t.Errorf("zero-width rectangle set %d pixels, want 0", got)
	}
}

func TestTriangleWidget(t *testing.T) {
	ctx, buf := testCtx(32, 32)

	NewTriangle(8, 2, 2, 14, 14, 14).Update(ctx)
	for _, p := range []image.Point{{8, 2}, {2, 14}, {14, 14}} {
		if !buf.BitAt(p.X, p.Y) {
			t.Errorf("vertex (%d, %d) = Off, want On", p.X, p.Y)
		}
	}
}

func TestImageWidget(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	// Column 0: rows 0 and 7. Column 1: rows 3 and 4.
	img := &raster.Image{W: 2, H: 8, Data: []byte{0x81, 0x18}}
	NewImage(img, 4, 4).Update(ctx)
	for _, p := range []image.Point{{4, 4}, {4, 11}, {5, 7}, {5, 8}} {
		if !buf.BitAt(p.X, p.Y) {
			t.Errorf("pixel (%d, %d) = Off, want On", p.X, p.Y)
		}
	}
	if got := countOn(buf); got != 4 {
		t.Errorf("pixel count = %d, want 4", got)
	}
}

func TestImageWidgetNil(t *testing.T) {
	ctx, buf := testCtx(16, 16)

	(&Image{X: 1, Y: 1}).Update(ctx)
	if got := countOn(buf); got != 0 {
		t.Errorf("nil image set %d pixels, want 0", got)
	}
}

func TestContextSwitchView(t *testing.T) {
	view := "main"
	ctx := NewContext(nil, 128, 64, nil, &view)

	ctx.SwitchView("menu")
	if view != "menu" {
		t.Errorf("view = %q, want %q", view, "menu")
	}
}

func TestContextSwitchViewSingleScene(t *testing.T) {
	ctx := NewContext(nil, 128, 64, nil, nil)

	// Must not panic in a single-view scene.
	ctx.SwitchView("menu")
}

func TestButtonDerivedSize(t *testing.T) {
	b := NewButton(0, 0)
	b.SetText(NewText(testFont(), "AB", 0, 0))
	b.SetPadding(4, 2, 4, 2)

	if got := b.Width(); got != 4+8+4 {
		t.Errorf("Width() = %d, want 16", got)
	}
	if got := b.Height(); got != 2+8+2 {
		t.Errorf("Height() = %d, want 12", got)
	}
}

func TestButtonExplicitSize(t *testing.T) {
	b := NewButtonSize(0, 0, 30, 12)
	b.SetText(NewText(testFont(), "AB", 0, 0))

	if got := b.Width(); got != 30 {
		t.Errorf("Width() = %d, want 30", got)
	}
	if got := b.Height(); got != 12 {
		t.Errorf("Height() = %d, want 12", got)
	}
}

func TestButtonDrawOutline(t *testing.T) {
	ctx, buf := testCtx(32, 32)

	NewButtonSize(10, 10, 8, 6).Update(ctx)
	if !buf.BitAt(10, 10) || !buf.BitAt(17, 15) {
		t.Error("button border not drawn")
	}
	if buf.BitAt(12, 12) {
		t.Error("interior set on an idle button")
	}
}

func TestButtonDrawStates(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		pressed  bool
		wantFill bool
	}{
		{"idle", false, false, false},
		{"focused", true, false, true},
		{"pressed", false, true, true},
		{"focused and pressed", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testCtx(32, 32)
			b := NewButtonSize(10, 10, 8, 6)
			b.SetSelected(tt.selected)
			b.SetPressed(tt.pressed)
			b.Update(ctx)
			if got := buf.BitAt(12, 12); bool(got) != tt.wantFill {
				t.Errorf("interior pixel = %v, want %v", got, tt.wantFill)
			}
		})
	}
}

func TestButtonInvertedLabel(t *testing.T) {
	ctx, buf := testCtx(32, 32)

	b := NewButton(0, 0)
	b.SetText(NewText(testFont(), "A", 0, 0))
	b.SetPadding(2, 2, 2, 2)
	b.SetPressed(true)
	b.Update(ctx)

	// The solid glyph clears its cell out of the filled body.
	if buf.BitAt(2, 2) {
		t.Error("label pixel still On inside a pressed button")
	}
	if !buf.BitAt(1, 1) {
		t.Error("body pixel Off inside a pressed button")
	}
}

func TestButtonHandler(t *testing.T) {
	readings := []input.Reading{{Kind: input.Single, Value: 1}}
	buf := image1bit.NewVerticalLSB(image.Rect(0, 0, 32, 32))
	ctx := NewContext(raster.NewCanvas(buf), 32, 32, readings, nil)

	b := NewButtonSize(0, 0, 8, 6)
	b.Handler = func(ctx *Context, b *Button) {
		b.SetPressed(ctx.Inputs[0].Value != 0)
	}
	b.Update(ctx)
	if !b.Pressed() {
		t.Error("handler did not map the input reading onto press state")
	}
	if !buf.BitAt(2, 2) {
		t.Error("press state did not take effect in the same frame")
	}
}

func TestGroupFocus(t *testing.T) {
	g := NewGroup()
	b0 := NewButtonSize(0, 0, 8, 6)
	b1 := NewButtonSize(0, 8, 8, 6)
	g.Add(b0)
	g.Add(b1)

	if !b0.Selected() || b1.Selected() {
		t.Fatal("first member added is not the focused one")
	}
	g.SelectNext()
	if b0.Selected() || !b1.Selected() {
		t.Error("SelectNext did not move the focus")
	}
	if g.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", g.SelectedIndex())
	}
	g.SelectPrev()
	if !b0.Selected() || b1.Selected() {
		t.Error("SelectPrev did not restore the focus")
	}
}

func TestGroupFocusBounds(t *testing.T) {
	g := NewGroup()
	g.Add(NewButtonSize(0, 0, 8, 6))
	g.Add(NewButtonSize(0, 8, 8, 6))

	g.SelectPrev()
	if g.SelectedIndex() != 0 {
		t.Errorf("SelectPrev at index 0: SelectedIndex() = %d, want 0", g.SelectedIndex())
	}
	g.SelectNext()
	g.SelectNext()
	if g.SelectedIndex() != 1 {
		t.Errorf("SelectNext at last index: SelectedIndex() = %d, want 1", g.SelectedIndex())
	}
}

func TestGroupMoveResetsPress(t *testing.T) {
	g := NewGroup()
	b0 := NewButtonSize(0, 0, 8, 6)
	b1 := NewButtonSize(0, 8, 8, 6)
	g.Add(b0)
	g.Add(b1)

	g.SetOnPress(true)
	if !b0.Pressed() {
		t.Fatal("SetOnPress did not press the focused member")
	}
	g.SelectNext()
	if b0.Pressed() || b1.Pressed() {
		t.Error("moving the focus left a member pressed")
	}
}

func TestGroupPressFollowsLevel(t *testing.T) {
	g := NewGroup()
	b := NewButtonSize(0, 0, 8, 6)
	g.Add(b)

	g.SetOnPress(true)
	if !b.Pressed() {
		t.Error("press level high, member not pressed")
	}
	g.SetOnPress(false)
	if b.Pressed() {
		t.Error("press level low, member still pressed")
	}
}

func TestGroupSelectEdges(t *testing.T) {
	g := NewGroup()
	for i := 0; i < 3; i++ {
		g.Add(NewButtonSize(0, i*8, 8, 6))
	}

	// A held level moves the focus once.
	g.SetOnSelectNext(true)
	g.SetOnSelectNext(true)
	if g.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d after held level, want 1", g.SelectedIndex())
	}
	g.SetOnSelectNext(false)
	g.SetOnSelectNext(true)
	if g.SelectedIndex() != 2 {
		t.Errorf("SelectedIndex() = %d after second edge, want 2", g.SelectedIndex())
	}
}

func TestGroupRemove(t *testing.T) {
	g := NewGroup()
	b0 := NewButtonSize(0, 0, 8, 6)
	b1 := NewButtonSize(0, 8, 8, 6)
	b2 := NewButtonSize(0, 16, 8, 6)
	g.Add(b0)
	g.Add(b1)
	g.Add(b2)

	// Removing a member before the focus keeps the same member focused.
	g.SelectNext()
	g.Remove(b0)
	if g.Selected() != Interactor(b1) {
		t.Error("focus moved off b1 after removing an earlier member")
	}

	// Removing the focused member falls back to the first.
	g.Remove(b1)
	if g.Selected() != Interactor(b2) || !b2.Selected() {
		t.Error("focus did not fall back after removing the focused member")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestGroupUpdate(t *testing.T) {
	ctx, buf := testCtx(32, 32)

	g := NewGroup()
	g.Handler = func(ctx *Context, g *Group) {
		g.SetOnPress(true)
	}
	g.Add(NewButtonSize(0, 0, 8, 6))
	g.Add(NewButtonSize(0, 8, 8, 6))
	g.Update(ctx)

	// Focused member pressed and filled, the other one outlined.
	if !buf.BitAt(2, 2) {
		t.Error("focused member not filled")
	}
	if buf.BitAt(2, 10) {
		t.Error("unfocused member filled")
	}
}

func TestVScrollFullThumb(t *testing.T) {
	ctx, buf := testCtx(16, 40)

	v := NewVScroll(0, 0, 6, 34)
	v.SetRange(3, 0, 4)
	v.Update(ctx)
	if !buf.BitAt(0, 0) || !buf.BitAt(5, 33) {
		t.Error("track outline not drawn")
	}
	if !buf.BitAt(2, 2) || !buf.BitAt(2, 31) {
		t.Error("thumb does not fill the track when everything is visible")
	}
}

func TestVScrollProportionalThumb(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		wantOn  image.Point
		wantOff image.Point
	}{
		{"window at top", 0, image.Point{2, 2}, image.Point{2, 30}},
		{"window at bottom", 4, image.Point{2, 30}, image.Point{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := testCtx(16, 40)
			v := NewVScroll(0, 0, 6, 34)
			v.SetRange(8, tt.start, 4)
			v.Update(ctx)
			if !buf.BitAt(tt.wantOn.X, tt.wantOn.Y) {
				t.Errorf("thumb pixel (%d, %d) = Off, want On", tt.wantOn.X, tt.wantOn.Y)
			}
			if buf.BitAt(tt.wantOff.X, tt.wantOff.Y) {
				t.Errorf("track pixel (%d, %d) = On, want Off", tt.wantOff.X, tt.wantOff.Y)
			}
		})
	}
}

func TestVScrollEmptyRange(t *testing.T) {
	ctx, buf := testCtx(16, 40)

	v := NewVScroll(0, 0, 6, 34)
	v.Update(ctx)
	if !buf.BitAt(0, 0) {
		t.Error("track outline not drawn")
	}
	if buf.BitAt(2, 2) {
		t.Error("thumb drawn with no range set")
	}
}
