package widget

// Button is a pressable, focusable rounded rectangle with an optional
// text label. A button with no explicit size derives it from the label
// plus padding.
type Button struct {
	X, Y   int
	Radius int

	// Handler, when set, runs at the start of Update with this
	// frame's context; it typically maps an input reading onto
	// SetPressed or switches the active view.
	Handler func(ctx *Context, b *Button)

	w, h                   int
	text                   *Text
	padL, padT, padR, padB int
	pressed                bool
	selected               bool
}

// NewButton returns a Button with its top-left at (x, y). Size is
// derived from the label once one is attached.
func NewButton(x, y int) *Button {
	return &Button{X: x, Y: y}
}

// NewButtonSize returns a Button with an explicit w x h size.
func NewButtonSize(x, y, w, h int) *Button {
	return &Button{X: x, Y: y, w: w, h: h}
}

// SetText attaches a label. The Text object is borrowed; its position is
// overwritten each frame to track the button.
func (b *Button) SetText(t *Text) {
	b.text = t
}

// SetPadding sets the space between the border and the label.
func (b *Button) SetPadding(left, top, right, bottom int) {
	b.padL, b.padT, b.padR, b.padB = left, top, right, bottom
}

// SetWidth overrides the derived width.
func (b *Button) SetWidth(w int) { b.w = w }

// SetHeight overrides the derived height.
func (b *Button) SetHeight(h int) { b.h = h }

// Width returns the effective width.
func (b *Button) Width() int {
	if b.w > 0 || b.text == nil {
		return b.w
	}
	return b.padL + b.text.Width() + b.padR
}

// Height returns the effective height.
func (b *Button) Height() int {
	if b.h > 0 || b.text == nil {
		return b.h
	}
	return b.padT + b.text.Height() + b.padB
}

// SetPressed implements Interactor.
func (b *Button) SetPressed(pressed bool) { b.pressed = pressed }

// Pressed implements Interactor.
func (b *Button) Pressed() bool { return b.pressed }

// SetSelected implements Interactor.
func (b *Button) SetSelected(selected bool) { b.selected = selected }

// Selected implements Interactor.
func (b *Button) Selected() bool { return b.selected }

// Kind implements Object.
func (b *Button) Kind() Kind { return KindButton }

// Update implements Object.
func (b *Button) Update(ctx *Context) {
	if b.Handler != nil {
		b.Handler(ctx, b)
	}
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return
	}
	// Focus and press both render inverted: filled body, cleared text.
	invert := b.pressed || b.selected
	ctx.Canvas.RoundRect(b.X, b.Y, b.X+w-1, b.Y+h-1, b.Radius, invert, true)
	if b.text != nil {
		b.text.X = b.X + b.padL
		b.text.Y = b.Y + b.padT
		b.text.Invert = invert
		b.text.Update(ctx)
	}
}
