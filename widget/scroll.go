package widget

// VScroll is a vertical scrollbar: an outlined track with a filled thumb
// sized and positioned to mirror a visible window over a larger range.
// Attach it to a Menu with Menu.SetScroll, or drive SetRange directly.
type VScroll struct {
	X, Y int
	W, H int

	total, start, view int
}

// NewVScroll returns a scrollbar with the given track rectangle.
func NewVScroll(x, y, w, h int) *VScroll {
	return &VScroll{X: x, Y: y, W: w, H: h}
}

// SetRange updates the mirrored window: total items, first visible index
// and window size.
func (v *VScroll) SetRange(total, start, view int) {
	v.total, v.start, v.view = total, start, view
}

// Kind implements Object.
func (v *VScroll) Kind() Kind { return KindVScroll }

// Update implements Object.
func (v *VScroll) Update(ctx *Context) {
	if v.W <= 0 || v.H <= 0 {
		return
	}
	ctx.Canvas.Rect(v.X, v.Y, v.X+v.W-1, v.Y+v.H-1, false, true)
	if v.total <= 0 || v.view <= 0 {
		return
	}
	if v.total <= v.view {
		// Everything visible: the thumb fills the track.
		ctx.Canvas.Rect(v.X+1, v.Y+1, v.X+v.W-2, v.Y+v.H-2, true, true)
		return
	}
	inner := v.H - 2
	thumbH := inner * v.view / v.total
	if thumbH < 2 {
		thumbH = 2
	}
	thumbY := v.Y + 1 + (inner-thumbH)*v.start/(v.total-v.view)
	ctx.Canvas.Rect(v.X+1, thumbY, v.X+v.W-2, thumbY+thumbH-1, true, true)
}
