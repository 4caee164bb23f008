package widget

import "github.com/karakirimu/mgui/container"

// MenuProperty is the mutable state of one menu level: its item list and
// selected index. Entering a submenu swaps the active property handle
// and pushes the previous one, so a level's selection survives drilling
// down and returning.
type MenuProperty struct {
	items    container.List[*MenuItem]
	selected int
}

// Add appends an item to the level. The first item added becomes the
// selected one.
func (p *MenuProperty) Add(it *MenuItem) {
	p.items.Add(it)
	if p.items.Len() == 1 {
		it.SetSelected(true)
	}
}

// Remove deletes an item from the level, resetting its press and focus
// state. If it was the selected item the selection falls back to the
// first item.
func (p *MenuProperty) Remove(it *MenuItem) {
	idx := -1
	for i := 0; i < p.items.Len(); i++ {
		if p.items.Get(i) == it {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	it.SetPressed(false)
	it.SetSelected(false)
	p.items.Remove(it)
	if p.selected >= p.items.Len() || idx == p.selected {
		p.selected = 0
		if first := p.items.First(); first != nil {
			first.SetSelected(true)
		}
	} else if idx < p.selected {
		p.selected--
	}
}

// Len returns the number of items in the level.
func (p *MenuProperty) Len() int {
	return p.items.Len()
}

// Item returns the item at index i, or nil when out of range.
func (p *MenuProperty) Item(i int) *MenuItem {
	return p.items.Get(i)
}

// SelectedIndex returns the level's selected index.
func (p *MenuProperty) SelectedIndex() int {
	return p.selected
}

// setSelected moves the level's selection, keeping the item focus flags
// consistent. Out-of-range indices are a no-op.
func (p *MenuProperty) setSelected(i int) {
	if i < 0 || i >= p.items.Len() || i == p.selected {
		return
	}
	if prev := p.items.Get(p.selected); prev != nil {
		prev.SetSelected(false)
	}
	p.selected = i
	p.items.Get(i).SetSelected(true)
}

// MenuItem is one row of a Menu: a text label plus optionally a check
// mark, a child menu or the return-to-parent role.
type MenuItem struct {
	Radius int

	// Handler, when set, runs each frame the item is drawn, before
	// rendering.
	Handler func(ctx *Context, it *MenuItem)

	text       *Text
	checkable  bool
	checked    bool
	child      *MenuProperty
	returnItem bool

	selected bool
	pressed  bool

	// Row rectangle, assigned by the owning menu each frame.
	x, y, w, h int
}

// NewMenuItem returns an empty menu item.
func NewMenuItem() *MenuItem {
	return &MenuItem{}
}

// NewMenuItemText returns a menu item labeled with t.
func NewMenuItemText(t *Text) *MenuItem {
	return &MenuItem{text: t}
}

// SetText attaches the label. The Text object is borrowed; its position
// and viewport are overwritten each frame to track the row.
func (it *MenuItem) SetText(t *Text) {
	it.text = t
}

// SetCheck makes the item a check item with the given initial state.
func (it *MenuItem) SetCheck(checked bool) {
	it.checkable = true
	it.checked = checked
}

// Checked reports the check state.
func (it *MenuItem) Checked() bool {
	return it.checked
}

// SetMenu attaches a child menu level, making the item a submenu entry.
// Pass the child's property handle obtained from Menu.Property.
func (it *MenuItem) SetMenu(p *MenuProperty) {
	it.child = p
}

// Menu returns the attached child level, or nil.
func (it *MenuItem) Menu() *MenuProperty {
	return it.child
}

// SetReturn marks the item as a return-to-parent entry.
func (it *MenuItem) SetReturn(ret bool) {
	it.returnItem = ret
}

// Return reports whether the item is a return-to-parent entry.
func (it *MenuItem) Return() bool {
	return it.returnItem
}

// SetPressed implements Interactor. A check item toggles its state on
// the press rising edge only.
func (it *MenuItem) SetPressed(pressed bool) {
	if pressed && !it.pressed && it.checkable {
		it.checked = !it.checked
	}
	it.pressed = pressed
}

// Pressed implements Interactor.
func (it *MenuItem) Pressed() bool { return it.pressed }

// SetSelected implements Interactor.
func (it *MenuItem) SetSelected(selected bool) { it.selected = selected }

// Selected implements Interactor.
func (it *MenuItem) Selected() bool { return it.selected }

// SetDrawPosition assigns the row rectangle for the item at the given
// window position. The per-item height is screenH divided by viewCount.
// Normally called by the owning Menu; exposed for drawing items outside
// a menu.
func (it *MenuItem) SetDrawPosition(index, viewCount, screenW, screenH int) {
	if viewCount < 1 {
		viewCount = 1
	}
	rowH := screenH / viewCount
	it.x = 0
	it.y = index * rowH
	it.w = screenW
	it.h = rowH
}

// Kind implements Object.
func (it *MenuItem) Kind() Kind { return KindMenuItem }

// Update implements Object.
func (it *MenuItem) Update(ctx *Context) {
	if it.Handler != nil {
		it.Handler(ctx, it)
	}
	if it.w <= 0 || it.h <= 0 {
		return
	}
	on := true
	if it.selected {
		// Focus rectangle; the row content draws inverted on it.
		ctx.Canvas.RoundRect(it.x, it.y, it.x+it.w-1, it.y+it.h-1, it.Radius, true, true)
		on = false
	}
	textX := it.x + 2
	if it.returnItem {
		it.drawReturnChevrons(ctx, on)
		textX += it.h
	}
	textW := it.w - (textX - it.x) - 2
	if it.checkable || it.child != nil {
		textW -= it.h
	}
	if it.text != nil {
		it.text.X = textX
		if dy := (it.h - it.text.Height()) / 2; dy > 0 {
			it.text.Y = it.y + dy
		} else {
			it.text.Y = it.y
		}
		it.text.Invert = it.selected
		it.text.SetViewport(textW, it.h)
		it.text.SetMove(it.selected && it.text.Width() > textW, 1)
		it.text.Update(ctx)
	}
	switch {
	case it.checkable:
		it.drawCheckbox(ctx, on)
	case it.child != nil:
		it.drawMenuChevrons(ctx, on)
	}
}

// drawCheckbox draws the check box at the right edge of the row, with an
// inner fill when checked.
func (it *MenuItem) drawCheckbox(ctx *Context, on bool) {
	s := it.h - 6
	if s < 4 {
		s = 4
	}
	x1 := it.x + it.w - 4
	x0 := x1 - s
	y0 := it.y + (it.h-s)/2
	ctx.Canvas.Rect(x0, y0, x1, y0+s, false, on)
	if it.checked {
		ctx.Canvas.Rect(x0+2, y0+2, x1-2, y0+s-2, true, on)
	}
}

// drawMenuChevrons draws the right-pointing chevron pair marking a
// submenu entry.
func (it *MenuItem) drawMenuChevrons(ctx *Context, on bool) {
	midY := it.y + it.h/2
	span := it.h / 4
	for k := 0; k < 2; k++ {
		cx := it.x + it.w - 10 + k*4
		ctx.Canvas.Line(cx, midY-span, cx+span, midY, on)
		ctx.Canvas.Line(cx+span, midY, cx, midY+span, on)
	}
}

// drawReturnChevrons draws the left-pointing chevron pair marking a
// return-to-parent entry.
func (it *MenuItem) drawReturnChevrons(ctx *Context, on bool) {
	midY := it.y + it.h/2
	span := it.h / 4
	for k := 0; k < 2; k++ {
		cx := it.x + 3 + k*4
		ctx.Canvas.Line(cx+span, midY-span, cx, midY, on)
		ctx.Canvas.Line(cx, midY, cx+span, midY+span, on)
	}
}

// Menu renders a scrollable list of MenuItem rows and drives the
// hierarchical navigation state machine.
//
// The menu always operates on exactly one active property block: its own
// root level, or a descendant's after the user drilled into submenus.
// Ancestor levels are held on an explicit stack, so the stack plus the
// active property always spell the path from the root to the displayed
// level.
type Menu struct {
	// Handler, when set, runs at the start of Update; it typically
	// maps input readings onto SetOnEnter / SetOnSelectNext and
	// friends.
	Handler func(ctx *Context, m *Menu)

	w, h      int
	viewCount int

	root    *MenuProperty
	current *MenuProperty
	stack   container.Stack[*MenuProperty]
	scroll  *VScroll

	prevEnter  bool
	prevReturn bool
	prevNext   bool
	prevPrev   bool
}

// NewMenu returns a Menu rendering w x h pixels with the default window
// of 4 visible items.
func NewMenu(w, h int) *Menu {
	root := &MenuProperty{}
	return &Menu{w: w, h: h, viewCount: 4, root: root, current: root}
}

// Add appends an item to the root level.
func (m *Menu) Add(it *MenuItem) {
	m.root.Add(it)
}

// Remove deletes an item from the root level.
func (m *Menu) Remove(it *MenuItem) {
	m.root.Remove(it)
}

// Property returns the root level's property handle, for attaching this
// menu as a child of another menu's item.
func (m *Menu) Property() *MenuProperty {
	return m.root
}

// SetViewCount sets how many items are visible at once. Counts below 1
// are ignored.
func (m *Menu) SetViewCount(n int) {
	if n >= 1 {
		m.viewCount = n
	}
}

// ViewCount returns the number of visible items.
func (m *Menu) ViewCount() int {
	return m.viewCount
}

// SetScroll attaches a scrollbar kept in sync with the visible window.
// The VScroll is borrowed and drawn by the menu; do not add it to the
// scene separately.
func (m *Menu) SetScroll(v *VScroll) {
	m.scroll = v
}

// SelectedIndex returns the active level's selected index.
func (m *Menu) SelectedIndex() int {
	return m.current.SelectedIndex()
}

// SetSelectedIndex moves the active level's selection. Out-of-range
// indices are a no-op.
func (m *Menu) SetSelectedIndex(i int) {
	m.current.setSelected(i)
}

// SelectedItem returns the active level's selected item, or nil when the
// level is empty.
func (m *Menu) SelectedItem() *MenuItem {
	return m.current.Item(m.current.SelectedIndex())
}

// SelectNext moves the selection down by one. At the last index it is a
// no-op.
func (m *Menu) SelectNext() {
	m.current.setSelected(m.current.SelectedIndex() + 1)
}

// SelectPrev moves the selection up by one. At index 0 it is a no-op.
func (m *Menu) SelectPrev() {
	m.current.setSelected(m.current.SelectedIndex() - 1)
}

// Enter activates the selected item: a return item pops back to the
// parent level, a check item toggles, a submenu item pushes the current
// level and switches to its child.
func (m *Menu) Enter() {
	it := m.SelectedItem()
	if it == nil {
		return
	}
	if it.returnItem {
		m.Return()
		return
	}
	it.SetPressed(true)
	if it.child != nil {
		m.stack.Push(m.current)
		m.current = it.child
	}
}

// Return pops back to the parent level. At the root it is a no-op.
func (m *Menu) Return() {
	if m.stack.IsEmpty() {
		return
	}
	m.current = m.stack.Pop()
}

// SetOnEnter feeds the raw enter-button level. Enter fires on the rising
// edge only; repeated calls with the same value are ignored. The falling
// edge releases the selected item's press state.
func (m *Menu) SetOnEnter(v bool) {
	if v && !m.prevEnter {
		m.Enter()
	} else if !v && m.prevEnter {
		if it := m.SelectedItem(); it != nil {
			it.SetPressed(false)
		}
	}
	m.prevEnter = v
}

// SetOnReturn feeds the raw return-button level; Return fires on the
// rising edge only.
func (m *Menu) SetOnReturn(v bool) {
	if v && !m.prevReturn {
		m.Return()
	}
	m.prevReturn = v
}

// SetOnSelectNext feeds the raw select-next level; the selection moves
// on the rising edge only.
func (m *Menu) SetOnSelectNext(v bool) {
	if v && !m.prevNext {
		m.SelectNext()
	}
	m.prevNext = v
}

// SetOnSelectPrev feeds the raw select-prev level; the selection moves
// on the rising edge only.
func (m *Menu) SetOnSelectPrev(v bool) {
	if v && !m.prevPrev {
		m.SelectPrev()
	}
	m.prevPrev = v
}

// windowStart returns the first visible index, keeping the selected
// index inside the view window.
func (m *Menu) windowStart() int {
	start := m.current.SelectedIndex() + 1 - m.viewCount
	if start < 0 {
		start = 0
	}
	return start
}

// Kind implements Object.
func (m *Menu) Kind() Kind { return KindMenu }

// Update implements Object.
func (m *Menu) Update(ctx *Context) {
	if m.Handler != nil {
		m.Handler(ctx, m)
	}
	start := m.windowStart()
	end := start + m.viewCount
	if end > m.current.Len() {
		end = m.current.Len()
	}
	for i := start; i < end; i++ {
		it := m.current.Item(i)
		if it == nil {
			continue
		}
		it.SetDrawPosition(i-start, m.viewCount, m.w, m.h)
		it.Update(ctx)
	}
	if m.scroll != nil {
		m.scroll.SetRange(m.current.Len(), start, m.viewCount)
		m.scroll.Update(ctx)
	}
}
