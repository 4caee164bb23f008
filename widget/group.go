package widget

import "github.com/karakirimu/mgui/container"

// Group gathers interactive widgets under one shared selection cursor.
// Exactly one member is focused at a time; pressing acts on the focused
// member only. Selection marks focus and press marks activation, and the
// two never mix: moving the focus or removing a member resets press
// state.
type Group struct {
	// Handler, when set, runs at the start of Update; it typically
	// maps input readings onto SetOnPress / SetOnSelectNext and
	// friends.
	Handler func(ctx *Context, g *Group)

	items    container.List[Interactor]
	selected int

	prevNext bool
	prevPrev bool
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a member. The first member added becomes the focused one.
func (g *Group) Add(it Interactor) {
	g.items.Add(it)
	if g.items.Len() == 1 {
		it.SetSelected(true)
	}
}

// Remove deletes a member, clearing its focus and resetting every
// member's press state. If the focused member was removed the focus
// falls back to the first member.
func (g *Group) Remove(it Interactor) {
	idx := -1
	for i := 0; i < g.items.Len(); i++ {
		if g.items.Get(i) == it {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	it.SetSelected(false)
	g.items.Remove(it)
	g.resetPress()
	if idx < g.selected {
		g.selected--
	} else if idx == g.selected {
		g.selected = 0
	}
	if g.selected >= g.items.Len() {
		g.selected = 0
	}
	if first := g.items.Get(g.selected); first != nil {
		first.SetSelected(true)
	}
}

// Len returns the number of members.
func (g *Group) Len() int {
	return g.items.Len()
}

// SelectedIndex returns the focused member's index.
func (g *Group) SelectedIndex() int {
	return g.selected
}

// Selected returns the focused member, or nil when the group is empty.
func (g *Group) Selected() Interactor {
	return g.items.Get(g.selected)
}

// SelectNext moves the focus down by one, resetting press state. At the
// last index it is a no-op.
func (g *Group) SelectNext() {
	g.moveSelection(g.selected + 1)
}

// SelectPrev moves the focus up by one, resetting press state. At index
// 0 it is a no-op.
func (g *Group) SelectPrev() {
	g.moveSelection(g.selected - 1)
}

func (g *Group) moveSelection(i int) {
	if i < 0 || i >= g.items.Len() || i == g.selected {
		return
	}
	g.resetPress()
	if prev := g.items.Get(g.selected); prev != nil {
		prev.SetSelected(false)
	}
	g.selected = i
	g.items.Get(i).SetSelected(true)
}

// resetPress clears every member's press state.
func (g *Group) resetPress() {
	g.items.Each(func(it Interactor) {
		it.SetPressed(false)
	})
}

// SetOnPress feeds the raw press level to the focused member. Press
// follows the level directly; edge semantics, if needed, belong to the
// member (check items toggle on their own rising edge).
func (g *Group) SetOnPress(v bool) {
	if it := g.Selected(); it != nil {
		it.SetPressed(v)
	}
}

// SetOnSelectNext feeds the raw select-next level; the focus moves on
// the rising edge only.
func (g *Group) SetOnSelectNext(v bool) {
	if v && !g.prevNext {
		g.SelectNext()
	}
	g.prevNext = v
}

// SetOnSelectPrev feeds the raw select-prev level; the focus moves on
// the rising edge only.
func (g *Group) SetOnSelectPrev(v bool) {
	if v && !g.prevPrev {
		g.SelectPrev()
	}
	g.prevPrev = v
}

// Kind implements Object.
func (g *Group) Kind() Kind { return KindGroup }

// Update implements Object.
func (g *Group) Update(ctx *Context) {
	if g.Handler != nil {
		g.Handler(ctx, g)
	}
	g.items.Each(func(it Interactor) {
		it.Update(ctx)
	})
}
