// Package input aggregates per-frame readings from physical input
// devices (buttons, rotary encoders).
//
// Sources are sampled once per frame in registration order; each source
// writes exactly one Reading into its slot of the shared result slice.
// Slot order equals registration order and is a positional contract the
// widget handlers rely on. Debouncing and edge detection are the
// consumer's responsibility; the Edge type carries the previous-frame
// state an edge detector needs.
package input

// Kind tags the shape of a Reading.
type Kind int

const (
	// None marks a slot whose source produced no reading this frame.
	None Kind = iota
	// Single is a one-value reading: a button level or an encoder
	// delta.
	Single
)

// Reading is one sampled input value.
type Reading struct {
	Kind  Kind
	Value int
}

// Source samples one input device, writing its current reading into r.
// Read is called once per frame; it must not block.
type Source interface {
	Read(r *Reading)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(r *Reading)

// Read implements Source.
func (f SourceFunc) Read(r *Reading) {
	f(r)
}

// Aggregator owns the registered sources and the per-frame readings.
type Aggregator struct {
	sources  []Source
	readings []Reading
}

// Add registers src as the next slot. The readings slice is reallocated
// to the new source count and previous readings are discarded, so all
// sources should be registered before the first Update.
func (a *Aggregator) Add(src Source) {
	a.sources = append(a.sources, src)
	a.readings = make([]Reading, len(a.sources))
}

// Update samples every source in registration order.
func (a *Aggregator) Update() {
	for i, src := range a.sources {
		src.Read(&a.readings[i])
	}
}

// Readings returns the most recent frame's readings, indexed by
// registration order. The slice is owned by the aggregator and
// overwritten on the next Update.
func (a *Aggregator) Readings() []Reading {
	return a.readings
}

// Len returns the number of registered sources.
func (a *Aggregator) Len() int {
	return len(a.sources)
}

// Edge detects rising edges across frames. The zero value is ready to
// use; each consumer owns its own Edge rather than hiding state in a
// function-local variable.
type Edge struct {
	last int
}

// Rising reports whether v rose above the previous frame's value and
// records v for the next frame.
func (e *Edge) Rising(v int) bool {
	rising := v > e.last
	e.last = v
	return rising
}
