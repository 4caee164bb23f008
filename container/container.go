// Package container provides the small ordered collections the widget
// tree is built on: an insertion-ordered list, a LIFO stack and a
// fixed-bucket string-keyed map.
//
// The collections are slice-backed rather than linked nodes, keeping
// O(1) append and insertion order without per-element allocation. They
// are not safe for concurrent use, matching the single render loop the
// toolkit runs in.
package container

// List is an insertion-ordered, duplicate-tolerant list.
type List[T comparable] struct {
	items []T
}

// Add appends v to the list.
func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
}

// Get returns the element at index i. Out-of-range access returns the
// zero value.
func (l *List[T]) Get(i int) T {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero
	}
	return l.items[i]
}

// Remove deletes the first element equal to v, preserving the order of
// the remainder. Removing an absent value is a no-op.
func (l *List[T]) Remove(v T) {
	for i, item := range l.items {
		if item == v {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// First returns the first element, or the zero value if empty.
func (l *List[T]) First() T {
	return l.Get(0)
}

// Last returns the last element, or the zero value if empty.
func (l *List[T]) Last() T {
	return l.Get(len(l.items) - 1)
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.items = l.items[:0]
}

// Each calls fn for every element in insertion order.
func (l *List[T]) Each(fn func(v T)) {
	for _, item := range l.items {
		fn(item)
	}
}

// Stack is a LIFO stack.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. Popping an empty stack
// returns the zero value.
func (s *Stack[T]) Pop() T {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// stringMapBuckets is the fixed bucket count of StringMap. Views and
// named resources number in the tens at most, so a small power of two
// keeps the index math to a mask.
const stringMapBuckets = 16

type stringMapEntry[T any] struct {
	key   string
	value T
}

// StringMap is a fixed-bucket hash map keyed by short strings. Iteration
// order is not defined; use Keys for a stable snapshot.
type StringMap[T any] struct {
	buckets [stringMapBuckets][]stringMapEntry[T]
	keys    []string // insertion order
}

// fnv1a is the 32-bit FNV-1a hash.
func fnv1a(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Insert stores value under key, replacing any previous entry.
func (m *StringMap[T]) Insert(key string, value T) {
	b := fnv1a(key) & (stringMapBuckets - 1)
	for i, e := range m.buckets[b] {
		if e.key == key {
			m.buckets[b][i].value = value
			return
		}
	}
	m.buckets[b] = append(m.buckets[b], stringMapEntry[T]{key: key, value: value})
	m.keys = append(m.keys, key)
}

// Get returns a pointer to the value stored under key, or nil if absent.
func (m *StringMap[T]) Get(key string) *T {
	b := fnv1a(key) & (stringMapBuckets - 1)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == key {
			return &m.buckets[b][i].value
		}
	}
	return nil
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (m *StringMap[T]) Remove(key string) {
	b := fnv1a(key) & (stringMapBuckets - 1)
	for i, e := range m.buckets[b] {
		if e.key == key {
			m.buckets[b] = append(m.buckets[b][:i], m.buckets[b][i+1:]...)
			for j, k := range m.keys {
				if k == key {
					m.keys = append(m.keys[:j], m.keys[j+1:]...)
					break
				}
			}
			return
		}
	}
}

// Len returns the number of entries.
func (m *StringMap[T]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *StringMap[T]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
