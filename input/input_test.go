package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func constSource(kind Kind, value int) Source {
	return SourceFunc(func(r *Reading) {
		r.Kind = kind
		r.Value = value
	})
}

func TestAggregatorSlotOrder(t *testing.T) {
	var a Aggregator

	a.Add(constSource(Single, 11))
	a.Add(constSource(Single, 22))
	a.Add(constSource(None, 0))
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}

	a.Update()
	want := []Reading{
		{Kind: Single, Value: 11},
		{Kind: Single, Value: 22},
		{Kind: None, Value: 0},
	}
	if diff := cmp.Diff(want, a.Readings()); diff != "" {
		t.Errorf("readings mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregatorUpdateOrder(t *testing.T) {
	var a Aggregator
	var order []int

	for i := 0; i < 4; i++ {
		a.Add(SourceFunc(func(r *Reading) {
			order = append(order, i)
			r.Kind = Single
			r.Value = i
		}))
	}
	a.Update()
	if diff := cmp.Diff([]int{0, 1, 2, 3}, order); diff != "" {
		t.Errorf("sampling order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregatorAddDiscardsReadings(t *testing.T) {
	var a Aggregator

	a.Add(constSource(Single, 7))
	a.Update()
	if a.Readings()[0].Value != 7 {
		t.Fatalf("Readings()[0].Value = %d, want 7", a.Readings()[0].Value)
	}

	// Registering another source reallocates the slots.
	a.Add(constSource(Single, 9))
	want := []Reading{{}, {}}
	if diff := cmp.Diff(want, a.Readings()); diff != "" {
		t.Errorf("readings after Add mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregatorRepeatedUpdate(t *testing.T) {
	var a Aggregator
	level := 0

	a.Add(SourceFunc(func(r *Reading) {
		r.Kind = Single
		r.Value = level
	}))

	a.Update()
	if got := a.Readings()[0].Value; got != 0 {
		t.Errorf("frame 1 value = %d, want 0", got)
	}
	level = 1
	a.Update()
	if got := a.Readings()[0].Value; got != 1 {
		t.Errorf("frame 2 value = %d, want 1", got)
	}
}

func TestAggregatorEmpty(t *testing.T) {
	var a Aggregator

	a.Update()
	if len(a.Readings()) != 0 {
		t.Errorf("Readings() on empty aggregator has %d slots, want 0", len(a.Readings()))
	}
}

func TestEdgeRising(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   []bool
	}{
		{"press and hold", []int{0, 1, 1, 1, 0}, []bool{false, true, false, false, false}},
		{"double tap", []int{0, 1, 0, 1, 0}, []bool{false, true, false, true, false}},
		{"starts high", []int{1, 1, 0}, []bool{true, false, false}},
		{"encoder steps", []int{0, 2, 2, 3}, []bool{false, true, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Edge
			for i, v := range tt.levels {
				if got := e.Rising(v); got != tt.want[i] {
					t.Errorf("frame %d: Rising(%d) = %v, want %v", i, v, got, tt.want[i])
				}
			}
		})
	}
}
