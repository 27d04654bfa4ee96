// Package container implements the run-segmented storage behind dynlist.List.
package container

import (
	"iter"

	"github.com/hupe1980/dynlist/value"
)

// Segment is a non-empty run of values sharing one type tag.
type Segment struct {
	typ   value.Type
	items []value.Value
}

// Type returns the type tag shared by every item in the segment.
func (s *Segment) Type() value.Type { return s.typ }

// Len returns the number of items in the segment.
func (s *Segment) Len() int { return len(s.items) }

// Segments is an ordered sequence of segments. The logical sequence is the
// concatenation of all segments in order.
//
// Segments is not safe for concurrent use.
type Segments struct {
	segs []*Segment
}

// New creates an empty Segments with room for capHint segments.
func New(capHint int) *Segments {
	if capHint < 0 {
		capHint = 0
	}
	return &Segments{segs: make([]*Segment, 0, capHint)}
}

// Build creates a fresh Segments by appending every value of seq in order.
func Build(seq iter.Seq[value.Value], capHint int) *Segments {
	s := New(capHint)
	for v := range seq {
		s.Append(v)
	}
	return s
}

// Append adds v to the end of the logical sequence.
//
// v extends the trailing segment iff the trailing segment has the same type
// tag. Otherwise a new segment is started, even when an earlier non-trailing
// segment has the same type.
//
// It reports whether a new segment was created.
func (s *Segments) Append(v value.Value) bool {
	typ := v.Type()

	if n := len(s.segs); n > 0 {
		last := s.segs[n-1]
		if last.typ == typ {
			last.items = append(last.items, v)
			return false
		}
	}

	s.segs = append(s.segs, &Segment{typ: typ, items: []value.Value{v}})
	return true
}

// Len returns the logical length: the sum of all segment lengths.
func (s *Segments) Len() int {
	n := 0
	for _, seg := range s.segs {
		n += len(seg.items)
	}
	return n
}

// NumSegments returns the number of segments.
func (s *Segments) NumSegments() int { return len(s.segs) }

// Segment returns the i-th segment.
func (s *Segments) Segment(i int) *Segment { return s.segs[i] }

// Get returns the item at the given logical index.
// Returns the zero Value and false if index is out of bounds.
func (s *Segments) Get(index int) (value.Value, bool) {
	if index < 0 {
		return value.Value{}, false
	}
	for _, seg := range s.segs {
		if index < len(seg.items) {
			return seg.items[index], true
		}
		index -= len(seg.items)
	}
	return value.Value{}, false
}

// Clear drops all segments.
func (s *Segments) Clear() {
	clear(s.segs)
	s.segs = s.segs[:0]
}

// snapshot captures the current segment item slices. Later appends write
// beyond the captured lengths and rebuilds replace whole segments, so the
// captured slices stay stable.
func (s *Segments) snapshot() [][]value.Value {
	snap := make([][]value.Value, len(s.segs))
	for i, seg := range s.segs {
		snap[i] = seg.items
	}
	return snap
}

// All returns an iterator over (logical index, value) pairs.
//
// Each iteration observes the state at the moment it starts.
func (s *Segments) All() iter.Seq2[int, value.Value] {
	return func(yield func(int, value.Value) bool) {
		i := 0
		for _, items := range s.snapshot() {
			for _, v := range items {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the logical sequence.
func (s *Segments) Values() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}
