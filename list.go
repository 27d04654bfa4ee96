package dynlist

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/dynlist/internal/container"
	"github.com/hupe1980/dynlist/value"
)

var (
	defaultLogger  = NoopLogger()
	defaultMetrics = NoopMetricsCollector{}
)

// List is an ordered, resizable sequence of values of mixed kinds.
//
// Internally values are stored as runs of consecutive same-typed values.
// Every mutation other than Add and Clear rebuilds the runs from the new
// logical sequence, so segment boundaries always reflect the add order of
// the current contents.
//
// The zero value is an empty list ready to use. List is not safe for
// concurrent use; callers sharing a List must hold their own lock around
// every call, iteration included.
type List struct {
	data *container.Segments
	opts options
}

// Run describes one segment of a List: a maximal stretch of values that were
// appended consecutively with the same type.
type Run struct {
	Type value.Type
	Len  int
}

// New creates an empty List.
func New(optFns ...Option) *List {
	o := applyOptions(optFns)
	return &List{
		data: container.New(o.capacityHint),
		opts: o,
	}
}

// From creates a List holding vs in order.
func From(vs []value.Value, optFns ...Option) (*List, error) {
	l := New(optFns...)
	for _, v := range vs {
		if _, err := l.Add(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *List) storage() *container.Segments {
	if l.data == nil {
		l.data = container.New(l.opts.capacityHint)
	}
	return l.data
}

func (l *List) logger() *Logger {
	if l.opts.logger == nil {
		return defaultLogger
	}
	return l.opts.logger
}

func (l *List) metrics() MetricsCollector {
	if l.opts.metricsCollector == nil {
		return defaultMetrics
	}
	return l.opts.metricsCollector
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	return l.storage().Len()
}

// Get returns the value at index.
//
// Returns an error matching ErrIndexOutOfRange unless 0 <= index < Len().
func (l *List) Get(index int) (value.Value, error) {
	start := time.Now()

	if err := checkIndex("get", index, l.Len()); err != nil {
		l.metrics().RecordLookup(time.Since(start), err)
		return value.Value{}, err
	}

	v, _ := l.storage().Get(index)
	l.metrics().RecordLookup(time.Since(start), nil)
	return v, nil
}

// Add appends v and returns its index (the new length minus one).
//
// v joins the trailing run if it has the same type, otherwise it starts a
// new run. Earlier runs of the same type are never extended.
// Returns ErrNullArgument for null or zero values.
func (l *List) Add(v value.Value) (int, error) {
	start := time.Now()

	if v.IsNull() {
		err := fmt.Errorf("add: %w", ErrNullArgument)
		l.metrics().RecordAdd(time.Since(start), err)
		l.logger().LogAdd(-1, "", false, err)
		return -1, err
	}

	s := l.storage()
	created := s.Append(v)
	index := s.Len() - 1

	l.metrics().RecordAdd(time.Since(start), nil)
	l.logger().LogAdd(index, v.Type().String(), created, nil)
	return index, nil
}

// AddAny converts x with value.FromAny and adds it.
//
// A nil x yields ErrNullArgument; unsupported Go types yield a
// *value.UnsupportedTypeError.
func (l *List) AddAny(x any) (int, error) {
	v, err := value.FromAny(x)
	if err != nil {
		return -1, err
	}
	return l.Add(v)
}

// Set replaces the value at index and rebuilds the runs.
func (l *List) Set(index int, v value.Value) error {
	start := time.Now()

	if err := l.validate(OpSet, index, v, false); err != nil {
		return l.reject(OpSet, index, start, err)
	}

	target := l.Slice()
	target[index] = v
	l.rebuild(OpSet, index, target, start)
	return nil
}

// Insert splices v in at index and rebuilds the runs.
// index == Len() appends.
func (l *List) Insert(index int, v value.Value) error {
	start := time.Now()

	if err := l.validate(OpInsert, index, v, true); err != nil {
		return l.reject(OpInsert, index, start, err)
	}

	target := slices.Insert(l.Slice(), index, v)
	l.rebuild(OpInsert, index, target, start)
	return nil
}

// RemoveAt removes the value at index and rebuilds the runs.
func (l *List) RemoveAt(index int) error {
	start := time.Now()

	if err := checkIndex(OpRemoveAt.String(), index, l.Len()); err != nil {
		return l.reject(OpRemoveAt, index, start, err)
	}

	target := slices.Delete(l.Slice(), index, index+1)
	l.rebuild(OpRemoveAt, index, target, start)
	return nil
}

// Remove removes the first value equal to v.
// It reports whether a value was removed; an absent v is a no-op.
func (l *List) Remove(v value.Value) bool {
	index := l.IndexOf(v)
	if index < 0 {
		return false
	}
	return l.RemoveAt(index) == nil
}

// RemoveAll removes every value equal to v in a single rebuild and returns
// how many were removed. Nothing is rebuilt when v is absent.
func (l *List) RemoveAll(v value.Value) int {
	start := time.Now()

	hits := l.IndexesOf(v)
	if hits.IsEmpty() {
		return 0
	}

	target := make([]value.Value, 0, l.Len()-int(hits.GetCardinality()))
	for i, x := range l.All() {
		if !hits.Contains(uint64(i)) {
			target = append(target, x)
		}
	}
	l.rebuild(OpRemoveAll, -1, target, start)
	return int(hits.GetCardinality())
}

// Clear removes all values.
func (l *List) Clear() {
	dropped := l.Len()
	l.storage().Clear()
	l.logger().LogClear(dropped)
}

// Contains reports whether any value equals v. A null v never matches.
func (l *List) Contains(v value.Value) bool {
	return l.IndexOf(v) >= 0
}

// IndexOf returns the index of the first value equal to v, or -1.
// A null v never matches.
func (l *List) IndexOf(v value.Value) int {
	if v.IsNull() {
		return -1
	}
	for i, x := range l.All() {
		if x.Equal(v) {
			return i
		}
	}
	return -1
}

// IndexesOf returns the set of every index holding a value equal to v.
// The bitmap is empty for absent or null v.
func (l *List) IndexesOf(v value.Value) *roaring64.Bitmap {
	bm := roaring64.New()
	if v.IsNull() {
		return bm
	}
	for i, x := range l.All() {
		if x.Equal(v) {
			bm.Add(uint64(i))
		}
	}
	return bm
}

// All returns an iterator over (index, value) pairs in logical order.
//
// Each iteration observes the list as it was when that iteration started,
// so restarting a sequence obtained earlier reflects every mutation made
// since.
// Mutating the list during iteration is allowed from the same goroutine but
// is not reflected in the running iteration.
func (l *List) All() iter.Seq2[int, value.Value] {
	return func(yield func(int, value.Value) bool) {
		l.storage().All()(yield)
	}
}

// Values returns an iterator over the values in logical order.
// See All for snapshot semantics.
func (l *List) Values() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		l.storage().Values()(yield)
	}
}

// Slice returns a copy of the logical sequence.
func (l *List) Slice() []value.Value {
	out := make([]value.Value, 0, l.Len())
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// Runs returns the current segment layout in order.
func (l *List) Runs() []Run {
	s := l.storage()
	runs := make([]Run, s.NumSegments())
	for i := range runs {
		seg := s.Segment(i)
		runs[i] = Run{Type: seg.Type(), Len: seg.Len()}
	}
	return runs
}

// CopyTo is not supported and always returns ErrNotSupported.
func (l *List) CopyTo(dst []value.Value, start int) error {
	l.logger().LogUnsupported("copy_to")
	return fmt.Errorf("copy_to: %w", ErrNotSupported)
}

// IsSynchronized reports whether the list is safe for concurrent use.
// It always returns false.
func (l *List) IsSynchronized() bool { return false }

type syncRoot struct{ _ byte }

// SyncRoot returns a fresh placeholder object. It is never shared between
// calls and synchronizes nothing.
func (l *List) SyncRoot() any { return new(syncRoot) }

// IsFixedSize always returns false.
func (l *List) IsFixedSize() bool { return false }

// IsReadOnly always returns false.
func (l *List) IsReadOnly() bool { return false }

func (l *List) validate(op Op, index int, v value.Value, inclusive bool) error {
	var err error
	if inclusive {
		err = checkInsertIndex(op.String(), index, l.Len())
	} else {
		err = checkIndex(op.String(), index, l.Len())
	}
	if err != nil {
		return err
	}
	if v.IsNull() {
		return fmt.Errorf("%s: %w", op, ErrNullArgument)
	}
	return nil
}

// rebuild replaces the storage with runs built from target through the
// append rule.
func (l *List) rebuild(op Op, index int, target []value.Value, start time.Time) {
	l.data = container.Build(slices.Values(target), l.opts.capacityHint)

	l.metrics().RecordRebuild(op, len(target), time.Since(start), nil)
	l.logger().LogRebuild(op, index, len(target), l.data.NumSegments(), nil)
}

func (l *List) reject(op Op, index int, start time.Time, err error) error {
	l.metrics().RecordRebuild(op, l.Len(), time.Since(start), err)
	l.logger().LogRebuild(op, index, l.Len(), l.storage().NumSegments(), err)
	return err
}
