package testutil

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/dynlist/value"
)

// Kinds are the value kinds produced by RNG.Value.
var Kinds = []value.Kind{
	value.KindInt,
	value.KindFloat,
	value.KindString,
	value.KindBool,
	value.KindTime,
	value.KindArray,
}

var letters = []string{"a", "b", "c", "x", "y", "z"}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Value returns a random non-null value of a random kind.
//
// Payloads are drawn from small domains so that equal values recur, which
// exercises IndexOf/Remove on duplicates.
func (r *RNG) Value() value.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueLocked(Kinds[r.rand.Intn(len(Kinds))])
}

// ValueOf returns a random value of the given kind.
// Kinds outside Kinds yield an int value.
func (r *RNG) ValueOf(k value.Kind) value.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valueLocked(k)
}

func (r *RNG) valueLocked(k value.Kind) value.Value {
	switch k {
	case value.KindFloat:
		return value.Float(float64(r.rand.Intn(8)) / 2)
	case value.KindString:
		return value.String(letters[r.rand.Intn(len(letters))])
	case value.KindBool:
		return value.Bool(r.rand.Intn(2) == 1)
	case value.KindTime:
		return value.Time(epoch.Add(time.Duration(r.rand.Intn(4)) * time.Hour))
	case value.KindArray:
		n := r.rand.Intn(3)
		arr := make([]value.Value, n)
		for i := range arr {
			arr[i] = value.Int(int64(r.rand.Intn(3)))
		}
		return value.Array(arr)
	default:
		return value.Int(int64(r.rand.Intn(10)))
	}
}

// Values returns n random values with independently drawn kinds.
func (r *RNG) Values(n int) []value.Value {
	out := make([]value.Value, n)
	for i := range out {
		out[i] = r.Value()
	}
	return out
}

// RunValues returns n random values where each value repeats the kind of its
// predecessor with probability stickiness, producing longer same-kind runs.
func (r *RNG) RunValues(n int, stickiness float64) []value.Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]value.Value, n)
	kind := Kinds[r.rand.Intn(len(Kinds))]
	for i := range out {
		if i > 0 && r.rand.Float64() >= stickiness {
			kind = Kinds[r.rand.Intn(len(Kinds))]
		}
		out[i] = r.valueLocked(kind)
	}
	return out
}

// CountRuns returns the number of maximal stretches of consecutive values
// sharing a value.Type.
func CountRuns(vs []value.Value) int {
	runs := 0
	for i, v := range vs {
		if i == 0 || vs[i-1].Type() != v.Type() {
			runs++
		}
	}
	return runs
}

// EqualSequences reports whether a and b have the same length and pairwise
// equal values.
func EqualSequences(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
