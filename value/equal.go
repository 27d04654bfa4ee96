package value

import "math"

// Equal reports whether v and other hold the same kind and payload.
//
// A null (or zero) operand never matches, not even another null.
// Floats compare with ==, except that NaN equals NaN. Times compare with
// time.Time.Equal. Arrays compare element-wise; nulls nested inside arrays do
// match each other. Custom values must share TypeName and then defer to
// Custom.Equal.
func (v Value) Equal(other Value) bool {
	if v.IsNull() || other.IsNull() {
		return false
	}
	return equal(v, other)
}

// Equal is the function form of Value.Equal.
func Equal(a, b Value) bool { return a.Equal(b) }

func equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindInvalid, KindNull:
		return true
	case KindInt:
		return a.I64 == b.I64
	case KindFloat:
		if math.IsNaN(a.F64) && math.IsNaN(b.F64) {
			return true
		}
		return a.F64 == b.F64
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	case KindTime:
		return a.T.Equal(b.T)
	case KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !equal(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	case KindCustom:
		if a.c.TypeName() != b.c.TypeName() {
			return false
		}
		return a.c.Equal(b.c)
	default:
		return false
	}
}
