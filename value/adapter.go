package value

import (
	"fmt"
	"math"
	"time"
)

// UnsupportedTypeError is returned by FromAny for Go values it cannot map.
type UnsupportedTypeError struct {
	GoType string
	// Reason is set when the type is supported but the particular value is not.
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported value type %s: %s", e.GoType, e.Reason)
	}
	return fmt.Sprintf("unsupported value type %s", e.GoType)
}

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for callers holding untyped data.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case Custom:
		return Of(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64("uint", uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64("uint64", x)
	case time.Time:
		return Time(x), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Float(x[i])
		}
		return Array(arr), nil
	default:
		return Value{}, &UnsupportedTypeError{GoType: fmt.Sprintf("%T", v)}
	}
}

// MustFromAny is like FromAny but panics on error. Intended for literals in
// tests and examples.
func MustFromAny(v any) Value {
	vv, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return vv
}

func fromUint64(goType string, x uint64) (Value, error) {
	if x > math.MaxInt64 {
		// Avoid silently wrapping large values.
		return Value{}, &UnsupportedTypeError{GoType: goType, Reason: fmt.Sprintf("%d out of range", x)}
	}
	return Int(int64(x)), nil
}
