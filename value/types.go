package value

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind (the zero Value).
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindTime represents a point in time.
	KindTime
	// KindArray represents an array value.
	KindArray
	// KindCustom represents a caller-defined value implementing Custom.
	KindCustom
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindBool:    "bool",
	KindTime:    "time",
	KindArray:   "array",
	KindCustom:  "custom",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Custom is implemented by caller-defined element types.
//
// TypeName is the run-grouping tag: values whose TypeName differs never share
// a segment. Equal is only called with another Custom of the same TypeName.
type Custom interface {
	TypeName() string
	Equal(other Custom) bool
}

// Type is the runtime type tag of a Value.
//
// Two values belong to the same run iff their Types are ==.
// Name is only set for KindCustom.
type Type struct {
	Kind Kind
	Name string
}

// String returns a human-readable form, e.g. "int" or "custom:point".
func (t Type) String() string {
	if t.Kind == KindCustom {
		return "custom:" + t.Name
	}
	return t.Kind.String()
}

// Value is a small typed value stored in a dynlist.List.
//
// The zero Value has KindInvalid and is treated like null.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string] // Private interned string
	B    bool
	T    time.Time
	A    []Value
	c    Custom
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Time returns a time Value.
func Time(v time.Time) Value { return Value{Kind: KindTime, T: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Of wraps a Custom implementation. A nil Custom, including a typed nil
// pointer, map, slice, func or chan, yields Null().
func Of(c Custom) Value {
	if isNilCustom(c) {
		return Null()
	}
	return Value{Kind: KindCustom, c: c}
}

func isNilCustom(c Custom) bool {
	if c == nil {
		return true
	}
	switch rv := reflect.ValueOf(c); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNull reports whether v is null or the zero Value.
func (v Value) IsNull() bool {
	return v.Kind == KindNull || v.Kind == KindInvalid
}

// Type returns the runtime type tag used for run grouping.
func (v Value) Type() Type {
	if v.Kind == KindCustom {
		return Type{Kind: KindCustom, Name: v.c.TypeName()}
	}
	return Type{Kind: v.Kind}
}

// StringValue returns the string value if Kind is KindString, otherwise empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsTime returns the time value if Kind is KindTime.
func (v Value) AsTime() (time.Time, bool) {
	if v.Kind != KindTime {
		return time.Time{}, false
	}
	return v.T, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsCustom returns the wrapped Custom if Kind is KindCustom.
func (v Value) AsCustom() (Custom, bool) {
	if v.Kind != KindCustom {
		return nil, false
	}
	return v.c, true
}

// Interface returns the underlying Go value.
// Arrays come back as []any; null and invalid values as nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.s.Value()
	case KindBool:
		return v.B
	case KindTime:
		return v.T
	case KindArray:
		out := make([]any, len(v.A))
		for i := range v.A {
			out[i] = v.A[i].Interface()
		}
		return out
	case KindCustom:
		return v.c
	default:
		return nil
	}
}

// String implements fmt.Stringer. Strings are quoted so that
// String("1") and Int(1) print differently.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s.Value())
	case KindBool:
		return strconv.FormatBool(v.B)
	case KindTime:
		return v.T.Format(time.RFC3339Nano)
	case KindArray:
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindCustom:
		if s, ok := v.c.(fmt.Stringer); ok {
			return s.String()
		}
		return "<" + v.c.TypeName() + ">"
	default:
		return "invalid"
	}
}
