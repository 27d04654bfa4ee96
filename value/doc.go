// Package value provides the tagged value union stored by dynlist.
//
// Every element of a dynlist.List is a Value. A Value carries a Kind
// discriminator next to its payload, so grouping values into runs and
// comparing them never needs reflection.
//
// # Value Kinds
//
//   - Int: value.Int(42)
//   - Float: value.Float(3.14)
//   - String: value.String("tech")
//   - Bool: value.Bool(true)
//   - Time: value.Time(time.Now())
//   - Array: value.Array([]value.Value{value.Int(1), value.String("a")})
//   - Custom: value.Of(myType) for any type implementing Custom
//
// Null() exists so adapters can represent absent input; lists reject it.
//
// # Equality
//
// Equal compares kinds first and payloads second. A null probe never
// matches anything, including another null:
//
//	value.Int(1).Equal(value.Int(1))     // true
//	value.Int(1).Equal(value.Float(1))   // false
//	value.Null().Equal(value.Null())     // false
//
// # Adapting Go values
//
// FromAny converts plain Go values (int, string, []any, time.Time, ...) into
// a Value, normalizing all integer widths to KindInt and both float widths to
// KindFloat.
package value
