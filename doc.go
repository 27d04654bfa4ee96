// Package dynlist provides a heterogeneous list: one ordered sequence of
// values of mixed kinds, stored internally as runs of same-typed values.
//
// # Quick Start
//
//	l := dynlist.New()
//	l.Add(value.Int(1))
//	l.Add(value.Int(2))
//	l.Add(value.String("x"))
//	l.Add(value.Int(3))
//
//	l.Len()                        // 4
//	l.Runs()                       // [{int 2} {string 1} {int 1}]
//	l.Insert(1, value.Int(99))     // [1 99 2 "x" 3]
//	l.RemoveAt(2)                  // [1 99 "x" 3]
//	l.IndexOf(value.String("x"))   // 2
//
// # Runs
//
// Add extends the trailing run when the new value has the same value.Type,
// otherwise it starts a new run. A value never joins an earlier,
// non-trailing run of its type:
//
//	add(1), add("a"), add(2)  ->  runs [int], [string], [int]
//
// Set, Insert, RemoveAt, Remove and RemoveAll compute the complete new
// logical sequence first and then rebuild every run from scratch with the Add
// rule. A failed validation never touches existing runs.
//
// # Errors
//
//   - ErrIndexOutOfRange (as *IndexOutOfRangeError): Get, Set, RemoveAt
//     require 0 <= i < Len(); Insert requires 0 <= i <= Len().
//   - ErrNullArgument: storing a null or zero value.Value.
//   - ErrNotSupported: CopyTo, always.
//
// # Concurrency
//
// A List is not synchronized. IsSynchronized always reports false and
// SyncRoot returns an unshared placeholder. Guard every call, iteration
// included, with an external lock when sharing a List across goroutines.
//
// # Observability
//
// Structured logging (log/slog) and metrics are opt-in:
//
//	l := dynlist.New(
//	    dynlist.WithLogger(dynlist.NewTextLogger(slog.LevelDebug)),
//	    dynlist.WithMetricsCollector(&dynlist.BasicMetricsCollector{}),
//	)
package dynlist
