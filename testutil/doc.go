// Package testutil provides testing utilities for dynlist.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that generates random heterogeneous values and
// value sequences with controllable run structure.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Value()              // random kind, small payload domain
//	vs := rng.Values(100)         // independent kinds
//	vs = rng.RunValues(100, 0.7)  // 70% chance to repeat the previous kind
package testutil
