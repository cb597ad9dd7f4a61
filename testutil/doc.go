// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit patterns and a
// string-based reference model to check vector operations against.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	s := rng.BitString(130)           // uniform '0'/'1'
//	s = rng.SparseBitString(130, 0.1) // ~10% ones
//
// # Reference Model (Ground Truth)
//
//	want := testutil.ShiftLeft(s, 7)
//	want = testutil.Xor(s, other)
package testutil
