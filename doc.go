// Package bitvec provides a bit vector whose length is chosen at run time.
//
// A BitVector supports the operation set of a fixed-width bit set (indexed
// access, logic operators, shifts, counting, text and numeric conversion)
// without requiring the width at compile time. Whole-vector operations cost
// O(Len/64); single-bit operations are O(1).
//
// # Quick Start
//
//	v, _ := bitvec.NewFromUint64(8, 0b10110100)
//	fmt.Println(v)           // 10110100
//	fmt.Println(v.Count())   // 4
//	_ = v.Flip(2)
//	fmt.Println(v)           // 10110000
//	fmt.Println(v.Shl(4))    // 00000000
//
// # Storage
//
// Bits are packed into 64-bit blocks, block 0 holding the least significant
// bits. A parallel mask marks the significant bits of the last, partial
// block. Shifts may leave garbage above that mask; every read-producing
// operation (String, Count, All, Any, Equal, Uint64, Words, Block) masks it
// out first.
//
// # Errors
//
// Failures are reported as errors wrapping one of four sentinels:
//
//	ErrInvalidSize       // length ≤ 0 at construction
//	ErrOutOfRange        // position ≥ Len()
//	ErrSizeMismatch      // binary operator on vectors of different length
//	ErrUnknownCharacter  // Parse input outside {'0','1'}
//
// Use errors.Is, errors.As on the *Error detail types, or KindOf. Every
// operation validates before it mutates, so a failed call leaves its
// operands unchanged.
//
// # Surprising Behavior
//
// NewFromUint64 seeds only block 0 regardless of the requested size, and
// Uint64/Uint/Uint32 expose only block 0. Vectors longer than 64 bits must
// be exported with String, Words, Ones, ToBitSet or ToRoaring.
//
// # Interop
//
// ToRoaring/FromRoaring convert to and from github.com/RoaringBitmap/roaring/v2
// bitmaps; ToBitSet/FromBitSet convert to and from
// github.com/bits-and-blooms/bitset.
package bitvec
