// Package kernel provides word-level kernels over []uint64 block arrays.
//
// # Operations
//
//   - Logic: AndWords, AndNotWords, OrWords, XorWords, NotWords
//   - Counting: PopcountWords, MaskedPopcount
//
// # Dispatch
//
// Population count has two implementations: a portable SWAR count and a
// hardware count (POPCNT on x86-64, CNT on ARM64 ASIMD). Runtime CPU feature
// detection selects the hardware path when available. Set BITVEC_KERNEL to
// "generic", "popcnt" or "neon" to force a specific implementation; an
// override the CPU cannot run falls back to auto-detection.
package kernel
