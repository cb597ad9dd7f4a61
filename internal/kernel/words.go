package kernel

import "math/bits"

// Kernel function pointers for counting. Generic implementations are the
// default; initCapabilities swaps in hardware counts when available.
var (
	kernelPopcountWords  = popcountWordsGeneric
	kernelMaskedPopcount = maskedPopcountGeneric
)

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	src = src[:len(dst)]
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// NotWords performs dst[i] = ^dst[i] for all words.
func NotWords(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	for i := range dst {
		dst[i] = v
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// MaskedPopcount counts the set bits of words[i] & mask[i].
// mask must be at least as long as words.
func MaskedPopcount(words, mask []uint64) int {
	return kernelMaskedPopcount(words, mask)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

// onesCountSWAR is the branch-free parallel bit count from Hacker's Delight 5-1.
func onesCountSWAR(x uint64) int {
	const (
		m1  = 0x5555555555555555
		m2  = 0x3333333333333333
		m4  = 0x0f0f0f0f0f0f0f0f
		h01 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += onesCountSWAR(w)
	}
	return count
}

func maskedPopcountGeneric(words, mask []uint64) int {
	mask = mask[:len(words)]
	count := 0
	for i, w := range words {
		count += onesCountSWAR(w & mask[i])
	}
	return count
}

// ==============================================================================
// Hardware implementations (math/bits lowers to POPCNT / CNT)
// ==============================================================================

func popcountWordsHW(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func maskedPopcountHW(words, mask []uint64) int {
	mask = mask[:len(words)]
	count := 0
	for i, w := range words {
		count += bits.OnesCount64(w & mask[i])
	}
	return count
}
