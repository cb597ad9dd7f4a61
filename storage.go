package bitvec

import "github.com/hupe1980/bitvec/internal/kernel"

// WordBits is the number of bits per block.
const WordBits = 64

// DefaultLength is the length of a vector built by NewDefault: one full block.
const DefaultLength = WordBits

// BitVector is a fixed-length sequence of bits whose length is chosen at
// construction time.
//
// Memory layout:
//
//	buf:  ┌──────────────────────────────┬──────────────────────────────┐
//	      │ data[0] ... data[blocks-1]   │ mask[0] ... mask[blocks-1]   │
//	      └──────────────────────────────┴──────────────────────────────┘
//
// Block 0 holds bits [0,63], block 1 bits [64,127], and so on. Every mask
// block is all-ones except the last, which covers only the significant bits
// of the final partial block. Bits of data above the mask may hold garbage
// left by shifts; every read masks them out first.
//
// A BitVector is not safe for concurrent mutation.
type BitVector struct {
	// data and mask are the two halves of one allocation.
	data []uint64
	mask []uint64

	// length is the logical number of bits.
	length int

	// blockCount is ceil(length / WordBits).
	blockCount int

	logger *Logger
}

// alloc returns a cleared vector of length bits. length is not validated;
// zero yields a vector in the released state.
func alloc(length int, logger *Logger) *BitVector {
	b := &BitVector{logger: logger}
	b.build(length)
	return b
}

// build replaces the storage with a cleared buffer for length bits.
func (b *BitVector) build(length int) {
	n := blocksFor(length)
	buf := make([]uint64, 2*n)
	b.data = buf[:n:n]
	b.mask = buf[n:]
	b.length = length
	b.blockCount = n
	b.buildMask()
}

// buildMask derives the significant-bit mask from length.
func (b *BitVector) buildMask() {
	if b.blockCount == 0 {
		return
	}
	kernel.FillWords(b.mask, ^uint64(0))
	used := uint(b.length - (b.blockCount-1)*WordBits)
	b.mask[b.blockCount-1] = significantMaskFor(used)
}

// New returns a vector of size bits, all cleared.
func New(size int, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)
	if size <= 0 {
		err := &InvalidSizeError{Size: size}
		o.logger.LogConstruct("size", size, err)
		return nil, err
	}

	b := alloc(size, o.logger)
	o.logger.LogConstruct("size", size, nil)
	return b, nil
}

// NewFromUint64 returns a vector of size bits whose lowest block is seed.
//
// Only block 0 is seeded, whatever size is: bits 64 and above stay cleared,
// and seed bits at or above size are not significant and never observed.
func NewFromUint64(size int, seed uint64, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)
	if size <= 0 {
		err := &InvalidSizeError{Size: size}
		o.logger.LogConstruct("seed", size, err)
		return nil, err
	}

	b := alloc(size, o.logger)
	b.data[0] = seed
	o.logger.LogConstruct("seed", size, nil)
	return b, nil
}

// NewDefault returns a cleared vector of DefaultLength bits.
func NewDefault(optFns ...Option) *BitVector {
	o := applyOptions(optFns)
	b := alloc(DefaultLength, o.logger)
	o.logger.LogConstruct("default", DefaultLength, nil)
	return b
}

// MustNew is like New but panics on error.
func MustNew(size int, optFns ...Option) *BitVector {
	b, err := New(size, optFns...)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bits. A released vector has length 0.
func (b *BitVector) Len() int {
	return b.length
}

// BlockCount returns the number of 64-bit blocks backing the vector.
func (b *BitVector) BlockCount() int {
	return b.blockCount
}

// Clone returns an independent copy with the same length and bits.
func (b *BitVector) Clone() *BitVector {
	c := alloc(b.length, b.logger)
	copy(c.data, b.data)
	return c
}

// CopyFrom makes the receiver an independent copy of src.
// The receiver is rebuilt at src's length and keeps its own logger.
func (b *BitVector) CopyFrom(src *BitVector) {
	if b == src {
		return
	}
	b.build(src.length)
	copy(b.data, src.data)
}

// TakeFrom moves src's storage into the receiver. src is left as a cleared
// 1-bit vector; it never shares storage with the receiver afterwards.
func (b *BitVector) TakeFrom(src *BitVector) {
	if b == src {
		return
	}
	b.data, b.mask = src.data, src.mask
	b.length, b.blockCount = src.length, src.blockCount

	src.data, src.mask = nil, nil
	src.build(1)
}

// Release drops the storage. A released vector holds no bits: Len is 0,
// indexed access fails with ErrOutOfRange and String returns "".
// Calling Release again is a no-op.
func (b *BitVector) Release() {
	b.data = nil
	b.mask = nil
	b.length = 0
	b.blockCount = 0
}
