package bitvec

// blocksFor returns the number of blocks needed for length bits.
func blocksFor(length int) int {
	return (length + WordBits - 1) / WordBits
}

// significantMaskFor returns a word with exactly used low bits set.
// used must be in [1, WordBits].
func significantMaskFor(used uint) uint64 {
	return ^uint64(0) >> (WordBits - used)
}

// locate maps pos to its block index and single-bit mask.
// Every indexed operation goes through here.
func (b *BitVector) locate(pos int) (int, uint64, error) {
	if pos < 0 || pos >= b.length {
		return 0, 0, &OutOfRangeError{Pos: pos, Len: b.length}
	}
	return pos / WordBits, uint64(1) << (uint(pos) % WordBits), nil
}

// Block returns block i with non-significant bits cleared.
// It panics if i is not in [0, BlockCount()).
func (b *BitVector) Block(i int) uint64 {
	return b.data[i] & b.mask[i]
}
