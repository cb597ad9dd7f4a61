package bitvec

// Shl returns a copy of the vector shifted k positions towards the most
// significant end. Vacated low bits are zero; bits shifted past the top are
// discarded.
func (b *BitVector) Shl(k uint) *BitVector {
	return b.Clone().ShlAssign(k)
}

// Shr returns a copy of the vector shifted k positions towards bit 0.
// Vacated high bits are zero.
func (b *BitVector) Shr(k uint) *BitVector {
	return b.Clone().ShrAssign(k)
}

// ShlAssign shifts the vector in place and returns the receiver.
func (b *BitVector) ShlAssign(k uint) *BitVector {
	if b.blockCount == 0 {
		return b
	}
	q, r := k/WordBits, k%WordBits
	if q >= uint(b.blockCount) {
		return b.ResetAll()
	}
	if q > 0 {
		b.moveBlocksUp(int(q))
	}
	if r > 0 {
		b.carryUp(r)
	}
	return b
}

// ShrAssign shifts the vector in place and returns the receiver.
func (b *BitVector) ShrAssign(k uint) *BitVector {
	if b.blockCount == 0 {
		return b
	}
	q, r := k/WordBits, k%WordBits
	if q >= uint(b.blockCount) {
		return b.ResetAll()
	}
	if q > 0 {
		b.moveBlocksDown(int(q))
	}
	if r > 0 {
		b.carryDown(r)
	}
	return b
}

// moveBlocksUp moves block i to i+q, clearing the q lowest blocks.
// Sources are masked so garbage above the last block's mask never travels.
func (b *BitVector) moveBlocksUp(q int) {
	for i := b.blockCount - 1; i >= 0; i-- {
		if dst := i + q; dst < b.blockCount {
			b.data[dst] = b.data[i] & b.mask[i]
		}
		b.data[i] = 0
	}
}

// moveBlocksDown moves block i to i-q, clearing the q highest blocks.
func (b *BitVector) moveBlocksDown(q int) {
	for i := 0; i < b.blockCount; i++ {
		if dst := i - q; dst >= 0 {
			b.data[dst] = b.data[i] & b.mask[i]
		}
		b.data[i] = 0
	}
}

// carryUp shifts every block left by r (0 < r < WordBits), walking from the
// top block down. The r bits leaving block i are taken from its pre-shift
// masked value and OR-ed into block i+1, which has already been shifted.
//
// Example with 8-bit blocks, r = 4:
//
//	block[i]   10110100  -> carry 00001011, block[i] 01000000
//	block[i+1] 00110000  -> 00110000 | 00001011 = 00111011
func (b *BitVector) carryUp(r uint) {
	for i := b.blockCount - 1; i >= 0; i-- {
		cur := b.data[i] & b.mask[i]
		carry := cur >> (WordBits - r)
		b.data[i] = cur << r
		if i+1 < b.blockCount {
			b.data[i+1] |= carry
		}
	}
}

// carryDown shifts every block right by r (0 < r < WordBits), walking from
// block 0 up. The r bits leaving block i land in the top of block i-1.
func (b *BitVector) carryDown(r uint) {
	for i := 0; i < b.blockCount; i++ {
		cur := b.data[i] & b.mask[i]
		carry := cur << (WordBits - r)
		b.data[i] = cur >> r
		if i > 0 {
			b.data[i-1] |= carry
		}
	}
}
