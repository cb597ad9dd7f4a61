package bitvec

import "github.com/hupe1980/bitvec/internal/kernel"

// SetAll sets every bit and returns the receiver.
func (b *BitVector) SetAll() *BitVector {
	kernel.FillWords(b.data, ^uint64(0))
	return b
}

// Set sets the bit at pos.
func (b *BitVector) Set(pos int) error {
	blk, bit, err := b.locate(pos)
	if err != nil {
		return b.reject("set", err)
	}
	b.data[blk] |= bit
	return nil
}

// ResetAll clears every bit and returns the receiver.
func (b *BitVector) ResetAll() *BitVector {
	kernel.FillWords(b.data, 0)
	return b
}

// Reset clears the bit at pos.
func (b *BitVector) Reset(pos int) error {
	blk, bit, err := b.locate(pos)
	if err != nil {
		return b.reject("reset", err)
	}
	b.data[blk] &^= bit
	return nil
}

// SetTo sets the bit at pos to v.
func (b *BitVector) SetTo(pos int, v bool) error {
	if v {
		return b.Set(pos)
	}
	return b.Reset(pos)
}

// FlipAll inverts every bit and returns the receiver.
func (b *BitVector) FlipAll() *BitVector {
	kernel.NotWords(b.data)
	return b
}

// Flip inverts the bit at pos.
func (b *BitVector) Flip(pos int) error {
	blk, bit, err := b.locate(pos)
	if err != nil {
		return b.reject("flip", err)
	}
	inverted := ^b.data[blk] & bit
	b.data[blk] = (b.data[blk] &^ bit) | inverted
	return nil
}

// Test reports whether the bit at pos is set.
func (b *BitVector) Test(pos int) (bool, error) {
	blk, bit, err := b.locate(pos)
	if err != nil {
		return false, b.reject("test", err)
	}
	return b.data[blk]&bit != 0, nil
}

func (b *BitVector) reject(op string, err error) error {
	b.logger.LogRejected(op, err)
	return err
}
