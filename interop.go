package bitvec

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToRoaring returns the set positions as a roaring bitmap.
// A set bit above math.MaxUint32 cannot be represented and yields an
// *OutOfRangeError.
func (b *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	ids := make([]uint32, 0, b.Count())
	for pos := range b.Ones() {
		if uint64(pos) > math.MaxUint32 {
			return nil, b.reject("to_roaring", &OutOfRangeError{Pos: pos, Len: b.length})
		}
		ids = append(ids, uint32(pos))
	}

	rb := roaring.New()
	rb.AddMany(ids)
	return rb, nil
}

// FromRoaring returns a vector of length bits with the members of rb set.
// A nil rb is treated as empty. Members at or above length are rejected.
func FromRoaring(rb *roaring.Bitmap, length int, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)
	if length <= 0 {
		err := &InvalidSizeError{Size: length}
		o.logger.LogConstruct("roaring", length, err)
		return nil, err
	}
	if rb != nil && !rb.IsEmpty() {
		if top := uint64(rb.Maximum()); top >= uint64(length) {
			err := &OutOfRangeError{Pos: int(top), Len: length}
			o.logger.LogConstruct("roaring", length, err)
			return nil, err
		}
	}

	b := alloc(length, o.logger)
	if rb != nil {
		it := rb.Iterator()
		for it.HasNext() {
			if err := b.Set(int(it.Next())); err != nil {
				return nil, err
			}
		}
	}
	o.logger.LogConstruct("roaring", length, nil)
	return b, nil
}

// ToBitSet returns a bits-and-blooms bitset of Len() bits holding the same bits.
func (b *BitVector) ToBitSet() *bitset.BitSet {
	return bitset.FromWithLength(uint(b.length), b.Words())
}

// FromBitSet returns a vector of length bits copied from bs. Bits of bs at
// or above length are dropped. A nil bs is treated as empty.
func FromBitSet(bs *bitset.BitSet, length int, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)
	if length <= 0 {
		err := &InvalidSizeError{Size: length}
		o.logger.LogConstruct("bitset", length, err)
		return nil, err
	}

	b := alloc(length, o.logger)
	if bs != nil {
		copy(b.data, bs.Words())
		last := b.blockCount - 1
		b.data[last] &= b.mask[last]
	}
	o.logger.LogConstruct("bitset", length, nil)
	return b, nil
}
