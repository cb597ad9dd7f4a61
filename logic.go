package bitvec

import "github.com/hupe1980/bitvec/internal/kernel"

// All reports whether every significant bit is set.
func (b *BitVector) All() bool {
	for i := range b.data {
		if b.data[i]&b.mask[i] != b.mask[i] {
			return false
		}
	}
	return true
}

// Any reports whether at least one significant bit is set.
func (b *BitVector) Any() bool {
	for i := range b.data {
		if b.data[i]&b.mask[i] != 0 {
			return true
		}
	}
	return false
}

// None reports whether no significant bit is set.
func (b *BitVector) None() bool {
	return !b.Any()
}

// Count returns the number of set bits.
func (b *BitVector) Count() int {
	return kernel.MaskedPopcount(b.data, b.mask)
}

// Equal reports whether other has the same length and the same bits.
func (b *BitVector) Equal(other *BitVector) bool {
	if other == nil || b.length != other.length {
		return false
	}
	for i := 0; i < b.blockCount; i++ {
		if b.Block(i) != other.Block(i) {
			return false
		}
	}
	return true
}

// Not inverts every bit in place and returns the receiver.
// Clone first to keep the original.
func (b *BitVector) Not() *BitVector {
	return b.FlipAll()
}

// And returns x & y as a new vector.
func And(x, y *BitVector) (*BitVector, error) {
	return binary("and", x, y, kernel.AndWords)
}

// Or returns x | y as a new vector.
func Or(x, y *BitVector) (*BitVector, error) {
	return binary("or", x, y, kernel.OrWords)
}

// Xor returns x ^ y as a new vector.
func Xor(x, y *BitVector) (*BitVector, error) {
	return binary("xor", x, y, kernel.XorWords)
}

// AndNot returns x & ^y as a new vector.
func AndNot(x, y *BitVector) (*BitVector, error) {
	return binary("andnot", x, y, kernel.AndNotWords)
}

// AndAssign sets the receiver to b & other.
func (b *BitVector) AndAssign(other *BitVector) error {
	return b.assign("and", other, kernel.AndWords)
}

// OrAssign sets the receiver to b | other.
func (b *BitVector) OrAssign(other *BitVector) error {
	return b.assign("or", other, kernel.OrWords)
}

// XorAssign sets the receiver to b ^ other.
func (b *BitVector) XorAssign(other *BitVector) error {
	return b.assign("xor", other, kernel.XorWords)
}

// AndNotAssign sets the receiver to b & ^other.
func (b *BitVector) AndNotAssign(other *BitVector) error {
	return b.assign("andnot", other, kernel.AndNotWords)
}

// binary builds the result from x's masked blocks, then folds in y.
// Non-significant bits of the result are left as the kernel produces them.
func binary(op string, x, y *BitVector, fn func(dst, src []uint64)) (*BitVector, error) {
	if err := sameSize(x, y); err != nil {
		return nil, x.reject(op, err)
	}

	out := alloc(x.length, x.logger)
	for i := range out.data {
		out.data[i] = x.Block(i)
	}
	fn(out.data, y.data)
	return out, nil
}

func (b *BitVector) assign(op string, other *BitVector, fn func(dst, src []uint64)) error {
	if err := sameSize(b, other); err != nil {
		return b.reject(op, err)
	}
	fn(b.data, other.data)
	return nil
}

func sameSize(x, y *BitVector) error {
	if x.length != y.length {
		return &SizeMismatchError{Left: x.length, Right: y.length}
	}
	return nil
}
