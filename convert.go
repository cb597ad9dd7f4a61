package bitvec

import (
	"iter"
	"math/bits"
)

// Parse builds a vector from a binary-digit string, most significant bit
// first: s[i] becomes bit len(s)-1-i. The vector length is len(s).
func Parse(s string, optFns ...Option) (*BitVector, error) {
	o := applyOptions(optFns)
	if len(s) == 0 {
		err := &InvalidSizeError{Size: 0}
		o.logger.LogConstruct("parse", 0, err)
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			err := &UnknownCharacterError{Char: c, Offset: i}
			o.logger.LogConstruct("parse", len(s), err)
			return nil, err
		}
	}

	b := alloc(len(s), o.logger)
	top := len(s) - 1
	for i := 0; i < len(s); i++ {
		if s[i] != '1' {
			continue
		}
		if err := b.Set(top - i); err != nil {
			return nil, err
		}
	}
	o.logger.LogConstruct("parse", len(s), nil)
	return b, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, optFns ...Option) *BitVector {
	b, err := Parse(s, optFns...)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns exactly Len() characters of '0' and '1', most significant
// bit first.
func (b *BitVector) String() string {
	out := make([]byte, b.length)
	for pos := 0; pos < b.length; pos++ {
		c := byte('0')
		if b.Block(pos/WordBits)>>(uint(pos)%WordBits)&1 != 0 {
			c = '1'
		}
		out[b.length-1-pos] = c
	}
	return string(out)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (b *BitVector) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is
// replaced wholesale by the parsed vector and takes its length; on error it
// is left unchanged.
func (b *BitVector) UnmarshalText(text []byte) error {
	p, err := Parse(string(text), WithLogger(b.logger))
	if err != nil {
		return err
	}
	b.TakeFrom(p)
	return nil
}

// Uint64 returns the significant bits of block 0.
//
// Vectors longer than 64 bits lose everything above bit 63. Use String or
// Words for a full export.
func (b *BitVector) Uint64() uint64 {
	if b.blockCount == 0 {
		return 0
	}
	return b.Block(0)
}

// Uint returns Uint64 truncated to the platform word.
func (b *BitVector) Uint() uint {
	return uint(b.Uint64())
}

// Uint32 returns the low 32 bits of Uint64.
func (b *BitVector) Uint32() uint32 {
	return uint32(b.Uint64())
}

// Words returns a copy of all blocks with non-significant bits cleared,
// block 0 first.
func (b *BitVector) Words() []uint64 {
	out := make([]uint64, b.blockCount)
	for i := range out {
		out[i] = b.Block(i)
	}
	return out
}

// Ones iterates the positions of set bits in ascending order.
// The vector must not be modified during iteration.
func (b *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < b.blockCount; i++ {
			w := b.Block(i)
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(i*WordBits + bit) {
					return
				}
				w &= w - 1 // Clear lowest bit
			}
		}
	}
}
