package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitString(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.BitString(130)

	assert.Len(t, s, 130)
	assert.NotContains(t, s, "2")
	assert.Equal(t, len(s), Count(s)+Count(Not(s)))
}

func TestSparseBitString(t *testing.T) {
	rng := NewRNG(4711)

	assert.Equal(t, Zeros(64), rng.SparseBitString(64, 0))
	assert.Equal(t, Not(Zeros(64)), rng.SparseBitString(64, 1))
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	a := rng.BitString(100)
	rng.Reset()
	b := rng.BitString(100)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(7), rng.Seed())
}

func TestPositions(t *testing.T) {
	rng := NewRNG(1)

	p := rng.Positions(10, 4)
	assert.Len(t, p, 4)

	seen := map[int]bool{}
	for _, v := range p {
		assert.False(t, seen[v])
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
		seen[v] = true
	}

	assert.Len(t, rng.Positions(3, 10), 3)
}

func TestModel(t *testing.T) {
	assert.Equal(t, "11110000", ShiftLeft("11111111", 4))
	assert.Equal(t, "00000000", ShiftLeft("11110000", 4))
	assert.Equal(t, "00001011", ShiftRight("10110100", 4))
	assert.Equal(t, "000", ShiftRight("101", 3))
	assert.Equal(t, "1000", And("1100", "1010"))
	assert.Equal(t, "1110", Or("1100", "1010"))
	assert.Equal(t, "0110", Xor("1100", "1010"))
	assert.Equal(t, "0100", AndNot("1100", "1010"))
	assert.Equal(t, "0011", Not("1100"))
	assert.True(t, Bit("10110100", 2))
	assert.False(t, Bit("10110100", 0))
	assert.Panics(t, func() { And("1", "10") })
}
