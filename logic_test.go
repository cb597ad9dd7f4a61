package bitvec

import (
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boundaryLengths = []int{1, 2, 63, 64, 65, 127, 128, 129, 130, 200}

func TestPredicates(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, length := range boundaryLengths {
		for _, density := range []float64{0, 0.05, 0.5, 1} {
			s := rng.SparseBitString(length, density)
			v := MustParse(s)

			count := v.Count()
			assert.Equal(t, testutil.Count(s), count)
			assert.Equal(t, count == length, v.All(), s)
			assert.Equal(t, count == 0, v.None(), s)
			assert.Equal(t, !v.None(), v.Any(), s)
		}
	}
}

func TestPredicatesIgnoreGarbage(t *testing.T) {
	v := MustNew(8)
	v.SetAll()
	// Everything above bit 7 in block 0 is garbage.
	require.Equal(t, ^uint64(0), v.data[0])

	assert.True(t, v.All())
	assert.Equal(t, 8, v.Count())

	v.ResetAll()
	v.data[0] = 0xFF00
	assert.True(t, v.None())
	assert.False(t, v.Any())
	assert.Equal(t, 0, v.Count())
	assert.True(t, v.Equal(MustNew(8)))
}

func TestEqual(t *testing.T) {
	a := MustParse("1011")
	assert.True(t, a.Equal(MustParse("1011")))
	assert.False(t, a.Equal(MustParse("1010")))
	assert.False(t, a.Equal(MustParse("01011")))
	assert.False(t, a.Equal(nil))
}

func TestBinaryOperators(t *testing.T) {
	rng := testutil.NewRNG(42)

	ops := []struct {
		name  string
		fn    func(x, y *BitVector) (*BitVector, error)
		in    func(b, other *BitVector) error
		model func(a, b string) string
	}{
		{"And", And, (*BitVector).AndAssign, testutil.And},
		{"Or", Or, (*BitVector).OrAssign, testutil.Or},
		{"Xor", Xor, (*BitVector).XorAssign, testutil.Xor},
		{"AndNot", AndNot, (*BitVector).AndNotAssign, testutil.AndNot},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, length := range boundaryLengths {
				sa, sb := rng.BitString(length), rng.BitString(length)
				a, b := MustParse(sa), MustParse(sb)
				want := op.model(sa, sb)

				got, err := op.fn(a, b)
				require.NoError(t, err)
				assert.Equal(t, want, got.String())
				assert.Equal(t, length, got.Len())

				// Operands are untouched by the pure form.
				assert.Equal(t, sa, a.String())
				assert.Equal(t, sb, b.String())

				require.NoError(t, op.in(a, b))
				assert.Equal(t, want, a.String())
				assert.Equal(t, sb, b.String())
			}
		})
	}
}

func TestBinaryOperatorsWithGarbage(t *testing.T) {
	// Shifting leaves garbage above bit 9 in block 0 of a.
	a := MustParse("1111111111").ShlAssign(4)
	b := MustNew(10).SetAll()

	got, err := And(a, b)
	require.NoError(t, err)
	assert.Equal(t, "1111110000", got.String())
	assert.Equal(t, 6, got.Count())

	got, err = Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, "0000001111", got.String())
}

func TestSizeMismatch(t *testing.T) {
	a := MustParse("10101010")
	b := MustParse("101010101")

	for _, fn := range []func(x, y *BitVector) (*BitVector, error){And, Or, Xor, AndNot} {
		got, err := fn(a, b)
		assert.Nil(t, got)
		require.ErrorIs(t, err, ErrSizeMismatch)

		var sme *SizeMismatchError
		require.ErrorAs(t, err, &sme)
		assert.Equal(t, 8, sme.Left)
		assert.Equal(t, 9, sme.Right)
	}

	for _, fn := range []func(b, other *BitVector) error{
		(*BitVector).AndAssign,
		(*BitVector).OrAssign,
		(*BitVector).XorAssign,
		(*BitVector).AndNotAssign,
	} {
		assert.Equal(t, KindSizeMismatch, KindOf(fn(a, b)))
	}

	assert.Equal(t, "10101010", a.String())
	assert.Equal(t, "101010101", b.String())
}

func TestNotMutatesReceiver(t *testing.T) {
	v := MustParse("1100101")

	got := v.Not()
	assert.Same(t, v, got)
	assert.Equal(t, "0011010", v.String())

	c := v.Clone().Not()
	assert.Equal(t, "1100101", c.String())
	assert.Equal(t, "0011010", v.String())
}

func TestAssignWithSelf(t *testing.T) {
	v := MustParse("1100101")

	require.NoError(t, v.AndAssign(v))
	assert.Equal(t, "1100101", v.String())

	require.NoError(t, v.XorAssign(v))
	assert.True(t, v.None())
}
