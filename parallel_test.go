package bitvec

import (
	"fmt"
	"testing"

	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Vectors share no state, so independent goroutines each owning their own
// vectors must never interfere. Run with -race.
func TestIndependentInstances(t *testing.T) {
	var g errgroup.Group

	for w := 0; w < 8; w++ {
		g.Go(func() error {
			rng := testutil.NewRNG(int64(w))
			for i := 0; i < 50; i++ {
				length := 1 + rng.Intn(300)
				sa, sb := rng.BitString(length), rng.BitString(length)
				k := rng.Intn(length + 10)

				a, err := Parse(sa)
				if err != nil {
					return err
				}
				b, err := Parse(sb)
				if err != nil {
					return err
				}

				x, err := Xor(a.Shl(uint(k)), b)
				if err != nil {
					return err
				}
				if want := testutil.Xor(testutil.ShiftLeft(sa, k), sb); x.String() != want {
					return fmt.Errorf("worker %d iteration %d: got %s, want %s", w, i, x, want)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
