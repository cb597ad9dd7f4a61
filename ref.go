package bitvec

// Ref is an assignable view of one bit of a vector.
//
// A Ref borrows its vector: it stays valid while the vector keeps a length
// greater than Pos. If the vector is released, taken from or rebuilt shorter,
// Ref methods panic with an *OutOfRangeError.
type Ref struct {
	v   *BitVector
	pos int
}

// At returns a reference to the bit at pos.
func (b *BitVector) At(pos int) (Ref, error) {
	if _, _, err := b.locate(pos); err != nil {
		return Ref{}, b.reject("at", err)
	}
	return Ref{v: b, pos: pos}, nil
}

// Pos returns the referenced position.
func (r Ref) Pos() int {
	return r.pos
}

// Get reports whether the referenced bit is set.
func (r Ref) Get() bool {
	ok, err := r.v.Test(r.pos)
	if err != nil {
		panic(err)
	}
	return ok
}

// Not returns the complement of the referenced bit without changing it.
func (r Ref) Not() bool {
	return !r.Get()
}

// Assign sets the referenced bit to v.
func (r Ref) Assign(v bool) Ref {
	if err := r.v.SetTo(r.pos, v); err != nil {
		panic(err)
	}
	return r
}

// Flip inverts the referenced bit.
func (r Ref) Flip() Ref {
	if err := r.v.Flip(r.pos); err != nil {
		panic(err)
	}
	return r
}
