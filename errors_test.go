package bitvec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&InvalidSizeError{Size: 0}, "invalid bit vector size: 0"},
		{&OutOfRangeError{Pos: 9, Len: 4}, "position out of range: position 9, length 4"},
		{&SizeMismatchError{Left: 8, Right: 9}, "bit vector size mismatch: 8 vs 9"},
		{&UnknownCharacterError{Char: 'x', Offset: 2}, `unknown character 'x' at offset 2`},
	}

	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{errors.New("other"), KindNone},
		{&InvalidSizeError{}, KindInvalidSize},
		{&OutOfRangeError{}, KindOutOfRange},
		{&SizeMismatchError{}, KindSizeMismatch},
		{&UnknownCharacterError{}, KindUnknownCharacter},
		{fmt.Errorf("load flags: %w", &OutOfRangeError{Pos: 1}), KindOutOfRange},
		{ErrSizeMismatch, KindSizeMismatch},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), "%v", tt.err)
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "invalid_size", KindInvalidSize.String())
	assert.Equal(t, "out_of_range", KindOutOfRange.String())
	assert.Equal(t, "size_mismatch", KindSizeMismatch.String())
	assert.Equal(t, "unknown_character", KindUnknownCharacter.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}
