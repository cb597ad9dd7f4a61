package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a vector is requested with a non-positive length.
	ErrInvalidSize = errors.New("invalid bit vector size")

	// ErrOutOfRange is returned when a position is not below the vector length.
	ErrOutOfRange = errors.New("position out of range")

	// ErrSizeMismatch is returned when a binary operator gets operands of different lengths.
	ErrSizeMismatch = errors.New("bit vector size mismatch")

	// ErrUnknownCharacter is returned when parsing text that is not made of '0' and '1'.
	ErrUnknownCharacter = errors.New("unknown character")
)

// ErrorKind tags the failure classes of this package.
type ErrorKind uint8

const (
	// KindNone is reported for nil errors and errors from other packages.
	KindNone ErrorKind = iota
	// KindInvalidSize tags ErrInvalidSize.
	KindInvalidSize
	// KindOutOfRange tags ErrOutOfRange.
	KindOutOfRange
	// KindSizeMismatch tags ErrSizeMismatch.
	KindSizeMismatch
	// KindUnknownCharacter tags ErrUnknownCharacter.
	KindUnknownCharacter
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidSize:
		return "invalid_size"
	case KindOutOfRange:
		return "out_of_range"
	case KindSizeMismatch:
		return "size_mismatch"
	case KindUnknownCharacter:
		return "unknown_character"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Wrapped errors are unwrapped.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidSize):
		return KindInvalidSize
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrSizeMismatch):
		return KindSizeMismatch
	case errors.Is(err, ErrUnknownCharacter):
		return KindUnknownCharacter
	default:
		return KindNone
	}
}

// InvalidSizeError reports the rejected length.
//
// errors.Is(err, ErrInvalidSize) holds for every InvalidSizeError.
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidSize, e.Size)
}

func (e *InvalidSizeError) Unwrap() error { return ErrInvalidSize }

// OutOfRangeError reports the rejected position and the vector length.
//
// errors.Is(err, ErrOutOfRange) holds for every OutOfRangeError.
type OutOfRangeError struct {
	Pos int
	Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: position %d, length %d", ErrOutOfRange, e.Pos, e.Len)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// SizeMismatchError reports the lengths of both operands.
//
// errors.Is(err, ErrSizeMismatch) holds for every SizeMismatchError.
type SizeMismatchError struct {
	Left  int
	Right int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: %d vs %d", ErrSizeMismatch, e.Left, e.Right)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }

// UnknownCharacterError reports the offending byte and its offset in the input.
//
// errors.Is(err, ErrUnknownCharacter) holds for every UnknownCharacterError.
type UnknownCharacterError struct {
	Char   byte
	Offset int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrUnknownCharacter, e.Char, e.Offset)
}

func (e *UnknownCharacterError) Unwrap() error { return ErrUnknownCharacter }
