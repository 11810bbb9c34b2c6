package tranche

import (
	"errors"
	"strconv"
)

var (
	// ErrUnexpectedEnd matches every *UnexpectedEndError under errors.Is.
	ErrUnexpectedEnd   = errors.New("tranche: unexpected end")
	ErrMalformedVarint = errors.New("tranche: malformed varint")
)

// UnexpectedEndError reports that a cursor held fewer elements than an
// operation needed. The cursor is unchanged when it is returned.
type UnexpectedEndError struct {
	needed int
	len    int
}

func endError(needed, have int) error {
	return &UnexpectedEndError{needed: needed, len: have}
}

// Needed returns how many elements the operation asked for.
func (e *UnexpectedEndError) Needed() int { return e.needed }

// Len returns how many elements the cursor held when the operation failed.
func (e *UnexpectedEndError) Len() int { return e.len }

func (e *UnexpectedEndError) Error() string {
	return "tranche: unexpected end (needed " + strconv.Itoa(e.needed) + ", got " + strconv.Itoa(e.len) + ")"
}

func (e *UnexpectedEndError) Is(target error) bool {
	return target == ErrUnexpectedEnd
}
