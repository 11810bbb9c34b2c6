package trancheio

import (
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/tranche"
)

// AsIOError maps a cursor shortage to an error that also matches
// io.ErrUnexpectedEOF. Other errors, and nil, are returned as is.
func AsIOError(err error) error {
	if err == nil || !errors.Is(err, tranche.ErrUnexpectedEnd) {
		return err
	}
	return fmt.Errorf("%w: %w", io.ErrUnexpectedEOF, err)
}
