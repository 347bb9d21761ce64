package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyCapture is reserved for operations that declare a non-empty-input
// precondition. None of the engine operations do; collaborators may.
var ErrEmptyCapture = errors.New("capture contains no packets")

// InvalidFactorError reports a scaling or sampling factor outside the
// operation's domain.
type InvalidFactorError struct {
	Op     string
	Factor float64
}

func (e *InvalidFactorError) Error() string {
	return fmt.Sprintf("%s: invalid factor %g", e.Op, e.Factor)
}
