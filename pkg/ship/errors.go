// pkg/ship/errors.go
package ship

import (
	"errors"
	"fmt"
)

// ErrInvalidModel is returned when the spawn pipeline cannot derive a
// convex-hull collider from a class's polygon model. It is a fatal
// precondition failure, not a recoverable user-input error.
var ErrInvalidModel = errors.New("ship: model has no valid convex hull")

// ProgrammingError signals an invariant violation that should never occur
// from valid data, such as a missile launcher configured with a non-missile,
// non-torpedo class. Terminating the simulation is the intended response to
// this condition; callers that want to convert it to a recoverable error can
// recover the panic carrying this type.
type ProgrammingError struct {
	Msg string
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("ship: programming error: %s", e.Msg)
}
