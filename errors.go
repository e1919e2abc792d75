package gesture

import (
	"errors"
	"fmt"
)

// Validation errors returned at binding and registration time. Recognition
// never returns errors: a detector that fails simply stays silent.
var (
	ErrInvalidRegion       = errors.New("invalid region target")
	ErrInvalidGesture      = errors.New("invalid gesture")
	ErrUnknownGestureKey   = errors.New("unknown gesture key")
	ErrInvalidHandler      = errors.New("invalid handler")
	ErrDuplicateGestureKey = errors.New("duplicate gesture key")
)

// HandlerError reports a handler that panicked during dispatch. Dispatch to
// the remaining handlers continues.
type HandlerError struct {
	Gesture string
	Target  Target
	Value   any // recovered panic value
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %q on %T panicked: %v", e.Gesture, e.Target, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *HandlerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
