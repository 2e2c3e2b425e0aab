package payload

import "fmt"

// ErrInvalidPayload indicates a payload does not match its expected shape.
// This is the only error class the engine boundary produces.
type ErrInvalidPayload struct {
	Schema string
	Err    error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Schema, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
