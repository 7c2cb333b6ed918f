package domain

// The three error kinds the boundary layer maps to HTTP codes. Anything
// else that escapes a service is an internal failure and must not leak
// detail to the caller.

// ValidationError reports bad or missing input: an unresolved reference,
// a mixed-restaurant order, insufficient stock.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a new *ValidationError.
func Validation(msg string) error { return &ValidationError{Message: msg} }

// NotFoundError reports an absent entity on a direct lookup.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound returns a new *NotFoundError.
func NotFound(msg string) error { return &NotFoundError{Message: msg} }

// PreconditionError reports an order that is not in the status a
// transition requires. A transition on an unknown order also fails this
// way: "no such order" is a failed precondition on state, not a read.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

// Precondition returns a new *PreconditionError.
func Precondition(msg string) error { return &PreconditionError{Message: msg} }
