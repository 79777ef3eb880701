package usecase

// FieldError describes a single validation failure on a named parameter.
type FieldError struct {
	Parameter string `json:"parameter"`
	Message   string `json:"message"`
}

func (e FieldError) String() string {
	return e.Parameter + ": " + e.Message
}

// Violations accumulates validation failures inside a request builder.
type Violations []FieldError

// Add records a validation failure for the given parameter.
func (v *Violations) Add(parameter, message string) {
	*v = append(*v, FieldError{Parameter: parameter, Message: message})
}

// Request is the outcome of a request builder: either a valid, typed
// payload ready for execution, or an ordered list of field errors.
// Builders never return Go errors; the invalid variant carries the whole
// story and is never executed against domain logic.
type Request[T any] struct {
	payload    T
	violations Violations
}

// Valid wraps a validated payload in a valid Request.
func Valid[T any](payload T) Request[T] {
	return Request[T]{payload: payload}
}

// Invalid builds an invalid Request from the collected violations.
func Invalid[T any](violations Violations) Request[T] {
	return Request[T]{violations: violations}
}

// Ok reports whether the request is valid and may proceed to execution.
func (r Request[T]) Ok() bool {
	return len(r.violations) == 0
}

// Payload returns the validated payload. Only meaningful when Ok.
func (r Request[T]) Payload() T {
	return r.payload
}

// Violations returns the validation failures of an invalid request, in
// the order they were recorded.
func (r Request[T]) Violations() Violations {
	return r.violations
}
