package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// ValidationError signals missing or malformed caller input. No state is
// mutated when it is returned.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals a lookup on a key that has no record behind it.
type NotFoundError struct {
	resource string
	key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.resource, e.key)
}

func NewNotFound(resource, key string) *NotFoundError {
	return &NotFoundError{resource: resource, key: key}
}

// CorruptStateError signals that the persistent store holds unparsable data
// under a known key. Absence of a key is not corruption and must never be
// reported as such.
type CorruptStateError struct {
	key   string
	cause error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state under key %q: %v", e.key, e.cause)
}

func (e *CorruptStateError) Unwrap() error {
	return e.cause
}

func (e *CorruptStateError) Key() string {
	return e.key
}

func NewCorruptState(key string, cause error) *CorruptStateError {
	return &CorruptStateError{key: key, cause: cause}
}
