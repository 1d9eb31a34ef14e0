package response

import (
	"errors"
)

// Error pairs an HTTP status code with the message returned to clients.
// Sentinels built from it are matched with errors.Is across layers.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Is matches on code and message so two sentinels with the same shape
// compare equal regardless of where they were constructed.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}
