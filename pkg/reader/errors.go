package reader

import "errors"

var (
	// ErrManagerUnavailable is returned when the platform power subsystem cannot be opened.
	ErrManagerUnavailable = errors.New("battery manager unavailable")

	// ErrNoBatteryFound is returned when batteries cannot be enumerated.
	ErrNoBatteryFound = errors.New("no battery found")

	// ErrBatteryQueryFailed is returned when the first battery cannot be queried.
	ErrBatteryQueryFailed = errors.New("battery query failed")
)

// Error ties one of the sentinel kinds above to its underlying cause.
// Both match with errors.Is.
type Error struct {
	Kind error
	Err  error
}

// NewError wraps err with kind.
func NewError(kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
