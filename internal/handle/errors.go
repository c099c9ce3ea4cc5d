package handle

import "errors"

// ErrCannotOpen is matched by every error Open returns.
var ErrCannotOpen = errors.New("cannot open file")

// OpenError reports a failed Open. Its message is fixed; the underlying
// errno is available through Unwrap.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return ErrCannotOpen.Error()
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCannotOpen) true for any *OpenError.
func (e *OpenError) Is(target error) bool {
	return target == ErrCannotOpen
}

// ReadError records a read(2) failure during ReadBytes.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "read " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
