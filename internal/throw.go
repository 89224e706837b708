package internal

import "github.com/pkg/errors"

// Threading errors through every splice and flip of the triangulation would
// add a ton of noise to the geometry code. Instead, invariant violations
// panic, and the public entry points recover to convert them to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func Fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
