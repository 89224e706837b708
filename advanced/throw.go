package advanced

import (
	"github.com/osuushi/delaunay/internal"
)

type TriangulateError = internal.TriangulateError

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	internal.Fatalf(format, args...)
}

// Converts a recovered TriangulateError back into an error. Any other panic is
// re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}
