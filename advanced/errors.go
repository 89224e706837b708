package advanced

import (
	"fmt"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
	"github.com/pkg/errors"
)

// LocateFailureError is returned when point location does not converge. It
// usually means two sites are too close together for the chosen tolerance.
type LocateFailureError = quadedge.LocateFailureError

// ConstraintEnforcementError is returned when constraint segments are still
// being split after the maximum number of passes.
type ConstraintEnforcementError struct {
	// Last split point computed before giving up
	Pt geom.Coordinate
}

func (e *ConstraintEnforcementError) Error() string {
	return fmt.Sprintf("too many splitting iterations while enforcing constraints; last split point was at %v", e.Pt)
}

var ErrNotInitialized = errors.New("initial Delaunay triangulation has not been formed")
