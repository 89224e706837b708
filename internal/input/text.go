package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// ReadText reads newline separated points in the form "x y" or "x y z".
// Groups of points are separated by a blank line. A group of one point is a
// site, and a longer group is a constraint polyline. Lines starting with #
// are ignored.
func ReadText(r io.Reader) (*Input, error) {
	in := &Input{}
	scanner := bufio.NewScanner(r)
	var points []geom.Coordinate
	lineNum := 0

	endGroup := func() {
		switch len(points) {
		case 0:
			return
		case 1:
			in.Sites = append(in.Sites, points[0])
		default:
			in.Constraints = append(in.Constraints, advanced.Constraint{
				Coords: points,
				Data:   len(in.Constraints),
			})
		}
		points = nil
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the group
		if line == "" {
			endGroup()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning input")
	}

	// Handle trailing group if any
	endGroup()
	return in, nil
}

func parsePoint(line string) (geom.Coordinate, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) < 2 || len(parts) > 3 {
		return geom.Coordinate{}, errors.Errorf("expected \"x y\" or \"x y z\", got %q", line)
	}
	var ordinates [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return geom.Coordinate{}, errors.Wrapf(err, "invalid ordinate %q", part)
		}
		ordinates[i] = v
	}
	return geom.Coordinate{X: ordinates[0], Y: ordinates[1], Z: ordinates[2]}, nil
}
