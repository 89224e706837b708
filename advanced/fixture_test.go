package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/geom"
)

// Fixtures are SVG drawings in fixtures/, loaded by name sans extension.
// Circles become sites, and lines, polylines and polygons become constraints.
// Anything malformed is fatal.

//go:embed fixtures
var fixtures embed.FS

type fixture struct {
	sites       []geom.Coordinate
	constraints []Constraint
}

func loadFixture(name string) fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var result fixture
	for _, el := range rootEl.FindAll("circle") {
		result.sites = append(result.sites, geom.Coordinate{
			X: parseFixtureFloat(el.Attributes["cx"]),
			Y: parseFixtureFloat(el.Attributes["cy"]),
		})
	}
	for i, el := range rootEl.FindAll("line") {
		result.constraints = append(result.constraints, Constraint{
			Coords: []geom.Coordinate{
				{X: parseFixtureFloat(el.Attributes["x1"]), Y: parseFixtureFloat(el.Attributes["y1"])},
				{X: parseFixtureFloat(el.Attributes["x2"]), Y: parseFixtureFloat(el.Attributes["y2"])},
			},
			Data: name + "/line" + strconv.Itoa(i),
		})
	}
	for i, el := range rootEl.FindAll("polyline") {
		result.constraints = append(result.constraints, Constraint{
			Coords: parseFixturePoints(el.Attributes["points"]),
			Data:   name + "/polyline" + strconv.Itoa(i),
		})
	}
	for i, el := range rootEl.FindAll("polygon") {
		coords := parseFixturePoints(el.Attributes["points"])
		result.constraints = append(result.constraints, Constraint{
			Coords: append(coords, coords[0]),
			Data:   name + "/polygon" + strconv.Itoa(i),
		})
	}
	return result
}

func parseFixturePoints(pointString string) []geom.Coordinate {
	var coords []geom.Coordinate
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		coords = append(coords, geom.Coordinate{
			X: parseFixtureFloat(pointStrings[0]),
			Y: parseFixtureFloat(pointStrings[1]),
		})
	}
	return coords
}

func parseFixtureFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}
