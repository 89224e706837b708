package geom

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Clamp restricts v to the closed range [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortCoordinates sorts in place by Compare order.
func SortCoordinates(coords []Coordinate) {
	slices.SortFunc(coords, func(a, b Coordinate) bool {
		return a.Compare(b) < 0
	})
}

// UniqueCoordinates returns the distinct coordinates in sorted order. The
// input is not modified.
func UniqueCoordinates(coords []Coordinate) []Coordinate {
	result := slices.Clone(coords)
	SortCoordinates(result)
	return slices.CompactFunc(result, func(a, b Coordinate) bool {
		return a.Equals2D(b)
	})
}
