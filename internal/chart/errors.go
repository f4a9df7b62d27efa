// Package chart builds and maintains the shared coordinate tables
// behind every map view: healpix boundary polygons, graticule streams,
// spherical circles, and markers, each carrying planar coordinates for
// all supported projections, plus the refresh protocol that recomputes
// those coordinates in place when the observing time or orientation
// changes.
package chart

import "errors"

var (
	// ErrDegenerateGeometry reports an input with no finite data to
	// build geometry from. Callers get to distinguish "no data" from a
	// broken builder instead of receiving an empty table.
	ErrDegenerateGeometry = errors.New("chart: no finite data to build from")

	// ErrShapeMismatch reports an array whose size is inconsistent
	// with its declared resolution or with its sibling rows.
	ErrShapeMismatch = errors.New("chart: array size inconsistent with declared shape")

	// ErrOutOfBoundsControl reports a control value outside its valid
	// range. The refresh path clamps rather than fails, but reports it.
	ErrOutOfBoundsControl = errors.New("chart: control value out of range")
)
