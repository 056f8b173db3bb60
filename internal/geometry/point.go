package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Point is a joint position or a difference vector in the plane
type Point = orb.Point

// Sub returns a - b
func Sub(a, b Point) Point {
	return Point{a.X() - b.X(), a.Y() - b.Y()}
}

// Distance returns the Euclidean length of b - a
func Distance(a, b Point) float64 {
	return planar.Distance(a, b)
}

// Cross returns the z component of the cross product u × v
func Cross(u, v Point) float64 {
	return u.X()*v.Y() - u.Y()*v.X()
}

// CrossMagnitude is |u × v|. It is not normalised, so it scales with
// the lengths of both operands.
func CrossMagnitude(u, v Point) float64 {
	return math.Abs(Cross(u, v))
}

// Span returns the diagonal of the bounding box around pts
func Span(pts ...Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	b := orb.MultiPoint(pts).Bound()
	return planar.Distance(b.Min, b.Max)
}
