package geometry

import "math"

// Line is the slope/intercept form of the infinite line through a
// segment. For a vertical segment Slope is the tolerance's Large value
// and Intercept is the shared x coordinate.
type Line struct {
	Slope     float64
	Intercept float64
	Vertical  bool
}

// LineOf returns the line through a and b
func LineOf(a, b Point, tol Tolerance) Line {
	dx := b.X() - a.X()
	if math.Abs(dx) < tol.Small {
		return Line{Slope: tol.Large, Intercept: a.X(), Vertical: true}
	}
	return Line{
		Slope:     (b.Y() - a.Y()) / dx,
		Intercept: (b.Y()*a.X() - a.Y()*b.X()) / -dx,
	}
}

// SameLine reports whether l and m describe the same infinite line
func SameLine(l, m Line, tol Tolerance) bool {
	if tol.ExactVertical && (l.Vertical || m.Vertical) {
		return l.Vertical && m.Vertical && math.Abs(l.Intercept-m.Intercept) < tol.Small
	}
	return math.Abs(l.Slope-m.Slope) < tol.Small &&
		math.Abs(l.Intercept-m.Intercept) < tol.Small
}

// OnOpenSegment reports whether c lies strictly between a and b on the
// segment ab. Points coincident with a or b are the caller's concern.
func OnOpenSegment(a, b, c Point, tol Tolerance) bool {
	ab := Sub(b, a)
	ac := Sub(c, a)
	if CrossMagnitude(ab, ac) >= tol.Small {
		return false
	}

	var t float64
	if math.Abs(ab.X()) < tol.Small {
		t = ac.Y() / ab.Y()
	} else {
		t = ac.X() / ab.X()
	}
	// a zero-length ab gives NaN or ±Inf, which fail both comparisons
	return t > 0 && t < 1
}

// Overlaps reports whether segments ab and cd lie on the same line and
// share more than a single point
func Overlaps(a, b, c, d Point, tol Tolerance) bool {
	if !SameLine(LineOf(a, b, tol), LineOf(c, d, tol), tol) {
		return false
	}
	span := Span(a, b, c, d)
	return Distance(a, b)+Distance(c, d)-span > tol.Small
}
