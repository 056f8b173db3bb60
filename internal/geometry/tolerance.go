package geometry

const (
	// EpsSmall is treated as zero for cross products, coordinate
	// differences and slope/intercept differences
	EpsSmall = 1e-12

	// EpsLarge stands in for the slope of a vertical line
	EpsLarge = 1e12
)

// Tolerance holds the thresholds used by the segment predicates.
// All comparisons are absolute, so Small must suit the unit system of
// the coordinates.
type Tolerance struct {
	Small float64
	Large float64

	// ExactVertical compares vertical lines by their x position only
	// instead of through the synthetic Large slope.
	ExactVertical bool
}

// DefaultTolerance returns the historical thresholds
func DefaultTolerance() Tolerance {
	return Tolerance{Small: EpsSmall, Large: EpsLarge}
}

// Scaled returns a copy with Small multiplied by factor. Large is left
// alone since it only marks vertical lines.
func (t Tolerance) Scaled(factor float64) Tolerance {
	if factor <= 0 {
		return t
	}
	t.Small *= factor
	return t
}
