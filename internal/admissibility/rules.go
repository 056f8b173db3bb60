// Package admissibility decides which joints may serve as the second
// endpoint of a new or edited bar.
package admissibility

import (
	"github.com/alexiusacademia/gotruss/internal/geometry"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// LengthLimits supplies the open interval of admissible bar lengths, in
// the same unit as the joint coordinates.
type LengthLimits interface {
	MinBarLength() float64
	MaxBarLength() float64
}

// LengthInRange reports whether min < length < max
func LengthInRange(length float64, limits LengthLimits) bool {
	return length > limits.MinBarLength() && length < limits.MaxBarLength()
}

// NoJointOnSegment reports whether no joint other than a and b lies
// strictly inside the segment ab. When it fails, the first blocking
// joint in model order is returned.
func NoJointOnSegment(topo *truss.Topology, a, b *truss.Joint, tol geometry.Tolerance) (bool, truss.JointID) {
	pa, pb := a.Point(), b.Point()
	for _, c := range topo.Joints() {
		if c.ID == a.ID || c.ID == b.ID {
			continue
		}
		if geometry.OnOpenSegment(pa, pb, c.Point(), tol) {
			return false, c.ID
		}
	}
	return true, 0
}

// NoCollinearOverlap reports whether segment ab overlaps no existing bar
// along a shared line. The bar exclude, if non-zero, is skipped. When it
// fails, the first conflicting bar in model order is returned.
func NoCollinearOverlap(topo *truss.Topology, a, b *truss.Joint, exclude truss.BarID, tol geometry.Tolerance) (bool, truss.BarID) {
	pa, pb := a.Point(), b.Point()
	for _, bar := range topo.Bars() {
		if exclude != 0 && bar.ID == exclude {
			continue
		}
		c, _ := topo.Joint(bar.First)
		d, _ := topo.Joint(bar.Second)
		if geometry.Overlaps(pa, pb, c.Point(), d.Point(), tol) {
			return false, bar.ID
		}
	}
	return true, 0
}
