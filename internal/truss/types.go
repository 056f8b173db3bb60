package truss

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexiusacademia/gotruss/internal/geometry"
)

// JointID is a stable handle for a joint. Handles are never reused
// within one Topology.
type JointID int

// BarID is a stable handle for a bar
type BarID int

var (
	ErrUnknownJoint = errors.New("unknown joint")
	ErrUnknownBar   = errors.New("unknown bar")
	ErrSameJoint    = errors.New("bar endpoints must be distinct joints")
	ErrDuplicateBar = errors.New("joints are already connected by a bar")
)

// Section holds the member properties carried by a bar. None of them
// take part in the geometric checks.
type Section struct {
	Area       float64 `json:"area,omitempty"`        // cross-section area
	Modulus    float64 `json:"modulus,omitempty"`     // modulus of elasticity
	Factor     float64 `json:"factor,omitempty"`      // stiffness/design factor
	UnitWeight float64 `json:"unit_weight,omitempty"` // weight per unit volume
}

// Joint is a pin connection in the plane
type Joint struct {
	ID        JointID
	X, Y      float64
	Supported bool

	connected map[JointID]struct{}
	bars      map[BarID]struct{}
}

// Point returns the joint position
func (j *Joint) Point() geometry.Point {
	return geometry.Point{j.X, j.Y}
}

// ConnectedJoints returns the joints sharing a bar with j, ascending by handle
func (j *Joint) ConnectedJoints() []JointID {
	ids := make([]JointID, 0, len(j.connected))
	for id := range j.connected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// IsConnectedTo reports whether a bar joins j and other
func (j *Joint) IsConnectedTo(other JointID) bool {
	_, ok := j.connected[other]
	return ok
}

// AttachedBars returns the bars incident to j, ascending by handle
func (j *Joint) AttachedBars() []BarID {
	ids := make([]BarID, 0, len(j.bars))
	for id := range j.bars {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// Bar is a member between two joints. (First, Second) and (Second, First)
// describe the same member.
type Bar struct {
	ID     BarID
	First  JointID
	Second JointID
	Section
}

// Connects reports whether the bar joins a and b in either order
func (b *Bar) Connects(a, c JointID) bool {
	return (b.First == a && b.Second == c) || (b.First == c && b.Second == a)
}

// Other returns the endpoint opposite j
func (b *Bar) Other(j JointID) JointID {
	if b.First == j {
		return b.Second
	}
	return b.First
}

// ValidationError reports a broken topology invariant
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
