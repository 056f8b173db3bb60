package truss

import (
	"fmt"
	"slices"
)

// Topology is the joint/bar graph of a plane truss. Joints and bars live
// in flat storage addressed by handles, and adjacency is kept as handle
// sets on each joint.
//
// A Topology is not safe for concurrent mutation. Queries may share it
// as long as no edit runs at the same time.
type Topology struct {
	Name  string
	Units string

	joints     map[JointID]*Joint
	jointOrder []JointID
	bars       map[BarID]*Bar
	barOrder   []BarID

	nextJoint JointID
	nextBar   BarID
}

// New creates an empty topology
func New() *Topology {
	return &Topology{
		joints:    make(map[JointID]*Joint),
		bars:      make(map[BarID]*Bar),
		nextJoint: 1,
		nextBar:   1,
	}
}

// Len returns the number of joints
func (t *Topology) Len() int { return len(t.jointOrder) }

// BarLen returns the number of bars
func (t *Topology) BarLen() int { return len(t.barOrder) }

// AddJoint inserts a joint at (x, y) and returns its handle
func (t *Topology) AddJoint(x, y float64, supported bool) JointID {
	id := t.nextJoint
	t.nextJoint++
	t.joints[id] = &Joint{
		ID:        id,
		X:         x,
		Y:         y,
		Supported: supported,
		connected: make(map[JointID]struct{}),
		bars:      make(map[BarID]struct{}),
	}
	t.jointOrder = append(t.jointOrder, id)
	return id
}

// Joint returns the joint with the given handle
func (t *Topology) Joint(id JointID) (*Joint, bool) {
	j, ok := t.joints[id]
	return j, ok
}

// Joints returns all joints in insertion order
func (t *Topology) Joints() []*Joint {
	out := make([]*Joint, 0, len(t.jointOrder))
	for _, id := range t.jointOrder {
		out = append(out, t.joints[id])
	}
	return out
}

// Position returns the 1-based position of a joint in insertion order,
// which is how joints are numbered for the user. It returns 0 for an
// unknown joint.
func (t *Topology) Position(id JointID) int {
	return slices.Index(t.jointOrder, id) + 1
}

// JointAt returns the joint at a 1-based position in insertion order
func (t *Topology) JointAt(pos int) (*Joint, bool) {
	if pos < 1 || pos > len(t.jointOrder) {
		return nil, false
	}
	return t.joints[t.jointOrder[pos-1]], true
}

// MoveJoint changes the coordinates of a joint
func (t *Topology) MoveJoint(id JointID, x, y float64) error {
	j, ok := t.joints[id]
	if !ok {
		return fmt.Errorf("move joint %d: %w", id, ErrUnknownJoint)
	}
	j.X, j.Y = x, y
	return nil
}

// SetSupported changes the support flag of a joint
func (t *Topology) SetSupported(id JointID, supported bool) error {
	j, ok := t.joints[id]
	if !ok {
		return fmt.Errorf("support joint %d: %w", id, ErrUnknownJoint)
	}
	j.Supported = supported
	return nil
}

// RemoveJoint deletes a joint together with every bar attached to it
func (t *Topology) RemoveJoint(id JointID) error {
	j, ok := t.joints[id]
	if !ok {
		return fmt.Errorf("remove joint %d: %w", id, ErrUnknownJoint)
	}
	for _, bid := range j.AttachedBars() {
		if err := t.RemoveBar(bid); err != nil {
			return err
		}
	}
	delete(t.joints, id)
	t.jointOrder = slices.DeleteFunc(t.jointOrder, func(v JointID) bool { return v == id })
	return nil
}

// AddBar connects two distinct, not yet connected joints
func (t *Topology) AddBar(first, second JointID, sec Section) (BarID, error) {
	if err := t.checkEndpoints(first, second, 0); err != nil {
		return 0, fmt.Errorf("add bar: %w", err)
	}
	id := t.nextBar
	t.nextBar++
	t.bars[id] = &Bar{ID: id, First: first, Second: second, Section: sec}
	t.barOrder = append(t.barOrder, id)
	t.link(t.bars[id])
	return id, nil
}

// UpdateBar re-points an existing bar to a new pair of joints
func (t *Topology) UpdateBar(id BarID, first, second JointID) error {
	b, ok := t.bars[id]
	if !ok {
		return fmt.Errorf("update bar %d: %w", id, ErrUnknownBar)
	}
	if err := t.checkEndpoints(first, second, id); err != nil {
		return fmt.Errorf("update bar %d: %w", id, err)
	}
	t.unlink(b)
	b.First, b.Second = first, second
	t.link(b)
	return nil
}

// SetSection replaces the member properties of a bar
func (t *Topology) SetSection(id BarID, sec Section) error {
	b, ok := t.bars[id]
	if !ok {
		return fmt.Errorf("set section of bar %d: %w", id, ErrUnknownBar)
	}
	b.Section = sec
	return nil
}

// RemoveBar deletes a bar and its adjacency entries
func (t *Topology) RemoveBar(id BarID) error {
	b, ok := t.bars[id]
	if !ok {
		return fmt.Errorf("remove bar %d: %w", id, ErrUnknownBar)
	}
	t.unlink(b)
	delete(t.bars, id)
	t.barOrder = slices.DeleteFunc(t.barOrder, func(v BarID) bool { return v == id })
	return nil
}

// Bar returns the bar with the given handle
func (t *Topology) Bar(id BarID) (*Bar, bool) {
	b, ok := t.bars[id]
	return b, ok
}

// Bars returns all bars in insertion order
func (t *Topology) Bars() []*Bar {
	out := make([]*Bar, 0, len(t.barOrder))
	for _, id := range t.barOrder {
		out = append(out, t.bars[id])
	}
	return out
}

// BarAt returns the bar at a 1-based position in insertion order
func (t *Topology) BarAt(pos int) (*Bar, bool) {
	if pos < 1 || pos > len(t.barOrder) {
		return nil, false
	}
	return t.bars[t.barOrder[pos-1]], true
}

// BarBetween returns the bar joining a and b regardless of endpoint order
func (t *Topology) BarBetween(a, b JointID) (*Bar, bool) {
	ja, ok := t.joints[a]
	if !ok {
		return nil, false
	}
	for bid := range ja.bars {
		if bar := t.bars[bid]; bar.Connects(a, b) {
			return bar, true
		}
	}
	return nil, false
}

// checkEndpoints validates a proposed endpoint pair. self is the bar
// being re-pointed, or 0 for a new bar.
func (t *Topology) checkEndpoints(first, second JointID, self BarID) error {
	if _, ok := t.joints[first]; !ok {
		return fmt.Errorf("joint %d: %w", first, ErrUnknownJoint)
	}
	if _, ok := t.joints[second]; !ok {
		return fmt.Errorf("joint %d: %w", second, ErrUnknownJoint)
	}
	if first == second {
		return ErrSameJoint
	}
	if existing, ok := t.BarBetween(first, second); ok && existing.ID != self {
		return fmt.Errorf("joints %d and %d: %w", first, second, ErrDuplicateBar)
	}
	return nil
}

func (t *Topology) link(b *Bar) {
	j1, j2 := t.joints[b.First], t.joints[b.Second]
	j1.connected[b.Second] = struct{}{}
	j2.connected[b.First] = struct{}{}
	j1.bars[b.ID] = struct{}{}
	j2.bars[b.ID] = struct{}{}
}

func (t *Topology) unlink(b *Bar) {
	j1, j2 := t.joints[b.First], t.joints[b.Second]
	delete(j1.connected, b.Second)
	delete(j2.connected, b.First)
	delete(j1.bars, b.ID)
	delete(j2.bars, b.ID)
}

// Validate checks the structural invariants of the model: every bar
// references live, distinct joints, no two bars join the same pair, and
// adjacency is the symmetric closure of the bar set.
func (t *Topology) Validate() error {
	seen := make(map[[2]JointID]BarID)
	for _, b := range t.Bars() {
		j1, ok1 := t.joints[b.First]
		j2, ok2 := t.joints[b.Second]
		if !ok1 || !ok2 {
			return invalidf("bar %d references a deleted joint", b.ID)
		}
		if b.First == b.Second {
			return invalidf("bar %d starts and ends at joint %d", b.ID, b.First)
		}
		key := [2]JointID{min(b.First, b.Second), max(b.First, b.Second)}
		if other, dup := seen[key]; dup {
			return invalidf("bars %d and %d join the same joints", other, b.ID)
		}
		seen[key] = b.ID
		if !j1.IsConnectedTo(b.Second) || !j2.IsConnectedTo(b.First) {
			return invalidf("bar %d is missing from joint adjacency", b.ID)
		}
		if _, ok := j1.bars[b.ID]; !ok {
			return invalidf("bar %d is not attached to joint %d", b.ID, b.First)
		}
		if _, ok := j2.bars[b.ID]; !ok {
			return invalidf("bar %d is not attached to joint %d", b.ID, b.Second)
		}
	}
	for _, j := range t.Joints() {
		for other := range j.connected {
			key := [2]JointID{min(j.ID, other), max(j.ID, other)}
			if _, ok := seen[key]; !ok {
				return invalidf("joints %d and %d are adjacent without a bar", j.ID, other)
			}
		}
		for bid := range j.bars {
			b, ok := t.bars[bid]
			if !ok || (b.First != j.ID && b.Second != j.ID) {
				return invalidf("joint %d lists bar %d which does not end there", j.ID, bid)
			}
		}
	}
	return nil
}
