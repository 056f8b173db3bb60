package admissibility

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gotruss/internal/geometry"
	"github.com/alexiusacademia/gotruss/internal/truss"
)

// ErrFirstJointMissing is returned when the fixed first joint is not part
// of the topology being queried.
var ErrFirstJointMissing = errors.New("first joint is not in the topology")

// ErrNoLimits is returned by queries on an engine without length limits
var ErrNoLimits = errors.New("no bar length limits configured")

// Reason says why a candidate joint was accepted or rejected
type Reason int

const (
	Admissible Reason = iota
	SameJoint
	AlreadyConnected
	LengthOutOfRange
	JointOnSegment
	CollinearOverlap
)

func (r Reason) String() string {
	switch r {
	case Admissible:
		return "admissible"
	case SameJoint:
		return "same joint"
	case AlreadyConnected:
		return "already connected"
	case LengthOutOfRange:
		return "length out of range"
	case JointOnSegment:
		return "passes through a joint"
	case CollinearOverlap:
		return "overlaps a bar"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Verdict is the outcome of checking one candidate
type Verdict struct {
	Candidate truss.JointID
	Reason    Reason
	Length    float64

	// Set for JointOnSegment and CollinearOverlap respectively
	BlockingJoint truss.JointID
	BlockingBar   truss.BarID
}

// OK reports whether the candidate is admissible
func (v Verdict) OK() bool { return v.Reason == Admissible }

// Engine evaluates the admissibility rules against a topology. It holds
// no state between queries and never modifies the topology.
type Engine struct {
	Limits    LengthLimits
	Tolerance geometry.Tolerance

	// Logger receives a debug record for every rejected candidate.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// New creates an engine with the default tolerances. limits must not be
// nil; queries on an engine without limits fail with ErrNoLimits.
func New(limits LengthLimits) *Engine {
	return &Engine{Limits: limits, Tolerance: geometry.DefaultTolerance()}
}

type queryOptions struct {
	exclude truss.BarID
}

// Option adjusts a query
type Option func(*queryOptions)

// ExcludeBar puts the query in edit mode for the given bar: the bar's
// current far endpoint stays selectable and the bar is ignored by the
// overlap rule.
func ExcludeBar(id truss.BarID) Option {
	return func(o *queryOptions) { o.exclude = id }
}

func buildOptions(opts []Option) queryOptions {
	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ConnectableJoints returns, in model order, every joint that may be the
// second endpoint of a bar starting at first. An empty result is valid.
func (e *Engine) ConnectableJoints(topo *truss.Topology, first truss.JointID, opts ...Option) ([]truss.JointID, error) {
	verdicts, err := e.EvaluateAll(topo, first, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]truss.JointID, 0, len(verdicts))
	for _, v := range verdicts {
		if v.OK() {
			out = append(out, v.Candidate)
		}
	}
	return out, nil
}

// EvaluateAll returns a verdict for every joint of the topology, in model
// order, including the first joint itself.
func (e *Engine) EvaluateAll(topo *truss.Topology, first truss.JointID, opts ...Option) ([]Verdict, error) {
	if e.Limits == nil {
		return nil, ErrNoLimits
	}
	a, ok := topo.Joint(first)
	if !ok {
		return nil, fmt.Errorf("joint %d: %w", first, errors.Join(ErrFirstJointMissing, truss.ErrUnknownJoint))
	}
	o := buildOptions(opts)

	joints := topo.Joints()
	verdicts := make([]Verdict, 0, len(joints))
	for _, b := range joints {
		verdicts = append(verdicts, e.evaluate(topo, a, b, o))
	}
	return verdicts, nil
}

// Evaluate checks a single candidate against the rules
func (e *Engine) Evaluate(topo *truss.Topology, first, candidate truss.JointID, opts ...Option) (Verdict, error) {
	if e.Limits == nil {
		return Verdict{}, ErrNoLimits
	}
	a, ok := topo.Joint(first)
	if !ok {
		return Verdict{}, fmt.Errorf("joint %d: %w", first, errors.Join(ErrFirstJointMissing, truss.ErrUnknownJoint))
	}
	b, ok := topo.Joint(candidate)
	if !ok {
		return Verdict{}, fmt.Errorf("candidate joint %d: %w", candidate, truss.ErrUnknownJoint)
	}
	return e.evaluate(topo, a, b, buildOptions(opts)), nil
}

func (e *Engine) evaluate(topo *truss.Topology, a, b *truss.Joint, o queryOptions) Verdict {
	v := Verdict{Candidate: b.ID}

	if b.ID == a.ID {
		v.Reason = SameJoint
		return v
	}

	if a.IsConnectedTo(b.ID) && !e.isEditedBar(topo, o.exclude, a.ID, b.ID) {
		v.Reason = AlreadyConnected
		return e.reject(v)
	}

	v.Length = geometry.Distance(a.Point(), b.Point())
	// coincident joints never make a bar, whatever the minimum
	if v.Length <= e.Tolerance.Small || !LengthInRange(v.Length, e.Limits) {
		v.Reason = LengthOutOfRange
		return e.reject(v)
	}

	if ok, blocker := NoJointOnSegment(topo, a, b, e.Tolerance); !ok {
		v.Reason = JointOnSegment
		v.BlockingJoint = blocker
		return e.reject(v)
	}

	if ok, blocker := NoCollinearOverlap(topo, a, b, o.exclude, e.Tolerance); !ok {
		v.Reason = CollinearOverlap
		v.BlockingBar = blocker
		return e.reject(v)
	}

	return v
}

// isEditedBar reports whether the bar under edit is the one joining a and b
func (e *Engine) isEditedBar(topo *truss.Topology, exclude truss.BarID, a, b truss.JointID) bool {
	if exclude == 0 {
		return false
	}
	bar, ok := topo.Bar(exclude)
	return ok && bar.Connects(a, b)
}

func (e *Engine) reject(v Verdict) Verdict {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("candidate rejected",
		"joint", int(v.Candidate),
		"reason", v.Reason.String(),
		"length", v.Length,
		"blocking_joint", int(v.BlockingJoint),
		"blocking_bar", int(v.BlockingBar))
	return v
}
