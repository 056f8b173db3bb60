package admissibility

import "github.com/alexiusacademia/gotruss/internal/truss"

// Violation is an existing bar that would not be accepted if it were
// entered again
type Violation struct {
	Bar     truss.BarID
	Verdict Verdict
}

// AuditBars re-checks every bar of the topology the way an edit of that
// bar would, and returns the bars that fail, in model order.
func (e *Engine) AuditBars(topo *truss.Topology) ([]Violation, error) {
	if e.Limits == nil {
		return nil, ErrNoLimits
	}
	var out []Violation
	for _, bar := range topo.Bars() {
		a, _ := topo.Joint(bar.First)
		b, _ := topo.Joint(bar.Second)
		v := e.evaluate(topo, a, b, queryOptions{exclude: bar.ID})
		if !v.OK() {
			out = append(out, Violation{Bar: bar.ID, Verdict: v})
		}
	}
	return out, nil
}
