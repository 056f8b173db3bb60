package cmd

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gotruss/internal/admissibility"
	"github.com/alexiusacademia/gotruss/internal/diagram"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/alexiusacademia/gotruss/internal/units"
)

// workspace is a loaded truss together with the limits and engine that
// apply to its coordinates
type workspace struct {
	topo   *truss.Topology
	coord  units.System // unit of the joint coordinates
	limits units.Limits // in coord
	engine *admissibility.Engine
}

// openTruss reads the truss file. Coordinates are in the unit the file
// declares, or in the configured unit when it declares none; the
// configured limits are converted to match.
func openTruss(path string) (*workspace, error) {
	topo, err := truss.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	coord := cfg.System()
	if topo.Units != "" {
		if coord, err = units.ForSystem(topo.Units); err != nil {
			return nil, fmt.Errorf("truss units: %w", err)
		}
	}

	ws := &workspace{
		topo:   topo,
		coord:  coord,
		limits: cfg.LimitsIn(coord),
	}
	ws.engine = admissibility.New(ws.limits)
	ws.engine.Tolerance = cfg.TolIn(coord)

	slog.Debug("truss loaded",
		"file", path,
		"coordinates", coord.Name,
		"min_bar_length", ws.limits.Min,
		"max_bar_length", ws.limits.Max)
	return ws, nil
}

// diagramData converts the topology into diagram marks. first is the
// joint of the query (0 for none) and edited the bar under edit.
func diagramData(topo *truss.Topology, title string, first truss.JointID, candidates []truss.JointID, edited truss.BarID) diagram.TrussDiagramData {
	data := diagram.TrussDiagramData{Title: title}

	for i, j := range topo.Joints() {
		data.Joints = append(data.Joints, diagram.JointMark{
			Number:    i + 1,
			Position:  diagram.Point{X: j.X, Y: j.Y},
			Supported: j.Supported,
		})
	}
	for i, b := range topo.Bars() {
		j1, _ := topo.Joint(b.First)
		j2, _ := topo.Joint(b.Second)
		data.Bars = append(data.Bars, diagram.BarMark{
			Number: i + 1,
			From:   diagram.Point{X: j1.X, Y: j1.Y},
			To:     diagram.Point{X: j2.X, Y: j2.Y},
			Edited: b.ID == edited,
		})
	}

	if first != 0 {
		data.First = topo.Position(first)
	}
	for _, c := range candidates {
		data.Candidates = append(data.Candidates, topo.Position(c))
	}
	return data
}

// describe explains a verdict in terms of user-facing joint and bar numbers
func (ws *workspace) describe(v admissibility.Verdict) string {
	topo := ws.topo
	switch v.Reason {
	case admissibility.LengthOutOfRange:
		return fmt.Sprintf("length %.4g %s outside (%g, %g)", v.Length, ws.coord.Label, ws.limits.Min, ws.limits.Max)
	case admissibility.JointOnSegment:
		return fmt.Sprintf("passes through joint %d", topo.Position(v.BlockingJoint))
	case admissibility.CollinearOverlap:
		return fmt.Sprintf("overlaps bar %d", barNumber(topo, v.BlockingBar))
	default:
		return v.Reason.String()
	}
}

func barNumber(topo *truss.Topology, id truss.BarID) int {
	for i, b := range topo.Bars() {
		if b.ID == id {
			return i + 1
		}
	}
	return 0
}

func countSupported(joints []*truss.Joint) int {
	n := 0
	for _, j := range joints {
		if j.Supported {
			n++
		}
	}
	return n
}
