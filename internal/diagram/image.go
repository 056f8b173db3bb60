package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	barColor       = color.Gray{Y: 110}
	editedColor    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	jointColor     = color.Black
	supportColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	firstColor     = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	candidateColor = color.RGBA{R: 0, G: 150, B: 0, A: 255}
)

// ExportTruss exports the truss, and the connectable joints of a query if
// one is set, to an image file. The format follows the file extension
// (png, svg, pdf); anything else is written as png.
func ExportTruss(data TrussDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Truss Topology"
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, b := range data.Bars {
		line, err := plotter.NewLine(plotter.XYs{
			{X: b.From.X, Y: b.From.Y},
			{X: b.To.X, Y: b.To.Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = barColor
		if b.Edited {
			line.LineStyle.Color = editedColor
			line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		}
		p.Add(line)
	}

	var plain, supported, first, candidates plotter.XYs
	var labelXYs []plotter.XY
	var labels []string
	for _, j := range data.Joints {
		xy := plotter.XY{X: j.Position.X, Y: j.Position.Y}
		switch {
		case j.Number == data.First:
			first = append(first, xy)
		case data.isCandidate(j.Number):
			candidates = append(candidates, xy)
		case j.Supported:
			supported = append(supported, xy)
		default:
			plain = append(plain, xy)
		}
		labelXYs = append(labelXYs, xy)
		labels = append(labels, strconv.Itoa(j.Number))
	}

	groups := []struct {
		pts   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
		size  float64
	}{
		{plain, jointColor, draw.CircleGlyph{}, 4},
		{supported, supportColor, draw.TriangleGlyph{}, 6},
		{candidates, candidateColor, draw.RingGlyph{}, 7},
		{first, firstColor, draw.SquareGlyph{}, 6},
	}
	for _, g := range groups {
		if len(g.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(g.pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = g.color
		sc.GlyphStyle.Shape = g.shape
		sc.GlyphStyle.Radius = vg.Points(g.size)
		p.Add(sc)
	}

	if len(labels) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    labelXYs,
			Labels: labels,
		})
		if err != nil {
			return err
		}
		l.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
