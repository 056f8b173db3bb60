package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// JointMark is a joint as drawn in a diagram
type JointMark struct {
	Number    int // 1-based number shown to the user
	Position  Point
	Supported bool
}

// BarMark is a bar as drawn in a diagram
type BarMark struct {
	Number   int
	From, To Point
	Edited   bool // the bar currently being edited
}

// TrussDiagramData holds everything needed to draw a connectable-joint query
type TrussDiagramData struct {
	Title  string
	Joints []JointMark
	Bars   []BarMark

	// Numbers of the fixed first joint and of the admissible second
	// endpoints. First is 0 when no query is shown.
	First      int
	Candidates []int
}

func (d TrussDiagramData) isCandidate(n int) bool {
	for _, c := range d.Candidates {
		if c == n {
			return true
		}
	}
	return false
}

// DrawASCIITruss sketches the truss on a character grid. Bars are dotted,
// supported joints are ▲, the first joint is ◆, admissible joints are ○
// and every other joint is ●.
func DrawASCIITruss(data TrussDiagramData) string {
	const widthChars, heightChars = 60, 20

	var sb strings.Builder
	if len(data.Joints) == 0 {
		sb.WriteString("  (no joints)\n")
		return sb.String()
	}

	minX, maxX := data.Joints[0].Position.X, data.Joints[0].Position.X
	minY, maxY := data.Joints[0].Position.Y, data.Joints[0].Position.Y
	for _, j := range data.Joints {
		minX = math.Min(minX, j.Position.X)
		maxX = math.Max(maxX, j.Position.X)
		minY = math.Min(minY, j.Position.Y)
		maxY = math.Max(maxY, j.Position.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}
	cell := func(p Point) (int, int) {
		col := int(math.Round((p.X - minX) / spanX * widthChars))
		row := heightChars - int(math.Round((p.Y-minY)/spanY*heightChars))
		return row, col
	}

	for _, b := range data.Bars {
		r1, c1 := cell(b.From)
		r2, c2 := cell(b.To)
		steps := max(abs(r2-r1), abs(c2-c1))
		mark := '·'
		if b.Edited {
			mark = '='
		}
		for s := 1; s < steps; s++ {
			r := r1 + int(math.Round(float64(s*(r2-r1))/float64(steps)))
			c := c1 + int(math.Round(float64(s*(c2-c1))/float64(steps)))
			grid[r][c] = mark
		}
	}

	for _, j := range data.Joints {
		r, c := cell(j.Position)
		switch {
		case j.Number == data.First:
			grid[r][c] = '◆'
		case data.isCandidate(j.Number):
			grid[r][c] = '○'
		case j.Supported:
			grid[r][c] = '▲'
		default:
			grid[r][c] = '●'
		}
	}

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))
	}
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	if data.First != 0 {
		sb.WriteString(fmt.Sprintf("  ◆ = first joint (%d)\n", data.First))
		sb.WriteString("  ○ = connectable joint\n")
	}
	sb.WriteString("  ▲ = supported joint   ● = joint   ··· = bar\n")
	if hasEdited(data.Bars) {
		sb.WriteString("  === = bar being edited\n")
	}

	return sb.String()
}

func hasEdited(bars []BarMark) bool {
	for _, b := range bars {
		if b.Edited {
			return true
		}
	}
	return false
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes; %-*s counts bytes
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
