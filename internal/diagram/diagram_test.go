package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() TrussDiagramData {
	return TrussDiagramData{
		Title: "Warren panel",
		Joints: []JointMark{
			{Number: 1, Position: Point{0, 0}, Supported: true},
			{Number: 2, Position: Point{4, 0}, Supported: true},
			{Number: 3, Position: Point{2, 3}},
			{Number: 4, Position: Point{6, 3}},
		},
		Bars: []BarMark{
			{Number: 1, From: Point{0, 0}, To: Point{4, 0}},
			{Number: 2, From: Point{4, 0}, To: Point{2, 3}, Edited: true},
		},
		First:      3,
		Candidates: []int{1, 4},
	}
}

func TestDrawASCIITruss(t *testing.T) {
	out := DrawASCIITruss(sample())

	assert.Contains(t, out, "Warren panel")
	assert.Equal(t, 1, strings.Count(out, "◆")-1, "one first-joint glyph besides the legend")
	assert.Equal(t, 2, strings.Count(out, "○")-1)
	assert.Equal(t, 1, strings.Count(out, "▲")-1)
	assert.Contains(t, out, "first joint (3)")
	assert.Contains(t, out, "bar being edited")
	assert.Contains(t, out, "·")
}

func TestDrawASCIITrussEmpty(t *testing.T) {
	assert.Contains(t, DrawASCIITruss(TrussDiagramData{}), "no joints")
}

func TestDrawASCIITrussSingleJoint(t *testing.T) {
	out := DrawASCIITruss(TrussDiagramData{Joints: []JointMark{{Number: 1}}})
	assert.Contains(t, out, "●")
	assert.NotContains(t, out, "first joint")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("CONNECTABLE", []string{"Joint 2", "Joint 4 → ok"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "borders, title, separator and two body lines")

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportTruss(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"truss.png", "truss.svg", "nested/truss.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportTruss(sample(), path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, ExportTruss(sample(), filepath.Join(dir, "plain")))
	_, err := os.Stat(filepath.Join(dir, "plain.png"))
	assert.NoError(t, err)
}
