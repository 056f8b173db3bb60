package truss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) (*Topology, []JointID, []BarID) {
	t.Helper()
	topo := New()
	a := topo.AddJoint(0, 0, true)
	b := topo.AddJoint(4, 0, true)
	c := topo.AddJoint(2, 3, false)

	ab, err := topo.AddBar(a, b, Section{Area: 1})
	require.NoError(t, err)
	bc, err := topo.AddBar(b, c, Section{})
	require.NoError(t, err)
	return topo, []JointID{a, b, c}, []BarID{ab, bc}
}

func TestAddBarAdjacency(t *testing.T) {
	topo, j, bars := triangle(t)

	a, _ := topo.Joint(j[0])
	b, _ := topo.Joint(j[1])
	c, _ := topo.Joint(j[2])

	assert.Equal(t, []JointID{j[1]}, a.ConnectedJoints())
	assert.Equal(t, []JointID{j[0], j[2]}, b.ConnectedJoints())
	assert.Equal(t, []JointID{j[1]}, c.ConnectedJoints())
	assert.Equal(t, bars, b.AttachedBars())
	assert.True(t, a.IsConnectedTo(j[1]))
	assert.False(t, a.IsConnectedTo(j[2]))

	bar, ok := topo.BarBetween(j[1], j[0])
	require.True(t, ok)
	assert.Equal(t, bars[0], bar.ID)
	assert.True(t, bar.Connects(j[1], j[0]))
	assert.Equal(t, j[0], bar.Other(j[1]))

	_, ok = topo.BarBetween(j[0], j[2])
	assert.False(t, ok)
	assert.NoError(t, topo.Validate())
}

func TestAddBarRejects(t *testing.T) {
	topo, j, _ := triangle(t)

	_, err := topo.AddBar(j[0], j[0], Section{})
	assert.ErrorIs(t, err, ErrSameJoint)

	_, err = topo.AddBar(j[1], j[0], Section{})
	assert.ErrorIs(t, err, ErrDuplicateBar)

	_, err = topo.AddBar(j[0], JointID(99), Section{})
	assert.ErrorIs(t, err, ErrUnknownJoint)

	assert.Equal(t, 2, topo.BarLen())
}

func TestUpdateBar(t *testing.T) {
	topo, j, bars := triangle(t)

	require.NoError(t, topo.UpdateBar(bars[0], j[0], j[2]))

	a, _ := topo.Joint(j[0])
	b, _ := topo.Joint(j[1])
	c, _ := topo.Joint(j[2])
	assert.Equal(t, []JointID{j[2]}, a.ConnectedJoints())
	assert.Equal(t, []JointID{j[2]}, b.ConnectedJoints())
	assert.Equal(t, []JointID{j[0], j[1]}, c.ConnectedJoints())
	assert.NoError(t, topo.Validate())

	// re-pointing onto itself reversed is fine
	assert.NoError(t, topo.UpdateBar(bars[0], j[2], j[0]))
	// but not onto another bar's pair
	assert.ErrorIs(t, topo.UpdateBar(bars[0], j[1], j[2]), ErrDuplicateBar)
	assert.ErrorIs(t, topo.UpdateBar(BarID(42), j[0], j[1]), ErrUnknownBar)
}

func TestRemoveJointCascades(t *testing.T) {
	topo, j, bars := triangle(t)

	require.NoError(t, topo.RemoveJoint(j[1]))

	assert.Equal(t, 2, topo.Len())
	assert.Equal(t, 0, topo.BarLen())
	_, ok := topo.Bar(bars[0])
	assert.False(t, ok)

	a, _ := topo.Joint(j[0])
	assert.Empty(t, a.ConnectedJoints())
	assert.Empty(t, a.AttachedBars())
	assert.NoError(t, topo.Validate())

	// handles are not reused
	d := topo.AddJoint(9, 9, false)
	assert.NotEqual(t, j[1], d)
	assert.Equal(t, 3, topo.Position(d))
	assert.ErrorIs(t, topo.RemoveJoint(j[1]), ErrUnknownJoint)
}

func TestRemoveBar(t *testing.T) {
	topo, j, bars := triangle(t)

	require.NoError(t, topo.RemoveBar(bars[1]))
	b, _ := topo.Joint(j[1])
	assert.Equal(t, []JointID{j[0]}, b.ConnectedJoints())
	assert.Equal(t, []BarID{bars[0]}, b.AttachedBars())
	assert.ErrorIs(t, topo.RemoveBar(bars[1]), ErrUnknownBar)
}

func TestJointEdits(t *testing.T) {
	topo, j, bars := triangle(t)

	require.NoError(t, topo.MoveJoint(j[2], 5, 5))
	require.NoError(t, topo.SetSupported(j[2], true))
	c, _ := topo.Joint(j[2])
	assert.Equal(t, 5.0, c.Point().X())
	assert.True(t, c.Supported)

	require.NoError(t, topo.SetSection(bars[1], Section{Area: 3, Modulus: 200}))
	bar, _ := topo.Bar(bars[1])
	assert.Equal(t, 200.0, bar.Modulus)

	assert.ErrorIs(t, topo.MoveJoint(JointID(77), 0, 0), ErrUnknownJoint)
	assert.ErrorIs(t, topo.SetSupported(JointID(77), true), ErrUnknownJoint)
	assert.ErrorIs(t, topo.SetSection(BarID(77), Section{}), ErrUnknownBar)
}

func TestPositions(t *testing.T) {
	topo, j, bars := triangle(t)

	assert.Equal(t, 2, topo.Position(j[1]))
	assert.Equal(t, 0, topo.Position(JointID(50)))

	joint, ok := topo.JointAt(3)
	require.True(t, ok)
	assert.Equal(t, j[2], joint.ID)
	_, ok = topo.JointAt(0)
	assert.False(t, ok)

	bar, ok := topo.BarAt(2)
	require.True(t, ok)
	assert.Equal(t, bars[1], bar.ID)
	_, ok = topo.BarAt(3)
	assert.False(t, ok)
}

func TestValidateDetectsBrokenAdjacency(t *testing.T) {
	topo, j, _ := triangle(t)

	a, _ := topo.Joint(j[0])
	a.connected[j[2]] = struct{}{}

	var verr *ValidationError
	assert.ErrorAs(t, topo.Validate(), &verr)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truss.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Pratt panel",
		"units": "m",
		"joints": [
			{"x": 0, "y": 0, "supported": true},
			{"x": 4, "y": 0, "supported": true},
			{"x": 2, "y": 3}
		],
		"bars": [
			{"first": 1, "second": 2, "area": 0.002},
			{"first": 2, "second": 3},
			{"first": 3, "second": 1}
		]
	}`), 0o644))

	topo, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Pratt panel", topo.Name)
	assert.Equal(t, "m", topo.Units)
	assert.Equal(t, 3, topo.Len())
	assert.Equal(t, 3, topo.BarLen())

	bar, _ := topo.BarAt(1)
	assert.Equal(t, 0.002, bar.Area)
}

func TestLoadFromFileRejects(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"out of range": `{"joints":[{"x":0,"y":0},{"x":1,"y":0}],"bars":[{"first":1,"second":3}]}`,
		"same joint":   `{"joints":[{"x":0,"y":0},{"x":1,"y":0}],"bars":[{"first":2,"second":2}]}`,
		"duplicate":    `{"joints":[{"x":0,"y":0},{"x":1,"y":0}],"bars":[{"first":1,"second":2},{"first":2,"second":1}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := LoadFromFile(path)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
