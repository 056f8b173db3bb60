package truss

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the JSON description of a truss. Bars refer to joints by
// their 1-based position in the joints array.
type Document struct {
	Name   string        `json:"name"`
	Units  string        `json:"units,omitempty"`
	Joints []JointRecord `json:"joints"`
	Bars   []BarRecord   `json:"bars"`
}

// JointRecord is one entry of Document.Joints
type JointRecord struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Supported bool    `json:"supported,omitempty"`
}

// BarRecord is one entry of Document.Bars
type BarRecord struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Section
}

// LoadFromFile reads a truss description from a JSON file
func LoadFromFile(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc.Build()
}

// Build turns the document into a validated topology
func (d *Document) Build() (*Topology, error) {
	t := New()
	t.Name = d.Name
	t.Units = d.Units

	ids := make([]JointID, len(d.Joints))
	for i, j := range d.Joints {
		ids[i] = t.AddJoint(j.X, j.Y, j.Supported)
	}

	for i, b := range d.Bars {
		if b.First < 1 || b.First > len(ids) || b.Second < 1 || b.Second > len(ids) {
			return nil, invalidf("bar %d refers to joint outside 1..%d", i+1, len(ids))
		}
		if _, err := t.AddBar(ids[b.First-1], ids[b.Second-1], b.Section); err != nil {
			return nil, &ValidationError{msg: fmt.Sprintf("bar %d: %v", i+1, err)}
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
