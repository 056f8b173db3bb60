package units

import (
	"fmt"
	"sort"
	"strings"
)

// System describes a length unit and the bar length limits that go with it
type System struct {
	Name     string
	Label    string  // printed after lengths
	PerMeter float64 // how many of this unit make one meter

	// Default open bounds on bar length, in this unit
	MinBarLength float64
	MaxBarLength float64
}

// Built-in unit systems. Defaults allow members from 1 cm up to 1 km.
var systems = map[string]System{
	"m":  {Name: "m", Label: "m", PerMeter: 1, MinBarLength: 0.01, MaxBarLength: 1000},
	"cm": {Name: "cm", Label: "cm", PerMeter: 100, MinBarLength: 1, MaxBarLength: 100000},
	"mm": {Name: "mm", Label: "mm", PerMeter: 1000, MinBarLength: 10, MaxBarLength: 1000000},
	"ft": {Name: "ft", Label: "ft", PerMeter: 1 / 0.3048, MinBarLength: 0.05, MaxBarLength: 3000},
	"in": {Name: "in", Label: "in", PerMeter: 1 / 0.0254, MinBarLength: 0.5, MaxBarLength: 36000},
}

// Default is the unit system used when none is configured
const Default = "m"

// ForSystem looks up a unit system by name (case-insensitive)
func ForSystem(name string) (System, error) {
	if name == "" {
		name = Default
	}
	s, ok := systems[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return System{}, fmt.Errorf("unknown unit system %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the known unit systems in sorted order
func Names() []string {
	names := make([]string, 0, len(systems))
	for n := range systems {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Convert expresses a length given in from as a length in to
func Convert(value float64, from, to System) float64 {
	return value / from.PerMeter * to.PerMeter
}

// ToleranceScale is the factor to apply to tolerances tuned for meters
// so that they mean the same physical distance in s.
func (s System) ToleranceScale() float64 {
	return s.PerMeter
}

// Limits returns the default bar length limits of the system
func (s System) Limits() Limits {
	return Limits{Min: s.MinBarLength, Max: s.MaxBarLength}
}

// Limits is an open interval of admissible bar lengths
type Limits struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

func (l Limits) MinBarLength() float64 { return l.Min }
func (l Limits) MaxBarLength() float64 { return l.Max }

// Convert expresses both bounds, given in from, in to
func (l Limits) Convert(from, to System) Limits {
	return Limits{Min: Convert(l.Min, from, to), Max: Convert(l.Max, from, to)}
}

// Validate checks that the interval is non-empty
func (l Limits) Validate() error {
	if l.Min < 0 {
		return fmt.Errorf("minimum bar length must not be negative, got %g", l.Min)
	}
	if l.Max <= l.Min {
		return fmt.Errorf("maximum bar length %g must exceed minimum %g", l.Max, l.Min)
	}
	return nil
}
