// Package settings loads the unit system, bar length limits and
// tolerances used by the admissibility checks.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/alexiusacademia/gotruss/internal/geometry"
	"github.com/alexiusacademia/gotruss/internal/units"
)

// Environment variables that override the settings file
const (
	EnvUnits        = "GOTRUSS_UNITS"
	EnvMinBarLength = "GOTRUSS_MIN_BAR_LENGTH"
	EnvMaxBarLength = "GOTRUSS_MAX_BAR_LENGTH"
)

// Settings is the contents of a gotruss.toml file. Zero values, limits
// included, fall back to the defaults of the selected unit system.
type Settings struct {
	Units     string         `toml:"units"`
	Limits    units.Limits   `toml:"limits"`
	Tolerance ToleranceTable `toml:"tolerance"`

	system units.System

	// bounds given by the file or environment; zero means unset
	explicit units.Limits
}

// ToleranceTable is the [tolerance] table
type ToleranceTable struct {
	Small         float64 `toml:"small"`
	Large         float64 `toml:"large"`
	ExactVertical bool    `toml:"exact_vertical"`

	// ScaleWithUnits multiplies the small tolerance by the size of the
	// unit relative to a meter.
	ScaleWithUnits bool `toml:"scale_with_units"`
}

// Load reads the settings file at path (optional) and applies
// environment overrides, including any found in envFile.
func Load(path, envFile string) (*Settings, error) {
	s := &Settings{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	s.explicit = s.Limits

	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

// Default returns the settings for a unit system with no file or
// environment involved
func Default(system string) (*Settings, error) {
	s := &Settings{Units: system}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

// OverrideUnits switches to another unit system. Each bound that was not
// given explicitly takes the new system's default.
func (s *Settings) OverrideUnits(system string) error {
	s.Units = system
	return s.resolve()
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv(EnvUnits); v != "" {
		s.Units = v
	}
	for _, e := range []struct {
		name string
		dst  *float64
	}{
		{EnvMinBarLength, &s.Limits.Min},
		{EnvMaxBarLength, &s.Limits.Max},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = f
	}
	return nil
}

func (s *Settings) resolve() error {
	sys, err := units.ForSystem(s.Units)
	if err != nil {
		return err
	}
	s.system = sys
	s.Units = sys.Name

	s.Limits = s.explicit
	if s.Limits.Min == 0 {
		s.Limits.Min = sys.MinBarLength
	}
	if s.Limits.Max == 0 {
		s.Limits.Max = sys.MaxBarLength
	}
	return s.Limits.Validate()
}

// System returns the resolved unit system
func (s *Settings) System() units.System {
	return s.system
}

// LimitsIn returns the bar length limits expressed in coord, the unit of
// the joint coordinates they will be compared with
func (s *Settings) LimitsIn(coord units.System) units.Limits {
	return s.Limits.Convert(s.system, coord)
}

// Tol returns the tolerances for coordinates in the configured unit system
func (s *Settings) Tol() geometry.Tolerance {
	return s.TolIn(s.system)
}

// TolIn returns the tolerances for coordinates given in coord
func (s *Settings) TolIn(coord units.System) geometry.Tolerance {
	tol := geometry.DefaultTolerance()
	if s.Tolerance.Small > 0 {
		tol.Small = s.Tolerance.Small
	}
	if s.Tolerance.Large > 0 {
		tol.Large = s.Tolerance.Large
	}
	tol.ExactVertical = s.Tolerance.ExactVertical
	if s.Tolerance.ScaleWithUnits {
		tol = tol.Scaled(coord.ToleranceScale())
	}
	return tol
}
