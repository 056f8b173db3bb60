package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotruss/internal/geometry"
	"github.com/alexiusacademia/gotruss/internal/units"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "m", s.Units)
	assert.Equal(t, 0.01, s.Limits.MinBarLength())
	assert.Equal(t, 1000.0, s.Limits.MaxBarLength())
	assert.Equal(t, geometry.DefaultTolerance(), s.Tol())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "gotruss.toml", `
units = "mm"

[limits]
min = 100
max = 20000

[tolerance]
small = 1e-9
exact_vertical = true
`)

	s, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "mm", s.System().Name)
	assert.Equal(t, 100.0, s.Limits.Min)
	assert.Equal(t, 20000.0, s.Limits.Max)

	tol := s.Tol()
	assert.Equal(t, 1e-9, tol.Small)
	assert.Equal(t, geometry.EpsLarge, tol.Large)
	assert.True(t, tol.ExactVertical)
}

func TestScaleWithUnits(t *testing.T) {
	path := writeFile(t, "gotruss.toml", `
units = "mm"

[tolerance]
scale_with_units = true
`)

	s, err := Load(path, "")
	require.NoError(t, err)
	assert.InDelta(t, 1e-9, s.Tol().Small, 1e-20)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvUnits, "ft")
	t.Setenv(EnvMaxBarLength, "50")

	s, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "ft", s.Units)
	assert.Equal(t, 0.05, s.Limits.Min)
	assert.Equal(t, 50.0, s.Limits.Max)
}

func TestEnvFile(t *testing.T) {
	// restored by t.Setenv's cleanup; godotenv never overrides a set variable
	t.Setenv(EnvMinBarLength, "")
	os.Unsetenv(EnvMinBarLength)
	envFile := writeFile(t, ".env", "GOTRUSS_MIN_BAR_LENGTH=2.5\n")

	s, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.Limits.Min)
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", "units = "), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "units.toml", `units = "furlong"`), "")
	assert.ErrorContains(t, err, "unknown unit system")

	_, err = Load(writeFile(t, "limits.toml", "[limits]\nmin = 10\nmax = 5\n"), "")
	assert.Error(t, err)

	t.Setenv(EnvMinBarLength, "abc")
	_, err = Load("", "")
	assert.ErrorContains(t, err, EnvMinBarLength)
}

func TestOverrideUnits(t *testing.T) {
	s, err := Default("m")
	require.NoError(t, err)

	require.NoError(t, s.OverrideUnits("mm"))
	assert.Equal(t, 10.0, s.Limits.Min)
	assert.Equal(t, 1000000.0, s.Limits.Max)

	assert.Error(t, s.OverrideUnits("furlong"))
}

func TestOverrideUnitsKeepsOnlyExplicitBounds(t *testing.T) {
	path := writeFile(t, "gotruss.toml", "units = \"m\"\n\n[limits]\nmin = 2\n")

	s, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Limits.Min)
	assert.Equal(t, 1000.0, s.Limits.Max)

	require.NoError(t, s.OverrideUnits("mm"))
	assert.Equal(t, 2.0, s.Limits.Min)
	assert.Equal(t, 1000000.0, s.Limits.Max, "max was never set, so it follows the mm default")

	require.NoError(t, s.OverrideUnits("m"))
	assert.Equal(t, 1000.0, s.Limits.Max)
}

func TestLimitsIn(t *testing.T) {
	path := writeFile(t, "gotruss.toml", "units = \"mm\"\n\n[limits]\nmin = 500\nmax = 9000\n")

	s, err := Load(path, "")
	require.NoError(t, err)

	m, err := units.ForSystem("m")
	require.NoError(t, err)
	l := s.LimitsIn(m)
	assert.InDelta(t, 0.5, l.Min, 1e-12)
	assert.InDelta(t, 9.0, l.Max, 1e-12)
	assert.Equal(t, s.Limits, s.LimitsIn(s.System()))
}

func TestTolInScalesWithCoordinateUnits(t *testing.T) {
	path := writeFile(t, "gotruss.toml", "[tolerance]\nscale_with_units = true\n")

	s, err := Load(path, "")
	require.NoError(t, err)

	mm, err := units.ForSystem("mm")
	require.NoError(t, err)
	assert.Equal(t, geometry.EpsSmall, s.Tol().Small)
	assert.InDelta(t, 1e-9, s.TolIn(mm).Small, 1e-20)
}
