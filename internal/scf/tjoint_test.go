package scf

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tGeometry(t *testing.T, class section.Class, length float64) *joint.Geometry {
	t.Helper()
	chord, err := section.Generate(class, 0.4064, 0.4064, 0.0125)
	require.NoError(t, err)
	brace, err := section.Generate(class, 0.2191, 0.2191, 0.008)
	require.NoError(t, err)
	g, err := joint.NewT(chord, brace, joint.TLayout{ChordLength: length, Divisions: 3, Angle: math.Pi / 2, Fixity: 0.7})
	require.NoError(t, err)
	return g
}

func TestComputeTCircular(t *testing.T) {
	g := tGeometry(t, section.CHS, 6)
	set, err := Compute(g)
	require.NoError(t, err)

	s := set.T
	assert.Equal(t, TCHS, set.Family)
	assert.Equal(t, 1.0, s.F2)
	assert.Equal(t, 1.0, s.F3)

	want := map[string][2]float64{
		"ChordSaddleAx":  {11.033293, s.ChordSaddleAx},
		"ChordCrownAx":   {4.373130, s.ChordCrownAx},
		"BraceSaddleAx":  {9.176806, s.BraceSaddleAx},
		"BraceCrownAx":   {2.744243, s.BraceCrownAx},
		"ChordCrownIPB":  {3.128675, s.ChordCrownIPB},
		"BraceCrownIPB":  {2.924670, s.BraceCrownIPB},
		"ChordSaddleOPB": {8.612368, s.ChordSaddleOPB},
		"BraceSaddleOPB": {7.086631, s.BraceSaddleOPB},
	}
	for name, v := range want {
		assert.InDelta(t, v[0], v[1], 1e-5, name)
	}
}

func TestShortChordCorrection(t *testing.T) {
	beta := 0.2191 / 0.4064
	gamma := 0.4064 / 0.0125 / 2

	f2, f3 := shortChord(beta, gamma, 8)
	assert.InDelta(t, 0.966871, f2, 1e-6)
	assert.InDelta(t, 0.949882, f3, 1e-6)

	f2, f3 = shortChord(beta, gamma, cidect.ShortChordAlpha)
	assert.Equal(t, 1.0, f2)
	assert.Equal(t, 1.0, f3)
}

func TestComputeTRectangularUnimplemented(t *testing.T) {
	g := tGeometry(t, section.SHS, 6)
	_, err := Compute(g)
	var unimpl *cidect.UnimplementedFormulaError
	require.True(t, errors.As(err, &unimpl))
	assert.Equal(t, "T", unimpl.Joint)
	assert.Equal(t, "SHS", unimpl.Section)
}

func TestTCircularRejectsWideBrace(t *testing.T) {
	_, err := tCircular(1.2, 16, 0.6, 20, math.Pi/2, 0.4, 0.35, 0.14)
	var geomErr *cidect.GeometryError
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "beta", geomErr.Quantity)
}
