package check

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, class section.Class, b, d, thick float64) section.Properties {
	t.Helper()
	p, err := section.Generate(class, b, d, thick)
	require.NoError(t, err)
	return p
}

func kJoint(t *testing.T, chordT, e float64) Joint {
	return Joint{
		Kind:  joint.K,
		Chord: generate(t, section.SHS, 0.4, 0.4, chordT),
		Brace: generate(t, section.SHS, 0.2, 0.2, 0.01),
		K:     joint.KLayout{Eccentricity: e, ChordSpacing: 2, ChordLength: 8, Divisions: 4},
	}
}

var serviceCase = []stress.LoadCase{{
	ID: "1",
	Forces: stress.Forces{
		PChord: 70e3, PBrace: 50e3, MipChord: 5e3, MopChord: 5e3, MopBrace: 5e3,
		SCFChordOP: 2, SCFBraceOP: 2,
	},
}}

func options(sigmaMaxMPa float64) stress.Options {
	return stress.Options{SigmaMax: sigmaMaxMPa * 1e6, Magnification: stress.DefaultMagnification()}
}

func TestEvaluatePasses(t *testing.T) {
	r, err := Evaluate(kJoint(t, 0.016, 0), serviceCase, options(500))
	require.NoError(t, err)

	assert.True(t, r.Pass)
	assert.Equal(t, GateNone, r.FailedGate)
	assert.True(t, r.Limits.Pass)
	assert.Equal(t, scf.KGapRHS, r.SCF.Family)
	require.NotNil(t, r.GoverningCase())
	assert.Equal(t, stress.Combined, r.GoverningCase().Result.Strategy)
	assert.Contains(t, r.Message(), "PASS")
}

func TestEvaluateStressGate(t *testing.T) {
	r, err := Evaluate(kJoint(t, 0.016, 0), serviceCase, options(1))
	require.NoError(t, err)

	assert.False(t, r.Pass)
	assert.Equal(t, GateStress, r.FailedGate)
	assert.Contains(t, r.Message(), "load case 1")
}

func TestEvaluateGeometryGate(t *testing.T) {
	// 26% overlap is outside the 50-100% window
	r, err := Evaluate(kJoint(t, 0.016, -0.1), serviceCase, options(500))
	require.NoError(t, err)

	assert.False(t, r.Pass)
	assert.Equal(t, GateGeometry, r.FailedGate)
	assert.Nil(t, r.GoverningCase())
	assert.Empty(t, r.Limits.Violations)
	assert.Zero(t, r.SCF.Family)
	assert.Contains(t, r.Message(), "Overlap NOT OK")
}

func TestEvaluateLimitsGate(t *testing.T) {
	// 2γ = 40 exceeds the SHS/RHS maximum of 35
	r, err := Evaluate(kJoint(t, 0.01, 0), serviceCase, options(500))
	require.NoError(t, err)

	assert.Equal(t, GateLimits, r.FailedGate)
	require.Len(t, r.Limits.Violations, 1)
	assert.Equal(t, "2gamma", r.Limits.Violations[0].Parameter)
	assert.Zero(t, r.SCF.Family)
	assert.Contains(t, r.Message(), "FAIL - Dimensional")
}

func TestEvaluateTJoint(t *testing.T) {
	j := Joint{
		Kind:  joint.T,
		Chord: generate(t, section.CHS, 0.4064, 0.4064, 0.0125),
		Brace: generate(t, section.CHS, 0.2191, 0.2191, 0.008),
		T:     joint.TLayout{ChordLength: 6, Divisions: 3, Angle: math.Pi / 2, Fixity: 0.7},
	}
	cases := []stress.LoadCase{{ID: "T1", Forces: stress.Forces{PBrace: 100e3, MipBrace: 5e3, MopBrace: 2e3}}}

	r, err := Evaluate(j, cases, options(500))
	require.NoError(t, err)
	assert.Equal(t, scf.TCHS, r.SCF.Family)
	assert.Equal(t, stress.HotSpot, r.GoverningCase().Result.Strategy)
	assert.True(t, r.Pass)

	j.Chord = generate(t, section.SHS, 0.4, 0.4, 0.0125)
	j.Brace = generate(t, section.SHS, 0.2, 0.2, 0.008)
	_, err = Evaluate(j, cases, options(500))
	var unimpl *cidect.UnimplementedFormulaError
	assert.True(t, errors.As(err, &unimpl), "got %v", err)
}

func TestEvaluateErrors(t *testing.T) {
	var inputErr *cidect.InputError

	_, err := Evaluate(kJoint(t, 0.016, 0), nil, options(500))
	assert.True(t, errors.As(err, &inputErr))

	j := kJoint(t, 0.016, 0)
	j.K.Divisions = 0
	_, err = Evaluate(j, serviceCase, options(500))
	assert.True(t, errors.As(err, &inputErr))

	_, err = Evaluate(kJoint(t, 0.016, 0), serviceCase, options(0))
	assert.True(t, errors.As(err, &inputErr))

	_, err = Evaluate(Joint{}, serviceCase, options(500))
	assert.Error(t, err)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	j := kJoint(t, 0.016, -0.15)
	a, err := Evaluate(j, serviceCase, options(500))
	require.NoError(t, err)
	b, err := Evaluate(j, serviceCase, options(500))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, scf.KOverlapRHS, a.SCF.Family)
}
