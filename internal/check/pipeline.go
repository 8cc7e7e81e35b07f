// Package check runs the joint compliance pipeline: geometry, dimensional
// limits, SCFs and stress superposition, stopping at the first failing gate.
package check

import (
	"fmt"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
)

// Gate is a pipeline stage that can stop the evaluation
type Gate string

const (
	GateNone     Gate = ""
	GateGeometry Gate = "geometry"
	GateLimits   Gate = "limits"
	GateStress   Gate = "stress"
)

// Joint is a complete joint definition in SI units
type Joint struct {
	Kind  joint.Kind
	Chord section.Properties
	Brace section.Properties

	K joint.KLayout // used when Kind is K
	T joint.TLayout // used when Kind is T
}

// Geometry derives the joint geometry for the joint kind
func (j Joint) Geometry() (*joint.Geometry, error) {
	switch j.Kind {
	case joint.K:
		return joint.NewK(j.Chord, j.Brace, j.K)
	case joint.T:
		return joint.NewT(j.Chord, j.Brace, j.T)
	}
	return nil, cidect.NewInputError("joint", "unknown joint kind %v", j.Kind)
}

// Report is the outcome of one evaluation. Fields after the failed gate are
// left at their zero value.
type Report struct {
	Geometry *joint.Geometry
	Limits   joint.LimitsResult
	SCF      scf.Set

	Cases     []stress.CaseResult
	Governing int // index into Cases, -1 when stresses were not evaluated

	FailedGate Gate
	Pass       bool
}

// GoverningCase returns the governing load case result, or nil
func (r *Report) GoverningCase() *stress.CaseResult {
	if r.Governing < 0 || r.Governing >= len(r.Cases) {
		return nil
	}
	return &r.Cases[r.Governing]
}

// Message summarises the verdict for display
func (r *Report) Message() string {
	switch r.FailedGate {
	case GateGeometry:
		return "FAIL - " + r.Geometry.Message
	case GateLimits:
		return r.Limits.Message()
	case GateStress:
		gc := r.GoverningCase()
		return fmt.Sprintf("FAIL - Stresses exceed allowable limits (load case %s)", gc.Case.ID)
	}
	return "PASS - Stresses are within allowable limits"
}

// Evaluate runs the gate sequence for a joint and its load cases.
// A failed gate is reported in the Report, not as an error; errors are
// reserved for malformed input and undefined formulas.
func Evaluate(j Joint, cases []stress.LoadCase, opts stress.Options) (*Report, error) {
	if len(cases) == 0 {
		return nil, cidect.NewInputError("load cases", "at least one load case is required")
	}

	g, err := j.Geometry()
	if err != nil {
		return nil, err
	}
	r := &Report{Geometry: g, Governing: -1}
	if !g.Valid() {
		r.FailedGate = GateGeometry
		return r, nil
	}

	r.Limits = joint.CheckLimits(g)
	if !r.Limits.Pass {
		r.FailedGate = GateLimits
		return r, nil
	}

	r.SCF, err = scf.Compute(g)
	if err != nil {
		return nil, err
	}

	r.Cases, r.Governing, err = stress.Governing(g, r.SCF, cases, opts)
	if err != nil {
		return nil, err
	}

	r.Pass = true
	for _, c := range r.Cases {
		if !c.Result.Pass {
			r.Pass = false
			r.FailedGate = GateStress
		}
	}
	return r, nil
}
