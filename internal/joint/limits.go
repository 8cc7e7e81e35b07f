package joint

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/section"
)

// Violation is one dimensionless parameter outside its validity range
type Violation struct {
	Parameter string
	Value     float64
	Range     cidect.Range
}

func (v Violation) String() string {
	return fmt.Sprintf("%s = %.3f outside [%g, %g]", v.Parameter, v.Value, v.Range.Min, v.Range.Max)
}

// LimitsResult is the outcome of the dimensional limits check
type LimitsResult struct {
	Limits     cidect.DimensionalLimits
	Pass       bool
	Violations []Violation
}

// Message summarises the check for display
func (r LimitsResult) Message() string {
	if r.Pass {
		return "PASS - Dimensions are within allowable limits"
	}
	parts := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		parts[i] = v.String()
	}
	return "FAIL - Dimensional Parameters exceeded: " + strings.Join(parts, "; ")
}

// LimitsFor selects the parameter ranges for a joint kind and chord class
func LimitsFor(kind Kind, chord section.Class) cidect.DimensionalLimits {
	switch {
	case kind == T && chord.Circular():
		return cidect.TCircularLimits
	case kind == T:
		return cidect.TLimits
	case chord.Circular():
		return cidect.KCircularLimits
	}
	return cidect.KRectangularLimits
}

// CheckLimits validates β, 2γ, τ and, for T-joints, α
func CheckLimits(g *Geometry) LimitsResult {
	limits := LimitsFor(g.Kind, g.Chord.Class)
	res := LimitsResult{Limits: limits}

	check := func(name string, value float64, r cidect.Range) {
		if !r.Contains(value) {
			res.Violations = append(res.Violations, Violation{Parameter: name, Value: value, Range: r})
		}
	}
	check("beta", g.Beta, limits.Beta)
	check("2gamma", g.TwoGamma, limits.TwoGamma)
	check("tau", g.Tau, limits.Tau)
	if limits.Alpha != nil {
		check("alpha", g.Alpha, *limits.Alpha)
	}

	res.Pass = len(res.Violations) == 0
	return res
}
