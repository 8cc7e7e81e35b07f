package stress

import (
	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
)

// Magnification holds the factors for secondary bending moments in
// lattice girders applied to nominal axial stresses
type Magnification struct {
	Chord         float64
	BraceGap      float64
	BraceOverlap  float64
	BraceCircular float64
	TJoint        float64 // overrides both factors of a T-joint when positive
}

// DefaultMagnification returns the CIDECT-8 factors
func DefaultMagnification() Magnification {
	return Magnification{
		Chord:         cidect.MFChord,
		BraceGap:      cidect.MFBraceGap,
		BraceOverlap:  cidect.MFBraceOverlap,
		BraceCircular: cidect.MFBraceCircular,
	}
}

// Validate requires every factor to be positive. TJoint may be zero,
// meaning no override.
func (m Magnification) Validate() error {
	if m.TJoint < 0 {
		return cidect.NewInputError("magnification T-joint", "must not be negative, got %g", m.TJoint)
	}
	factors := []struct {
		name  string
		value float64
	}{
		{"chord", m.Chord},
		{"brace gap", m.BraceGap},
		{"brace overlap", m.BraceOverlap},
		{"brace circular", m.BraceCircular},
	}
	for _, f := range factors {
		if !(f.value > 0) {
			return cidect.NewInputError("magnification "+f.name, "must be positive, got %g", f.value)
		}
	}
	return nil
}

// For returns the chord and brace factors for a joint. T-joints follow
// the same rule as K-joints unless TJoint is set.
func (m Magnification) For(g *joint.Geometry) (chord, brace float64) {
	switch {
	case g.Kind == joint.T && m.TJoint > 0:
		return m.TJoint, m.TJoint
	case g.Chord.Class.Circular():
		return m.Chord, m.BraceCircular
	case g.Classification == joint.Gap:
		return m.Chord, m.BraceGap
	default:
		return m.Chord, m.BraceOverlap
	}
}
