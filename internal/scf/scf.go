// Package scf computes stress concentration factors for CIDECT-8 joints.
package scf

import (
	"github.com/alexiusacademia/gohsjoint/internal/joint"
)

// KSet holds the K-joint SCFs for the balanced (chax, bax) and
// unbalanced (chch) load conditions.
type KSet struct {
	Chax float64 // chord, balanced axial brace load
	Bax  float64 // brace, balanced axial brace load
	Chch float64 // chord, unbalanced chord load

	// CHS chart intermediates, zero for SHS/RHS chords
	Ochax        float64
	Obax         float64
	BaxMin       float64
	Extrapolated bool // β or θ fell outside the chart grid
}

// TSet holds the T-joint SCFs at crown and saddle locations
type TSet struct {
	ChordSaddleAx  float64
	ChordCrownAx   float64
	BraceSaddleAx  float64
	BraceCrownAx   float64
	ChordCrownIPB  float64
	BraceCrownIPB  float64
	ChordSaddleOPB float64
	BraceSaddleOPB float64

	// short chord corrections, 1 when α >= 12
	F2 float64
	F3 float64
}

// Set is the SCF result. Only the member matching Family is populated.
type Set struct {
	Family Family
	K      KSet
	T      TSet
}

// Compute resolves the formula family for g and evaluates it
func Compute(g *joint.Geometry) (Set, error) {
	family, err := Resolve(g.Kind, g.Chord.Class, g.Classification)
	if err != nil {
		return Set{}, err
	}

	set := Set{Family: family}
	switch family {
	case KCHS:
		set.K, err = kCircular(g.Beta, g.TwoGamma, g.Tau, g.Theta)
	case KGapRHS:
		set.K, err = kGap(g.Beta, g.TwoGamma, g.Tau, g.GPrime, g.Theta)
	case KOverlapRHS:
		set.K, err = kOverlap(g.Beta, g.TwoGamma, g.Tau, g.Ov, g.Theta)
	case TCHS:
		set.T, err = tCircular(g.Beta, g.Gamma(), g.Tau, g.Alpha, g.Theta, g.C1, g.C2, g.C3)
	}
	if err != nil {
		return Set{}, err
	}
	return set, nil
}
