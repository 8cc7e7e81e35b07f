package joint

import (
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

// KLayout is the truss layout around a K-joint. Lengths in metres.
type KLayout struct {
	Eccentricity float64 // e - chord centreline to brace intersection, negative towards the chord
	ChordSpacing float64 // s - distance between top and bottom chord centrelines
	ChordLength  float64 // L - chord span
	Divisions    int     // n - number of panels along the chord
}

// Validate rejects layouts that cannot produce a brace angle
func (l KLayout) Validate() error {
	if l.Divisions < 1 {
		return cidect.NewInputError("divisions", "must be at least 1, got %d", l.Divisions)
	}
	if !(l.ChordLength > 0) || math.IsInf(l.ChordLength, 0) {
		return cidect.NewInputError("chord length", "must be positive, got %g", l.ChordLength)
	}
	if !(l.ChordSpacing > 0) || math.IsInf(l.ChordSpacing, 0) {
		return cidect.NewInputError("chord spacing", "must be positive, got %g", l.ChordSpacing)
	}
	if math.IsNaN(l.Eccentricity) || math.IsInf(l.Eccentricity, 0) {
		return cidect.NewInputError("eccentricity", "must be finite, got %g", l.Eccentricity)
	}
	return nil
}

// PanelLength is L/n, the projection of one brace on the chord
func (l KLayout) PanelLength() float64 {
	return l.ChordLength / float64(l.Divisions)
}

// TLayout is the layout around a T-joint
type TLayout struct {
	ChordLength float64 // L - chord span (m)
	Divisions   int     // n - number of panels along the chord
	Angle       float64 // θ - brace to chord angle (rad)
	Fixity      float64 // C - chord end fixity, 0 pinned to 1 fixed
}

// Validate rejects malformed T-joint layouts
func (l TLayout) Validate() error {
	if l.Divisions < 1 {
		return cidect.NewInputError("divisions", "must be at least 1, got %d", l.Divisions)
	}
	if !(l.ChordLength > 0) || math.IsInf(l.ChordLength, 0) {
		return cidect.NewInputError("chord length", "must be positive, got %g", l.ChordLength)
	}
	if !(l.Fixity >= 0 && l.Fixity <= 1) {
		return cidect.NewInputError("fixity", "must be within [0, 1], got %g", l.Fixity)
	}
	if math.IsNaN(l.Angle) {
		return cidect.NewInputError("angle", "must be a number")
	}
	return nil
}
