package cidect

import "math"

// CIDECT Design Guide 8 validity limits

const (
	// K-joint brace angle, exclusive bounds (degrees)
	KAngleMin = 30.0
	KAngleMax = 60.0

	// T-joint brace angle, inclusive bounds (degrees)
	TAngleMin = 30.0
	TAngleMax = 90.0

	// Eccentricity ratio e/d0, inclusive bounds
	EccentricityMin = -0.55
	EccentricityMax = 0.25

	// Overlap fraction Ov for SHS/RHS overlap joints, inclusive bounds
	OverlapMin = 0.5
	OverlapMax = 1.0

	// Minimum gap g' expressed as a multiple of τ (SHS/RHS gap joints)
	GapTauFactor = 2.0

	// Floor applied to every SHS/RHS K-joint SCF and to SCF_chax, SCF_chch of CHS K-joints
	SCFFloor = 2.0

	// Default chord end fixity for T-joints
	DefaultFixity = 0.7

	// Short chord correction factors F2, F3 only apply below this α
	ShortChordAlpha = 12.0
)

// Magnification factors for secondary bending moments in lattice girders
const (
	MFChord         = 1.5
	MFBraceGap      = 1.5
	MFBraceOverlap  = 1.3
	MFBraceCircular = 1.3
)

// Range is an inclusive validity interval for a dimensionless parameter
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DimensionalLimits holds the parameter ranges for one joint family.
// Alpha is nil when the family has no chord length restriction.
type DimensionalLimits struct {
	Beta     Range
	TwoGamma Range
	Tau      Range
	Alpha    *Range
}

// KCircularLimits applies to K-joints with CHS chords
var KCircularLimits = DimensionalLimits{
	Beta:     Range{0.3, 0.6},
	TwoGamma: Range{24, 60},
	Tau:      Range{0.25, 1.0},
}

// KRectangularLimits applies to K-joints with SHS/RHS chords
var KRectangularLimits = DimensionalLimits{
	Beta:     Range{0.35, 1.0},
	TwoGamma: Range{10, 35},
	Tau:      Range{0.25, 1.0},
}

// TCircularLimits applies to T-joints with CHS chords
var TCircularLimits = DimensionalLimits{
	Beta:     Range{0.3, 0.6},
	TwoGamma: Range{24, 60},
	Tau:      Range{0.25, 1.0},
	Alpha:    &Range{4, 40},
}

// TLimits applies to T-joints with SHS/RHS chords
var TLimits = DimensionalLimits{
	Beta:     Range{0.2, 1.0},
	TwoGamma: Range{15, 64},
	Tau:      Range{0.2, 1.0},
	Alpha:    &Range{4, 40},
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
