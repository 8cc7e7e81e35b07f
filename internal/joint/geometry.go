package joint

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/section"
)

// Kind is the joint type
type Kind int

const (
	K Kind = iota + 1 // two inclined braces
	T                 // one brace
)

func (k Kind) String() string {
	switch k {
	case K:
		return "K"
	case T:
		return "T"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Classification tells whether the braces of a K-joint leave a gap or overlap
type Classification int

const (
	Gap Classification = iota + 1
	Overlap
)

func (c Classification) String() string {
	switch c {
	case Gap:
		return "GAP"
	case Overlap:
		return "OVERLAP"
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// Checks holds the independent geometric validity checks
type Checks struct {
	AngleOK        bool
	EccentricityOK bool
	GapOverlapOK   bool
}

// Geometry is the derived joint geometry. It is computed once by NewK or
// NewT and never mutated afterwards.
type Geometry struct {
	Kind  Kind
	Chord section.Properties
	Brace section.Properties

	Theta float64 // brace to chord angle (rad)

	// Dimensionless parameters
	Beta     float64 // b1/b0
	TwoGamma float64 // b0/t0
	Tau      float64 // t1/t0

	// K-joint intersection
	Eccentricity   float64 // e (m)
	P              float64 // projected brace width on the chord (m)
	X              float64 // projection of the intersection (m)
	Q              float64 // overlap projection, negative for a gap (m)
	GPrime         float64 // g' = -q/t0
	Ov             float64 // overlap fraction q/p
	Classification Classification

	// T-joint chord parameters
	Alpha      float64 // α = 4(L/n)/b0
	Fixity     float64 // C
	C1, C2, C3 float64

	Checks  Checks
	Message string
}

// Valid reports whether all geometric checks pass
func (g *Geometry) Valid() bool {
	return g.Checks.AngleOK && g.Checks.EccentricityOK && g.Checks.GapOverlapOK
}

// ThetaDegrees returns θ in degrees
func (g *Geometry) ThetaDegrees() float64 {
	return cidect.Degrees(g.Theta)
}

// Gamma returns γ = 2γ/2
func (g *Geometry) Gamma() float64 {
	return g.TwoGamma / 2
}

// NewK derives the geometry of a K-joint
func NewK(chord, brace section.Properties, layout KLayout) (*Geometry, error) {
	if err := checkMembers(chord, brace); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if chord.Class.Circular() && layout.Eccentricity != 0 {
		return nil, cidect.NewInputError("eccentricity", "must be zero for CHS chords, got %g m", layout.Eccentricity)
	}

	e := layout.Eccentricity
	theta := math.Atan((layout.ChordSpacing + 2*e) / layout.PanelLength())
	if !(theta > 0 && theta < math.Pi/2) {
		return nil, &cidect.GeometryError{
			Quantity: "theta",
			Value:    theta,
			Msg:      "brace angle must lie strictly between 0 and 90 degrees (check s + 2e > 0)",
		}
	}

	g := &Geometry{
		Kind:         K,
		Chord:        chord,
		Brace:        brace,
		Theta:        theta,
		Eccentricity: e,
	}
	g.setRatios()

	g.P = brace.Depth / math.Sin(theta)
	g.X = (0.5*chord.Depth + e) / math.Tan(theta)
	g.Q = g.P - 2*g.X
	g.GPrime = -g.Q / chord.Thickness
	g.Ov = g.Q / g.P

	var msg string
	g.Checks.AngleOK = cidect.KAngleMin < g.ThetaDegrees() && g.ThetaDegrees() < cidect.KAngleMax
	if g.Checks.AngleOK {
		msg = "Angle OK"
	} else {
		msg = fmt.Sprintf("Angle NOT OK. Maintain %.0f to %.0fdeg", cidect.KAngleMin, cidect.KAngleMax)
	}

	ratio := e / chord.Depth
	g.Checks.EccentricityOK = cidect.EccentricityMin <= ratio && ratio <= cidect.EccentricityMax
	if g.Checks.EccentricityOK {
		msg += " | Eccentricity OK"
	} else {
		msg += fmt.Sprintf(" | Eccentricity NOT OK. Maintain %.0fmm<=e<=%.0fmm",
			cidect.EccentricityMin*chord.Depth*1000, cidect.EccentricityMax*chord.Depth*1000)
	}

	var ok bool
	var note string
	g.Classification, ok, note = Classify(chord.Class.Circular(), g.Ov, g.GPrime, g.Tau)
	g.Checks.GapOverlapOK = ok
	g.Message = msg + " | " + note

	return g, nil
}

// Classify applies the gap/overlap rule in its fixed precedence and returns
// the classification, whether the gap or overlap is acceptable, and a note.
func Classify(circular bool, ov, gPrime, tau float64) (Classification, bool, string) {
	switch {
	case 0 <= gPrime && gPrime < cidect.GapTauFactor*tau && !circular:
		return Gap, false, "Gap NOT OK. Increase so g'>= 2 * tau"
	case ov <= 0:
		return Gap, true, "Gap OK"
	case (ov < cidect.OverlapMin || ov > cidect.OverlapMax) && !circular:
		return Overlap, false, "Overlap NOT OK. Change to 50% to 100%"
	case 0 < ov && ov <= cidect.OverlapMax && !circular:
		return Overlap, true, "Overlap OK"
	default:
		return Overlap, false, "Overlap NOT OK for CHS. Make gap joint"
	}
}

// NewT derives the geometry of a T-joint
func NewT(chord, brace section.Properties, layout TLayout) (*Geometry, error) {
	if err := checkMembers(chord, brace); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if !(layout.Angle > 0 && layout.Angle <= math.Pi/2) {
		return nil, &cidect.GeometryError{
			Quantity: "theta",
			Value:    layout.Angle,
			Msg:      "T-joint brace angle must lie in (0, 90] degrees",
		}
	}

	g := &Geometry{
		Kind:           T,
		Chord:          chord,
		Brace:          brace,
		Theta:          layout.Angle,
		Classification: Gap,
		Fixity:         layout.Fixity,
	}
	g.setRatios()

	g.Alpha = 4 * (layout.ChordLength / float64(layout.Divisions)) / chord.Width
	g.C1 = 2 * (layout.Fixity - 0.5)
	g.C2 = layout.Fixity / 2
	g.C3 = layout.Fixity / 5

	// T-joints carry no eccentricity and have a single brace
	g.Checks.EccentricityOK = true
	g.Checks.GapOverlapOK = true

	deg := g.ThetaDegrees()
	g.Checks.AngleOK = cidect.TAngleMin <= deg && deg <= cidect.TAngleMax
	if g.Checks.AngleOK {
		g.Message = "Angle OK"
	} else {
		g.Message = fmt.Sprintf("Angle NOT OK. Maintain %.0f to %.0fdeg", cidect.TAngleMin, cidect.TAngleMax)
	}

	return g, nil
}

func (g *Geometry) setRatios() {
	g.Beta = g.Brace.Width / g.Chord.Width
	g.TwoGamma = g.Chord.Width / g.Chord.Thickness
	g.Tau = g.Brace.Thickness / g.Chord.Thickness
}

// checkMembers validates both sections and their class pairing
func checkMembers(chord, brace section.Properties) error {
	if err := chord.Validate(); err != nil {
		return fmt.Errorf("chord: %w", err)
	}
	if err := brace.Validate(); err != nil {
		return fmt.Errorf("brace: %w", err)
	}
	if chord.Class.Circular() != brace.Class.Circular() {
		return cidect.NewInputError("brace class", "%s brace cannot be welded to a %s chord", brace.Class, chord.Class)
	}
	return nil
}
