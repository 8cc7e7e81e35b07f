// Package stress superposes nominal member stresses with SCFs and checks
// the hot-spot stresses against the fatigue limit.
package stress

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
)

// Strategy names a stress decomposition
type Strategy string

const (
	// Combined adds the LC1 brace and LC2 chord stresses (K-joints)
	Combined Strategy = "combined"
	// Components sums every force contribution separately (K-joints)
	Components Strategy = "components"
	// HotSpot takes the worse of crown and saddle (T-joints)
	HotSpot Strategy = "hotspot"
)

// ParseStrategy accepts a strategy name in any case. Empty selects the
// default for the joint kind in Superpose.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "", Combined, Components, HotSpot:
		return st, nil
	}
	return "", cidect.NewInputError("strategy", "unknown strategy %q (want combined, components or hotspot)", s)
}

// DefaultStrategy returns the strategy used for a joint kind when none is set
func DefaultStrategy(kind joint.Kind) Strategy {
	if kind == joint.T {
		return HotSpot
	}
	return Combined
}

// Options configure a superposition
type Options struct {
	SigmaMax      float64 // allowable stress (Pa)
	Strategy      Strategy
	Magnification Magnification
}

// Member identifies which member a stress component belongs to
type Member string

const (
	Chord Member = "chord"
	Brace Member = "brace"
)

// Component is one named partial stress (Pa)
type Component struct {
	Member Member
	Name   string
	Value  float64
}

// Result is the outcome of a superposition
type Result struct {
	Strategy   Strategy
	Components []Component

	ChordMF float64
	BraceMF float64

	Chord    float64 // σ_chord (Pa)
	Brace    float64 // σ_brace (Pa)
	SigmaMax float64

	Pass    bool
	Message string
}

// Utilisation is the larger member stress over the allowable stress
func (r Result) Utilisation() float64 {
	return math.Max(r.Chord, r.Brace) / r.SigmaMax
}

// Superpose computes the chord and brace stresses for one set of forces
func Superpose(g *joint.Geometry, set scf.Set, f Forces, opts Options) (Result, error) {
	if !(opts.SigmaMax > 0) {
		return Result{}, cidect.NewInputError("sigma max", "must be positive, got %g", opts.SigmaMax)
	}
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if err := opts.Magnification.Validate(); err != nil {
		return Result{}, err
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = DefaultStrategy(g.Kind)
	}
	if (g.Kind == joint.T) != (strategy == HotSpot) {
		return Result{}, cidect.NewInputError("strategy", "%s strategy does not apply to %s-joints", strategy, g.Kind)
	}
	if (g.Kind == joint.T) != (set.Family == scf.TCHS) {
		return Result{}, &cidect.ConsistencyError{Msg: fmt.Sprintf("%s SCF set supplied for a %s-joint", set.Family, g.Kind)}
	}

	res := Result{Strategy: strategy, SigmaMax: opts.SigmaMax}
	res.ChordMF, res.BraceMF = opts.Magnification.For(g)

	switch strategy {
	case Combined:
		res.combined(g, set.K, f)
	case Components:
		res.components(g, set.K, f)
	case HotSpot:
		res.hotSpot(g, set.T, f)
	}

	res.Pass = res.Chord <= res.SigmaMax && res.Brace <= res.SigmaMax
	if res.Pass {
		res.Message = "PASS - Hot-spot stresses within limit"
	} else {
		res.Message = fmt.Sprintf("FAIL - Hot-spot stress exceeds %.1f MPa", res.SigmaMax/1e6)
	}
	return res, nil
}

func (r *Result) add(m Member, name string, v float64) {
	r.Components = append(r.Components, Component{Member: m, Name: name, Value: v})
	if m == Chord {
		r.Chord += v
	} else {
		r.Brace += v
	}
}

// combined superposes the balanced brace load (LC1) with the unbalanced
// chord load (LC2)
func (r *Result) combined(g *joint.Geometry, k scf.KSet, f Forces) {
	c, b := g.Chord, g.Brace

	braceAx := r.BraceMF * f.PBrace / b.Area
	chordLC2 := f.PChord - f.PBrace*math.Cos(g.Theta)
	chordAx := r.ChordMF*chordLC2/c.Area + f.MipChord*(c.Depth/2)/c.Ix

	r.add(Chord, "SCF_chax x sigma_brace,ax", k.Chax*braceAx)
	r.add(Chord, "SCF_chch x sigma_chord,ax", k.Chch*chordAx)
	r.add(Brace, "SCF_bax x sigma_brace,ax", k.Bax*braceAx)
}

// components sums the contribution of every force separately
func (r *Result) components(g *joint.Geometry, k scf.KSet, f Forces) {
	c, b := g.Chord, g.Brace

	r.add(Chord, "chord 1P", k.Chax*r.BraceMF*f.PBrace/b.Area)
	r.add(Chord, "chord 2P", k.Chch*r.ChordMF*(f.PChord-f.PBrace*math.Cos(g.Theta))/c.Area)
	r.add(Chord, "chord Mip", k.Chch*f.MipChord*(c.Depth/2)/c.Ix)
	r.add(Chord, "chord Mop", f.SCFChordOP*f.MopChord*(b.Width/2)/c.Iy)
	r.add(Brace, "brace 1P", k.Bax*r.BraceMF*f.PBrace/b.Area)
	r.add(Brace, "brace Mop", f.SCFBraceOP*f.MopBrace*(b.Width/2)/b.Iy)
}

// hotSpot takes the worse of the crown and saddle locations for each member
func (r *Result) hotSpot(g *joint.Geometry, t scf.TSet, f Forces) {
	b := g.Brace

	ax := math.Abs(r.BraceMF * f.PBrace / b.Area)
	ipb := math.Abs(f.MipBrace * (b.Depth / 2) / b.Ix)
	opb := math.Abs(f.MopBrace * (b.Width / 2) / b.Iy)

	chordCrown := t.ChordCrownAx*ax + t.ChordCrownIPB*ipb
	chordSaddle := t.ChordSaddleAx*ax + t.ChordSaddleOPB*opb
	braceCrown := t.BraceCrownAx*ax + t.BraceCrownIPB*ipb
	braceSaddle := t.BraceSaddleAx*ax + t.BraceSaddleOPB*opb

	if chordCrown >= chordSaddle {
		r.add(Chord, "chord crown ax", t.ChordCrownAx*ax)
		r.add(Chord, "chord crown ipb", t.ChordCrownIPB*ipb)
	} else {
		r.add(Chord, "chord saddle ax", t.ChordSaddleAx*ax)
		r.add(Chord, "chord saddle opb", t.ChordSaddleOPB*opb)
	}
	if braceCrown >= braceSaddle {
		r.add(Brace, "brace crown ax", t.BraceCrownAx*ax)
		r.add(Brace, "brace crown ipb", t.BraceCrownIPB*ipb)
	} else {
		r.add(Brace, "brace saddle ax", t.BraceSaddleAx*ax)
		r.add(Brace, "brace saddle opb", t.BraceSaddleOPB*opb)
	}
}
