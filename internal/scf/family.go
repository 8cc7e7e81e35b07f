package scf

import (
	"fmt"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
)

// Family identifies one mutually exclusive set of SCF formulas
type Family int

const (
	KGapRHS Family = iota + 1
	KOverlapRHS
	KCHS
	TCHS
)

func (f Family) String() string {
	switch f {
	case KGapRHS:
		return "K_GAP_RHS"
	case KOverlapRHS:
		return "K_OVERLAP_RHS"
	case KCHS:
		return "K_CHS"
	case TCHS:
		return "T_CHS"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Resolve selects the formula family for a joint. It is called once per
// evaluation and the result drives a single dispatch in Compute.
func Resolve(kind joint.Kind, chord section.Class, c joint.Classification) (Family, error) {
	switch kind {
	case joint.T:
		if chord.Circular() {
			return TCHS, nil
		}
		return 0, &cidect.UnimplementedFormulaError{Joint: kind.String(), Section: chord.String()}
	case joint.K:
		switch {
		case chord.Circular() && c == joint.Gap:
			return KCHS, nil
		case chord.Circular() && c == joint.Overlap:
			return 0, &cidect.ConsistencyError{Msg: "overlapping braces on a CHS chord reached SCF selection"}
		case c == joint.Gap:
			return KGapRHS, nil
		case c == joint.Overlap:
			return KOverlapRHS, nil
		}
		return 0, &cidect.ConsistencyError{Msg: fmt.Sprintf("K-joint classification %v is neither GAP nor OVERLAP", c)}
	}
	return 0, &cidect.ConsistencyError{Msg: fmt.Sprintf("unknown joint kind %v", kind)}
}
