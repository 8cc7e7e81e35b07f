package stress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
)

// LoadCase is one named set of forces acting on the joint
type LoadCase struct {
	ID          string
	Description string
	Forces      Forces
}

// CaseResult pairs a load case with its superposition result
type CaseResult struct {
	Case   LoadCase
	Result Result
}

// Combination is a factored sum of primary load cases, e.g.
// "dead + 0.5 wind"
type Combination struct {
	ID          string
	Description string
	Factors     map[string]float64 // primary case ID -> factor
}

// Combine expands combinations into load cases. Factors are applied in
// primary case ID order so the sums do not depend on map iteration.
func Combine(primaries []LoadCase, combos []Combination) ([]LoadCase, error) {
	byID := make(map[string]Forces, len(primaries))
	for _, p := range primaries {
		if _, dup := byID[p.ID]; dup {
			return nil, cidect.NewInputError("load cases", "duplicate load case %q", p.ID)
		}
		byID[p.ID] = p.Forces
	}

	out := make([]LoadCase, 0, len(combos))
	for _, c := range combos {
		if len(c.Factors) == 0 {
			return nil, cidect.NewInputError("combination "+c.ID, "no factors given")
		}
		ids := make([]string, 0, len(c.Factors))
		for id := range c.Factors {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var sum Forces
		terms := make([]string, 0, len(ids))
		for _, id := range ids {
			f, ok := byID[id]
			if !ok {
				return nil, cidect.NewInputError("combination "+c.ID, "unknown load case %q", id)
			}
			k := c.Factors[id]
			sum = sum.Add(f.Scale(k))
			terms = append(terms, fmt.Sprintf("%g %s", k, id))
		}

		desc := c.Description
		if desc == "" {
			desc = strings.Join(terms, " + ")
		}
		out = append(out, LoadCase{ID: c.ID, Description: desc, Forces: sum})
	}
	return out, nil
}

// Governing evaluates every load case and returns all results together
// with the index of the one with the highest utilisation
func Governing(g *joint.Geometry, set scf.Set, cases []LoadCase, opts Options) ([]CaseResult, int, error) {
	results := make([]CaseResult, 0, len(cases))
	governing := -1
	var maxUtil float64

	for i, lc := range cases {
		res, err := Superpose(g, set, lc.Forces, opts)
		if err != nil {
			return nil, -1, fmt.Errorf("load case %s: %w", lc.ID, err)
		}
		results = append(results, CaseResult{Case: lc, Result: res})
		if u := res.Utilisation(); governing < 0 || u > maxUtil {
			maxUtil = u
			governing = i
		}
	}

	return results, governing, nil
}
