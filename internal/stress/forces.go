package stress

import (
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

// Forces are the member forces acting at the joint plus the manually
// selected out-of-plane SCFs. Forces in N, moments in N·m.
type Forces struct {
	PChord   float64 // axial chord force
	PBrace   float64 // axial brace force
	MipChord float64 // in-plane chord moment
	MopChord float64 // out-of-plane chord moment
	MopBrace float64 // out-of-plane brace moment
	MipBrace float64 // in-plane brace moment, T-joints only

	SCFChordOP float64
	SCFBraceOP float64
}

// Validate rejects non-finite forces and negative out-of-plane SCFs
func (f Forces) Validate() error {
	values := []struct {
		name  string
		value float64
	}{
		{"P_chord", f.PChord},
		{"P_brace", f.PBrace},
		{"M_ip_chord", f.MipChord},
		{"M_op_chord", f.MopChord},
		{"M_op_brace", f.MopBrace},
		{"M_ip_brace", f.MipBrace},
		{"SCF_ch_op", f.SCFChordOP},
		{"SCF_br_op", f.SCFBraceOP},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return cidect.NewInputError(v.name, "must be finite, got %g", v.value)
		}
	}
	if f.SCFChordOP < 0 || f.SCFBraceOP < 0 {
		return cidect.NewInputError("SCF_op", "out-of-plane SCFs must not be negative")
	}
	return nil
}

// Scale returns the forces multiplied by k. The SCFs are left unchanged.
func (f Forces) Scale(k float64) Forces {
	f.PChord *= k
	f.PBrace *= k
	f.MipChord *= k
	f.MopChord *= k
	f.MopBrace *= k
	f.MipBrace *= k
	return f
}

// Add returns the sum of two force sets. The out-of-plane SCFs take the
// larger of the two.
func (f Forces) Add(o Forces) Forces {
	f.PChord += o.PChord
	f.PBrace += o.PBrace
	f.MipChord += o.MipChord
	f.MopChord += o.MopChord
	f.MopBrace += o.MopBrace
	f.MipBrace += o.MipBrace
	f.SCFChordOP = math.Max(f.SCFChordOP, o.SCFChordOP)
	f.SCFBraceOP = math.Max(f.SCFBraceOP, o.SCFBraceOP)
	return f
}
