package section

import (
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

// Generate computes area and second moments of area for a hollow section
// from its nominal dimensions (metres).
//
// CHS sections are exact annuli. SHS/RHS sections have an outer corner
// radius of 2t and an inner radius of t, which is what cold-formed sections
// typically use.
func Generate(class Class, width, depth, thickness float64) (Properties, error) {
	if class == CHS {
		width = depth
	}
	if !(width > 0) || !(depth > 0) || !(thickness > 0) {
		return Properties{}, cidect.NewInputError("dimensions", "must be positive, got b=%g d=%g t=%g", width, depth, thickness)
	}
	if 2*thickness >= width || 2*thickness >= depth {
		return Properties{}, cidect.NewInputError("thickness", "wall %g m does not fit in %g x %g m section", thickness, width, depth)
	}

	var area, ix, iy float64
	switch class {
	case CHS:
		di := depth - 2*thickness
		area = math.Pi / 4 * (depth*depth - di*di)
		ix = math.Pi / 64 * (math.Pow(depth, 4) - math.Pow(di, 4))
		iy = ix
	case SHS, RHS:
		ro, ri := 2*thickness, thickness
		ao, ixo, iyo := roundedRectangle(width, depth, ro)
		ai, ixi, iyi := roundedRectangle(width-2*thickness, depth-2*thickness, ri)
		area = ao - ai
		ix = ixo - ixi
		iy = iyo - iyi
	default:
		return Properties{}, cidect.NewInputError("section class", "unknown class %d", int(class))
	}

	return New(class, width, depth, thickness, area, ix, iy)
}

// roundedRectangle returns area and centroidal second moments of a solid
// b x h rectangle whose four corners are rounded with radius r.
// Ix is about the axis parallel to b.
func roundedRectangle(b, h, r float64) (area, ix, iy float64) {
	area = b * h
	ix = b * h * h * h / 12
	iy = h * b * b * b / 12
	if r <= 0 {
		return area, ix, iy
	}
	r = math.Min(r, math.Min(b, h)/2)

	a, c, iEdge := spandrel(r)
	iOwn := iEdge - a*c*c

	// four corner spandrels removed, parallel axis to each centroid
	yx := h/2 - c
	yy := b/2 - c
	area -= 4 * a
	ix -= 4 * (iOwn + a*yx*yx)
	iy -= 4 * (iOwn + a*yy*yy)
	return area, ix, iy
}

// spandrel describes the region between an r x r square corner and the
// quarter circle of radius r rounding it. It returns the area, the distance
// from the outer edge to the centroid, and the second moment about that edge.
func spandrel(r float64) (area, c, iEdge float64) {
	aq := math.Pi * r * r / 4
	arm := 4 * r / (3 * math.Pi)
	yq := r - arm
	iq := math.Pi*math.Pow(r, 4)/16 - aq*arm*arm + aq*yq*yq

	area = r*r - aq
	c = (r*r*r/2 - aq*yq) / area
	iEdge = math.Pow(r, 4)/3 - iq
	return area, c, iEdge
}
