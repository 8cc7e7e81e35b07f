package section

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

// Class is the hollow section shape
type Class int

const (
	SHS Class = iota + 1 // square hollow section
	RHS                  // rectangular hollow section
	CHS                  // circular hollow section
)

func (c Class) String() string {
	switch c {
	case SHS:
		return "SHS"
	case RHS:
		return "RHS"
	case CHS:
		return "CHS"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Circular reports whether the section is a CHS
func (c Class) Circular() bool {
	return c == CHS
}

// ParseClass converts "SHS", "RHS" or "CHS" (any case) to a Class
func ParseClass(s string) (Class, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SHS":
		return SHS, nil
	case "RHS":
		return RHS, nil
	case "CHS":
		return CHS, nil
	}
	return 0, cidect.NewInputError("section class", "unknown class %q (want SHS, RHS or CHS)", s)
}

// Properties is a finished chord or brace cross-section record.
// All values are SI: metres, m², m⁴.
type Properties struct {
	Designation string

	Class     Class
	Width     float64 // b - width (equals Depth for CHS and SHS)
	Depth     float64 // d - depth, or outside diameter for CHS
	Thickness float64 // t - wall thickness

	Area float64 // A
	Ix   float64 // second moment of area about the in-plane bending axis
	Iy   float64 // second moment of area about the out-of-plane bending axis
}

// New validates and returns a Properties record
func New(class Class, width, depth, thickness, area, ix, iy float64) (Properties, error) {
	p := Properties{
		Class:     class,
		Width:     width,
		Depth:     depth,
		Thickness: thickness,
		Area:      area,
		Ix:        ix,
		Iy:        iy,
	}
	if err := p.Validate(); err != nil {
		return Properties{}, err
	}
	return p, nil
}

// Validate checks that every dimension and property is positive and that
// the wall fits inside the section
func (p Properties) Validate() error {
	switch p.Class {
	case SHS, RHS, CHS:
	default:
		return cidect.NewInputError("section class", "unknown class %d", int(p.Class))
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"width", p.Width},
		{"depth", p.Depth},
		{"thickness", p.Thickness},
		{"area", p.Area},
		{"Ix", p.Ix},
		{"Iy", p.Iy},
	}
	for _, f := range fields {
		if !(f.value > 0) {
			return cidect.NewInputError(f.name, "must be positive, got %g", f.value)
		}
	}
	if 2*p.Thickness >= p.Width || 2*p.Thickness >= p.Depth {
		return cidect.NewInputError("thickness", "wall %g m does not fit in %g x %g m section", p.Thickness, p.Width, p.Depth)
	}
	if p.Class == CHS && p.Width != p.Depth {
		return cidect.NewInputError("width", "CHS width %g m must equal diameter %g m", p.Width, p.Depth)
	}
	return nil
}

// Rotated returns an RHS turned through 90 degrees: width and depth swap,
// and so do Ix and Iy.
func (p Properties) Rotated() Properties {
	r := p
	r.Width, r.Depth = p.Depth, p.Width
	r.Ix, r.Iy = p.Iy, p.Ix
	return r
}

// Label returns the designation, or a generated one in mm when unset
func (p Properties) Label() string {
	if p.Designation != "" {
		return p.Designation
	}
	if p.Class == CHS {
		return fmt.Sprintf("%s x %s CHS", mm(p.Depth), mm(p.Thickness))
	}
	return fmt.Sprintf("%s x %s x %s %s", mm(p.Depth), mm(p.Width), mm(p.Thickness), p.Class)
}

// mm formats a length in metres as millimetres rounded to 0.1 mm
func mm(m float64) string {
	return strconv.FormatFloat(math.Round(m*1e4)/10, 'f', -1, 64)
}
