package cidect

import "fmt"

// InputError reports a malformed section, layout or load input.
// It is raised before any geometry is derived.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Msg
	}
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Msg)
}

// NewInputError builds an InputError with a formatted message
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// GeometryError reports an undefined trigonometric domain or a division by
// zero inside a formula.
type GeometryError struct {
	Quantity string
	Value    float64
	Msg      string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: %s = %g: %s", e.Quantity, e.Value, e.Msg)
}

// UnimplementedFormulaError reports a joint/section combination for which
// the design guide provides no SCF formula set in this tool.
type UnimplementedFormulaError struct {
	Joint   string
	Section string
}

func (e *UnimplementedFormulaError) Error() string {
	return fmt.Sprintf("SCF formulas for %s-joints with %s chords are not implemented", e.Joint, e.Section)
}

// ConsistencyError reports an unreachable branch, e.g. a classification that
// is neither GAP nor OVERLAP.
type ConsistencyError struct {
	Msg string
}

func (e *ConsistencyError) Error() string {
	return "internal consistency error: " + e.Msg
}
