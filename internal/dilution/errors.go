package dilution

import "fmt"

// DomainError reports an input value outside its valid numeric range,
// such as a negative volume or a purity above 100%.
type DomainError struct {
	// Field is the name of the offending input.
	Field string
	// Value is the rejected value.
	Value float64
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (got %g)", e.Field, e.Reason, e.Value)
}

// DivisionUndefinedError reports a zero denominator in one of the
// dilution formulas. It carries the name of the quantity that was zero.
type DivisionUndefinedError struct {
	// Denominator is the name of the zero-valued quantity.
	Denominator string
}

func (e *DivisionUndefinedError) Error() string {
	return fmt.Sprintf("division undefined: %s is zero", e.Denominator)
}

// InfeasiblePreparationError reports that a derived volume came out
// negative, meaning the requested protocol parameters are physically
// unsatisfiable (for example, the working solution needs more stock
// than was prepared). It is not a numeric overflow.
type InfeasiblePreparationError struct {
	// Quantity is the name of the volume that would be negative.
	Quantity string
	// Value is the computed (negative) value.
	Value float64
}

func (e *InfeasiblePreparationError) Error() string {
	return fmt.Sprintf("infeasible preparation: %s would be %g mL", e.Quantity, e.Value)
}

// UnitConversionError reports a conversion between units that are not
// in the conversion table or measure different dimensions.
type UnitConversionError struct {
	From Unit
	To   Unit
}

func (e *UnitConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}
