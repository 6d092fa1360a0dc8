package dilution

// Unit identifies a measurement unit accepted at the API boundary.
// The pipeline itself works only in the canonical units (mg, mL, µg/mL,
// g/mol); Normalize is the single place unit multipliers appear.
type Unit string

const (
	// Mass units.
	Microgram Unit = "ug"
	Milligram Unit = "mg"
	Gram      Unit = "g"

	// Volume units.
	Microliter Unit = "uL"
	Milliliter Unit = "mL"
	Liter      Unit = "L"

	// Concentration units.
	NanogramPerMilliliter  Unit = "ng/mL"
	MicrogramPerMilliliter Unit = "ug/mL"
	MilligramPerMilliliter Unit = "mg/mL"
	GramPerLiter           Unit = "g/L"

	// Molecular weight units.
	MilligramPerMole Unit = "mg/mol"
	GramPerMole      Unit = "g/mol"
	KilogramPerMole  Unit = "kg/mol"
)

// Canonical units used by every formula in this package.
const (
	CanonicalMass            = Milligram
	CanonicalVolume          = Milliliter
	CanonicalConcentration   = MicrogramPerMilliliter
	CanonicalMolecularWeight = GramPerMole
)

type dimension int

const (
	dimMass dimension = iota
	dimVolume
	dimConcentration
	dimMolecularWeight
)

// unitTable maps each supported unit to its dimension and its scale
// relative to that dimension's canonical unit.
var unitTable = map[Unit]struct {
	dim   dimension
	scale float64
}{
	Microgram: {dimMass, 0.001},
	Milligram: {dimMass, 1},
	Gram:      {dimMass, 1000},

	Microliter: {dimVolume, 0.001},
	Milliliter: {dimVolume, 1},
	Liter:      {dimVolume, 1000},

	NanogramPerMilliliter:  {dimConcentration, 0.001},
	MicrogramPerMilliliter: {dimConcentration, 1},
	MilligramPerMilliliter: {dimConcentration, 1000},
	GramPerLiter:           {dimConcentration, 1000},

	MilligramPerMole: {dimMolecularWeight, 0.001},
	GramPerMole:      {dimMolecularWeight, 1},
	KilogramPerMole:  {dimMolecularWeight, 1000},
}

// Normalize converts a value between two units of the same dimension.
// It returns a UnitConversionError when either unit is unknown or the
// units measure different dimensions, and a DomainError for non-finite
// values.
func Normalize(value float64, from, to Unit) (float64, error) {
	if err := checkFinite("value", value); err != nil {
		return 0, err
	}
	f, ok := unitTable[from]
	if !ok {
		return 0, &UnitConversionError{From: from, To: to}
	}
	t, ok := unitTable[to]
	if !ok || f.dim != t.dim {
		return 0, &UnitConversionError{From: from, To: to}
	}
	return value * f.scale / t.scale, nil
}

// SupportedUnits returns the units convertible with the given unit,
// including itself. The result is empty for unknown units.
func SupportedUnits(u Unit) []Unit {
	ref, ok := unitTable[u]
	if !ok {
		return nil
	}
	var units []Unit
	for candidate, info := range unitTable {
		if info.dim == ref.dim {
			units = append(units, candidate)
		}
	}
	return units
}
