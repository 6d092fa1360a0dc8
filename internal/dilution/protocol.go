// Package dilution implements the calculation pipeline for phenotypic
// drug-susceptibility testing (pDST) of tuberculosis drugs in the MGIT
// system. It converts drug parameters (critical concentration, molecular
// weights, purity, stock volume, tube counts) into weighing and dilution
// instructions through a deterministic sequence of pure arithmetic
// transformations.
//
// All functions in this package operate in canonical units: weights in
// mg, volumes in mL, concentrations in µg/mL and molecular weights in
// g/mol. Unit conversion for user-facing values happens in Normalize,
// never inside a formula.
package dilution

import "fmt"

const (
	// MGITTubeVolume is the broth volume of one MGIT tube in mL.
	MGITTubeVolume = 8.4

	// MGITInoculumVolume is the drug volume added per MGIT tube in mL.
	MGITInoculumVolume = 0.1

	// StoichiometricFactor relates the critical concentration to the
	// working solution concentration: a drug diluted 0.1 mL into 8.4 mL
	// of broth must start 84 times more concentrated.
	StoichiometricFactor = MGITTubeVolume / MGITInoculumVolume

	// PipettingMinimum is the smallest stock transfer volume in mL that
	// can be pipetted reliably. Transfers below it get an intermediate
	// dilution step.
	PipettingMinimum = 0.1

	// intermediateTransferMinimum is the transfer volume in mL an
	// intermediate dilution must reach to be worth inserting.
	intermediateTransferMinimum = 0.2
)

// Protocol holds the working-solution volume constants of one MGIT
// protocol variant. The two published variants are not interchangeable:
// a calculation uses exactly one Protocol from start to finish.
type Protocol struct {
	// Name identifies the variant in configuration and API requests.
	Name string
	// TubeVolume is the working solution volume consumed per MGIT tube, in mL.
	TubeVolume float64
	// Overage is the fixed pipetting overage added on top, in mL.
	Overage float64
}

var (
	// ProtocolWHO2022 is the current WHO technical-manual variant
	// (0.12 mL per tube plus 0.36 mL overage).
	ProtocolWHO2022 = Protocol{Name: "who-2022", TubeVolume: 0.12, Overage: 0.36}

	// ProtocolClassic is the older variant still used by some
	// laboratories (0.1 mL per tube plus 0.2 mL overage).
	ProtocolClassic = Protocol{Name: "classic", TubeVolume: 0.1, Overage: 0.2}
)

// DefaultProtocol is the variant used when none is configured.
var DefaultProtocol = ProtocolWHO2022

// ProtocolByName returns the protocol variant with the given name.
func ProtocolByName(name string) (Protocol, error) {
	switch name {
	case ProtocolWHO2022.Name:
		return ProtocolWHO2022, nil
	case ProtocolClassic.Name:
		return ProtocolClassic, nil
	default:
		return Protocol{}, fmt.Errorf("unknown protocol variant %q", name)
	}
}

// WorkingSolutionVolume returns the working solution volume in mL needed
// to inoculate the given number of MGIT tubes, including the overage.
func (p Protocol) WorkingSolutionVolume(tubes int) (float64, error) {
	if tubes < 0 {
		return 0, &DomainError{Field: "mgit_tubes", Value: float64(tubes), Reason: "must not be negative"}
	}
	return float64(tubes)*p.TubeVolume + p.Overage, nil
}

// WorkingSolutionConcentration returns the concentration in µg/mL the
// working solution must have so that each tube ends up at the critical
// concentration after the MGIT dilution.
func WorkingSolutionConcentration(criticalConc float64) (float64, error) {
	if criticalConc < 0 {
		return 0, &DomainError{Field: "critical_concentration", Value: criticalConc, Reason: "must not be negative"}
	}
	return criticalConc * MGITTubeVolume / MGITInoculumVolume, nil
}
