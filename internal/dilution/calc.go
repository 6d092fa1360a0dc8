package dilution

import "math"

// checkFinite rejects NaN and infinite inputs before they can propagate
// through a formula.
func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

type arg struct {
	field string
	value float64
}

func checkFiniteAll(args ...arg) error {
	for _, a := range args {
		if err := checkFinite(a.field, a.value); err != nil {
			return err
		}
	}
	return nil
}

// EstimatedDrugWeight returns the drug mass in mg to weigh out for the
// given critical concentration (µg/mL), preparation volume (mL) and
// potency. The division by 1000 converts µg to mg.
//
// A zero critical concentration is allowed (untested drug control) and
// yields a zero weight; a zero volume or potency is not, because the
// weighing step would be meaningless.
func EstimatedDrugWeight(criticalConc, volume, potency float64) (float64, error) {
	if err := checkFiniteAll(
		arg{"critical_concentration", criticalConc},
		arg{"volume", volume},
		arg{"potency", potency},
	); err != nil {
		return 0, err
	}
	if criticalConc < 0 {
		return 0, &DomainError{Field: "critical_concentration", Value: criticalConc, Reason: "must not be negative"}
	}
	if volume <= 0 {
		return 0, &DomainError{Field: "volume", Value: volume, Reason: "must be greater than zero"}
	}
	if potency <= 0 {
		return 0, &DomainError{Field: "potency", Value: potency, Reason: "must be greater than zero"}
	}
	return criticalConc * volume * potency * StoichiometricFactor / 1000, nil
}

// DiluentVolume rescales the desired total preparation volume by how far
// the actually weighed mass deviated from the estimate. This is the
// central correction of the whole pipeline: lab weighing never hits the
// estimate exactly, so the volume follows the mass.
func DiluentVolume(estWeight, actualWeight, desiredTotalVol float64) (float64, error) {
	return AdjustedVolume(actualWeight, estWeight, desiredTotalVol)
}

// AdjustedVolume applies the proportional weight correction
// (actual / estimated) to an arbitrary base volume.
func AdjustedVolume(actualWeight, estWeight, baseVolume float64) (float64, error) {
	if err := checkFiniteAll(
		arg{"actual_weight", actualWeight},
		arg{"estimated_weight", estWeight},
		arg{"base_volume", baseVolume},
	); err != nil {
		return 0, err
	}
	if actualWeight < 0 {
		return 0, &DomainError{Field: "actual_weight", Value: actualWeight, Reason: "must not be negative"}
	}
	if baseVolume < 0 {
		return 0, &DomainError{Field: "base_volume", Value: baseVolume, Reason: "must not be negative"}
	}
	if estWeight == 0 {
		return 0, &DivisionUndefinedError{Denominator: "estimated_weight"}
	}
	if estWeight < 0 {
		return 0, &DomainError{Field: "estimated_weight", Value: estWeight, Reason: "must be greater than zero"}
	}
	return actualWeight / estWeight * baseVolume, nil
}

// StockConcentration returns the concentration in µg/mL of a stock
// prepared from the given drug mass (mg) and diluent volume (mL).
func StockConcentration(actualWeight, diluentVol float64) (float64, error) {
	if err := checkFinite("actual_weight", actualWeight); err != nil {
		return 0, err
	}
	if err := checkFinite("diluent_volume", diluentVol); err != nil {
		return 0, err
	}
	if actualWeight < 0 {
		return 0, &DomainError{Field: "actual_weight", Value: actualWeight, Reason: "must not be negative"}
	}
	if diluentVol == 0 {
		return 0, &DivisionUndefinedError{Denominator: "diluent_volume"}
	}
	if diluentVol < 0 {
		return 0, &DomainError{Field: "diluent_volume", Value: diluentVol, Reason: "must be greater than zero"}
	}
	return actualWeight * 1000 / diluentVol, nil
}

// StockFactor returns the dimensionless multiplier by which the stock is
// more concentrated than the working solution.
func StockFactor(actualWeight, totalStockVol, wsConc, potency float64) (float64, error) {
	if err := checkFiniteAll(
		arg{"actual_weight", actualWeight},
		arg{"total_stock_volume", totalStockVol},
		arg{"working_solution_concentration", wsConc},
		arg{"potency", potency},
	); err != nil {
		return 0, err
	}
	if actualWeight < 0 {
		return 0, &DomainError{Field: "actual_weight", Value: actualWeight, Reason: "must not be negative"}
	}
	switch {
	case totalStockVol == 0:
		return 0, &DivisionUndefinedError{Denominator: "total_stock_volume"}
	case wsConc == 0:
		return 0, &DivisionUndefinedError{Denominator: "working_solution_concentration"}
	case potency == 0:
		return 0, &DivisionUndefinedError{Denominator: "potency"}
	}
	if totalStockVol < 0 || wsConc < 0 || potency < 0 {
		return 0, &DomainError{Field: "stock_factor", Reason: "denominator terms must be positive"}
	}
	return actualWeight * 1000 / (totalStockVol * wsConc * potency), nil
}

// IntermediateFactor derives the dilution factor for an intermediate
// stage from the stock factor, lowering it stepwise until the
// stock-to-intermediate transfer volume becomes pipettable. Falls back
// to 2 when no factor above 1.1 produces a workable volume.
func IntermediateFactor(stockFactor, totalWSVolume float64) float64 {
	factor := stockFactor
	for factor > 1.1 {
		factor -= 0.5
		if totalWSVolume/factor > intermediateTransferMinimum {
			break
		}
	}
	if factor <= 1.1 {
		factor = 2
	}
	return factor
}

// IntermediateVolume returns the total volume in mL of the intermediate
// dilution inserted between stock and working solution.
func IntermediateVolume(stockToInter, finalStockConc, interFactor, wsConc float64) (float64, error) {
	denom := interFactor * wsConc
	if denom == 0 {
		return 0, &DivisionUndefinedError{Denominator: "intermediate_factor * working_solution_concentration"}
	}
	return stockToInter * finalStockConc / denom, nil
}
