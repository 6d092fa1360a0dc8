package dilution

// PotencyMode selects how the potency multiplier is derived. The caller
// chooses the mode based on which inputs it has; the resolver never
// guesses from the values themselves.
type PotencyMode string

const (
	// PotencyFromMolecularWeight derives potency from the ratio of
	// purchased to original molecular weight (salt or hydrate forms).
	PotencyFromMolecularWeight PotencyMode = "molecular_weight"
	// PotencyFromPurity derives potency from the purity percentage on
	// the certificate of analysis.
	PotencyFromPurity PotencyMode = "purity"
	// PotencyCombined applies both corrections multiplicatively: a drug
	// may be both impure and a different salt form than the reference.
	PotencyCombined PotencyMode = "combined"
)

// MolecularWeightPotency returns the potency multiplier for a purchased
// compound whose molecular weight differs from the reference compound.
func MolecularWeightPotency(purchasedMW, originalMW float64) (float64, error) {
	if err := checkFinite("purchased_molecular_weight", purchasedMW); err != nil {
		return 0, err
	}
	if err := checkFinite("original_molecular_weight", originalMW); err != nil {
		return 0, err
	}
	if purchasedMW < 0 {
		return 0, &DomainError{Field: "purchased_molecular_weight", Value: purchasedMW, Reason: "must not be negative"}
	}
	if originalMW == 0 {
		return 0, &DivisionUndefinedError{Denominator: "original_molecular_weight"}
	}
	if originalMW < 0 {
		return 0, &DomainError{Field: "original_molecular_weight", Value: originalMW, Reason: "must be greater than zero"}
	}
	return purchasedMW / originalMW, nil
}

// PurityPotency returns the potency multiplier for a compound of the
// given purity percentage. Purity must lie in (0, 100].
func PurityPotency(purityPercent float64) (float64, error) {
	if err := checkFinite("purity_percent", purityPercent); err != nil {
		return 0, err
	}
	if purityPercent <= 0 || purityPercent > 100 {
		return 0, &DomainError{Field: "purity_percent", Value: purityPercent, Reason: "must be in (0, 100]"}
	}
	return 100 / purityPercent, nil
}

// ResolvePotency computes the dimensionless potency multiplier for the
// given mode. In combined mode the purity and molecular-weight
// corrections are orthogonal and multiply.
func ResolvePotency(mode PotencyMode, purchasedMW, originalMW, purityPercent float64) (float64, error) {
	switch mode {
	case PotencyFromMolecularWeight:
		return MolecularWeightPotency(purchasedMW, originalMW)
	case PotencyFromPurity:
		return PurityPotency(purityPercent)
	case PotencyCombined:
		p, err := PurityPotency(purityPercent)
		if err != nil {
			return 0, err
		}
		m, err := MolecularWeightPotency(purchasedMW, originalMW)
		if err != nil {
			return 0, err
		}
		return p * m, nil
	default:
		return 0, &DomainError{Field: "potency_mode", Reason: "unknown mode"}
	}
}
