package dilution

import (
	"errors"
	"math"
)

const (
	// PracticalWeighingMinimum is the smallest drug mass in mg a lab
	// balance handles comfortably. Estimates below it get a warning
	// suggesting the stock-mediated pathway.
	PracticalWeighingMinimum = 2.0

	// PolystyreneTubeLimit is the capacity in mL of the polystyrene
	// tubes used for stock and working solutions.
	PolystyreneTubeLimit = 5.0

	// negligibleVolume absorbs float rounding when checking derived
	// volumes for negativity.
	negligibleVolume = 1e-9
)

// Pathway names the preparation pathway of a plan.
type Pathway string

const (
	// PathwayDirect dissolves the weighed drug straight into the
	// working solution volume.
	PathwayDirect Pathway = "direct"
	// PathwayStock prepares a concentrated stock first and transfers an
	// aliquot into the working solution, optionally through an
	// intermediate dilution.
	PathwayStock Pathway = "stock"
)

// Warning flags a practicality concern that does not invalidate the
// calculation. User-facing wording is the caller's concern.
type Warning string

const (
	// WarningLowEstimatedWeight means the estimated mass is below
	// PracticalWeighingMinimum.
	WarningLowEstimatedWeight Warning = "low_estimated_weight"
	// WarningIntermediateDilution means the stock transfer volume fell
	// below the pipetting minimum and an intermediate dilution was
	// inserted.
	WarningIntermediateDilution Warning = "intermediate_dilution"
	// WarningVolumeExceedsTubeLimit means a prepared volume exceeds the
	// polystyrene tube capacity.
	WarningVolumeExceedsTubeLimit Warning = "volume_exceeds_tube_limit"
)

// Input holds the per-drug parameters for one calculation. Inputs are
// never mutated; corrections produce a new Input.
type Input struct {
	// DrugID identifies the drug in the reference store.
	DrugID string
	// CriticalConc is the critical concentration in µg/mL.
	CriticalConc float64
	// PurchasedMW is the molecular weight of the purchased compound in g/mol.
	PurchasedMW float64
	// OriginalMW is the reference compound molecular weight in g/mol.
	OriginalMW float64
	// PurityPercent is the certificate-of-analysis purity; zero means
	// not supplied and defaults to 100.
	PurityPercent float64
	// StockVolume is the preparation volume in mL: the desired total
	// volume on the direct pathway, the total stock volume otherwise.
	StockVolume float64
	// StockFactorTarget is the intended stock concentration multiple of
	// the working solution. Zero defaults to 1 and only matters on the
	// stock pathway.
	StockFactorTarget float64
	// MakeStock selects the stock-mediated pathway.
	MakeStock bool
	// PotencyMode selects the potency correction; empty defaults to
	// molecular-weight mode.
	PotencyMode PotencyMode
	// Protocol is the MGIT protocol variant; zero value defaults to
	// DefaultProtocol.
	Protocol Protocol
}

// withDefaults fills the optional fields.
func (in Input) withDefaults() Input {
	if in.PurityPercent == 0 {
		in.PurityPercent = 100
	}
	if in.StockFactorTarget == 0 {
		in.StockFactorTarget = 1
	}
	if in.PotencyMode == "" {
		in.PotencyMode = PotencyFromMolecularWeight
	}
	if in.Protocol == (Protocol{}) {
		in.Protocol = DefaultProtocol
	}
	return in
}

// Validate checks the input ranges before any formula runs. Conversion
// to canonical units must already have happened.
func (in Input) Validate() error {
	if in.DrugID == "" {
		return &DomainError{Field: "drug_id", Reason: "must not be empty"}
	}
	if err := checkFiniteAll(
		arg{"critical_concentration", in.CriticalConc},
		arg{"purchased_molecular_weight", in.PurchasedMW},
		arg{"original_molecular_weight", in.OriginalMW},
		arg{"purity_percent", in.PurityPercent},
		arg{"stock_volume", in.StockVolume},
		arg{"stock_factor_target", in.StockFactorTarget},
	); err != nil {
		return err
	}
	if in.CriticalConc < 0 {
		return &DomainError{Field: "critical_concentration", Value: in.CriticalConc, Reason: "must not be negative"}
	}
	if in.StockVolume <= 0 {
		return &DomainError{Field: "stock_volume", Value: in.StockVolume, Reason: "must be greater than zero"}
	}
	if in.StockFactorTarget < 1 {
		return &DomainError{Field: "stock_factor_target", Value: in.StockFactorTarget, Reason: "must be at least 1"}
	}
	if in.PurityPercent <= 0 || in.PurityPercent > 100 {
		return &DomainError{Field: "purity_percent", Value: in.PurityPercent, Reason: "must be in (0, 100]"}
	}
	return nil
}

// StageOneResult is the weighing instruction derived once per input:
// the potency multiplier and the drug mass to weigh out.
type StageOneResult struct {
	// Potency is the dimensionless correction multiplier.
	Potency float64 `json:"potency"`
	// EstimatedWeight is the mass to weigh in mg.
	EstimatedWeight float64 `json:"estimated_weight_mg"`
}

// StageTwoInput carries the values known only after the physical
// weighing step.
type StageTwoInput struct {
	// ActualWeight is the weighed drug mass in mg. Zero is a valid,
	// if degenerate, input: every downstream volume comes out zero.
	ActualWeight float64
	// Tubes is the number of MGIT tubes to inoculate.
	Tubes int
	// AliquotVolume is the storage volume per stock aliquot in mL;
	// zero disables aliquot bookkeeping.
	AliquotVolume float64
}

func (w StageTwoInput) validate() error {
	if err := checkFinite("actual_weight", w.ActualWeight); err != nil {
		return err
	}
	if err := checkFinite("aliquot_volume", w.AliquotVolume); err != nil {
		return err
	}
	if w.ActualWeight < 0 {
		return &DomainError{Field: "actual_weight", Value: w.ActualWeight, Reason: "must not be negative"}
	}
	if w.Tubes < 0 {
		return &DomainError{Field: "mgit_tubes", Value: float64(w.Tubes), Reason: "must not be negative"}
	}
	if w.AliquotVolume < 0 {
		return &DomainError{Field: "aliquot_volume", Value: w.AliquotVolume, Reason: "must not be negative"}
	}
	return nil
}

// IntermediateDilution describes the extra dilution stage inserted
// between stock and working solution when the direct transfer volume
// would be too small to pipette.
type IntermediateDilution struct {
	// Factor is the concentration multiple of the intermediate over the
	// working solution.
	Factor float64 `json:"factor"`
	// Concentration of the intermediate dilution in µg/mL.
	Concentration float64 `json:"concentration_ug_ml"`
	// StockVolume is the stock volume transferred into the
	// intermediate, in mL.
	StockVolume float64 `json:"stock_volume_ml"`
	// TotalVolume of the intermediate dilution in mL.
	TotalVolume float64 `json:"total_volume_ml"`
	// DiluentVolume added to the intermediate in mL.
	DiluentVolume float64 `json:"diluent_volume_ml"`
	// TransferVolume is the intermediate volume transferred into the
	// working solution, in mL.
	TransferVolume float64 `json:"transfer_volume_ml"`
}

// Result is the terminal output of a calculation. A failed calculation
// yields no Result at all, never a partially filled one.
type Result struct {
	Pathway         Pathway `json:"pathway"`
	Potency         float64 `json:"potency"`
	EstimatedWeight float64 `json:"estimated_weight_mg"`
	ActualWeight    float64 `json:"actual_weight_mg"`
	Tubes           int     `json:"mgit_tubes"`

	WorkingSolutionVolume float64 `json:"working_solution_volume_ml"`
	WorkingSolutionConc   float64 `json:"working_solution_concentration_ug_ml"`
	// DiluentVolume is the total dissolution volume on the direct
	// pathway, and the diluent added to the working solution on the
	// stock pathway.
	DiluentVolume float64 `json:"diluent_volume_ml"`

	StockConcentration   float64 `json:"stock_concentration_ug_ml,omitempty"`
	StockFactor          float64 `json:"stock_factor,omitempty"`
	StockToWorkingVolume float64 `json:"stock_to_working_volume_ml,omitempty"`
	TotalStockVolume     float64 `json:"total_stock_volume_ml,omitempty"`
	RemainingStockVolume float64 `json:"remaining_stock_volume_ml,omitempty"`
	AliquotVolume        float64 `json:"aliquot_volume_ml,omitempty"`
	AliquotCount         int     `json:"aliquot_count,omitempty"`

	Intermediate *IntermediateDilution `json:"intermediate,omitempty"`
	Warnings     []Warning             `json:"warnings,omitempty"`
}

// Plan is a per-drug calculation pathway, selected once at validation
// time. The two variants carry distinct, total finalization functions so
// formula copies cannot diverge between call sites.
type Plan interface {
	// Pathway names the variant.
	Pathway() Pathway
	// StageOne returns the weighing instruction derived at plan
	// construction.
	StageOne() StageOneResult
	// Finalize computes the dilution instructions from the weighed
	// mass and tube count.
	Finalize(weighed StageTwoInput) (*Result, error)
}

// NewPlan validates the input, resolves potency, computes the estimated
// weight and returns the pathway variant the input selects.
func NewPlan(in Input) (Plan, error) {
	in = in.withDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	potency, err := ResolvePotency(in.PotencyMode, in.PurchasedMW, in.OriginalMW, in.PurityPercent)
	if err != nil {
		return nil, err
	}

	stageOne, err := stageOneFor(in, potency)
	if err != nil {
		return nil, err
	}

	if in.MakeStock {
		return &StockMediatedPlan{in: in, potency: potency, stageOne: stageOne}, nil
	}
	return &DirectDilutionPlan{in: in, potency: potency, stageOne: stageOne}, nil
}

// StageOne runs only the first stage for the given input: resolve
// potency and estimate the weight to be weighed out.
func StageOne(in Input) (StageOneResult, error) {
	plan, err := NewPlan(in)
	if err != nil {
		return StageOneResult{}, err
	}
	return plan.StageOne(), nil
}

func stageOneFor(in Input, potency float64) (StageOneResult, error) {
	weight, err := EstimatedDrugWeight(in.CriticalConc, in.StockVolume, potency)
	if err != nil {
		return StageOneResult{}, err
	}
	// On the stock pathway the prepared solution is StockFactorTarget
	// times more concentrated, so the mass scales with it.
	if in.MakeStock {
		weight *= in.StockFactorTarget
	}
	return StageOneResult{Potency: potency, EstimatedWeight: weight}, nil
}

// DirectDilutionPlan dissolves the weighed drug directly into the
// desired preparation volume, rescaled for the weighing deviation.
type DirectDilutionPlan struct {
	in       Input
	potency  float64
	stageOne StageOneResult
}

// Pathway implements Plan.
func (p *DirectDilutionPlan) Pathway() Pathway { return PathwayDirect }

// StageOne implements Plan.
func (p *DirectDilutionPlan) StageOne() StageOneResult { return p.stageOne }

// Finalize implements Plan.
func (p *DirectDilutionPlan) Finalize(weighed StageTwoInput) (*Result, error) {
	if err := weighed.validate(); err != nil {
		return nil, err
	}

	wsVol, err := p.in.Protocol.WorkingSolutionVolume(weighed.Tubes)
	if err != nil {
		return nil, err
	}
	wsConc, err := WorkingSolutionConcentration(p.in.CriticalConc)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Pathway:               PathwayDirect,
		Potency:               p.potency,
		EstimatedWeight:       p.stageOne.EstimatedWeight,
		ActualWeight:          weighed.ActualWeight,
		Tubes:                 weighed.Tubes,
		WorkingSolutionVolume: wsVol,
		WorkingSolutionConc:   wsConc,
	}
	res.Warnings = p.warnings(wsVol)

	// A zero weighed mass is valid: nothing was prepared, every
	// downstream volume is zero.
	if weighed.ActualWeight == 0 {
		res.WorkingSolutionVolume = 0
		return res, nil
	}

	diluent, err := DiluentVolume(p.stageOne.EstimatedWeight, weighed.ActualWeight, p.in.StockVolume)
	if err != nil {
		return nil, err
	}
	res.DiluentVolume = diluent
	return res, nil
}

func (p *DirectDilutionPlan) warnings(wsVol float64) []Warning {
	var w []Warning
	if p.stageOne.EstimatedWeight > 0 && p.stageOne.EstimatedWeight < PracticalWeighingMinimum {
		w = append(w, WarningLowEstimatedWeight)
	}
	if wsVol > PolystyreneTubeLimit {
		w = append(w, WarningVolumeExceedsTubeLimit)
	}
	return w
}

// StockMediatedPlan prepares a concentrated stock and transfers part of
// it into the working solution, inserting an intermediate dilution when
// the direct transfer volume would be impractically small.
type StockMediatedPlan struct {
	in       Input
	potency  float64
	stageOne StageOneResult
}

// Pathway implements Plan.
func (p *StockMediatedPlan) Pathway() Pathway { return PathwayStock }

// StageOne implements Plan.
func (p *StockMediatedPlan) StageOne() StageOneResult { return p.stageOne }

// Finalize implements Plan.
func (p *StockMediatedPlan) Finalize(weighed StageTwoInput) (*Result, error) {
	if err := weighed.validate(); err != nil {
		return nil, err
	}

	wsVol, err := p.in.Protocol.WorkingSolutionVolume(weighed.Tubes)
	if err != nil {
		return nil, err
	}
	wsConc, err := WorkingSolutionConcentration(p.in.CriticalConc)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Pathway:             PathwayStock,
		Potency:             p.potency,
		EstimatedWeight:     p.stageOne.EstimatedWeight,
		ActualWeight:        weighed.ActualWeight,
		Tubes:               weighed.Tubes,
		WorkingSolutionConc: wsConc,
		TotalStockVolume:    p.in.StockVolume,
		AliquotVolume:       weighed.AliquotVolume,
	}

	if weighed.ActualWeight == 0 {
		res.TotalStockVolume = 0
		return res, nil
	}

	// The working solution volume follows the weighing deviation, same
	// correction law as the direct pathway.
	totalWS, err := AdjustedVolume(weighed.ActualWeight, p.stageOne.EstimatedWeight, wsVol)
	if err != nil {
		return nil, err
	}
	factor, err := StockFactor(weighed.ActualWeight, p.in.StockVolume, wsConc, p.potency)
	if err != nil {
		return nil, err
	}

	// As-prepared concentration from mass and volume, corrected for
	// potency. Equals wsConc * factor by construction.
	rawConc, err := StockConcentration(weighed.ActualWeight, p.in.StockVolume)
	if err != nil {
		return nil, err
	}
	stockConc := rawConc / p.potency
	stockToWS := totalWS / factor

	res.WorkingSolutionVolume = totalWS
	res.StockFactor = factor
	res.StockConcentration = stockConc

	usedStock := stockToWS
	if stockToWS < PipettingMinimum {
		inter, err := p.intermediate(factor, totalWS, stockConc, wsConc)
		if err != nil {
			return nil, err
		}
		res.Intermediate = inter
		res.StockToWorkingVolume = inter.TransferVolume
		res.DiluentVolume, err = nonNegative("working_solution_diluent_volume", totalWS-inter.TransferVolume)
		if err != nil {
			return nil, err
		}
		res.Warnings = append(res.Warnings, WarningIntermediateDilution)
		usedStock = inter.StockVolume
	} else {
		res.StockToWorkingVolume = stockToWS
		res.DiluentVolume, err = nonNegative("working_solution_diluent_volume", totalWS-stockToWS)
		if err != nil {
			return nil, err
		}
	}

	res.RemainingStockVolume, err = nonNegative("remaining_stock_volume", p.in.StockVolume-usedStock)
	if err != nil {
		return nil, err
	}
	if weighed.AliquotVolume > 0 {
		res.AliquotCount = int(math.Floor(res.RemainingStockVolume / weighed.AliquotVolume))
	}
	res.Warnings = append(res.Warnings, p.volumeWarnings(totalWS)...)
	return res, nil
}

func (p *StockMediatedPlan) intermediate(stockFactor, totalWS, stockConc, wsConc float64) (*IntermediateDilution, error) {
	factor := IntermediateFactor(stockFactor, totalWS)
	stockToInter := totalWS / factor
	totalVol, err := IntermediateVolume(stockToInter, stockConc, factor, wsConc)
	if err != nil {
		return nil, err
	}
	diluent, err := nonNegative("intermediate_diluent_volume", totalVol-stockToInter)
	if err != nil {
		return nil, err
	}
	return &IntermediateDilution{
		Factor:         factor,
		Concentration:  wsConc * factor,
		StockVolume:    stockToInter,
		TotalVolume:    totalVol,
		DiluentVolume:  diluent,
		TransferVolume: totalWS / factor,
	}, nil
}

func (p *StockMediatedPlan) volumeWarnings(totalWS float64) []Warning {
	var w []Warning
	if p.stageOne.EstimatedWeight > 0 && p.stageOne.EstimatedWeight < PracticalWeighingMinimum {
		w = append(w, WarningLowEstimatedWeight)
	}
	if totalWS > PolystyreneTubeLimit || p.in.StockVolume > PolystyreneTubeLimit {
		w = append(w, WarningVolumeExceedsTubeLimit)
	}
	return w
}

// nonNegative rejects derived volumes that came out negative, absorbing
// float rounding around zero.
func nonNegative(quantity string, v float64) (float64, error) {
	if v < -negligibleVolume {
		return 0, &InfeasiblePreparationError{Quantity: quantity, Value: v}
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}

// IsInputError reports whether the error is one of the typed input
// failures this package raises, as opposed to an internal fault.
func IsInputError(err error) bool {
	var de *DomainError
	var dz *DivisionUndefinedError
	var ie *InfeasiblePreparationError
	var ue *UnitConversionError
	return errors.As(err, &de) || errors.As(err, &dz) || errors.As(err, &ie) || errors.As(err, &ue)
}
