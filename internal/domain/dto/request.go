// Package dto defines Data Transfer Objects for HTTP request and
// response handling.
//
// DTOs decouple the HTTP layer from the calculation core: they carry
// user-facing units and are normalized to canonical units before any
// formula runs.
package dto

import (
	"github.com/openpdst/dst-service/internal/dilution"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// StageOneRequest asks for the weighing instruction of one drug: how
// much to weigh out for the requested preparation volume.
//
// @Description Stage-one calculation request (potency and estimated weight)
type StageOneRequest struct {
	// DrugID identifies the drug in the reference store.
	DrugID string `json:"drug_id" binding:"required" example:"inh"`
	// CriticalConcentration overrides the drug's default critical
	// concentration. Interpreted in CriticalConcentrationUnit.
	CriticalConcentration *float64 `json:"critical_concentration,omitempty" example:"0.1"`
	// CriticalConcentrationUnit defaults to µg/mL.
	CriticalConcentrationUnit string `json:"critical_concentration_unit,omitempty" example:"ug/mL"`
	// PurchasedMolecularWeight is the molecular weight on the vial, in
	// PurchasedMolecularWeightUnit (default g/mol).
	PurchasedMolecularWeight     float64 `json:"purchased_molecular_weight" example:"137.14"`
	PurchasedMolecularWeightUnit string  `json:"purchased_molecular_weight_unit,omitempty" example:"g/mol"`
	// PurityPercent is optional; omitted or zero means 100%.
	PurityPercent float64 `json:"purity_percent,omitempty" example:"99.5"`
	// PotencyMode selects the potency correction: "molecular_weight"
	// (default), "purity" or "combined".
	PotencyMode string `json:"potency_mode,omitempty" example:"molecular_weight"`
	// StockVolume is the preparation volume in StockVolumeUnit
	// (default mL).
	StockVolume     float64 `json:"stock_volume" binding:"required" example:"10"`
	StockVolumeUnit string  `json:"stock_volume_unit,omitempty" example:"mL"`
	// StockFactorTarget is the intended stock concentration multiple;
	// only meaningful with MakeStock.
	StockFactorTarget float64 `json:"stock_factor_target,omitempty" example:"2"`
	// MakeStock selects the stock-mediated pathway.
	MakeStock bool `json:"make_stock" example:"false"`
	// Protocol selects the MGIT protocol variant ("who-2022" or
	// "classic"); empty uses the server default.
	Protocol string `json:"protocol,omitempty" example:"who-2022"`
	// SessionID optionally attaches the calculation to a session.
	SessionID string `json:"session_id,omitempty"`
} // @name StageOneRequest

// Validate performs shape validation on the request. Range validation
// happens in the calculation core after unit normalization.
func (r *StageOneRequest) Validate() error {
	if r.DrugID == "" {
		return &ValidationError{Field: "drug_id", Message: "must not be empty"}
	}
	if r.StockVolume <= 0 {
		return &ValidationError{Field: "stock_volume", Message: "must be greater than zero"}
	}
	mode := dilution.PotencyMode(r.PotencyMode)
	switch mode {
	case "", dilution.PotencyFromMolecularWeight, dilution.PotencyCombined:
		if r.PurchasedMolecularWeight <= 0 {
			return &ValidationError{Field: "purchased_molecular_weight", Message: "must be greater than zero"}
		}
	case dilution.PotencyFromPurity:
		if r.PurityPercent <= 0 || r.PurityPercent > 100 {
			return &ValidationError{Field: "purity_percent", Message: "must be in (0, 100]"}
		}
	default:
		return &ValidationError{Field: "potency_mode", Message: "unknown potency mode"}
	}
	if r.Protocol != "" {
		if _, err := dilution.ProtocolByName(r.Protocol); err != nil {
			return &ValidationError{Field: "protocol", Message: "unknown protocol variant"}
		}
	}
	return nil
}

// Input normalizes the request into a canonical-unit calculation input,
// taking defaults from the drug reference where the request is silent.
func (r *StageOneRequest) Input(referenceMW, defaultCriticalConc float64, defaultProtocol dilution.Protocol) (dilution.Input, error) {
	critConc := defaultCriticalConc
	if r.CriticalConcentration != nil {
		var err error
		critConc, err = dilution.Normalize(*r.CriticalConcentration, unitOrDefault(r.CriticalConcentrationUnit, dilution.CanonicalConcentration), dilution.CanonicalConcentration)
		if err != nil {
			return dilution.Input{}, err
		}
	}
	purchasedMW, err := dilution.Normalize(r.PurchasedMolecularWeight, unitOrDefault(r.PurchasedMolecularWeightUnit, dilution.CanonicalMolecularWeight), dilution.CanonicalMolecularWeight)
	if err != nil {
		return dilution.Input{}, err
	}
	stockVol, err := dilution.Normalize(r.StockVolume, unitOrDefault(r.StockVolumeUnit, dilution.CanonicalVolume), dilution.CanonicalVolume)
	if err != nil {
		return dilution.Input{}, err
	}
	protocol := defaultProtocol
	if r.Protocol != "" {
		protocol, err = dilution.ProtocolByName(r.Protocol)
		if err != nil {
			return dilution.Input{}, err
		}
	}
	return dilution.Input{
		DrugID:            r.DrugID,
		CriticalConc:      critConc,
		PurchasedMW:       purchasedMW,
		OriginalMW:        referenceMW,
		PurityPercent:     r.PurityPercent,
		StockVolume:       stockVol,
		StockFactorTarget: r.StockFactorTarget,
		MakeStock:         r.MakeStock,
		PotencyMode:       dilution.PotencyMode(r.PotencyMode),
		Protocol:          protocol,
	}, nil
}

// StageTwoRequest asks for the final dilution instructions once the
// drug has been physically weighed. It repeats the stage-one parameters
// so the calculation stays stateless on the server side.
//
// @Description Stage-two calculation request (final dilution instructions)
type StageTwoRequest struct {
	StageOneRequest
	// ActualWeight is the weighed mass in ActualWeightUnit (default mg).
	// Zero is valid and yields all-zero volumes.
	ActualWeight     *float64 `json:"actual_weight" binding:"required" example:"0.86"`
	ActualWeightUnit string   `json:"actual_weight_unit,omitempty" example:"mg"`
	// MGITTubes is the number of tubes to inoculate.
	MGITTubes int `json:"mgit_tubes" example:"2"`
	// AliquotVolume is the storage volume per stock aliquot in mL;
	// zero disables aliquot bookkeeping.
	AliquotVolume float64 `json:"aliquot_volume,omitempty" example:"1"`
} // @name StageTwoRequest

// Validate performs shape validation on the request.
func (r *StageTwoRequest) Validate() error {
	if err := r.StageOneRequest.Validate(); err != nil {
		return err
	}
	if r.ActualWeight == nil {
		return &ValidationError{Field: "actual_weight", Message: "is required"}
	}
	if *r.ActualWeight < 0 {
		return &ValidationError{Field: "actual_weight", Message: "must not be negative"}
	}
	if r.MGITTubes < 0 {
		return &ValidationError{Field: "mgit_tubes", Message: "must not be negative"}
	}
	if r.AliquotVolume < 0 {
		return &ValidationError{Field: "aliquot_volume", Message: "must not be negative"}
	}
	return nil
}

// Weighed normalizes the post-weighing values to canonical units.
func (r *StageTwoRequest) Weighed() (dilution.StageTwoInput, error) {
	weight, err := dilution.Normalize(*r.ActualWeight, unitOrDefault(r.ActualWeightUnit, dilution.CanonicalMass), dilution.CanonicalMass)
	if err != nil {
		return dilution.StageTwoInput{}, err
	}
	return dilution.StageTwoInput{
		ActualWeight:  weight,
		Tubes:         r.MGITTubes,
		AliquotVolume: r.AliquotVolume,
	}, nil
}

func unitOrDefault(s string, def dilution.Unit) dilution.Unit {
	if s == "" {
		return def
	}
	return dilution.Unit(s)
}

// CreateDrugRequest adds a drug to the reference store.
type CreateDrugRequest struct {
	DrugID                string  `json:"drug_id" binding:"required" example:"sm"`
	Name                  string  `json:"name" binding:"required" example:"Streptomycin (SM)"`
	MolecularWeight       float64 `json:"molecular_weight_g_mol" binding:"required,gt=0" example:"581.57"`
	Diluent               string  `json:"diluent" example:"Distilled water"`
	CriticalConcentration float64 `json:"critical_concentration_ug_ml" binding:"gte=0" example:"1.0"`
	Available             bool    `json:"available"`
} // @name CreateDrugRequest

// UpdateDrugAvailabilityRequest toggles a drug's availability.
type UpdateDrugAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
} // @name UpdateDrugAvailabilityRequest

// SaveSessionRequest persists the per-drug inputs of a protocol run.
type SaveSessionRequest struct {
	Name     string             `json:"name" binding:"required" example:"run-2026-08-29"`
	Protocol string             `json:"protocol,omitempty" example:"who-2022"`
	Drugs    []SessionDrugInput `json:"drugs" binding:"required,min=1"`
} // @name SaveSessionRequest

// SessionDrugInput is one drug's input snapshot within a session.
type SessionDrugInput struct {
	DrugID                string  `json:"drug_id" binding:"required"`
	CriticalConcentration float64 `json:"critical_concentration_ug_ml"`
	PurchasedMW           float64 `json:"purchased_mw_g_mol"`
	PurityPercent         float64 `json:"purity_percent,omitempty"`
	StockVolume           float64 `json:"stock_volume_ml"`
	MakeStock             bool    `json:"make_stock"`
	ActualWeight          float64 `json:"actual_weight_mg,omitempty"`
	Tubes                 int     `json:"mgit_tubes,omitempty"`
}
