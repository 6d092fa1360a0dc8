package dto

import "github.com/openpdst/dst-service/internal/dilution"

// StageOneResponse is the weighing instruction returned before the drug
// is physically weighed.
// @Description Stage-one calculation response
type StageOneResponse struct {
	DrugID   string `json:"drug_id" example:"inh"`
	DrugName string `json:"drug_name" example:"Isoniazid (INH)"`
	Diluent  string `json:"diluent,omitempty" example:"Distilled water"`
	Protocol string `json:"protocol" example:"who-2022"`
	Pathway  string `json:"pathway" example:"direct"`
	// Potency is the dimensionless correction multiplier.
	Potency float64 `json:"potency" example:"1.0"`
	// EstimatedWeight is the mass to weigh out in mg.
	EstimatedWeight float64 `json:"estimated_weight_mg" example:"0.84"`
	Warnings        []string `json:"warnings,omitempty"`
} // @name StageOneResponse

// StageTwoResponse is the full dilution instruction set returned after
// the weighed mass is known.
// @Description Stage-two calculation response
type StageTwoResponse struct {
	DrugID   string `json:"drug_id" example:"inh"`
	DrugName string `json:"drug_name" example:"Isoniazid (INH)"`
	Diluent  string `json:"diluent,omitempty" example:"Distilled water"`
	Protocol string `json:"protocol" example:"who-2022"`

	*dilution.Result
} // @name StageTwoResponse

// ConvertUnitRequest converts a value between measurement units.
type ConvertUnitRequest struct {
	Value float64 `json:"value" binding:"required" example:"1.5"`
	From  string  `json:"from" binding:"required" example:"mg"`
	To    string  `json:"to" binding:"required" example:"ug"`
} // @name ConvertUnitRequest

// ConvertUnitResponse is the converted value.
type ConvertUnitResponse struct {
	Value float64 `json:"value" example:"1500"`
	Unit  string  `json:"unit" example:"ug"`
} // @name ConvertUnitResponse
