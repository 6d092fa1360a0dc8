package dto

// BatchDrugResult is one drug's outcome within a batch row. Exactly one
// of Result and Error is set: an infeasible drug never yields partial
// numbers.
type BatchDrugResult struct {
	Selector string            `json:"selector" example:"inh"`
	DrugID   string            `json:"drug_id,omitempty" example:"inh"`
	Result   *StageTwoResponse `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
} // @name BatchDrugResult

// BatchRowResponse is the outcome of one batch run row.
type BatchRowResponse struct {
	RowID   string            `json:"row_id,omitempty" example:"1"`
	LogName string            `json:"log_name,omitempty" example:"run-2026-08-29"`
	Drugs   []BatchDrugResult `json:"drugs"`
} // @name BatchRowResponse

// BatchResponse is the outcome of a whole batch file.
type BatchResponse struct {
	Rows       []BatchRowResponse `json:"rows"`
	RowCount   int                `json:"row_count" example:"1"`
	DrugCount  int                `json:"drug_count" example:"4"`
	ErrorCount int                `json:"error_count" example:"0"`
} // @name BatchResponse
