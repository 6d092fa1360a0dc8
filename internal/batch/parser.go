// Package batch parses semicolon-separated batch run files. One row
// describes a complete multi-drug run: which drugs, the per-drug
// parameters as comma-separated lists, and the weighed amounts.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExpectedFields is the column contract, in order. A header row is
// optional; rows without one are mapped positionally.
var ExpectedFields = []string{
	"id",
	"logfile_name",
	"selected_numerals",
	"reselect_numerals",
	"own_cc",
	"cc_values",
	"purch_mol_weights",
	"stock_vol",
	"results_filename",
	"weighed_drug",
	"mgit_tubes",
	"final_results_filename",
}

// Row is one parsed batch run.
type Row struct {
	// ID labels the row for error reporting.
	ID string
	// LogName is the session or log name of the run.
	LogName string
	// DrugSelectors identify the drugs: reference IDs, or 1-based
	// indices into the available drug list.
	DrugSelectors []string
	// ReselectSelectors carry the reselect_numerals column: corrected
	// selectors from a re-run of a hand-edited file. Carried for
	// round-tripping; evaluation always uses DrugSelectors.
	ReselectSelectors []string
	// OwnCC indicates CCValues override the default critical
	// concentrations.
	OwnCC bool
	// CCValues are the custom critical concentrations in µg/mL, one per
	// drug, only read when OwnCC is set.
	CCValues []float64
	// PurchasedMW are the purchased molecular weights in g/mol, one per
	// drug.
	PurchasedMW []float64
	// StockVolumes are the preparation volumes in mL, one per drug.
	StockVolumes []float64
	// ResultsName labels the stage-one output.
	ResultsName string
	// WeighedAmounts are the weighed masses in mg, one per drug.
	WeighedAmounts []float64
	// MGITTubes are the tube counts, one per drug.
	MGITTubes []int
	// FinalResultsName labels the stage-two output.
	FinalResultsName string
}

// ParseError reports a malformed field with its row and column.
type ParseError struct {
	Row    int
	Field  string
	Reason string
}

// Error returns the error message for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, field %q: %s", e.Row, e.Field, e.Reason)
}

// Parse reads batch rows from a semicolon-separated stream. maxRows
// caps the accepted row count; zero means no cap.
func Parse(r io.Reader, maxRows int) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed batch file: %w", err)
	}

	start := 0
	if len(records) > 0 && isHeader(records[0]) {
		start = 1
	}

	var rows []Row
	for i := start; i < len(records); i++ {
		record := records[i]
		if isBlank(record) {
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			return nil, fmt.Errorf("batch file exceeds %d rows", maxRows)
		}
		row, err := parseRow(record, i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isHeader reports whether the record names every expected field.
func isHeader(record []string) bool {
	joined := strings.ToLower(strings.Join(record, ";"))
	for _, field := range ExpectedFields {
		if !strings.Contains(joined, field) {
			return false
		}
	}
	return true
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(record []string, line int) (Row, error) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	row := Row{
		ID:                field(0),
		LogName:           field(1),
		DrugSelectors:     splitList(field(2)),
		ReselectSelectors: splitList(field(3)),
		OwnCC:             strings.EqualFold(field(4), "y"),
		ResultsName:       field(8),
		FinalResultsName:  field(11),
	}
	if len(row.DrugSelectors) == 0 {
		return Row{}, &ParseError{Row: line, Field: "selected_numerals", Reason: "no drugs selected"}
	}

	var err error
	if row.OwnCC {
		row.CCValues, err = parseFloats(field(5))
		if err != nil {
			return Row{}, &ParseError{Row: line, Field: "cc_values", Reason: err.Error()}
		}
		if len(row.CCValues) != len(row.DrugSelectors) {
			return Row{}, &ParseError{Row: line, Field: "cc_values", Reason: "count does not match selected drugs"}
		}
	}
	row.PurchasedMW, err = parseFloats(field(6))
	if err != nil {
		return Row{}, &ParseError{Row: line, Field: "purch_mol_weights", Reason: err.Error()}
	}
	row.StockVolumes, err = parseFloats(field(7))
	if err != nil {
		return Row{}, &ParseError{Row: line, Field: "stock_vol", Reason: err.Error()}
	}
	row.WeighedAmounts, err = parseFloats(field(9))
	if err != nil {
		return Row{}, &ParseError{Row: line, Field: "weighed_drug", Reason: err.Error()}
	}
	row.MGITTubes, err = parseInts(field(10))
	if err != nil {
		return Row{}, &ParseError{Row: line, Field: "mgit_tubes", Reason: err.Error()}
	}

	n := len(row.DrugSelectors)
	for _, check := range []struct {
		name  string
		count int
	}{
		{"purch_mol_weights", len(row.PurchasedMW)},
		{"stock_vol", len(row.StockVolumes)},
		{"weighed_drug", len(row.WeighedAmounts)},
		{"mgit_tubes", len(row.MGITTubes)},
	} {
		if check.count != n {
			return Row{}, &ParseError{Row: line, Field: check.name, Reason: "count does not match selected drugs"}
		}
	}
	return row, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	result := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		result = append(result, v)
	}
	return result, nil
}

func parseInts(s string) ([]int, error) {
	parts := splitList(s)
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		result = append(result, v)
	}
	return result, nil
}
