package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/openpdst/dst-service/internal/batch"
	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/metrics"
)

// BatchService runs whole batch files: every row is a multi-drug run,
// every drug a full two-stage calculation. Drugs are evaluated in
// parallel; a failed drug is reported in place without aborting the
// rest of the batch.
type BatchService interface {
	Process(ctx context.Context, r io.Reader) (*dto.BatchResponse, error)
}

// BatchServiceImpl implements BatchService.
type BatchServiceImpl struct {
	drugs           DrugService
	logging         LoggingService
	defaultProtocol dilution.Protocol
	maxRows         int
	workers         int
}

// NewBatchService creates a new batch service. workers bounds the
// per-request concurrency; zero or negative means a sensible default.
func NewBatchService(drugs DrugService, logging LoggingService, defaultProtocol dilution.Protocol, maxRows, workers int) *BatchServiceImpl {
	if defaultProtocol == (dilution.Protocol{}) {
		defaultProtocol = dilution.DefaultProtocol
	}
	if workers <= 0 {
		workers = 4
	}
	return &BatchServiceImpl{
		drugs:           drugs,
		logging:         logging,
		defaultProtocol: defaultProtocol,
		maxRows:         maxRows,
		workers:         workers,
	}
}

// Process parses and evaluates a batch file.
func (s *BatchServiceImpl) Process(ctx context.Context, r io.Reader) (*dto.BatchResponse, error) {
	rows, err := batch.Parse(r, s.maxRows)
	if err != nil {
		return nil, err
	}

	// The available drug list doubles as the index table for numeric
	// selectors, matching the row ordering a technician sees.
	available, err := s.drugs.List(ctx, true)
	if err != nil {
		return nil, err
	}

	resp := &dto.BatchResponse{Rows: make([]dto.BatchRowResponse, len(rows))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, row := range rows {
		resp.Rows[i] = dto.BatchRowResponse{
			RowID:   row.ID,
			LogName: row.LogName,
			Drugs:   make([]dto.BatchDrugResult, len(row.DrugSelectors)),
		}
		for j := range row.DrugSelectors {
			g.Go(func() error {
				result := s.evaluateDrug(gctx, row, j, available)
				mu.Lock()
				resp.Rows[i].Drugs[j] = result
				if result.Error != "" {
					resp.ErrorCount++
				}
				resp.DrugCount++
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	resp.RowCount = len(rows)
	metrics.RecordBatchRows(len(rows))

	s.auditBatch(ctx, resp)
	return resp, nil
}

// evaluateDrug runs the full two-stage calculation for one drug of one
// row. Failures are folded into the result, never returned.
func (s *BatchServiceImpl) evaluateDrug(ctx context.Context, row batch.Row, idx int, available []model.DrugReference) dto.BatchDrugResult {
	selector := row.DrugSelectors[idx]
	out := dto.BatchDrugResult{Selector: selector}

	drug, err := s.resolveDrug(ctx, selector, available)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.DrugID = drug.DrugID

	critConc := drug.CriticalConcentration
	if row.OwnCC {
		critConc = row.CCValues[idx]
	}
	input := dilution.Input{
		DrugID:       drug.DrugID,
		CriticalConc: critConc,
		PurchasedMW:  row.PurchasedMW[idx],
		OriginalMW:   drug.MolecularWeight,
		StockVolume:  row.StockVolumes[idx],
		Protocol:     s.defaultProtocol,
	}

	plan, err := dilution.NewPlan(input)
	if err != nil {
		metrics.RecordCalculation(string(dilution.PathwayDirect), "error")
		out.Error = err.Error()
		return out
	}
	result, err := plan.Finalize(dilution.StageTwoInput{
		ActualWeight: row.WeighedAmounts[idx],
		Tubes:        row.MGITTubes[idx],
	})
	if err != nil {
		metrics.RecordCalculation(string(plan.Pathway()), "error")
		out.Error = err.Error()
		return out
	}
	metrics.RecordCalculation(string(plan.Pathway()), "success")

	out.Result = &dto.StageTwoResponse{
		DrugID:   drug.DrugID,
		DrugName: drug.Name,
		Diluent:  drug.Diluent,
		Protocol: s.defaultProtocol.Name,
		Result:   result,
	}
	return out
}

// resolveDrug maps a selector to a reference record. Selectors are drug
// IDs, or 1-based indices into the available list for compatibility
// with hand-written batch files.
func (s *BatchServiceImpl) resolveDrug(ctx context.Context, selector string, available []model.DrugReference) (*model.DrugReference, error) {
	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > len(available) {
			return nil, fmt.Errorf("drug index %d out of range (1-%d)", n, len(available))
		}
		return &available[n-1], nil
	}
	return s.drugs.Get(ctx, selector)
}

func (s *BatchServiceImpl) auditBatch(ctx context.Context, resp *dto.BatchResponse) {
	if s.logging == nil {
		return
	}
	entry := &model.LogEntry{
		Level:      "info",
		Message:    "batch run processed",
		ActionType: model.ActionBatch,
	}
	entry.WithField("row_count", resp.RowCount).
		WithField("drug_count", resp.DrugCount).
		WithField("error_count", resp.ErrorCount)
	_ = s.logging.CreateLog(ctx, entry)
}
