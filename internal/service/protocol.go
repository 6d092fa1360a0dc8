package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/metrics"
	"github.com/openpdst/dst-service/internal/repository"
)

// ProtocolService orchestrates the two-stage calculation: drug lookup,
// unit normalization, pathway selection and the dilution formulas.
type ProtocolService interface {
	StageOne(ctx context.Context, req *dto.StageOneRequest) (*dto.StageOneResponse, error)
	StageTwo(ctx context.Context, req *dto.StageTwoRequest) (*dto.StageTwoResponse, error)
	DefaultProtocol() dilution.Protocol
}

// ProtocolServiceImpl implements ProtocolService.
type ProtocolServiceImpl struct {
	drugs           DrugService
	sessions        repository.SessionRepositoryInterface
	logging         LoggingService
	defaultProtocol dilution.Protocol
}

// NewProtocolService creates a new protocol service. The session
// repository and logging service are optional; nil disables session
// persistence and audit logging.
func NewProtocolService(
	drugs DrugService,
	sessions repository.SessionRepositoryInterface,
	logging LoggingService,
	defaultProtocol dilution.Protocol,
) *ProtocolServiceImpl {
	if defaultProtocol == (dilution.Protocol{}) {
		defaultProtocol = dilution.DefaultProtocol
	}
	return &ProtocolServiceImpl{
		drugs:           drugs,
		sessions:        sessions,
		logging:         logging,
		defaultProtocol: defaultProtocol,
	}
}

// DefaultProtocol returns the configured protocol variant.
func (s *ProtocolServiceImpl) DefaultProtocol() dilution.Protocol {
	return s.defaultProtocol
}

// StageOne resolves the drug, normalizes the request and returns the
// weighing instruction.
func (s *ProtocolServiceImpl) StageOne(ctx context.Context, req *dto.StageOneRequest) (*dto.StageOneResponse, error) {
	drug, input, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	plan, err := dilution.NewPlan(input)
	if err != nil {
		metrics.RecordCalculation(string(pathwayOf(input)), "error")
		return nil, err
	}
	stageOne := plan.StageOne()
	metrics.RecordCalculation(string(plan.Pathway()), "success")

	resp := &dto.StageOneResponse{
		DrugID:          drug.DrugID,
		DrugName:        drug.Name,
		Diluent:         drug.Diluent,
		Protocol:        input.Protocol.Name,
		Pathway:         string(plan.Pathway()),
		Potency:         stageOne.Potency,
		EstimatedWeight: stageOne.EstimatedWeight,
	}
	if stageOne.EstimatedWeight > 0 && stageOne.EstimatedWeight < dilution.PracticalWeighingMinimum {
		resp.Warnings = append(resp.Warnings, string(dilution.WarningLowEstimatedWeight))
	}

	s.recordSessionStageOne(ctx, req, stageOne)
	s.audit(ctx, model.ActionStageOne, req.SessionID, map[string]interface{}{
		"drug_id":             drug.DrugID,
		"pathway":             string(plan.Pathway()),
		"estimated_weight_mg": stageOne.EstimatedWeight,
		"potency":             stageOne.Potency,
	})
	return resp, nil
}

// StageTwo resolves the drug, normalizes the request including the
// weighed mass, and returns the full dilution instructions.
func (s *ProtocolServiceImpl) StageTwo(ctx context.Context, req *dto.StageTwoRequest) (*dto.StageTwoResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	drug, input, err := s.prepare(ctx, &req.StageOneRequest)
	if err != nil {
		return nil, err
	}
	weighed, err := req.Weighed()
	if err != nil {
		return nil, err
	}

	plan, err := dilution.NewPlan(input)
	if err != nil {
		metrics.RecordCalculation(string(pathwayOf(input)), "error")
		return nil, err
	}
	result, err := plan.Finalize(weighed)
	if err != nil {
		metrics.RecordCalculation(string(plan.Pathway()), "error")
		return nil, err
	}
	metrics.RecordCalculation(string(plan.Pathway()), "success")

	resp := &dto.StageTwoResponse{
		DrugID:   drug.DrugID,
		DrugName: drug.Name,
		Diluent:  drug.Diluent,
		Protocol: input.Protocol.Name,
		Result:   result,
	}

	s.recordSessionStageTwo(ctx, req, result)
	s.audit(ctx, model.ActionStageTwo, req.SessionID, map[string]interface{}{
		"drug_id":          drug.DrugID,
		"pathway":          string(result.Pathway),
		"actual_weight_mg": result.ActualWeight,
		"mgit_tubes":       result.Tubes,
	})
	return resp, nil
}

// prepare looks up the drug and normalizes the request into a
// canonical-unit calculation input.
func (s *ProtocolServiceImpl) prepare(ctx context.Context, req *dto.StageOneRequest) (*model.DrugReference, dilution.Input, error) {
	if err := req.Validate(); err != nil {
		return nil, dilution.Input{}, err
	}

	drug, err := s.drugs.Get(ctx, req.DrugID)
	if err != nil {
		return nil, dilution.Input{}, err
	}

	input, err := req.Input(drug.MolecularWeight, drug.CriticalConcentration, s.defaultProtocol)
	if err != nil {
		return nil, dilution.Input{}, err
	}
	return drug, input, nil
}

// recordSessionStageOne saves the stage-one snapshot into the session,
// if one is attached. Session persistence is best effort and never
// fails the calculation.
func (s *ProtocolServiceImpl) recordSessionStageOne(ctx context.Context, req *dto.StageOneRequest, stageOne dilution.StageOneResult) {
	if s.sessions == nil || req.SessionID == "" {
		return
	}
	session, err := s.sessions.GetBySessionID(ctx, req.SessionID)
	if err != nil || session == nil {
		return
	}
	entry := session.Entry(req.DrugID)
	if entry == nil {
		session.Drugs = append(session.Drugs, model.SessionDrugEntry{DrugID: req.DrugID})
		entry = &session.Drugs[len(session.Drugs)-1]
	}
	entry.PurchasedMW = req.PurchasedMolecularWeight
	entry.PurityPercent = req.PurityPercent
	entry.StockVolume = req.StockVolume
	entry.MakeStock = req.MakeStock
	entry.Potency = stageOne.Potency
	entry.EstimatedWeight = stageOne.EstimatedWeight
	if req.CriticalConcentration != nil {
		entry.CriticalConcentration = *req.CriticalConcentration
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to update session after stage one")
	}
}

// recordSessionStageTwo saves the weighed values into the session.
func (s *ProtocolServiceImpl) recordSessionStageTwo(ctx context.Context, req *dto.StageTwoRequest, result *dilution.Result) {
	if s.sessions == nil || req.SessionID == "" {
		return
	}
	session, err := s.sessions.GetBySessionID(ctx, req.SessionID)
	if err != nil || session == nil {
		return
	}
	entry := session.Entry(req.DrugID)
	if entry == nil {
		session.Drugs = append(session.Drugs, model.SessionDrugEntry{DrugID: req.DrugID})
		entry = &session.Drugs[len(session.Drugs)-1]
	}
	entry.ActualWeight = result.ActualWeight
	entry.Tubes = result.Tubes
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to update session after stage two")
	}
}

// audit writes an audit log entry; failures are logged and swallowed.
func (s *ProtocolServiceImpl) audit(ctx context.Context, action, sessionID string, fields map[string]interface{}) {
	if s.logging == nil {
		return
	}
	entry := &model.LogEntry{
		Level:      "info",
		Message:    fmt.Sprintf("calculation %s", action),
		ActionType: action,
		SessionID:  sessionID,
		Fields:     fields,
	}
	if err := s.logging.CreateLog(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to write audit log entry")
	}
}

func pathwayOf(in dilution.Input) dilution.Pathway {
	if in.MakeStock {
		return dilution.PathwayStock
	}
	return dilution.PathwayDirect
}
