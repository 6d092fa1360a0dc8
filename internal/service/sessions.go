package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/repository"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session not found")

// SessionService manages protocol sessions: saving a run's per-drug
// inputs and restoring them later.
type SessionService interface {
	Save(ctx context.Context, userID string, req *dto.SaveSessionRequest) (*model.ProtocolSession, error)
	Get(ctx context.Context, sessionID string) (*model.ProtocolSession, error)
	List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionServiceImpl implements SessionService.
type SessionServiceImpl struct {
	repo repository.SessionRepositoryInterface
}

// NewSessionService creates a new session service.
func NewSessionService(repo repository.SessionRepositoryInterface) *SessionServiceImpl {
	return &SessionServiceImpl{repo: repo}
}

// Save creates a session from the request, assigning a fresh session ID.
func (s *SessionServiceImpl) Save(ctx context.Context, userID string, req *dto.SaveSessionRequest) (*model.ProtocolSession, error) {
	entries := make([]model.SessionDrugEntry, len(req.Drugs))
	for i, d := range req.Drugs {
		entries[i] = model.SessionDrugEntry{
			DrugID:                d.DrugID,
			CriticalConcentration: d.CriticalConcentration,
			PurchasedMW:           d.PurchasedMW,
			PurityPercent:         d.PurityPercent,
			StockVolume:           d.StockVolume,
			MakeStock:             d.MakeStock,
			ActualWeight:          d.ActualWeight,
			Tubes:                 d.Tubes,
		}
	}

	session := &model.ProtocolSession{
		SessionID: uuid.NewString(),
		Name:      req.Name,
		UserID:    userID,
		Protocol:  req.Protocol,
		Drugs:     entries,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session with the given ID.
func (s *SessionServiceImpl) Get(ctx context.Context, sessionID string) (*model.ProtocolSession, error) {
	session, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// List returns recent sessions, optionally scoped to a user.
func (s *SessionServiceImpl) List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error) {
	return s.repo.List(ctx, userID, limit)
}

// Delete removes a session.
func (s *SessionServiceImpl) Delete(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}
