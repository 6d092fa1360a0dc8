package repository

import (
	"context"

	"github.com/openpdst/dst-service/internal/circuitbreaker"
	"github.com/openpdst/dst-service/internal/domain/model"
)

// DrugRepositoryWithCircuitBreaker wraps DrugRepository with circuit
// breaker protection. Reads fall back to the built-in drug panel when
// the circuit is open so calculations stay available during a MongoDB
// outage.
type DrugRepositoryWithCircuitBreaker struct {
	repo           *DrugRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDrugRepositoryWithCircuitBreaker creates a new drug repository
// wrapper with circuit breaker.
func NewDrugRepositoryWithCircuitBreaker(repo *DrugRepository, cb *circuitbreaker.CircuitBreaker) *DrugRepositoryWithCircuitBreaker {
	return &DrugRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByDrugID looks up a drug with circuit breaker protection. When the
// circuit is open the default panel serves as read-only fallback.
func (r *DrugRepositoryWithCircuitBreaker) GetByDrugID(ctx context.Context, drugID string) (*model.DrugReference, error) {
	var result *model.DrugReference
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByDrugID(ctx, drugID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		for i := range model.DefaultDrugPanel {
			if model.DefaultDrugPanel[i].DrugID == drugID {
				drug := model.DefaultDrugPanel[i]
				return &drug, nil
			}
		}
		return nil, ErrDrugNotFound
	}
	return result, err
}

// List returns drug references with circuit breaker protection. When
// the circuit is open the default panel serves as read-only fallback.
func (r *DrugRepositoryWithCircuitBreaker) List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error) {
	var result []model.DrugReference
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, availableOnly)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		fallback := make([]model.DrugReference, len(model.DefaultDrugPanel))
		copy(fallback, model.DefaultDrugPanel)
		return fallback, nil
	}
	return result, err
}

// Create inserts a drug with circuit breaker protection.
func (r *DrugRepositoryWithCircuitBreaker) Create(ctx context.Context, drug *model.DrugReference) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, drug)
	})
}

// UpdateAvailability updates a drug's availability with circuit breaker
// protection.
func (r *DrugRepositoryWithCircuitBreaker) UpdateAvailability(ctx context.Context, drugID string, available bool) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateAvailability(ctx, drugID, available)
	})
}

// SeedDefaultPanel seeds the panel with circuit breaker protection.
func (r *DrugRepositoryWithCircuitBreaker) SeedDefaultPanel(ctx context.Context) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SeedDefaultPanel(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *DrugRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit
// breaker protection. Writes fail silently when the circuit is open;
// logging is non-critical.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new logs repository
// wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
