package service

import (
	"context"
	"errors"
	"time"

	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/repository"
	"github.com/openpdst/dst-service/internal/service/cache"
)

// ErrDrugExists is returned when creating a drug whose ID is taken.
var ErrDrugExists = errors.New("drug already exists")

// DrugService provides drug reference operations.
type DrugService interface {
	Get(ctx context.Context, drugID string) (*model.DrugReference, error)
	List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error)
	Create(ctx context.Context, drug *model.DrugReference) error
	UpdateAvailability(ctx context.Context, drugID string, available bool) error
	SeedDefaultPanel(ctx context.Context) error
}

// DrugOption configures a DrugServiceImpl.
type DrugOption func(*DrugServiceImpl)

// DrugServiceImpl implements DrugService with an optional lookup cache.
type DrugServiceImpl struct {
	repo  repository.DrugRepositoryInterface
	cache cache.Cache
}

// NewDrugService creates a new drug reference service.
func NewDrugService(repo repository.DrugRepositoryInterface, opts ...DrugOption) *DrugServiceImpl {
	s := &DrugServiceImpl{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDrugCache enables lookup caching with the given capacity and TTL.
func WithDrugCache(capacity int, ttl time.Duration) DrugOption {
	return func(s *DrugServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithDrugCacheInterface allows injecting a custom cache implementation.
func WithDrugCacheInterface(c cache.Cache) DrugOption {
	return func(s *DrugServiceImpl) {
		s.cache = c
	}
}

// Get returns the reference record for the given drug ID.
func (s *DrugServiceImpl) Get(ctx context.Context, drugID string) (*model.DrugReference, error) {
	if s.cache != nil {
		if drug, ok := s.cache.Get(drugID); ok {
			return drug, nil
		}
	}

	drug, err := s.repo.GetByDrugID(ctx, drugID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(drugID, drug)
	}
	return drug, nil
}

// List returns all drug reference records.
func (s *DrugServiceImpl) List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error) {
	return s.repo.List(ctx, availableOnly)
}

// Create adds a new drug to the reference store.
func (s *DrugServiceImpl) Create(ctx context.Context, drug *model.DrugReference) error {
	if !drug.Valid() {
		return errors.New("invalid drug reference")
	}
	existing, err := s.repo.GetByDrugID(ctx, drug.DrugID)
	if err != nil && err != repository.ErrDrugNotFound {
		return err
	}
	if existing != nil {
		return ErrDrugExists
	}
	return s.repo.Create(ctx, drug)
}

// UpdateAvailability toggles a drug's availability and invalidates the
// cached record.
func (s *DrugServiceImpl) UpdateAvailability(ctx context.Context, drugID string, available bool) error {
	if err := s.repo.UpdateAvailability(ctx, drugID, available); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(drugID)
	}
	return nil
}

// SeedDefaultPanel loads the built-in panel into an empty store.
func (s *DrugServiceImpl) SeedDefaultPanel(ctx context.Context) error {
	return s.repo.SeedDefaultPanel(ctx)
}

// Stop shuts down the lookup cache.
func (s *DrugServiceImpl) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
