//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/mocks"
	"github.com/openpdst/dst-service/internal/repository"
)

func TestDrugService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the drug from the repository", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "inh").Return(isoniazidRef(), nil)

		svc := NewDrugService(repo)
		drug, err := svc.Get(ctx, "inh")
		require.NoError(t, err)
		assert.Equal(t, "Isoniazid (INH)", drug.Name)
		repo.AssertExpectations(t)
	})

	t.Run("unknown drug", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "nope").Return(nil, repository.ErrDrugNotFound)

		svc := NewDrugService(repo)
		_, err := svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrDrugNotFound)
	})

	t.Run("caches lookups", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "inh").Return(isoniazidRef(), nil).Once()

		svc := NewDrugService(repo, WithDrugCache(10, time.Minute))
		defer svc.Stop()

		for i := 0; i < 3; i++ {
			drug, err := svc.Get(ctx, "inh")
			require.NoError(t, err)
			assert.Equal(t, "inh", drug.DrugID)
		}
		repo.AssertExpectations(t)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "nope").Return(nil, repository.ErrDrugNotFound).Twice()

		svc := NewDrugService(repo, WithDrugCache(10, time.Minute))
		defer svc.Stop()

		_, err := svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrDrugNotFound)
		_, err = svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrDrugNotFound)
		repo.AssertExpectations(t)
	})
}

func TestDrugService_Create(t *testing.T) {
	ctx := context.Background()

	newDrug := func() *model.DrugReference {
		return &model.DrugReference{
			DrugID:                "sm",
			Name:                  "Streptomycin (SM)",
			MolecularWeight:       581.57,
			CriticalConcentration: 1.0,
			Available:             true,
		}
	}

	t.Run("creates a new drug", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "sm").Return(nil, repository.ErrDrugNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewDrugService(repo)
		require.NoError(t, svc.Create(ctx, newDrug()))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate drug id", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "sm").Return(newDrug(), nil)

		svc := NewDrugService(repo)
		err := svc.Create(ctx, newDrug())
		assert.ErrorIs(t, err, ErrDrugExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid reference record", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		svc := NewDrugService(repo)

		drug := newDrug()
		drug.MolecularWeight = 0
		assert.Error(t, svc.Create(ctx, drug))
		repo.AssertNotCalled(t, "GetByDrugID", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure aborts the create", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "sm").Return(nil, assert.AnError)

		svc := NewDrugService(repo)
		assert.ErrorIs(t, svc.Create(ctx, newDrug()), assert.AnError)
	})
}

func TestDrugService_UpdateAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates the cached record", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("GetByDrugID", mock.Anything, "inh").Return(isoniazidRef(), nil).Twice()
		repo.On("UpdateAvailability", mock.Anything, "inh", false).Return(nil)

		svc := NewDrugService(repo, WithDrugCache(10, time.Minute))
		defer svc.Stop()

		_, err := svc.Get(ctx, "inh")
		require.NoError(t, err)

		require.NoError(t, svc.UpdateAvailability(ctx, "inh", false))

		// The next lookup must hit the repository again.
		_, err = svc.Get(ctx, "inh")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		repo := new(mocks.MockDrugRepositoryInterface)
		repo.On("UpdateAvailability", mock.Anything, "nope", true).Return(repository.ErrDrugNotFound)

		svc := NewDrugService(repo)
		assert.ErrorIs(t, svc.UpdateAvailability(ctx, "nope", true), repository.ErrDrugNotFound)
	})
}

func TestDrugService_ListAndSeed(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockDrugRepositoryInterface)
	repo.On("List", mock.Anything, true).Return([]model.DrugReference{*isoniazidRef()}, nil)
	repo.On("SeedDefaultPanel", mock.Anything).Return(nil)

	svc := NewDrugService(repo)

	drugs, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, drugs, 1)

	assert.NoError(t, svc.SeedDefaultPanel(ctx))
	repo.AssertExpectations(t)
}
