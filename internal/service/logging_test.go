//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openpdst/dst-service/internal/domain/model"
)

type stubLogsRepository struct {
	mock.Mock
}

func (m *stubLogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *stubLogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *stubLogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LogEntry), args.Error(1)
}

func (m *stubLogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func TestLoggingService(t *testing.T) {
	ctx := context.Background()

	t.Run("create log delegates to the repository", func(t *testing.T) {
		repo := new(stubLogsRepository)
		entry := &model.LogEntry{Level: "info", Message: "test"}
		repo.On("Create", mock.Anything, entry).Return(nil)

		svc := NewLoggingService(repo)
		assert.NoError(t, svc.CreateLog(ctx, entry))
		repo.AssertExpectations(t)
	})

	t.Run("bulk create skips empty batches", func(t *testing.T) {
		repo := new(stubLogsRepository)
		svc := NewLoggingService(repo)

		assert.NoError(t, svc.CreateLogs(ctx, nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("bulk create delegates non-empty batches", func(t *testing.T) {
		repo := new(stubLogsRepository)
		entries := []*model.LogEntry{{Message: "one"}, {Message: "two"}}
		repo.On("CreateMany", mock.Anything, entries).Return(nil)

		svc := NewLoggingService(repo)
		assert.NoError(t, svc.CreateLogs(ctx, entries))
		repo.AssertExpectations(t)
	})

	t.Run("query and count pass the options through", func(t *testing.T) {
		repo := new(stubLogsRepository)
		opts := model.LogQueryOptions{RequestID: "req-1", Limit: 10}
		repo.On("Query", mock.Anything, opts).Return([]*model.LogEntry{{Message: "hit"}}, nil)
		repo.On("Count", mock.Anything, opts).Return(int64(1), nil)

		svc := NewLoggingService(repo)

		entries, err := svc.QueryLogs(ctx, opts)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		count, err := svc.CountLogs(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		repo.AssertExpectations(t)
	})
}
