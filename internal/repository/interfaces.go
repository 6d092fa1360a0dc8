// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpdst/dst-service/internal/domain/model"
)

// DrugRepositoryInterface defines drug reference store operations.
type DrugRepositoryInterface interface {
	GetByDrugID(ctx context.Context, drugID string) (*model.DrugReference, error)
	List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error)
	Create(ctx context.Context, drug *model.DrugReference) error
	UpdateAvailability(ctx context.Context, drugID string, available bool) error
	SeedDefaultPanel(ctx context.Context) error
}

// SessionRepositoryInterface defines protocol session persistence.
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *model.ProtocolSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.ProtocolSession, error)
	Update(ctx context.Context, session *model.ProtocolSession) error
	List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// UserRepositoryInterface defines user persistence operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

// LogsRepositoryInterface defines log persistence operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
