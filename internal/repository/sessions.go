package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openpdst/dst-service/internal/domain/model"
)

// SessionRepository persists protocol sessions so technicians can
// resume a run between the weighing step and the final dilution.
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *MongoDB) *SessionRepository {
	return &SessionRepository{collection: db.Sessions}
}

// Create inserts a new session.
func (r *SessionRepository) Create(ctx context.Context, session *model.ProtocolSession) error {
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// GetBySessionID returns the session with the given identifier, or nil
// when it does not exist.
func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*model.ProtocolSession, error) {
	var session model.ProtocolSession
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update replaces the drug entries of an existing session.
func (r *SessionRepository) Update(ctx context.Context, session *model.ProtocolSession) error {
	session.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"session_id": session.SessionID},
		bson.M{"$set": bson.M{
			"name":       session.Name,
			"protocol":   session.Protocol,
			"drugs":      session.Drugs,
			"updated_at": session.UpdatedAt,
		}},
	)
	return err
}

// List returns the most recent sessions, optionally filtered by user.
func (r *SessionRepository) List(ctx context.Context, userID string, limit int) ([]model.ProtocolSession, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	findOptions := options.Find().SetSort(bson.M{"updated_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var sessions []model.ProtocolSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
