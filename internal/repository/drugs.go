package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openpdst/dst-service/internal/domain/model"
)

// ErrDrugNotFound is returned when a drug identifier is not in the
// reference store.
var ErrDrugNotFound = errors.New("drug not found")

// DrugRepository provides access to the drug reference collection. The
// calculation layer treats the returned records as an immutable
// snapshot.
type DrugRepository struct {
	collection *mongo.Collection
}

// NewDrugRepository creates a new drug reference repository.
func NewDrugRepository(db *MongoDB) *DrugRepository {
	return &DrugRepository{collection: db.Drugs}
}

// GetByDrugID returns the reference record for the given identifier.
func (r *DrugRepository) GetByDrugID(ctx context.Context, drugID string) (*model.DrugReference, error) {
	var drug model.DrugReference
	err := r.collection.FindOne(ctx, bson.M{"drug_id": drugID}).Decode(&drug)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDrugNotFound
	}
	if err != nil {
		return nil, err
	}
	return &drug, nil
}

// List returns all reference records, sorted by name. When
// availableOnly is set, unavailable drugs are filtered out.
func (r *DrugRepository) List(ctx context.Context, availableOnly bool) ([]model.DrugReference, error) {
	filter := bson.M{}
	if availableOnly {
		filter["available"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var drugs []model.DrugReference
	if err := cursor.All(ctx, &drugs); err != nil {
		return nil, err
	}
	return drugs, nil
}

// Create inserts a new reference record.
func (r *DrugRepository) Create(ctx context.Context, drug *model.DrugReference) error {
	if drug.ID.IsZero() {
		drug.ID = primitive.NewObjectID()
	}
	drug.CreatedAt = time.Now()
	drug.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, drug)
	return err
}

// UpdateAvailability flips the availability flag of a drug.
func (r *DrugRepository) UpdateAvailability(ctx context.Context, drugID string, available bool) error {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"drug_id": drugID},
		bson.M{"$set": bson.M{"available": available, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrDrugNotFound
	}
	return nil
}

// SeedDefaultPanel inserts the standard drug panel when the collection
// is empty, so a fresh deployment is usable out of the box.
func (r *DrugRepository) SeedDefaultPanel(ctx context.Context) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(model.DefaultDrugPanel))
	now := time.Now()
	for _, drug := range model.DefaultDrugPanel {
		drug.ID = primitive.NewObjectID()
		drug.CreatedAt = now
		drug.UpdatedAt = now
		docs = append(docs, drug)
	}

	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
