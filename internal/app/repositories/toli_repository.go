package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

const tolisCollection = "tolis"

// ToliRepository handles the 'tolis' collection.
type ToliRepository struct {
	store *Store
}

// NewToliRepository creates a new ToliRepository.
func NewToliRepository(store *Store) *ToliRepository {
	return &ToliRepository{store: store}
}

// Create inserts a toli and returns the new id.
func (r *ToliRepository) Create(ctx context.Context, toli *models.Toli) (string, error) {
	return r.store.insertOne(ctx, tolisCollection, toli.Doc())
}

// GetByID retrieves a toli by id, nil when absent.
func (r *ToliRepository) GetByID(ctx context.Context, id string) (*models.Toli, error) {
	doc, err := r.store.findByID(ctx, tolisCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewToliFromDoc(doc), nil
}

// List returns all tolis, optionally restricted to a status.
func (r *ToliRepository) List(ctx context.Context, status models.ToliStatus) ([]*models.Toli, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	docs, err := r.store.findAll(ctx, tolisCollection, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	tolis := make([]*models.Toli, 0, len(docs))
	for _, doc := range docs {
		tolis = append(tolis, models.NewToliFromDoc(doc))
	}
	return tolis, nil
}

// Count counts all tolis.
func (r *ToliRepository) Count(ctx context.Context) int64 {
	return r.store.count(ctx, tolisCollection, bson.M{})
}

// CountByStatus counts tolis in the given status.
func (r *ToliRepository) CountByStatus(ctx context.Context, status models.ToliStatus) int64 {
	return r.store.count(ctx, tolisCollection, bson.M{"status": string(status)})
}

// Update applies a partial update; false when no toli matched.
func (r *ToliRepository) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	return r.store.updateByID(ctx, tolisCollection, id, partial)
}

// Delete removes a toli; false when no toli matched.
func (r *ToliRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, tolisCollection, id)
}
