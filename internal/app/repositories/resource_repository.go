package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

const resourcesCollection = "resources"

// ResourceRepository handles the 'resources' collection.
type ResourceRepository struct {
	store *Store
}

// NewResourceRepository creates a new ResourceRepository.
func NewResourceRepository(store *Store) *ResourceRepository {
	return &ResourceRepository{store: store}
}

// Create inserts a resource and returns the new id.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (string, error) {
	return r.store.insertOne(ctx, resourcesCollection, resource.Doc())
}

// GetByID retrieves a resource by id, nil when absent.
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	doc, err := r.store.findByID(ctx, resourcesCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewResourceFromDoc(doc), nil
}

// List returns all resources, newest first.
func (r *ResourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	docs, err := r.store.findAll(ctx, resourcesCollection, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	resources := make([]*models.Resource, 0, len(docs))
	for _, doc := range docs {
		resources = append(resources, models.NewResourceFromDoc(doc))
	}
	return resources, nil
}

// Count counts all resources.
func (r *ResourceRepository) Count(ctx context.Context) int64 {
	return r.store.count(ctx, resourcesCollection, bson.M{})
}

// Delete removes a resource; false when no resource matched.
func (r *ResourceRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, resourcesCollection, id)
}
