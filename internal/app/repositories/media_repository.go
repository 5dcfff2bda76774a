package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

const (
	galleryCollection = "gallery"
	newsCollection    = "news"
)

// MediaRepository handles the public-facing 'gallery' and 'news' collections.
type MediaRepository struct {
	store *Store
}

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(store *Store) *MediaRepository {
	return &MediaRepository{store: store}
}

// CreateGallery inserts a gallery entry and returns the new id.
func (r *MediaRepository) CreateGallery(ctx context.Context, entry *models.Gallery) (string, error) {
	return r.store.insertOne(ctx, galleryCollection, entry.Doc())
}

// ListGallery returns all gallery entries, newest first.
func (r *MediaRepository) ListGallery(ctx context.Context) ([]*models.Gallery, error) {
	docs, err := r.store.findAll(ctx, galleryCollection, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	entries := make([]*models.Gallery, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.NewGalleryFromDoc(doc))
	}
	return entries, nil
}

// DeleteGallery removes a gallery entry; false when none matched.
func (r *MediaRepository) DeleteGallery(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, galleryCollection, id)
}

// CreateNews inserts a news item and returns the new id.
func (r *MediaRepository) CreateNews(ctx context.Context, item *models.News) (string, error) {
	return r.store.insertOne(ctx, newsCollection, item.Doc())
}

// ListNews returns published news items, newest first.
func (r *MediaRepository) ListNews(ctx context.Context) ([]*models.News, error) {
	docs, err := r.store.findAll(ctx, newsCollection, bson.M{"is_published": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := make([]*models.News, 0, len(docs))
	for _, doc := range docs {
		items = append(items, models.NewNewsFromDoc(doc))
	}
	return items, nil
}

// DeleteNews removes a news item; false when none matched.
func (r *MediaRepository) DeleteNews(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, newsCollection, id)
}
