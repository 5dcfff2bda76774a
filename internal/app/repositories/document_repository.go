package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// Generated documents live in two collections, one per kind.
const (
	reportsCollection     = "reports"
	newslettersCollection = "newsletters"
)

// DocumentRepository handles the 'reports' and 'newsletters' collections.
type DocumentRepository struct {
	store *Store
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func collectionForKind(kind models.DocumentKind) string {
	if kind == models.DocumentKindNewsletter {
		return newslettersCollection
	}
	return reportsCollection
}

// Create inserts a generated document and returns the new id.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.GeneratedDocument) (string, error) {
	return r.store.insertOne(ctx, collectionForKind(doc.Kind), doc.Doc())
}

// GetByProgram retrieves the cached document of a kind for a program, nil
// when none has been generated yet.
func (r *DocumentRepository) GetByProgram(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error) {
	doc, err := r.store.findOne(ctx, collectionForKind(kind), bson.M{"program_id": programID})
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewGeneratedDocumentFromDoc(doc), nil
}

// List returns all documents of a kind, newest first.
func (r *DocumentRepository) List(ctx context.Context, kind models.DocumentKind) ([]*models.GeneratedDocument, error) {
	docs, err := r.store.findAll(ctx, collectionForKind(kind), bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*models.GeneratedDocument, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.NewGeneratedDocumentFromDoc(doc))
	}
	return out, nil
}
