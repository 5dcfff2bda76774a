package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

const programsCollection = "programs"

// ProgramRepository handles the 'programs' collection.
type ProgramRepository struct {
	store *Store
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(store *Store) *ProgramRepository {
	return &ProgramRepository{store: store}
}

// Create inserts a program and returns the new id.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (string, error) {
	return r.store.insertOne(ctx, programsCollection, program.Doc())
}

// GetByID retrieves a program by id, nil when absent.
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	doc, err := r.store.findByID(ctx, programsCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewProgramFromDoc(doc), nil
}

// List returns all programs, newest first.
func (r *ProgramRepository) List(ctx context.Context) ([]*models.Program, error) {
	return r.listByFilter(ctx, bson.M{})
}

// ListByStudent returns the programs submitted by one student.
func (r *ProgramRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Program, error) {
	return r.listByFilter(ctx, bson.M{"student_id": studentID})
}

// ListByToli returns the programs attributed to one toli.
func (r *ProgramRepository) ListByToli(ctx context.Context, toliID string) ([]*models.Program, error) {
	return r.listByFilter(ctx, bson.M{"toli_id": toliID})
}

func (r *ProgramRepository) listByFilter(ctx context.Context, filter bson.M) ([]*models.Program, error) {
	docs, err := r.store.findAll(ctx, programsCollection, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	programs := make([]*models.Program, 0, len(docs))
	for _, doc := range docs {
		programs = append(programs, models.NewProgramFromDoc(doc))
	}
	return programs, nil
}

// CountByStudent counts the programs submitted by one student. Program
// numbers are derived from this count at submission time.
func (r *ProgramRepository) CountByStudent(ctx context.Context, studentID string) int64 {
	return r.store.count(ctx, programsCollection, bson.M{"student_id": studentID})
}

// Count counts all programs.
func (r *ProgramRepository) Count(ctx context.Context) int64 {
	return r.store.count(ctx, programsCollection, bson.M{})
}

// CountByStatus counts programs in the given status.
func (r *ProgramRepository) CountByStatus(ctx context.Context, status models.ProgramStatus) int64 {
	return r.store.count(ctx, programsCollection, bson.M{"status": string(status)})
}

// Update applies a partial update; false when no program matched.
func (r *ProgramRepository) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	return r.store.updateByID(ctx, programsCollection, id, partial)
}

// Delete removes a program; false when no program matched.
func (r *ProgramRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, programsCollection, id)
}
