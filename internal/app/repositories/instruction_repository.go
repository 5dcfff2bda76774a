package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/logger"
)

const instructionsCollection = "instructions"

// InstructionRepository handles the 'instructions' collection.
type InstructionRepository struct {
	store *Store
}

// NewInstructionRepository creates a new InstructionRepository.
func NewInstructionRepository(store *Store) *InstructionRepository {
	return &InstructionRepository{store: store}
}

// Create inserts an instruction and returns the new id.
func (r *InstructionRepository) Create(ctx context.Context, instruction *models.Instruction) (string, error) {
	return r.store.insertOne(ctx, instructionsCollection, instruction.Doc())
}

// List returns all instructions, newest first.
func (r *InstructionRepository) List(ctx context.Context) ([]*models.Instruction, error) {
	docs, err := r.store.findAll(ctx, instructionsCollection, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	instructions := make([]*models.Instruction, 0, len(docs))
	for _, doc := range docs {
		instructions = append(instructions, models.NewInstructionFromDoc(doc))
	}
	return instructions, nil
}

// Active returns the single active instruction, nil when none is active.
func (r *InstructionRepository) Active(ctx context.Context) (*models.Instruction, error) {
	doc, err := r.store.findOne(ctx, instructionsCollection, bson.M{"is_active": true})
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewInstructionFromDoc(doc), nil
}

// DeactivateAll clears the active flag on every instruction.
func (r *InstructionRepository) DeactivateAll(ctx context.Context) error {
	if !r.store.Connected() {
		return apperrors.ErrNotConnected
	}
	_, err := r.store.collection(instructionsCollection).UpdateMany(ctx,
		bson.M{"is_active": true}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to deactivate instructions")
	}
	return err
}
