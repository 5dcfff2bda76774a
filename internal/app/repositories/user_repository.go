package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

const usersCollection = "users"

// UserRepository handles the 'users' collection.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// isDuplicateKeyError checks for a unique index violation.
func isDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// Create inserts a user and returns the new id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	id, err := r.store.insertOne(ctx, usersCollection, user.Doc())
	if err != nil {
		if isDuplicateKeyError(err) {
			return "", apperrors.ErrScholarNoExists
		}
		return "", err
	}
	return id, nil
}

// GetByID retrieves a user by id, nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := r.store.findByID(ctx, usersCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewUserFromDoc(doc), nil
}

// GetByEmail retrieves a user by email, nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := r.store.findOne(ctx, usersCollection, bson.M{"email": email})
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewUserFromDoc(doc), nil
}

// GetByScholarNo retrieves a user by scholar number, nil when absent.
func (r *UserRepository) GetByScholarNo(ctx context.Context, scholarNo string) (*models.User, error) {
	doc, err := r.store.findOne(ctx, usersCollection, bson.M{"scholar_no": scholarNo})
	if err != nil || doc == nil {
		return nil, err
	}
	return models.NewUserFromDoc(doc), nil
}

// List returns all users, optionally restricted to a role.
func (r *UserRepository) List(ctx context.Context, role models.Role) ([]*models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = string(role)
	}
	docs, err := r.store.findAll(ctx, usersCollection, filter)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, models.NewUserFromDoc(doc))
	}
	return users, nil
}

// StudentsWithoutToli returns students with no toli assignment.
func (r *UserRepository) StudentsWithoutToli(ctx context.Context) ([]*models.User, error) {
	filter := bson.M{
		"role": string(models.RoleStudent),
		"$or": []bson.M{
			{"toli_id": ""},
			{"toli_id": nil},
			{"toli_id": bson.M{"$exists": false}},
		},
	}
	docs, err := r.store.findAll(ctx, usersCollection, filter,
		options.Find().SetSort(bson.D{{Key: "scholar_no", Value: 1}}))
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, models.NewUserFromDoc(doc))
	}
	return users, nil
}

// CountByRole counts users with the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) int64 {
	return r.store.count(ctx, usersCollection, bson.M{"role": string(role)})
}

// Update applies a partial update; false when no user matched.
func (r *UserRepository) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	return r.store.updateByID(ctx, usersCollection, id, partial)
}

// SetToliID sets or clears the toli back-reference on a user.
func (r *UserRepository) SetToliID(ctx context.Context, id, toliID string) (bool, error) {
	return r.store.updateByID(ctx, usersCollection, id, bson.M{"toli_id": toliID})
}

// Delete removes a user; false when no user matched.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.deleteByID(ctx, usersCollection, id)
}
