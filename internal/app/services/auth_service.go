package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/auth"
)

// AuthService defines account registration and login operations.
type AuthService interface {
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, int, error)
	AddStudent(ctx context.Context, input RegisterStudentInput) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error)
}

// RegisterStudentInput carries a student signup form.
type RegisterStudentInput struct {
	ScholarNo string
	Name      string
	Email     string
	DOB       string
	Course    string
	Contact   string
	Password  string
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Name    string
	Course  string
	Contact string
	DOB     string
}

type authServiceImpl struct {
	userRepo   UserRepo
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(userRepo UserRepo, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *authServiceImpl) validateRegistration(input RegisterStudentInput) error {
	if strings.TrimSpace(input.ScholarNo) == "" {
		return apperrors.NewValidationError("scholar number is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return apperrors.NewValidationError("a valid email is required")
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// RegisterStudent creates a student account after uniqueness checks.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, input RegisterStudentInput) (*models.User, error) {
	if err := s.validateRegistration(input); err != nil {
		return nil, err
	}

	if existing, err := s.userRepo.GetByEmail(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if existing, err := s.userRepo.GetByScholarNo(ctx, input.ScholarNo); err != nil {
		return nil, fmt.Errorf("error checking scholar number: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrScholarNoExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ScholarNo:    input.ScholarNo,
		Name:         input.Name,
		Email:        input.Email,
		DOB:          input.DOB,
		Course:       input.Course,
		Contact:      input.Contact,
		Role:         models.RoleStudent,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	s.logger.Info().Str("scholarNo", user.ScholarNo).Msg("Student registered")
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", 0, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.ScholarNo, user.Email, string(user.Role))
	if err != nil {
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}
	return user, token, expiresIn, nil
}

// AddStudent is the admin path for creating a student directly.
func (s *authServiceImpl) AddStudent(ctx context.Context, input RegisterStudentInput) (*models.User, error) {
	return s.RegisterStudent(ctx, input)
}

// GetProfile returns the account for the given id.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the editable profile fields.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	partial := bson.M{}
	if input.Name != "" {
		partial["name"] = input.Name
		user.Name = input.Name
	}
	if input.Course != "" {
		partial["course"] = input.Course
		user.Course = input.Course
	}
	if input.Contact != "" {
		partial["contact"] = input.Contact
		user.Contact = input.Contact
	}
	if input.DOB != "" {
		partial["dob"] = input.DOB
		user.DOB = input.DOB
	}
	if len(partial) == 0 {
		return user, nil
	}

	if _, err := s.userRepo.Update(ctx, userID, partial); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}
