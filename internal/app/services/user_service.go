package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// UserService exposes the user listings.
type UserService interface {
	ListStudents(ctx context.Context) ([]*models.User, error)
	StudentsWithoutToli(ctx context.Context) ([]*models.User, error)
	ListStaff(ctx context.Context) ([]*models.User, error)
}

type userServiceImpl struct {
	userRepo UserRepo
	logger   zerolog.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo UserRepo, logger zerolog.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// ListStudents returns every student account.
func (s *userServiceImpl) ListStudents(ctx context.Context) ([]*models.User, error) {
	students, err := s.userRepo.List(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// StudentsWithoutToli returns students not yet assigned to any toli.
func (s *userServiceImpl) StudentsWithoutToli(ctx context.Context) ([]*models.User, error) {
	students, err := s.userRepo.StudentsWithoutToli(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing unassigned students: %w", err)
	}
	return students, nil
}

// ListStaff returns the staff accounts shown on the public staff page.
func (s *userServiceImpl) ListStaff(ctx context.Context) ([]*models.User, error) {
	staff, err := s.userRepo.List(ctx, models.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	return staff, nil
}
