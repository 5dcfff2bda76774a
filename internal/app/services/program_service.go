package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/filestorage"
	"github.com/dishaportal/disha-backend/internal/pkg/helpers"
)

// ProgramService defines program submission and retrieval operations.
type ProgramService interface {
	SubmitProgram(ctx context.Context, studentID string, input SubmitProgramInput) (*models.Program, error)
	GetProgram(ctx context.Context, id string) (*models.Program, error)
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Program, error)
	ListByToli(ctx context.Context, toliID string) ([]*models.Program, error)
	DeleteProgram(ctx context.Context, id string) error
}

// SubmitProgramInput carries the program submission form. StartDate accepts a
// "2006-01-02" date, an RFC3339 timestamp, or nothing.
type SubmitProgramInput struct {
	Title            string
	ProgramType      string
	Location         string
	State            string
	City             string
	Pincode          string
	StartDate        string
	TotalPersons     int
	Achievements     string
	OrganizerName    string
	OrganizerContact string
	Images           []*multipart.FileHeader
}

type programServiceImpl struct {
	programRepo ProgramRepo
	toliRepo    ToliRepo
	userRepo    UserRepo
	docService  DocumentService
	storage     FileStore
	logger      zerolog.Logger
}

// NewProgramService creates a new program service instance.
func NewProgramService(programRepo ProgramRepo, toliRepo ToliRepo, userRepo UserRepo, docService DocumentService, storage FileStore, logger zerolog.Logger) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		toliRepo:    toliRepo,
		userRepo:    userRepo,
		docService:  docService,
		storage:     storage,
		logger:      logger,
	}
}

// SubmitProgram persists a pending program for a student whose toli is
// active, saves uploaded images, and synthesizes the report and newsletter.
// Image and document failures are best-effort; only the program insert is
// fatal.
func (s *programServiceImpl) SubmitProgram(ctx context.Context, studentID string, input SubmitProgramInput) (*models.Program, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("program title is required")
	}
	if input.TotalPersons < 0 {
		return nil, apperrors.NewValidationError("total persons cannot be negative")
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if student.ToliID == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrToliNotActive,
			"you must belong to an active toli before submitting a program")
	}

	toli, err := s.toliRepo.GetByID(ctx, student.ToliID)
	if err != nil {
		return nil, fmt.Errorf("error loading toli: %w", err)
	}
	if toli == nil || toli.Status != models.ToliStatusActive {
		return nil, apperrors.NewCustomError(apperrors.ErrToliNotActive,
			"your toli is not active yet, please wait for admin approval and location assignment")
	}

	// Derived per student at submission time. Concurrent submissions by the
	// same student can race and produce duplicates.
	programNo := int(s.programRepo.CountByStudent(ctx, studentID)) + 1

	program := &models.Program{
		ProgramNo:        programNo,
		Title:            input.Title,
		ProgramType:      input.ProgramType,
		Location:         input.Location,
		State:            input.State,
		City:             input.City,
		Pincode:          input.Pincode,
		StartDate:        helpers.NormalizeStartDate(input.StartDate),
		TotalPersons:     input.TotalPersons,
		Achievements:     input.Achievements,
		OrganizerName:    input.OrganizerName,
		OrganizerContact: input.OrganizerContact,
		StudentID:        studentID,
		ToliID:           toli.ID,
		Images:           []string{},
		Status:           models.ProgramStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("error creating program: %w", err)
	}
	program.ID = id

	program.Images = s.saveImages(id, input.Images)
	if len(program.Images) > 0 {
		if _, err := s.programRepo.Update(ctx, id, bson.M{"images": program.Images}); err != nil {
			s.logger.Error().Err(err).Str("programID", id).Msg("Failed to record image paths")
		}
	}

	if err := s.docService.GenerateForProgram(ctx, program, toli, student); err != nil {
		s.logger.Error().Err(err).Str("programID", id).Msg("Document generation failed")
	}

	s.logger.Info().Str("programID", id).Int("programNo", programNo).Str("toliNo", toli.ToliNo).Msg("Program submitted")
	return program, nil
}

// saveImages stores uploads under the program's subdirectory. Oversized or
// unreadable images are skipped, not fatal.
func (s *programServiceImpl) saveImages(programID string, images []*multipart.FileHeader) []string {
	paths := []string{}
	for _, fh := range images {
		relPath, err := s.storage.SaveImage(fh, "programs/"+programID)
		if err != nil {
			if errors.Is(err, filestorage.ErrFileTooLarge) {
				s.logger.Warn().Str("filename", fh.Filename).Msg("Skipping image over size limit")
			} else {
				s.logger.Warn().Err(err).Str("filename", fh.Filename).Msg("Skipping image")
			}
			continue
		}
		if relPath != "" {
			paths = append(paths, relPath)
		}
	}
	return paths
}

// GetProgram returns a program by id.
func (s *programServiceImpl) GetProgram(ctx context.Context, id string) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	if program == nil {
		return nil, apperrors.ErrProgramNotFound
	}
	return program, nil
}

// ListPrograms returns all programs.
func (s *programServiceImpl) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.programRepo.List(ctx)
}

// ListByStudent returns a student's submissions.
func (s *programServiceImpl) ListByStudent(ctx context.Context, studentID string) ([]*models.Program, error) {
	return s.programRepo.ListByStudent(ctx, studentID)
}

// ListByToli returns a toli's programs.
func (s *programServiceImpl) ListByToli(ctx context.Context, toliID string) ([]*models.Program, error) {
	return s.programRepo.ListByToli(ctx, toliID)
}

// DeleteProgram removes a program.
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	deleted, err := s.programRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if !deleted {
		return apperrors.ErrProgramNotFound
	}
	return nil
}
