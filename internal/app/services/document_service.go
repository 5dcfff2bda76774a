package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/docgen"
)

// DocumentService synthesizes and serves the generated report and newsletter
// documents.
type DocumentService interface {
	GenerateForProgram(ctx context.Context, program *models.Program, toli *models.Toli, author *models.User) error
	GetDocument(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error)
	ListNewsletters(ctx context.Context) ([]*models.GeneratedDocument, error)
}

type documentServiceImpl struct {
	docRepo     DocumentRepo
	programRepo ProgramRepo
	toliRepo    ToliRepo
	userRepo    UserRepo
	logger      zerolog.Logger
}

// NewDocumentService creates a new document service instance.
func NewDocumentService(docRepo DocumentRepo, programRepo ProgramRepo, toliRepo ToliRepo, userRepo UserRepo, logger zerolog.Logger) DocumentService {
	return &documentServiceImpl{
		docRepo:     docRepo,
		programRepo: programRepo,
		toliRepo:    toliRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func programView(program *models.Program, toli *models.Toli, author *models.User) docgen.ProgramView {
	view := docgen.ProgramView{
		Title:             program.Title,
		ProgramNo:         program.ProgramNo,
		ProgramType:       program.ProgramType,
		Date:              program.StartDate.Format("02 Jan 2006"),
		Location:          program.Location,
		OrganizerName:     program.OrganizerName,
		OrganizerContact:  program.OrganizerContact,
		ParticipantsCount: program.TotalPersons,
		Achievements:      program.Achievements,
		Images:            program.Images,
	}
	if view.Location == "" {
		view.Location = program.City
	}
	if toli != nil {
		view.ToliName = toli.Name
	}
	if author != nil {
		view.StudentName = author.Name
		view.ScholarNo = author.ScholarNo
	}
	return view
}

// GenerateForProgram renders and persists both documents for a program. Each
// document is an independent best-effort side effect: a failure is logged
// and does not fail the caller.
func (s *documentServiceImpl) GenerateForProgram(ctx context.Context, program *models.Program, toli *models.Toli, author *models.User) error {
	view := programView(program, toli, author)

	if err := s.generateOne(ctx, models.DocumentKindReport, program, view); err != nil {
		s.logger.Error().Err(err).Str("programID", program.ID).Msg("Report generation failed")
	}
	if err := s.generateOne(ctx, models.DocumentKindNewsletter, program, view); err != nil {
		s.logger.Error().Err(err).Str("programID", program.ID).Msg("Newsletter generation failed")
	}
	return nil
}

func (s *documentServiceImpl) generateOne(ctx context.Context, kind models.DocumentKind, program *models.Program, view docgen.ProgramView) error {
	var (
		content string
		err     error
	)
	switch kind {
	case models.DocumentKindNewsletter:
		content, err = docgen.RenderNewsletter(view)
	default:
		content, err = docgen.RenderReport(view)
	}
	if err != nil {
		return err
	}

	doc := &models.GeneratedDocument{
		ProgramID:         program.ID,
		Kind:              kind,
		Title:             program.Title,
		Content:           content,
		ProgramType:       program.ProgramType,
		Location:          view.Location,
		Date:              program.StartDate,
		ParticipantsCount: program.TotalPersons,
		Achievements:      program.Achievements,
		OrganizerName:     program.OrganizerName,
		ToliName:          view.ToliName,
		Status:            "published",
		CreatedBy:         program.StudentID,
		CreatedAt:         time.Now().UTC(),
	}
	id, err := s.docRepo.Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("error persisting %s: %w", kind, err)
	}
	doc.ID = id
	return nil
}

// GetDocument returns the cached document for a program, regenerating it
// from the program's current persisted state when none exists yet.
func (s *documentServiceImpl) GetDocument(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error) {
	doc, err := s.docRepo.GetByProgram(ctx, kind, programID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving document: %w", err)
	}
	if doc != nil {
		return doc, nil
	}

	// Lazy regeneration from current state, not the original snapshot.
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("error loading program for regeneration: %w", err)
	}
	if program == nil {
		return nil, apperrors.ErrProgramNotFound
	}

	toli, _ := s.toliRepo.GetByID(ctx, program.ToliID)
	author, _ := s.userRepo.GetByID(ctx, program.StudentID)

	view := programView(program, toli, author)
	if err := s.generateOne(ctx, kind, program, view); err != nil {
		return nil, err
	}

	doc, err = s.docRepo.GetByProgram(ctx, kind, programID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving regenerated document: %w", err)
	}
	if doc == nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	return doc, nil
}

// ListNewsletters returns all generated newsletters for the public page.
func (s *documentServiceImpl) ListNewsletters(ctx context.Context) ([]*models.GeneratedDocument, error) {
	return s.docRepo.List(ctx, models.DocumentKindNewsletter)
}
