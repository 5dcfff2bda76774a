package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// ContentService manages resources, news items, gallery entries and the
// active student instruction.
type ContentService interface {
	UploadResource(ctx context.Context, uploaderID string, input UploadResourceInput) (*models.Resource, error)
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	ListResources(ctx context.Context) ([]*models.Resource, error)
	DeleteResource(ctx context.Context, id string) error

	PublishInstruction(ctx context.Context, adminID, title, content string) (*models.Instruction, error)
	ActiveInstruction(ctx context.Context) (*models.Instruction, error)
	ListInstructions(ctx context.Context) ([]*models.Instruction, error)

	AddGalleryEntry(ctx context.Context, adminID string, input GalleryEntryInput) (*models.Gallery, error)
	ListGallery(ctx context.Context) ([]*models.Gallery, error)
	DeleteGalleryEntry(ctx context.Context, id string) error

	PublishNews(ctx context.Context, adminID string, input PublishNewsInput) (*models.News, error)
	ListNews(ctx context.Context) ([]*models.News, error)
	DeleteNews(ctx context.Context, id string) error
}

// UploadResourceInput carries a resource upload. Either File or ExternalLink
// must be set.
type UploadResourceInput struct {
	Title        string
	Description  string
	ResourceType string
	File         *multipart.FileHeader
	ExternalLink string
}

// GalleryEntryInput carries a gallery upload.
type GalleryEntryInput struct {
	Title       string
	Description string
	ProgramID   string
	Image       *multipart.FileHeader
}

// PublishNewsInput carries a news item.
type PublishNewsInput struct {
	Title   string
	Content string
	Image   *multipart.FileHeader
}

type contentServiceImpl struct {
	resourceRepo    ResourceRepo
	instructionRepo InstructionRepo
	mediaRepo       MediaRepo
	storage         FileStore
	logger          zerolog.Logger
}

// NewContentService creates a new content service instance.
func NewContentService(resourceRepo ResourceRepo, instructionRepo InstructionRepo, mediaRepo MediaRepo, storage FileStore, logger zerolog.Logger) ContentService {
	return &contentServiceImpl{
		resourceRepo:    resourceRepo,
		instructionRepo: instructionRepo,
		mediaRepo:       mediaRepo,
		storage:         storage,
		logger:          logger,
	}
}

// UploadResource stores a shared study resource: either an uploaded file or
// an external link.
func (s *contentServiceImpl) UploadResource(ctx context.Context, uploaderID string, input UploadResourceInput) (*models.Resource, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("resource title is required")
	}
	hasLink := strings.TrimSpace(input.ExternalLink) != ""
	if input.File == nil && !hasLink {
		return nil, apperrors.NewValidationError("either a file or an external link is required")
	}
	// A resource carries exactly one of file_path and external_link.
	if input.File != nil && hasLink {
		return nil, apperrors.NewValidationError("supply either a file or an external link, not both")
	}

	resource := &models.Resource{
		Title:        input.Title,
		Description:  input.Description,
		ResourceType: input.ResourceType,
		ExternalLink: input.ExternalLink,
		CreatedBy:    uploaderID,
		CreatedAt:    time.Now().UTC(),
	}
	if input.File != nil {
		relPath, err := s.storage.SaveFile(input.File, "resources")
		if err != nil {
			return nil, fmt.Errorf("error saving resource file: %w", err)
		}
		resource.FilePath = relPath
	}

	id, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		if resource.FilePath != "" {
			if delErr := s.storage.DeleteFile(resource.FilePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", resource.FilePath).Msg("Failed to clean up resource file")
			}
		}
		return nil, fmt.Errorf("error creating resource: %w", err)
	}
	resource.ID = id
	s.logger.Info().Str("resourceID", id).Str("title", resource.Title).Msg("Resource uploaded")
	return resource, nil
}

// GetResource returns a resource by id.
func (s *contentServiceImpl) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}
	if resource == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return resource, nil
}

// ListResources returns all resources.
func (s *contentServiceImpl) ListResources(ctx context.Context) ([]*models.Resource, error) {
	return s.resourceRepo.List(ctx)
}

// DeleteResource removes a resource and its stored file, if any.
func (s *contentServiceImpl) DeleteResource(ctx context.Context, id string) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving resource: %w", err)
	}
	if resource == nil {
		return apperrors.ErrResourceNotFound
	}
	if _, err := s.resourceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if resource.FilePath != "" {
		if err := s.storage.DeleteFile(resource.FilePath); err != nil {
			s.logger.Warn().Err(err).Str("path", resource.FilePath).Msg("Failed to delete resource file")
		}
	}
	return nil
}

// PublishInstruction deactivates every previous instruction and publishes a
// new active one. At most one instruction is active at a time.
func (s *contentServiceImpl) PublishInstruction(ctx context.Context, adminID, title, content string) (*models.Instruction, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("instruction content is required")
	}
	if err := s.instructionRepo.DeactivateAll(ctx); err != nil {
		return nil, fmt.Errorf("error deactivating previous instructions: %w", err)
	}
	instruction := &models.Instruction{
		Title:     title,
		Content:   content,
		IsActive:  true,
		CreatedBy: adminID,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.instructionRepo.Create(ctx, instruction)
	if err != nil {
		return nil, fmt.Errorf("error creating instruction: %w", err)
	}
	instruction.ID = id
	return instruction, nil
}

// ActiveInstruction returns the currently active instruction, or a not found
// error when none is active.
func (s *contentServiceImpl) ActiveInstruction(ctx context.Context) (*models.Instruction, error) {
	instruction, err := s.instructionRepo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active instruction: %w", err)
	}
	if instruction == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return instruction, nil
}

// ListInstructions returns every instruction, active or not.
func (s *contentServiceImpl) ListInstructions(ctx context.Context) ([]*models.Instruction, error) {
	return s.instructionRepo.List(ctx)
}

// AddGalleryEntry saves an image to the public gallery.
func (s *contentServiceImpl) AddGalleryEntry(ctx context.Context, adminID string, input GalleryEntryInput) (*models.Gallery, error) {
	if input.Image == nil {
		return nil, apperrors.NewValidationError("gallery image is required")
	}
	relPath, err := s.storage.SaveImage(input.Image, "gallery")
	if err != nil {
		return nil, fmt.Errorf("error saving gallery image: %w", err)
	}
	entry := &models.Gallery{
		Title:       input.Title,
		Description: input.Description,
		ImagePath:   relPath,
		ProgramID:   input.ProgramID,
		CreatedBy:   adminID,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.mediaRepo.CreateGallery(ctx, entry)
	if err != nil {
		if delErr := s.storage.DeleteFile(relPath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", relPath).Msg("Failed to clean up gallery image")
		}
		return nil, fmt.Errorf("error creating gallery entry: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// ListGallery returns all gallery entries.
func (s *contentServiceImpl) ListGallery(ctx context.Context) ([]*models.Gallery, error) {
	return s.mediaRepo.ListGallery(ctx)
}

// DeleteGalleryEntry removes a gallery entry.
func (s *contentServiceImpl) DeleteGalleryEntry(ctx context.Context, id string) error {
	deleted, err := s.mediaRepo.DeleteGallery(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting gallery entry: %w", err)
	}
	if !deleted {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// PublishNews creates a published news item, with an optional cover image.
func (s *contentServiceImpl) PublishNews(ctx context.Context, adminID string, input PublishNewsInput) (*models.News, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("news title is required")
	}
	item := &models.News{
		Title:       input.Title,
		Content:     input.Content,
		CreatedBy:   adminID,
		IsPublished: true,
		CreatedAt:   time.Now().UTC(),
	}
	if input.Image != nil {
		relPath, err := s.storage.SaveImage(input.Image, "news")
		if err != nil {
			return nil, fmt.Errorf("error saving news image: %w", err)
		}
		item.Image = relPath
	}
	id, err := s.mediaRepo.CreateNews(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating news item: %w", err)
	}
	item.ID = id
	return item, nil
}

// ListNews returns all news items.
func (s *contentServiceImpl) ListNews(ctx context.Context) ([]*models.News, error) {
	return s.mediaRepo.ListNews(ctx)
}

// DeleteNews removes a news item.
func (s *contentServiceImpl) DeleteNews(ctx context.Context, id string) error {
	deleted, err := s.mediaRepo.DeleteNews(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting news item: %w", err)
	}
	if !deleted {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
