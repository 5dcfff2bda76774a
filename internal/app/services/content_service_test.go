package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

type contentFixture struct {
	resourceRepo    *fakeResourceRepo
	instructionRepo *fakeInstructionRepo
	mediaRepo       *fakeMediaRepo
	storage         *fakeFileStore
	svc             ContentService
}

func newContentFixture() *contentFixture {
	f := &contentFixture{
		resourceRepo:    newFakeResourceRepo(),
		instructionRepo: newFakeInstructionRepo(),
		mediaRepo:       newFakeMediaRepo(),
		storage:         &fakeFileStore{},
	}
	f.svc = NewContentService(f.resourceRepo, f.instructionRepo, f.mediaRepo, f.storage, zerolog.Nop())
	return f
}

func upload(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestUploadResourceWithFile(t *testing.T) {
	f := newContentFixture()

	resource, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{
		Title:        "NSS Handbook",
		ResourceType: "pdf",
		File:         upload("handbook.pdf", 1024),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, "resources/handbook.pdf", resource.FilePath)
	assert.Equal(t, "admin-1", resource.CreatedBy)
	assert.Contains(t, f.storage.saved, "resources/handbook.pdf")
}

func TestUploadResourceWithLink(t *testing.T) {
	f := newContentFixture()

	resource, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{
		Title:        "Reference video",
		ResourceType: "link",
		ExternalLink: "https://example.org/video",
	})
	require.NoError(t, err)
	assert.Empty(t, resource.FilePath)
	assert.Equal(t, "https://example.org/video", resource.ExternalLink)
}

func TestUploadResourceRequiresFileOrLink(t *testing.T) {
	f := newContentFixture()
	_, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{Title: "Empty"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUploadResourceRejectsFileAndLink(t *testing.T) {
	f := newContentFixture()

	_, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{
		Title:        "NSS Handbook",
		File:         upload("handbook.pdf", 1024),
		ExternalLink: "https://example.com/handbook",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, f.storage.saved, "nothing is stored when the input is rejected")
	assert.Empty(t, f.resourceRepo.resources)
}

func TestUploadResourceCleansUpOnSaveFailure(t *testing.T) {
	f := newContentFixture()
	f.storage.saveErr = errors.New("disk full")

	_, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{
		Title: "NSS Handbook",
		File:  upload("handbook.pdf", 1024),
	})
	require.Error(t, err)
	assert.Empty(t, f.storage.saved)
}

func TestDeleteResourceRemovesFile(t *testing.T) {
	f := newContentFixture()
	resource, err := f.svc.UploadResource(context.Background(), "admin-1", UploadResourceInput{
		Title: "NSS Handbook",
		File:  upload("handbook.pdf", 1024),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteResource(context.Background(), resource.ID))
	assert.Empty(t, f.storage.saved)

	err = f.svc.DeleteResource(context.Background(), resource.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestPublishInstructionKeepsSingleActive(t *testing.T) {
	f := newContentFixture()

	first, err := f.svc.PublishInstruction(context.Background(), "admin-1", "Week 1", "Form your tolis.")
	require.NoError(t, err)
	second, err := f.svc.PublishInstruction(context.Background(), "admin-1", "Week 2", "Submit your first program.")
	require.NoError(t, err)

	active, err := f.svc.ActiveInstruction(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	all, err := f.svc.ListInstructions(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	for _, in := range all {
		if in.ID == first.ID {
			assert.False(t, in.IsActive, "publishing deactivates the previous instruction")
		}
	}
}

func TestActiveInstructionWhenNonePublished(t *testing.T) {
	f := newContentFixture()
	_, err := f.svc.ActiveInstruction(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAddGalleryEntry(t *testing.T) {
	f := newContentFixture()

	entry, err := f.svc.AddGalleryEntry(context.Background(), "admin-1", GalleryEntryInput{
		Title: "Plantation drive",
		Image: upload("drive.jpg", 1024),
	})
	require.NoError(t, err)
	assert.Equal(t, "gallery/drive.jpg", entry.ImagePath)
	assert.Equal(t, "admin-1", entry.CreatedBy)

	_, err = f.svc.AddGalleryEntry(context.Background(), "admin-1", GalleryEntryInput{Title: "No image"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestPublishNews(t *testing.T) {
	f := newContentFixture()

	item, err := f.svc.PublishNews(context.Background(), "admin-1", PublishNewsInput{
		Title:   "Camp announced",
		Content: "The annual camp starts next month.",
		Image:   upload("camp.jpg", 512),
	})
	require.NoError(t, err)
	assert.True(t, item.IsPublished)
	assert.Equal(t, "news/camp.jpg", item.Image)

	require.NoError(t, f.svc.DeleteNews(context.Background(), item.ID))
	assert.ErrorIs(t, f.svc.DeleteNews(context.Background(), item.ID), apperrors.ErrResourceNotFound)
}
