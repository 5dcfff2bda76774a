// Package services holds the business logic between the HTTP controllers and
// the persistence gateway. Repository dependencies are expressed as
// interfaces satisfied by the repositories package.
package services

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// UserRepo is the slice of the users gateway the services need.
type UserRepo interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByScholarNo(ctx context.Context, scholarNo string) (*models.User, error)
	List(ctx context.Context, role models.Role) ([]*models.User, error)
	StudentsWithoutToli(ctx context.Context) ([]*models.User, error)
	CountByRole(ctx context.Context, role models.Role) int64
	Update(ctx context.Context, id string, partial bson.M) (bool, error)
	SetToliID(ctx context.Context, id, toliID string) (bool, error)
}

// ToliRepo is the slice of the tolis gateway the services need.
type ToliRepo interface {
	Create(ctx context.Context, toli *models.Toli) (string, error)
	GetByID(ctx context.Context, id string) (*models.Toli, error)
	List(ctx context.Context, status models.ToliStatus) ([]*models.Toli, error)
	Count(ctx context.Context) int64
	CountByStatus(ctx context.Context, status models.ToliStatus) int64
	Update(ctx context.Context, id string, partial bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProgramRepo is the slice of the programs gateway the services need.
type ProgramRepo interface {
	Create(ctx context.Context, program *models.Program) (string, error)
	GetByID(ctx context.Context, id string) (*models.Program, error)
	List(ctx context.Context) ([]*models.Program, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Program, error)
	ListByToli(ctx context.Context, toliID string) ([]*models.Program, error)
	CountByStudent(ctx context.Context, studentID string) int64
	Count(ctx context.Context) int64
	CountByStatus(ctx context.Context, status models.ProgramStatus) int64
	Update(ctx context.Context, id string, partial bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DocumentRepo is the gateway for generated reports and newsletters.
type DocumentRepo interface {
	Create(ctx context.Context, doc *models.GeneratedDocument) (string, error)
	GetByProgram(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error)
	List(ctx context.Context, kind models.DocumentKind) ([]*models.GeneratedDocument, error)
}

// ResourceRepo is the gateway for uploaded resources.
type ResourceRepo interface {
	Create(ctx context.Context, resource *models.Resource) (string, error)
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context) ([]*models.Resource, error)
	Count(ctx context.Context) int64
	Delete(ctx context.Context, id string) (bool, error)
}

// MessageRepo is the gateway for messages and notification feed rows.
type MessageRepo interface {
	Create(ctx context.Context, message *models.Message) (string, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Message, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (bool, error)
}

// InstructionRepo is the gateway for student instructions.
type InstructionRepo interface {
	Create(ctx context.Context, instruction *models.Instruction) (string, error)
	List(ctx context.Context) ([]*models.Instruction, error)
	Active(ctx context.Context) (*models.Instruction, error)
	DeactivateAll(ctx context.Context) error
}

// MediaRepo is the gateway for gallery entries and news items.
type MediaRepo interface {
	CreateGallery(ctx context.Context, entry *models.Gallery) (string, error)
	ListGallery(ctx context.Context) ([]*models.Gallery, error)
	DeleteGallery(ctx context.Context, id string) (bool, error)
	CreateNews(ctx context.Context, item *models.News) (string, error)
	ListNews(ctx context.Context) ([]*models.News, error)
	DeleteNews(ctx context.Context, id string) (bool, error)
}

// FileStore abstracts the local upload storage.
type FileStore interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(relPath string) error
}
