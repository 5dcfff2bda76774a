package dto

import (
	"time"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// ResourceResponse represents a shared learning resource
type ResourceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ResourceType string    `json:"resourceType,omitempty"`
	FilePath     string    `json:"filePath,omitempty"`
	ExternalLink string    `json:"externalLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToResourceResponse maps a resource model to its response form
func ToResourceResponse(r *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		ResourceType: r.ResourceType,
		FilePath:     r.FilePath,
		ExternalLink: r.ExternalLink,
		CreatedAt:    r.CreatedAt,
	}
}

// ToResourceResponses maps a slice of resources
func ToResourceResponses(resources []*models.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, ToResourceResponse(r))
	}
	return out
}

// PublishInstructionRequest posts a new active instruction
type PublishInstructionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// InstructionResponse represents a student instruction
type InstructionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToInstructionResponse maps an instruction model to its response form
func ToInstructionResponse(i *models.Instruction) InstructionResponse {
	return InstructionResponse{
		ID:        i.ID,
		Title:     i.Title,
		Content:   i.Content,
		IsActive:  i.IsActive,
		CreatedAt: i.CreatedAt,
	}
}

// ToInstructionResponses maps a slice of instructions
func ToInstructionResponses(instructions []*models.Instruction) []InstructionResponse {
	out := make([]InstructionResponse, 0, len(instructions))
	for _, i := range instructions {
		out = append(out, ToInstructionResponse(i))
	}
	return out
}

// GalleryResponse represents a public gallery entry
type GalleryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	ImagePath   string    `json:"imagePath"`
	ProgramID   string    `json:"programId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToGalleryResponse maps a gallery model to its response form
func ToGalleryResponse(g *models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImagePath:   g.ImagePath,
		ProgramID:   g.ProgramID,
		CreatedAt:   g.CreatedAt,
	}
}

// ToGalleryResponses maps a slice of gallery entries
func ToGalleryResponses(entries []*models.Gallery) []GalleryResponse {
	out := make([]GalleryResponse, 0, len(entries))
	for _, g := range entries {
		out = append(out, ToGalleryResponse(g))
	}
	return out
}

// PublishNewsRequest posts a news item
type PublishNewsRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// NewsResponse represents a public news item
type NewsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	Image       string    `json:"image,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToNewsResponse maps a news model to its response form
func ToNewsResponse(n *models.News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Image:       n.Image,
		IsPublished: n.IsPublished,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNewsResponses maps a slice of news items
func ToNewsResponses(items []*models.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToNewsResponse(n))
	}
	return out
}
