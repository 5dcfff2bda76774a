package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// News is a public announcement in the 'news' collection.
type News struct {
	ID          string
	Title       string
	Content     string
	Image       string
	CreatedBy   string
	IsPublished bool
	CreatedAt   time.Time
}

// NewNewsFromDoc builds a News item from a stored document.
func NewNewsFromDoc(doc bson.M) *News {
	published := true
	if _, ok := doc["is_published"]; ok {
		published = getBool(doc, "is_published")
	}
	return &News{
		ID:          docID(doc),
		Title:       getString(doc, "title"),
		Content:     getString(doc, "content"),
		Image:       getString(doc, "image"),
		CreatedBy:   getString(doc, "created_by"),
		IsPublished: published,
		CreatedAt:   getTime(doc, "created_at"),
	}
}

// Doc serializes the news item back to its stored mapping.
func (n *News) Doc() bson.M {
	return bson.M{
		"title":        n.Title,
		"content":      n.Content,
		"image":        n.Image,
		"created_by":   n.CreatedBy,
		"is_published": n.IsPublished,
		"created_at":   n.CreatedAt,
	}
}

// Gallery is a public photo entry, optionally linked to a program.
type Gallery struct {
	ID          string
	Title       string
	Description string
	ImagePath   string
	ProgramID   string
	CreatedBy   string
	CreatedAt   time.Time
}

// NewGalleryFromDoc builds a Gallery entry from a stored document.
func NewGalleryFromDoc(doc bson.M) *Gallery {
	return &Gallery{
		ID:          docID(doc),
		Title:       getString(doc, "title"),
		Description: getString(doc, "description"),
		ImagePath:   getString(doc, "image_path"),
		ProgramID:   getString(doc, "program_id"),
		CreatedBy:   getString(doc, "created_by"),
		CreatedAt:   getTime(doc, "created_at"),
	}
}

// Doc serializes the gallery entry back to its stored mapping.
func (g *Gallery) Doc() bson.M {
	return bson.M{
		"title":       g.Title,
		"description": g.Description,
		"image_path":  g.ImagePath,
		"program_id":  g.ProgramID,
		"created_by":  g.CreatedBy,
		"created_at":  g.CreatedAt,
	}
}

// Instruction is guidance text for students. Only one instruction may be
// active at a time; activating a new one deactivates the rest.
type Instruction struct {
	ID        string
	Title     string
	Content   string
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
}

// NewInstructionFromDoc builds an Instruction from a stored document.
func NewInstructionFromDoc(doc bson.M) *Instruction {
	return &Instruction{
		ID:        docID(doc),
		Title:     getString(doc, "title"),
		Content:   getString(doc, "content"),
		IsActive:  getBool(doc, "is_active"),
		CreatedBy: getString(doc, "created_by"),
		CreatedAt: getTime(doc, "created_at"),
	}
}

// Doc serializes the instruction back to its stored mapping.
func (i *Instruction) Doc() bson.M {
	return bson.M{
		"title":      i.Title,
		"content":    i.Content,
		"is_active":  i.IsActive,
		"created_by": i.CreatedBy,
		"created_at": i.CreatedAt,
	}
}
