package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Resource is learning material uploaded by an admin, either a stored file or
// an external link. Exactly one of FilePath/ExternalLink is set.
type Resource struct {
	ID           string
	Title        string
	Description  string
	ResourceType string
	FilePath     string
	ExternalLink string
	CreatedBy    string
	CreatedAt    time.Time
}

// NewResourceFromDoc builds a Resource from a stored document.
func NewResourceFromDoc(doc bson.M) *Resource {
	return &Resource{
		ID:           docID(doc),
		Title:        getString(doc, "title"),
		Description:  getString(doc, "description"),
		ResourceType: getString(doc, "resource_type"),
		FilePath:     getString(doc, "file_path"),
		ExternalLink: getString(doc, "external_link"),
		CreatedBy:    getString(doc, "created_by"),
		CreatedAt:    getTime(doc, "created_at"),
	}
}

// Doc serializes the resource back to its stored mapping.
func (r *Resource) Doc() bson.M {
	return bson.M{
		"title":         r.Title,
		"description":   r.Description,
		"resource_type": r.ResourceType,
		"file_path":     r.FilePath,
		"external_link": r.ExternalLink,
		"created_by":    r.CreatedBy,
		"created_at":    r.CreatedAt,
	}
}
