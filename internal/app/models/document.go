package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// GeneratedDocument is a synthesized HTML report or newsletter, stored in the
// 'reports' or 'newsletters' collection. Content is a deterministic function
// of the program/toli/author snapshot at generation time.
type GeneratedDocument struct {
	ID                string
	ProgramID         string
	Kind              DocumentKind
	Title             string
	Content           string
	ProgramType       string
	Location          string
	Date              time.Time
	ParticipantsCount int
	Achievements      string
	OrganizerName     string
	ToliName          string
	Status            string
	CreatedBy         string
	AIGenerated       bool
	CreatedAt         time.Time
}

// NewGeneratedDocumentFromDoc builds a GeneratedDocument from a stored mapping.
func NewGeneratedDocumentFromDoc(doc bson.M) *GeneratedDocument {
	status := getString(doc, "status")
	if status == "" {
		status = "published"
	}
	return &GeneratedDocument{
		ID:                docID(doc),
		ProgramID:         getString(doc, "program_id"),
		Kind:              DocumentKind(getString(doc, "kind")),
		Title:             getString(doc, "title"),
		Content:           getString(doc, "content"),
		ProgramType:       getString(doc, "program_type"),
		Location:          getString(doc, "location"),
		Date:              getTime(doc, "date"),
		ParticipantsCount: getInt(doc, "participants_count"),
		Achievements:      getString(doc, "achievements"),
		OrganizerName:     getString(doc, "organizer_name"),
		ToliName:          getString(doc, "toli_name"),
		Status:            status,
		CreatedBy:         getString(doc, "created_by"),
		AIGenerated:       getBool(doc, "ai_generated"),
		CreatedAt:         getTime(doc, "created_at"),
	}
}

// Doc serializes the document back to its stored mapping.
func (d *GeneratedDocument) Doc() bson.M {
	return bson.M{
		"program_id":         d.ProgramID,
		"kind":               string(d.Kind),
		"title":              d.Title,
		"content":            d.Content,
		"program_type":       d.ProgramType,
		"location":           d.Location,
		"date":               d.Date,
		"participants_count": d.ParticipantsCount,
		"achievements":       d.Achievements,
		"organizer_name":     d.OrganizerName,
		"toli_name":          d.ToliName,
		"status":             d.Status,
		"created_by":         d.CreatedBy,
		"ai_generated":       d.AIGenerated,
		"created_at":         d.CreatedAt,
	}
}
