package dto

import (
	"time"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// ProgramResponse represents a submitted activity program
type ProgramResponse struct {
	ID               string    `json:"id"`
	ProgramNo        int       `json:"programNo"`
	Title            string    `json:"title"`
	ProgramType      string    `json:"programType,omitempty"`
	Location         string    `json:"location,omitempty"`
	State            string    `json:"state,omitempty"`
	City             string    `json:"city,omitempty"`
	Pincode          string    `json:"pincode,omitempty"`
	StartDate        time.Time `json:"startDate"`
	TotalPersons     int       `json:"totalPersons"`
	Achievements     string    `json:"achievements,omitempty"`
	OrganizerName    string    `json:"organizerName,omitempty"`
	OrganizerContact string    `json:"organizerContact,omitempty"`
	StudentID        string    `json:"studentId"`
	ToliID           string    `json:"toliId"`
	Images           []string  `json:"images"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToProgramResponse maps a program model to its response form
func ToProgramResponse(p *models.Program) ProgramResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProgramResponse{
		ID:               p.ID,
		ProgramNo:        p.ProgramNo,
		Title:            p.Title,
		ProgramType:      p.ProgramType,
		Location:         p.Location,
		State:            p.State,
		City:             p.City,
		Pincode:          p.Pincode,
		StartDate:        p.StartDate,
		TotalPersons:     p.TotalPersons,
		Achievements:     p.Achievements,
		OrganizerName:    p.OrganizerName,
		OrganizerContact: p.OrganizerContact,
		StudentID:        p.StudentID,
		ToliID:           p.ToliID,
		Images:           images,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

// ToProgramResponses maps a slice of programs
func ToProgramResponses(programs []*models.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, ToProgramResponse(p))
	}
	return out
}

// DocumentResponse represents a generated report or newsletter
type DocumentResponse struct {
	ID                string    `json:"id"`
	ProgramID         string    `json:"programId"`
	Kind              string    `json:"kind"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	ProgramType       string    `json:"programType,omitempty"`
	Location          string    `json:"location,omitempty"`
	Date              time.Time `json:"date"`
	ParticipantsCount int       `json:"participantsCount"`
	Achievements      string    `json:"achievements,omitempty"`
	OrganizerName     string    `json:"organizerName,omitempty"`
	ToliName          string    `json:"toliName,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToDocumentResponse maps a generated document to its response form
func ToDocumentResponse(d *models.GeneratedDocument) DocumentResponse {
	return DocumentResponse{
		ID:                d.ID,
		ProgramID:         d.ProgramID,
		Kind:              string(d.Kind),
		Title:             d.Title,
		Content:           d.Content,
		ProgramType:       d.ProgramType,
		Location:          d.Location,
		Date:              d.Date,
		ParticipantsCount: d.ParticipantsCount,
		Achievements:      d.Achievements,
		OrganizerName:     d.OrganizerName,
		ToliName:          d.ToliName,
		Status:            d.Status,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDocumentResponses maps a slice of generated documents
func ToDocumentResponses(docs []*models.GeneratedDocument) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToDocumentResponse(d))
	}
	return out
}
