package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Program is a single dated community-service activity submitted by a student
// on behalf of their toli.
type Program struct {
	ID               string
	ProgramNo        int
	Title            string
	ProgramType      string
	Location         string
	State            string
	City             string
	Pincode          string
	StartDate        time.Time
	TotalPersons     int
	Achievements     string
	OrganizerName    string
	OrganizerContact string
	StudentID        string
	ToliID           string
	Images           []string
	Status           ProgramStatus
	CreatedAt        time.Time
}

// NewProgramFromDoc builds a Program from a stored document, filling defaults.
func NewProgramFromDoc(doc bson.M) *Program {
	status := ProgramStatus(getString(doc, "status"))
	if status == "" {
		status = ProgramStatusPending
	}
	return &Program{
		ID:               docID(doc),
		ProgramNo:        getInt(doc, "program_no"),
		Title:            getString(doc, "title"),
		ProgramType:      getString(doc, "program_type"),
		Location:         getString(doc, "location"),
		State:            getString(doc, "state"),
		City:             getString(doc, "city"),
		Pincode:          getString(doc, "pincode"),
		StartDate:        getTime(doc, "start_date"),
		TotalPersons:     getInt(doc, "total_persons"),
		Achievements:     getString(doc, "achievements"),
		OrganizerName:    getString(doc, "organizer_name"),
		OrganizerContact: getString(doc, "organizer_contact"),
		StudentID:        getString(doc, "student_id"),
		ToliID:           getString(doc, "toli_id"),
		Images:           getStringSlice(doc, "images"),
		Status:           status,
		CreatedAt:        getTime(doc, "created_at"),
	}
}

// Doc serializes the program back to its stored mapping.
func (p *Program) Doc() bson.M {
	return bson.M{
		"program_no":        p.ProgramNo,
		"title":             p.Title,
		"program_type":      p.ProgramType,
		"location":          p.Location,
		"state":             p.State,
		"city":              p.City,
		"pincode":           p.Pincode,
		"start_date":        p.StartDate,
		"total_persons":     p.TotalPersons,
		"achievements":      p.Achievements,
		"organizer_name":    p.OrganizerName,
		"organizer_contact": p.OrganizerContact,
		"student_id":        p.StudentID,
		"toli_id":           p.ToliID,
		"images":            p.Images,
		"status":            string(p.Status),
		"created_at":        p.CreatedAt,
	}
}
