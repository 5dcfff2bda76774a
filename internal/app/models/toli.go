package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ToliMember is a member snapshot embedded in a toli document.
type ToliMember struct {
	MemberNumber int
	ScholarNo    string
	Name         string
	Course       string
	DOB          string
	Contact      string
	Email        string
	IsLeader     bool
}

// NewToliMemberFromDoc builds a member snapshot from its embedded mapping.
func NewToliMemberFromDoc(doc bson.M) ToliMember {
	return ToliMember{
		MemberNumber: getInt(doc, "member_number"),
		ScholarNo:    getString(doc, "scholar_no"),
		Name:         getString(doc, "name"),
		Course:       getString(doc, "course"),
		DOB:          getString(doc, "dob"),
		Contact:      getString(doc, "contact"),
		Email:        getString(doc, "email"),
		IsLeader:     getBool(doc, "is_leader"),
	}
}

// Doc serializes the member snapshot.
func (m ToliMember) Doc() bson.M {
	return bson.M{
		"member_number": m.MemberNumber,
		"scholar_no":    m.ScholarNo,
		"name":          m.Name,
		"course":        m.Course,
		"dob":           m.DOB,
		"contact":       m.Contact,
		"email":         m.Email,
		"is_leader":     m.IsLeader,
	}
}

// ToliLocation is the assigned service location of an active toli.
type ToliLocation struct {
	City  string
	State string
}

// Toli is a student team in the 'tolis' collection. Member snapshots are
// embedded; each member user additionally carries a toli_id back-reference.
type Toli struct {
	ID                 string
	Name               string
	ToliNo             string
	Location           ToliLocation
	Members            []ToliMember
	LeaderID           string
	Status             ToliStatus
	SessionYear        string
	CreatedBy          string
	CoordinatorName    string
	CoordinatorContact string
	CreatedAt          time.Time
	ApprovedAt         *time.Time
}

// NewToliFromDoc builds a Toli from a stored document, filling defaults.
func NewToliFromDoc(doc bson.M) *Toli {
	status := ToliStatus(getString(doc, "status"))
	if status == "" {
		status = ToliStatusDraft
	}
	members := []ToliMember{}
	for _, m := range getDocSlice(doc, "members") {
		members = append(members, NewToliMemberFromDoc(m))
	}
	loc := getDoc(doc, "location")
	return &Toli{
		ID:                 docID(doc),
		Name:               getString(doc, "name"),
		ToliNo:             getString(doc, "toli_no"),
		Location:           ToliLocation{City: getString(loc, "city"), State: getString(loc, "state")},
		Members:            members,
		LeaderID:           getString(doc, "leader_id"),
		Status:             status,
		SessionYear:        getString(doc, "session_year"),
		CreatedBy:          getString(doc, "created_by"),
		CoordinatorName:    getString(doc, "coordinator_name"),
		CoordinatorContact: getString(doc, "coordinator_contact"),
		CreatedAt:          getTime(doc, "created_at"),
		ApprovedAt:         getTimePtr(doc, "approved_at"),
	}
}

// Doc serializes the toli back to its stored mapping.
func (t *Toli) Doc() bson.M {
	members := make([]bson.M, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, m.Doc())
	}
	doc := bson.M{
		"name":                t.Name,
		"toli_no":             t.ToliNo,
		"location":            bson.M{"city": t.Location.City, "state": t.Location.State},
		"members":             members,
		"leader_id":           t.LeaderID,
		"status":              string(t.Status),
		"session_year":        t.SessionYear,
		"created_by":          t.CreatedBy,
		"coordinator_name":    t.CoordinatorName,
		"coordinator_contact": t.CoordinatorContact,
		"created_at":          t.CreatedAt,
	}
	if t.ApprovedAt != nil {
		doc["approved_at"] = *t.ApprovedAt
	}
	return doc
}

// MemberByScholarNo returns the embedded member with the given scholar number.
func (t *Toli) MemberByScholarNo(scholarNo string) (ToliMember, bool) {
	for _, m := range t.Members {
		if m.ScholarNo == scholarNo {
			return m, true
		}
	}
	return ToliMember{}, false
}

// Leader returns the member flagged is_leader, if any.
func (t *Toli) Leader() (ToliMember, bool) {
	for _, m := range t.Members {
		if m.IsLeader {
			return m, true
		}
	}
	return ToliMember{}, false
}
