package dto

import (
	"time"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// CreateToliRequest represents a student forming a new toli
type CreateToliRequest struct {
	Name             string   `json:"name"`
	ToliNo           string   `json:"toliNo"`
	SessionYear      string   `json:"sessionYear"`
	MemberScholarNos []string `json:"memberScholarNos" binding:"required,min=3,max=4"`
}

// UpdateToliStatusRequest represents an admin status decision
type UpdateToliStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved active rejected"`
}

// AssignLocationRequest represents an admin location assignment
type AssignLocationRequest struct {
	City               string `json:"city" binding:"required"`
	State              string `json:"state"`
	CoordinatorName    string `json:"coordinatorName"`
	CoordinatorContact string `json:"coordinatorContact"`
}

// AssignLeaderRequest picks a member as the toli leader
type AssignLeaderRequest struct {
	ScholarNo string `json:"scholarNo" binding:"required"`
}

// ToliMemberRequest adds a member by scholar number
type ToliMemberRequest struct {
	ScholarNo string `json:"scholarNo" binding:"required"`
}

// ToliMemberResponse represents one member of a toli
type ToliMemberResponse struct {
	MemberNumber int    `json:"memberNumber"`
	ScholarNo    string `json:"scholarNo"`
	Name         string `json:"name"`
	Course       string `json:"course,omitempty"`
	DOB          string `json:"dob,omitempty"`
	Contact      string `json:"contact,omitempty"`
	Email        string `json:"email,omitempty"`
	IsLeader     bool   `json:"isLeader"`
}

// ToliResponse represents a toli with its members
type ToliResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	ToliNo             string               `json:"toliNo"`
	City               string               `json:"city,omitempty"`
	State              string               `json:"state,omitempty"`
	Members            []ToliMemberResponse `json:"members"`
	LeaderID           string               `json:"leaderId,omitempty"`
	Status             string               `json:"status"`
	SessionYear        string               `json:"sessionYear,omitempty"`
	CoordinatorName    string               `json:"coordinatorName,omitempty"`
	CoordinatorContact string               `json:"coordinatorContact,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	ApprovedAt         *time.Time           `json:"approvedAt,omitempty"`
}

// ToToliResponse maps a toli model to its response form
func ToToliResponse(toli *models.Toli) ToliResponse {
	members := make([]ToliMemberResponse, 0, len(toli.Members))
	for _, m := range toli.Members {
		members = append(members, ToliMemberResponse{
			MemberNumber: m.MemberNumber,
			ScholarNo:    m.ScholarNo,
			Name:         m.Name,
			Course:       m.Course,
			DOB:          m.DOB,
			Contact:      m.Contact,
			Email:        m.Email,
			IsLeader:     m.IsLeader,
		})
	}
	return ToliResponse{
		ID:                 toli.ID,
		Name:               toli.Name,
		ToliNo:             toli.ToliNo,
		City:               toli.Location.City,
		State:              toli.Location.State,
		Members:            members,
		LeaderID:           toli.LeaderID,
		Status:             string(toli.Status),
		SessionYear:        toli.SessionYear,
		CoordinatorName:    toli.CoordinatorName,
		CoordinatorContact: toli.CoordinatorContact,
		CreatedAt:          toli.CreatedAt,
		ApprovedAt:         toli.ApprovedAt,
	}
}

// ToToliResponses maps a slice of tolis
func ToToliResponses(tolis []*models.Toli) []ToliResponse {
	out := make([]ToliResponse, 0, len(tolis))
	for _, t := range tolis {
		out = append(out, ToToliResponse(t))
	}
	return out
}
