// Package models defines the domain records persisted in the document store.
// Every record has a constructor that fills defaults from a loosely-typed
// bson mapping and a Doc serializer that is a faithful inverse for the fields
// the record recognizes.
package models

// Role identifies the access level of a user account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
)

// ToliStatus is the lifecycle state of a toli.
type ToliStatus string

const (
	ToliStatusDraft    ToliStatus = "draft"
	ToliStatusPending  ToliStatus = "pending"
	ToliStatusApproved ToliStatus = "approved"
	ToliStatusActive   ToliStatus = "active"
	ToliStatusRejected ToliStatus = "rejected"
)

// CanTransition reports whether a toli may move from one status to another.
// Allowed transitions are pending->approved, pending->rejected and
// approved->active.
func (s ToliStatus) CanTransition(to ToliStatus) bool {
	switch s {
	case ToliStatusPending:
		return to == ToliStatusApproved || to == ToliStatusRejected
	case ToliStatusApproved:
		return to == ToliStatusActive
	default:
		return false
	}
}

// ProgramStatus is the lifecycle state of a submitted program.
type ProgramStatus string

const (
	ProgramStatusPending   ProgramStatus = "pending"
	ProgramStatusOngoing   ProgramStatus = "ongoing"
	ProgramStatusCompleted ProgramStatus = "completed"
	ProgramStatusCancelled ProgramStatus = "cancelled"
)

// DocumentKind distinguishes the two generated document types.
type DocumentKind string

const (
	DocumentKindReport     DocumentKind = "report"
	DocumentKindNewsletter DocumentKind = "newsletter"
)

// Toli size limits.
const (
	MinToliMembers = 3
	MaxToliMembers = 4
)
