package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// User is an account in the 'users' collection. Students carry an optional
// back-reference to the toli they belong to.
type User struct {
	ID           string
	ScholarNo    string
	Name         string
	Email        string
	DOB          string
	Course       string
	Contact      string
	Role         Role
	ToliID       string
	ProfilePhoto string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUserFromDoc builds a User from a stored document, filling defaults.
func NewUserFromDoc(doc bson.M) *User {
	role := Role(getString(doc, "role"))
	if role == "" {
		role = RoleStudent
	}
	return &User{
		ID:           docID(doc),
		ScholarNo:    getString(doc, "scholar_no"),
		Name:         getString(doc, "name"),
		Email:        getString(doc, "email"),
		DOB:          getString(doc, "dob"),
		Course:       getString(doc, "course"),
		Contact:      getString(doc, "contact"),
		Role:         role,
		ToliID:       getString(doc, "toli_id"),
		ProfilePhoto: getString(doc, "profile_photo"),
		PasswordHash: getString(doc, "password_hash"),
		CreatedAt:    getTime(doc, "created_at"),
	}
}

// Doc serializes the user back to its stored mapping. The _id is assigned by
// the store and is not part of the payload.
func (u *User) Doc() bson.M {
	return bson.M{
		"scholar_no":    u.ScholarNo,
		"name":          u.Name,
		"email":         u.Email,
		"dob":           u.DOB,
		"course":        u.Course,
		"contact":       u.Contact,
		"role":          string(u.Role),
		"toli_id":       u.ToliID,
		"profile_photo": u.ProfilePhoto,
		"password_hash": u.PasswordHash,
		"created_at":    u.CreatedAt,
	}
}

// IsStudent reports whether the account has the student role.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
