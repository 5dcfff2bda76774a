package dto

import (
	"time"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// LoginResponse bundles the token with the authenticated user
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RegisterStudentRequest represents a student registration request
type RegisterStudentRequest struct {
	ScholarNo string `json:"scholarNo" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	DOB       string `json:"dob"`
	Course    string `json:"course"`
	Contact   string `json:"contact"`
	Password  string `json:"password" binding:"required,min=6"`
}

// AddStudentRequest represents an admin creating a student account
type AddStudentRequest struct {
	ScholarNo string `json:"scholarNo" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	DOB       string `json:"dob"`
	Course    string `json:"course"`
	Contact   string `json:"contact"`
	Password  string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Course  string `json:"course"`
	Contact string `json:"contact"`
	DOB     string `json:"dob"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID           string    `json:"id"`
	ScholarNo    string    `json:"scholarNo,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DOB          string    `json:"dob,omitempty"`
	Course       string    `json:"course,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	Role         string    `json:"role"`
	ToliID       string    `json:"toliId,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse maps a user model to its response form
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		ScholarNo:    user.ScholarNo,
		Name:         user.Name,
		Email:        user.Email,
		DOB:          user.DOB,
		Course:       user.Course,
		Contact:      user.Contact,
		Role:         string(user.Role),
		ToliID:       user.ToliID,
		ProfilePhoto: user.ProfilePhoto,
		CreatedAt:    user.CreatedAt,
	}
}

// ToUserResponses maps a slice of users
func ToUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
