package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/auth"
)

func newAuthFixture() (*fakeUserRepo, AuthService) {
	userRepo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "disha-test",
	})
	return userRepo, NewAuthService(userRepo, jwtService, zerolog.Nop())
}

func validSignup() RegisterStudentInput {
	return RegisterStudentInput{
		ScholarNo: "21BCS101",
		Name:      "Asha Verma",
		Email:     "asha@example.edu",
		DOB:       "2003-06-14",
		Course:    "B.Sc.",
		Contact:   "9876543210",
		Password:  "secret123",
	}
}

func TestRegisterStudent(t *testing.T) {
	userRepo, svc := newAuthFixture()

	user, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password is stored hashed")
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret123"))

	stored, err := userRepo.GetByScholarNo(context.Background(), "21BCS101")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterStudentValidation(t *testing.T) {
	_, svc := newAuthFixture()

	cases := []struct {
		name   string
		mutate func(*RegisterStudentInput)
	}{
		{"missing scholar number", func(in *RegisterStudentInput) { in.ScholarNo = " " }},
		{"missing name", func(in *RegisterStudentInput) { in.Name = "" }},
		{"bad email", func(in *RegisterStudentInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterStudentInput) { in.Password = "abc" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validSignup()
			tc.mutate(&input)
			_, err := svc.RegisterStudent(context.Background(), input)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterStudentUniqueness(t *testing.T) {
	_, svc := newAuthFixture()
	_, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	dup := validSignup()
	dup.ScholarNo = "21BCS102"
	_, err = svc.RegisterStudent(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	dup = validSignup()
	dup.Email = "other@example.edu"
	_, err = svc.RegisterStudent(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrScholarNoExists)
}

func TestLogin(t *testing.T) {
	_, svc := newAuthFixture()
	registered, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	user, token, expiresIn, err := svc.Login(context.Background(), "asha@example.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, svc := newAuthFixture()
	_, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "asha@example.edu", "wrong-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody@example.edu", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	userRepo, svc := newAuthFixture()
	user, err := svc.RegisterStudent(context.Background(), validSignup())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{
		Course:  "M.Sc.",
		Contact: "9000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "M.Sc.", updated.Course)
	assert.Equal(t, "9000000000", updated.Contact)
	assert.Equal(t, "Asha Verma", updated.Name, "untouched fields keep their value")

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "M.Sc.", stored.Course)
}

func TestGetProfileUnknownUser(t *testing.T) {
	_, svc := newAuthFixture()
	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
