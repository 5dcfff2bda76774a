package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// Walks the whole happy path: a student forms a toli, an admin approves it and
// assigns a location, then the student submits a program and both generated
// documents come back referencing it.
func TestToliToNewsletterLifecycle(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	toliRepo := newFakeToliRepo()
	programRepo := newFakeProgramRepo()
	docRepo := newFakeDocumentRepo()
	msgRepo := newFakeMessageRepo()
	storage := &fakeFileStore{}

	toliSvc := NewToliService(toliRepo, userRepo, msgRepo, zerolog.Nop())
	docSvc := NewDocumentService(docRepo, programRepo, toliRepo, userRepo, zerolog.Nop())
	programSvc := NewProgramService(programRepo, toliRepo, userRepo, docSvc, storage, zerolog.Nop())

	s1 := addStudent(userRepo, "A100", "Sunita")
	addStudent(userRepo, "A101", "Ravi")
	addStudent(userRepo, "A102", "Meena")

	toli, err := toliSvc.CreateToli(ctx, s1.ID, CreateToliInput{
		ToliNo:           "T-2025-01",
		SessionYear:      "2025",
		MemberScholarNos: []string{"A101", "A102"},
	})
	require.NoError(t, err)
	require.Len(t, toli.Members, 3)
	require.Equal(t, models.ToliStatusPending, toli.Status)

	// Submission before activation must leave nothing behind.
	_, err = programSvc.SubmitProgram(ctx, s1.ID, SubmitProgramInput{Title: "Too early"})
	require.ErrorIs(t, err, apperrors.ErrToliNotActive)
	assert.Empty(t, programRepo.programs)
	assert.Empty(t, docRepo.docs)

	_, err = toliSvc.UpdateStatus(ctx, toli.ID, models.ToliStatusApproved)
	require.NoError(t, err)
	activated, err := toliSvc.AssignLocation(ctx, toli.ID, AssignLocationInput{City: "Haridwar"})
	require.NoError(t, err)
	require.Equal(t, models.ToliStatusActive, activated.Status)

	program, err := programSvc.SubmitProgram(ctx, s1.ID, SubmitProgramInput{
		Title:        "Tree Plantation Drive",
		ProgramType:  "plantation",
		Location:     "Haridwar",
		TotalPersons: 40,
	})
	require.NoError(t, err)

	report, err := docSvc.GetDocument(ctx, models.DocumentKindReport, program.ID)
	require.NoError(t, err)
	newsletter, err := docSvc.GetDocument(ctx, models.DocumentKindNewsletter, program.ID)
	require.NoError(t, err)

	assert.Equal(t, program.ID, report.ProgramID)
	assert.Equal(t, program.ID, newsletter.ProgramID)
	assert.Equal(t, 40, report.ParticipantsCount)
	assert.Equal(t, 40, newsletter.ParticipantsCount)
	assert.Contains(t, newsletter.Content, "Tree Plantation Drive")
}
