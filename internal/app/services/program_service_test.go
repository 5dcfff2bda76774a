package services

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/filestorage"
)

type programFixture struct {
	programRepo *fakeProgramRepo
	toliRepo    *fakeToliRepo
	userRepo    *fakeUserRepo
	docRepo     *fakeDocumentRepo
	storage     *fakeFileStore
	svc         ProgramService
	docSvc      DocumentService
}

func newProgramFixture() *programFixture {
	f := &programFixture{
		programRepo: newFakeProgramRepo(),
		toliRepo:    newFakeToliRepo(),
		userRepo:    newFakeUserRepo(),
		docRepo:     newFakeDocumentRepo(),
		storage:     &fakeFileStore{},
	}
	f.docSvc = NewDocumentService(f.docRepo, f.programRepo, f.toliRepo, f.userRepo, zerolog.Nop())
	f.svc = NewProgramService(f.programRepo, f.toliRepo, f.userRepo, f.docSvc, f.storage, zerolog.Nop())
	return f
}

// activeStudent seeds a student inside an active toli and returns both.
func (f *programFixture) activeStudent() (*models.User, *models.Toli) {
	toli := f.toliRepo.add(&models.Toli{
		Name:   "Toli T-01",
		ToliNo: "T-01",
		Status: models.ToliStatusActive,
		Members: []models.ToliMember{
			{MemberNumber: 1, ScholarNo: "S1", Name: "Asha", IsLeader: true},
		},
	})
	student := f.userRepo.add(&models.User{
		ScholarNo: "S1",
		Name:      "Asha",
		Email:     "asha@example.edu",
		Role:      models.RoleStudent,
		ToliID:    toli.ID,
	})
	return student, toli
}

func TestSubmitProgramRequiresActiveToli(t *testing.T) {
	t.Run("no toli at all", func(t *testing.T) {
		f := newProgramFixture()
		student := f.userRepo.add(&models.User{ScholarNo: "S1", Role: models.RoleStudent})

		_, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{Title: "Cleanliness drive"})
		assert.ErrorIs(t, err, apperrors.ErrToliNotActive)
	})

	t.Run("toli still pending", func(t *testing.T) {
		f := newProgramFixture()
		toli := f.toliRepo.add(&models.Toli{ToliNo: "T-01", Status: models.ToliStatusPending})
		student := f.userRepo.add(&models.User{ScholarNo: "S1", Role: models.RoleStudent, ToliID: toli.ID})

		_, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{Title: "Cleanliness drive"})
		assert.ErrorIs(t, err, apperrors.ErrToliNotActive)
	})
}

func TestSubmitProgramGeneratesDocuments(t *testing.T) {
	f := newProgramFixture()
	student, toli := f.activeStudent()

	program, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{
		Title:        "Tree plantation",
		ProgramType:  "environment",
		City:         "Bhopal",
		State:        "Madhya Pradesh",
		StartDate:    "2026-08-15",
		TotalPersons: 120,
		Achievements: "Planted 300 saplings",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, program.ProgramNo)
	assert.Equal(t, models.ProgramStatusPending, program.Status)
	assert.Equal(t, toli.ID, program.ToliID)
	assert.Equal(t, 2026, program.StartDate.Year())
	assert.Equal(t, time.August, program.StartDate.Month())

	// Both documents are synthesized immediately.
	report, err := f.docRepo.GetByProgram(context.Background(), models.DocumentKindReport, program.ID)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 120, report.ParticipantsCount)
	assert.Contains(t, report.Content, "Tree plantation")

	newsletter, err := f.docRepo.GetByProgram(context.Background(), models.DocumentKindNewsletter, program.ID)
	require.NoError(t, err)
	require.NotNil(t, newsletter)
	assert.Contains(t, newsletter.Content, "Asha")
}

func TestSubmitProgramNumbersPerStudent(t *testing.T) {
	f := newProgramFixture()
	student, _ := f.activeStudent()

	for want := 1; want <= 3; want++ {
		program, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{
			Title: "Program run",
		})
		require.NoError(t, err)
		assert.Equal(t, want, program.ProgramNo)
	}
}

func TestSubmitProgramSkipsOversizedImages(t *testing.T) {
	f := newProgramFixture()
	student, _ := f.activeStudent()

	images := []*multipart.FileHeader{
		{Filename: "ok.jpg", Size: 100},
		{Filename: "huge.jpg", Size: filestorage.MaxImageSize + 1},
		{Filename: "second.png", Size: 2048},
	}

	program, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{
		Title:  "Health camp",
		Images: images,
	})
	require.NoError(t, err, "an oversized image must not fail the submission")

	require.Len(t, program.Images, 2)
	for _, path := range program.Images {
		assert.False(t, strings.Contains(path, "huge"), "oversized image should be skipped")
	}
}

func TestSubmitProgramDateFallsBackToNow(t *testing.T) {
	f := newProgramFixture()
	student, _ := f.activeStudent()

	program, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{
		Title:     "Literacy drive",
		StartDate: "not-a-date",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), program.StartDate, time.Minute)
}

func TestGetDocumentRegeneratesLazily(t *testing.T) {
	f := newProgramFixture()
	student, toli := f.activeStudent()

	program := f.programRepo.add(&models.Program{
		ProgramNo:    1,
		Title:        "Yoga session",
		TotalPersons: 40,
		StudentID:    student.ID,
		ToliID:       toli.ID,
		StartDate:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.ProgramStatusPending,
	})

	// No document exists yet; the first fetch synthesizes one from the
	// program's current state.
	doc, err := f.docSvc.GetDocument(context.Background(), models.DocumentKindReport, program.ID)
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "Yoga session")
	assert.Equal(t, 40, doc.ParticipantsCount)

	// The second fetch returns the cached copy.
	again, err := f.docSvc.GetDocument(context.Background(), models.DocumentKindReport, program.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again.ID)
}

func TestGetDocumentUnknownProgram(t *testing.T) {
	f := newProgramFixture()
	_, err := f.docSvc.GetDocument(context.Background(), models.DocumentKindReport, "missing")
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)
}

func TestDeleteProgram(t *testing.T) {
	f := newProgramFixture()
	student, _ := f.activeStudent()
	program, err := f.svc.SubmitProgram(context.Background(), student.ID, SubmitProgramInput{Title: "Camp"})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProgram(context.Background(), program.ID))
	assert.ErrorIs(t, f.svc.DeleteProgram(context.Background(), program.ID), apperrors.ErrProgramNotFound)
}
