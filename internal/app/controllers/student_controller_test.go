package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

type stubDocumentService struct {
	docs map[string]*models.GeneratedDocument
}

func (s *stubDocumentService) GenerateForProgram(ctx context.Context, program *models.Program, toli *models.Toli, author *models.User) error {
	return nil
}

func (s *stubDocumentService) GetDocument(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error) {
	doc, ok := s.docs[string(kind)+"/"+programID]
	if !ok {
		return nil, apperrors.ErrDocumentNotFound
	}
	return doc, nil
}

func (s *stubDocumentService) ListNewsletters(ctx context.Context) ([]*models.GeneratedDocument, error) {
	return nil, nil
}

func TestDownloadProgramReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docs := &stubDocumentService{docs: map[string]*models.GeneratedDocument{
		"report/p1": {
			ProgramID: "p1",
			Kind:      models.DocumentKindReport,
			Content:   "<html><body>Plantation Drive</body></html>",
		},
	}}
	ctrl := NewStudentController(nil, nil, nil, docs, nil, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/student/programs/:id/report/download", ctrl.DownloadProgramReport)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/student/programs/p1/report/download", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="report-p1.html"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Plantation Drive")

	// A program without a generated report yields 404, not an empty file.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/student/programs/missing/report/download", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
