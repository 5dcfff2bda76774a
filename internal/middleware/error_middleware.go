package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishaportal/disha-backend/internal/app/models/dto"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Messages come from
// the wrapped CustomError when one is present.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	respond := func(status int, code dto.ErrorCode) {
		detail := dto.NewErrorDetail(code, message)
		if custom != nil && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrNotConnected):
		respond(http.StatusServiceUnavailable, dto.ErrorCodeServiceOffline)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken)
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed)
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrScholarNoExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists)
	case errors.Is(err, apperrors.ErrStudentAlreadyInToli),
		errors.Is(err, apperrors.ErrToliFull),
		errors.Is(err, apperrors.ErrToliTooSmall),
		errors.Is(err, apperrors.ErrNotToliMember):
		respond(http.StatusConflict, dto.ErrorCodeToliConflict)
	case errors.Is(err, apperrors.ErrInvalidToliTransition):
		respond(http.StatusConflict, dto.ErrorCodeToliTransition)
	case errors.Is(err, apperrors.ErrToliNotActive):
		respond(http.StatusForbidden, dto.ErrorCodeToliNotActive)
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrToliNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrDocumentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound)
	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}
