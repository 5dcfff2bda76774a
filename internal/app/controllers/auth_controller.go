// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models/dto"
	"github.com/dishaportal/disha-backend/internal/app/services"
	"github.com/dishaportal/disha-backend/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles student self-registration
// @Summary Register a new student
// @Description Creates a new student account with the provided information
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration information"
// @Success 201 {object} dto.DataResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email or scholar number already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), services.RegisterStudentInput{
		ScholarNo: req.ScholarNo,
		Name:      req.Name,
		Email:     req.Email,
		DOB:       req.DOB,
		Course:    req.Course,
		Contact:   req.Contact,
		Password:  req.Password,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userID", user.ID).Str("scholarNo", user.ScholarNo).Msg("Student registered")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToUserResponse(user)))
}

// Login handles user authentication
// @Summary Authenticate a user
// @Description Verifies credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.DataResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: dto.ToUserResponse(user),
	}))
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [get]
// @Security Bearer
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user, err := c.authService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToUserResponse(user)))
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} dto.DataResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [put]
// @Security Bearer
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.UpdateProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), services.UpdateProfileInput{
		Name:    req.Name,
		Course:  req.Course,
		Contact: req.Contact,
		DOB:     req.DOB,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToUserResponse(user)))
}
