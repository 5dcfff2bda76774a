package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/app/models/dto"
	"github.com/dishaportal/disha-backend/internal/app/services"
	"github.com/dishaportal/disha-backend/internal/middleware"
)

// AdminController handles the admin management and analytics operations
type AdminController struct {
	authService      services.AuthService
	userService      services.UserService
	toliService      services.ToliService
	programService   services.ProgramService
	contentService   services.ContentService
	messageService   services.MessageService
	analyticsService services.AnalyticsService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService services.AuthService,
	userService services.UserService,
	toliService services.ToliService,
	programService services.ProgramService,
	contentService services.ContentService,
	messageService services.MessageService,
	analyticsService services.AnalyticsService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		authService:      authService,
		userService:      userService,
		toliService:      toliService,
		programService:   programService,
		contentService:   contentService,
		messageService:   messageService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// ListStudents lists all registered students
// @Summary List students
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.UserResponse}
// @Router /admin/students [get]
// @Security Bearer
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.userService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToUserResponses(students)))
}

// StudentsWithoutToli lists students not yet in any toli
// @Summary List unassigned students
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.UserResponse}
// @Router /admin/students/unassigned [get]
// @Security Bearer
func (c *AdminController) StudentsWithoutToli(ctx *gin.Context) {
	students, err := c.userService.StudentsWithoutToli(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToUserResponses(students)))
}

// AddStudent creates a student account on a student's behalf
// @Summary Add a student
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AddStudentRequest true "Student details"
// @Success 201 {object} dto.DataResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.ErrorResponse "Email or scholar number already exists"
// @Router /admin/students [post]
// @Security Bearer
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.AddStudent(ctx.Request.Context(), services.RegisterStudentInput{
		ScholarNo: req.ScholarNo,
		Name:      req.Name,
		Email:     req.Email,
		DOB:       req.DOB,
		Course:    req.Course,
		Contact:   req.Contact,
		Password:  req.Password,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToUserResponse(user)))
}

// ListTolis lists all tolis, optionally filtered by status
// @Summary List tolis
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, active, rejected)
// @Success 200 {object} dto.DataResponse{data=[]dto.ToliResponse}
// @Router /admin/tolis [get]
// @Security Bearer
func (c *AdminController) ListTolis(ctx *gin.Context) {
	status := models.ToliStatus(ctx.Query("status"))
	tolis, err := c.toliService.ListTolis(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponses(tolis)))
}

// GetToli returns one toli
// @Summary Get a toli
// @Tags admin
// @Produce json
// @Param id path string true "Toli ID"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 404 {object} dto.ErrorResponse "Toli not found"
// @Router /admin/tolis/{id} [get]
// @Security Bearer
func (c *AdminController) GetToli(ctx *gin.Context) {
	toli, err := c.toliService.GetToli(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// UpdateToliStatus moves a toli through its lifecycle
// @Summary Update toli status
// @Description Approves, activates or rejects a toli. Invalid transitions are refused.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Toli ID"
// @Param request body dto.UpdateToliStatusRequest true "Target status"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Router /admin/tolis/{id}/status [put]
// @Security Bearer
func (c *AdminController) UpdateToliStatus(ctx *gin.Context) {
	var req dto.UpdateToliStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	toli, err := c.toliService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), models.ToliStatus(req.Status))
	if err != nil {
		c.logger.Warn().Err(err).Str("toliID", ctx.Param("id")).Str("target", req.Status).Msg("Toli status update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("toliID", toli.ID).Str("status", string(toli.Status)).Msg("Toli status updated")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// AssignLocation assigns a work location and activates the toli
// @Summary Assign toli location
// @Description Assigns a location to an approved toli and moves it to active.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Toli ID"
// @Param request body dto.AssignLocationRequest true "Location details"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "Toli is not approved"
// @Router /admin/tolis/{id}/location [put]
// @Security Bearer
func (c *AdminController) AssignLocation(ctx *gin.Context) {
	var req dto.AssignLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	toli, err := c.toliService.AssignLocation(ctx.Request.Context(), ctx.Param("id"), services.AssignLocationInput{
		City:               req.City,
		State:              req.State,
		CoordinatorName:    req.CoordinatorName,
		CoordinatorContact: req.CoordinatorContact,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// AssignLeader makes a member the toli leader
// @Summary Assign toli leader
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Toli ID"
// @Param request body dto.AssignLeaderRequest true "Member scholar number"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "Not a member of this toli"
// @Router /admin/tolis/{id}/leader [put]
// @Security Bearer
func (c *AdminController) AssignLeader(ctx *gin.Context) {
	var req dto.AssignLeaderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	toli, err := c.toliService.AssignLeader(ctx.Request.Context(), ctx.Param("id"), req.ScholarNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// AddToliMember adds a student to a toli
// @Summary Add toli member
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Toli ID"
// @Param request body dto.ToliMemberRequest true "Student scholar number"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "Toli full or student already in a toli"
// @Router /admin/tolis/{id}/members [post]
// @Security Bearer
func (c *AdminController) AddToliMember(ctx *gin.Context) {
	var req dto.ToliMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	toli, err := c.toliService.AddMember(ctx.Request.Context(), ctx.Param("id"), req.ScholarNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// RemoveToliMember removes a student from a toli
// @Summary Remove toli member
// @Tags admin
// @Produce json
// @Param id path string true "Toli ID"
// @Param scholarNo path string true "Student scholar number"
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "Toli would fall below the minimum size"
// @Router /admin/tolis/{id}/members/{scholarNo} [delete]
// @Security Bearer
func (c *AdminController) RemoveToliMember(ctx *gin.Context) {
	toli, err := c.toliService.RemoveMember(ctx.Request.Context(), ctx.Param("id"), ctx.Param("scholarNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// DeleteToli removes a toli and frees its members
// @Summary Delete a toli
// @Tags admin
// @Produce json
// @Param id path string true "Toli ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Toli not found"
// @Router /admin/tolis/{id} [delete]
// @Security Bearer
func (c *AdminController) DeleteToli(ctx *gin.Context) {
	if err := c.toliService.DeleteToli(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Toli deleted"})
}

// ListPrograms lists all submitted programs
// @Summary List programs
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ProgramResponse}
// @Router /admin/programs [get]
// @Security Bearer
func (c *AdminController) ListPrograms(ctx *gin.Context) {
	programs, err := c.programService.ListPrograms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToProgramResponses(programs)))
}

// DeleteProgram removes a program
// @Summary Delete a program
// @Tags admin
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /admin/programs/{id} [delete]
// @Security Bearer
func (c *AdminController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Program deleted"})
}

// Dashboard returns the headline counts
// @Summary Dashboard summary
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=services.DashboardSummary}
// @Router /admin/analytics/dashboard [get]
// @Security Bearer
func (c *AdminController) Dashboard(ctx *gin.Context) {
	summary, err := c.analyticsService.DashboardSummary(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// ProgramAnalytics groups programs by type, month and geography
// @Summary Program analytics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=services.ProgramAnalytics}
// @Router /admin/analytics/programs [get]
// @Security Bearer
func (c *AdminController) ProgramAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.ProgramAnalytics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(analytics))
}

// ToliPerformance returns the engagement-scored toli leaderboard
// @Summary Toli performance
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]services.ToliPerformance}
// @Router /admin/analytics/tolis [get]
// @Security Bearer
func (c *AdminController) ToliPerformance(ctx *gin.Context) {
	rows, err := c.analyticsService.ToliPerformance(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// ToliAnalytics returns the per-toli program breakdown
// @Summary Toli analytics
// @Tags admin
// @Produce json
// @Param id path string true "Toli ID"
// @Success 200 {object} dto.DataResponse{data=services.ToliAnalytics}
// @Failure 404 {object} dto.ErrorResponse "Toli not found"
// @Router /admin/tolis/{id}/analytics [get]
// @Security Bearer
func (c *AdminController) ToliAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.ToliAnalytics(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(analytics))
}

// ListToliPrograms lists the programs submitted for one toli
// @Summary List toli programs
// @Tags admin
// @Produce json
// @Param id path string true "Toli ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.ProgramResponse}
// @Failure 404 {object} dto.ErrorResponse "Toli not found"
// @Router /admin/tolis/{id}/programs [get]
// @Security Bearer
func (c *AdminController) ListToliPrograms(ctx *gin.Context) {
	if _, err := c.toliService.GetToli(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	programs, err := c.programService.ListByToli(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToProgramResponses(programs)))
}

// MapData returns the toli location pins for the admin map
// @Summary Map data
// @Tags admin
// @Produce json
// @Success 200 {object} services.MapData
// @Router /admin/analytics/map [get]
// @Security Bearer
func (c *AdminController) MapData(ctx *gin.Context) {
	data, err := c.analyticsService.MapData(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// GrowthTrend returns toli creation counts by month
// @Summary Growth trend
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]services.MonthCount}
// @Router /admin/analytics/growth [get]
// @Security Bearer
func (c *AdminController) GrowthTrend(ctx *gin.Context) {
	trend, err := c.analyticsService.GrowthTrend(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(trend))
}

// UploadResource stores a shared learning resource
// @Summary Upload a resource
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.DataResponse{data=dto.ResourceResponse}
// @Router /admin/resources [post]
// @Security Bearer
func (c *AdminController) UploadResource(ctx *gin.Context) {
	input := services.UploadResourceInput{
		Title:        ctx.PostForm("title"),
		Description:  ctx.PostForm("description"),
		ResourceType: ctx.PostForm("resourceType"),
		ExternalLink: ctx.PostForm("externalLink"),
	}
	if file, err := ctx.FormFile("file"); err == nil {
		input.File = file
	}

	resource, err := c.contentService.UploadResource(ctx.Request.Context(), middleware.CurrentUserID(ctx), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToResourceResponse(resource)))
}

// DeleteResource removes a resource and its stored file
// @Summary Delete a resource
// @Tags admin
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /admin/resources/{id} [delete]
// @Security Bearer
func (c *AdminController) DeleteResource(ctx *gin.Context) {
	if err := c.contentService.DeleteResource(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Resource deleted"})
}

// PublishInstruction publishes a new active instruction
// @Summary Publish an instruction
// @Description Publishes a new instruction and deactivates all previous ones.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.PublishInstructionRequest true "Instruction"
// @Success 201 {object} dto.DataResponse{data=dto.InstructionResponse}
// @Router /admin/instructions [post]
// @Security Bearer
func (c *AdminController) PublishInstruction(ctx *gin.Context) {
	var req dto.PublishInstructionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	instruction, err := c.contentService.PublishInstruction(ctx.Request.Context(), middleware.CurrentUserID(ctx), req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToInstructionResponse(instruction)))
}

// ListInstructions lists all instructions
// @Summary List instructions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.InstructionResponse}
// @Router /admin/instructions [get]
// @Security Bearer
func (c *AdminController) ListInstructions(ctx *gin.Context) {
	instructions, err := c.contentService.ListInstructions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToInstructionResponses(instructions)))
}

// AddGalleryEntry adds an image to the public gallery
// @Summary Add gallery entry
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.DataResponse{data=dto.GalleryResponse}
// @Router /admin/gallery [post]
// @Security Bearer
func (c *AdminController) AddGalleryEntry(ctx *gin.Context) {
	input := services.GalleryEntryInput{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		ProgramID:   ctx.PostForm("programId"),
	}
	if file, err := ctx.FormFile("image"); err == nil {
		input.Image = file
	}

	entry, err := c.contentService.AddGalleryEntry(ctx.Request.Context(), middleware.CurrentUserID(ctx), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToGalleryResponse(entry)))
}

// DeleteGalleryEntry removes a gallery entry
// @Summary Delete gallery entry
// @Tags admin
// @Produce json
// @Param id path string true "Gallery entry ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/gallery/{id} [delete]
// @Security Bearer
func (c *AdminController) DeleteGalleryEntry(ctx *gin.Context) {
	if err := c.contentService.DeleteGalleryEntry(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Gallery entry deleted"})
}

// PublishNews publishes a news item
// @Summary Publish news
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.DataResponse{data=dto.NewsResponse}
// @Router /admin/news [post]
// @Security Bearer
func (c *AdminController) PublishNews(ctx *gin.Context) {
	input := services.PublishNewsInput{
		Title:   ctx.PostForm("title"),
		Content: ctx.PostForm("content"),
	}
	if file, err := ctx.FormFile("image"); err == nil {
		input.Image = file
	}

	item, err := c.contentService.PublishNews(ctx.Request.Context(), middleware.CurrentUserID(ctx), input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToNewsResponse(item)))
}

// DeleteNews removes a news item
// @Summary Delete news
// @Tags admin
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/news/{id} [delete]
// @Security Bearer
func (c *AdminController) DeleteNews(ctx *gin.Context) {
	if err := c.contentService.DeleteNews(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "News item deleted"})
}

// SendMessage sends a message to one student or broadcasts to all
// @Summary Send a message
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.DataResponse{data=dto.MessageResponse}
// @Router /admin/messages [post]
// @Security Bearer
func (c *AdminController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), middleware.CurrentUserID(ctx), services.SendMessageInput{
		Title:      req.Title,
		Content:    req.Content,
		ReceiverID: req.ReceiverID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToMessageResponse(message)))
}
