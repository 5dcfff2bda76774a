package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/app/models/dto"
	"github.com/dishaportal/disha-backend/internal/app/services"
	"github.com/dishaportal/disha-backend/internal/middleware"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// StudentController handles the student-facing toli and program operations
type StudentController struct {
	authService     services.AuthService
	toliService     services.ToliService
	programService  services.ProgramService
	documentService services.DocumentService
	contentService  services.ContentService
	messageService  services.MessageService
	logger          zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	authService services.AuthService,
	toliService services.ToliService,
	programService services.ProgramService,
	documentService services.DocumentService,
	contentService services.ContentService,
	messageService services.MessageService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		authService:     authService,
		toliService:     toliService,
		programService:  programService,
		documentService: documentService,
		contentService:  contentService,
		messageService:  messageService,
		logger:          logger,
	}
}

// CreateToli forms a new toli with the caller as leader
// @Summary Create a toli
// @Description Forms a new toli. The caller becomes the leader; members are added by scholar number.
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.CreateToliRequest true "Toli details"
// @Success 201 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 409 {object} dto.ErrorResponse "A member is already in a toli, or size limits violated"
// @Router /student/toli [post]
// @Security Bearer
func (c *StudentController) CreateToli(ctx *gin.Context) {
	var req dto.CreateToliRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	toli, err := c.toliService.CreateToli(ctx.Request.Context(), middleware.CurrentUserID(ctx), services.CreateToliInput{
		Name:             req.Name,
		ToliNo:           req.ToliNo,
		SessionYear:      req.SessionYear,
		MemberScholarNos: req.MemberScholarNos,
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("Toli creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("toliID", toli.ID).Str("toliNo", toli.ToliNo).Msg("Toli created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// MyToli returns the caller's toli
// @Summary Get own toli
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.ToliResponse}
// @Failure 404 {object} dto.ErrorResponse "Not in a toli"
// @Router /student/toli [get]
// @Security Bearer
func (c *StudentController) MyToli(ctx *gin.Context) {
	user, err := c.authService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user.ToliID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrToliNotFound)
		return
	}
	toli, err := c.toliService.GetToli(ctx.Request.Context(), user.ToliID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponse(toli)))
}

// SubmitProgram submits a new activity program with photos
// @Summary Submit a program
// @Description Submits an activity program as multipart form data. Images over the size limit are skipped.
// @Tags student
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.DataResponse{data=dto.ProgramResponse}
// @Failure 403 {object} dto.ErrorResponse "Toli not active"
// @Router /student/programs [post]
// @Security Bearer
func (c *StudentController) SubmitProgram(ctx *gin.Context) {
	totalPersons, _ := strconv.Atoi(ctx.PostForm("totalPersons"))

	input := services.SubmitProgramInput{
		Title:            ctx.PostForm("title"),
		ProgramType:      ctx.PostForm("programType"),
		Location:         ctx.PostForm("location"),
		State:            ctx.PostForm("state"),
		City:             ctx.PostForm("city"),
		Pincode:          ctx.PostForm("pincode"),
		StartDate:        ctx.PostForm("startDate"),
		TotalPersons:     totalPersons,
		Achievements:     ctx.PostForm("achievements"),
		OrganizerName:    ctx.PostForm("organizerName"),
		OrganizerContact: ctx.PostForm("organizerContact"),
	}
	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		input.Images = form.File["images"]
	}

	program, err := c.programService.SubmitProgram(ctx.Request.Context(), middleware.CurrentUserID(ctx), input)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Program submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("programID", program.ID).Msg("Program submitted")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToProgramResponse(program)))
}

// MyPrograms lists the caller's submitted programs
// @Summary List own programs
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ProgramResponse}
// @Router /student/programs [get]
// @Security Bearer
func (c *StudentController) MyPrograms(ctx *gin.Context) {
	programs, err := c.programService.ListByStudent(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToProgramResponses(programs)))
}

// ProgramReport returns the generated report for a program
// @Summary Get program report
// @Tags student
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.DataResponse{data=dto.DocumentResponse}
// @Failure 404 {object} dto.ErrorResponse "Program or document not found"
// @Router /student/programs/{id}/report [get]
// @Security Bearer
func (c *StudentController) ProgramReport(ctx *gin.Context) {
	c.serveDocument(ctx, models.DocumentKindReport)
}

// ProgramNewsletter returns the generated newsletter for a program
// @Summary Get program newsletter
// @Tags student
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.DataResponse{data=dto.DocumentResponse}
// @Failure 404 {object} dto.ErrorResponse "Program or document not found"
// @Router /student/programs/{id}/newsletter [get]
// @Security Bearer
func (c *StudentController) ProgramNewsletter(ctx *gin.Context) {
	c.serveDocument(ctx, models.DocumentKindNewsletter)
}

// DownloadProgramReport sends the report HTML as a file attachment
// @Summary Download program report
// @Tags student
// @Produce html
// @Param id path string true "Program ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} dto.ErrorResponse "Program or document not found"
// @Router /student/programs/{id}/report/download [get]
// @Security Bearer
func (c *StudentController) DownloadProgramReport(ctx *gin.Context) {
	c.downloadDocument(ctx, models.DocumentKindReport)
}

// DownloadProgramNewsletter sends the newsletter HTML as a file attachment
// @Summary Download program newsletter
// @Tags student
// @Produce html
// @Param id path string true "Program ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} dto.ErrorResponse "Program or document not found"
// @Router /student/programs/{id}/newsletter/download [get]
// @Security Bearer
func (c *StudentController) DownloadProgramNewsletter(ctx *gin.Context) {
	c.downloadDocument(ctx, models.DocumentKindNewsletter)
}

func (c *StudentController) serveDocument(ctx *gin.Context, kind models.DocumentKind) {
	doc, err := c.documentService.GetDocument(ctx.Request.Context(), kind, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToDocumentResponse(doc)))
}

func (c *StudentController) downloadDocument(ctx *gin.Context, kind models.DocumentKind) {
	doc, err := c.documentService.GetDocument(ctx.Request.Context(), kind, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.html", kind, doc.ProgramID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.Content))
}

// Resources lists the shared learning resources
// @Summary List resources
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ResourceResponse}
// @Router /student/resources [get]
// @Security Bearer
func (c *StudentController) Resources(ctx *gin.Context) {
	resources, err := c.contentService.ListResources(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToResourceResponses(resources)))
}

// ActiveInstruction returns the currently active instruction
// @Summary Get active instruction
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.InstructionResponse}
// @Failure 404 {object} dto.ErrorResponse "No active instruction"
// @Router /student/instructions/active [get]
// @Security Bearer
func (c *StudentController) ActiveInstruction(ctx *gin.Context) {
	instruction, err := c.contentService.ActiveInstruction(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToInstructionResponse(instruction)))
}

// Messages lists messages addressed to the caller, broadcasts included
// @Summary List own messages
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.MessageResponse}
// @Router /student/messages [get]
// @Security Bearer
func (c *StudentController) Messages(ctx *gin.Context) {
	messages, err := c.messageService.ListMessages(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToMessageResponses(messages)))
}

// MarkMessageRead flags a message as read
// @Summary Mark message read
// @Tags student
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /student/messages/{id}/read [put]
// @Security Bearer
func (c *StudentController) MarkMessageRead(ctx *gin.Context) {
	if err := c.messageService.MarkMessageRead(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Message marked as read"})
}

// Notifications lists the caller's notification feed
// @Summary List own notifications
// @Tags student
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.NotificationResponse}
// @Router /student/notifications [get]
// @Security Bearer
func (c *StudentController) Notifications(ctx *gin.Context) {
	notifications, err := c.messageService.ListNotifications(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToNotificationResponses(notifications)))
}

// MarkNotificationRead flags a notification as read
// @Summary Mark notification read
// @Tags student
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /student/notifications/{id}/read [put]
// @Security Bearer
func (c *StudentController) MarkNotificationRead(ctx *gin.Context) {
	if err := c.messageService.MarkNotificationRead(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notification marked as read"})
}
