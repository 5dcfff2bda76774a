package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/app/models/dto"
	"github.com/dishaportal/disha-backend/internal/app/services"
	"github.com/dishaportal/disha-backend/internal/db"
	"github.com/dishaportal/disha-backend/internal/middleware"
)

// PublicController serves the unauthenticated pages: newsletters, gallery,
// news, team and staff listings, and the contact form.
type PublicController struct {
	documentService services.DocumentService
	contentService  services.ContentService
	messageService  services.MessageService
	toliService     services.ToliService
	userService     services.UserService
	mongo           *db.Mongo
	logger          zerolog.Logger
}

// NewPublicController creates a new PublicController
func NewPublicController(
	documentService services.DocumentService,
	contentService services.ContentService,
	messageService services.MessageService,
	toliService services.ToliService,
	userService services.UserService,
	mongo *db.Mongo,
	logger zerolog.Logger,
) *PublicController {
	return &PublicController{
		documentService: documentService,
		contentService:  contentService,
		messageService:  messageService,
		toliService:     toliService,
		userService:     userService,
		mongo:           mongo,
		logger:          logger,
	}
}

// Health reports liveness and database connectivity
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *PublicController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": c.mongo.Connected(),
	})
}

// Newsletters lists all published newsletters
// @Summary List newsletters
// @Tags public
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.DocumentResponse}
// @Router /newsletters [get]
func (c *PublicController) Newsletters(ctx *gin.Context) {
	newsletters, err := c.documentService.ListNewsletters(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToDocumentResponses(newsletters)))
}

// Gallery lists the public gallery entries
// @Summary List gallery
// @Tags public
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.GalleryResponse}
// @Router /gallery [get]
func (c *PublicController) Gallery(ctx *gin.Context) {
	entries, err := c.contentService.ListGallery(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToGalleryResponses(entries)))
}

// News lists the published news items
// @Summary List news
// @Tags public
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.NewsResponse}
// @Router /news [get]
func (c *PublicController) News(ctx *gin.Context) {
	items, err := c.contentService.ListNews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	published := make([]dto.NewsResponse, 0, len(items))
	for _, n := range items {
		if n.IsPublished {
			published = append(published, dto.ToNewsResponse(n))
		}
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(published))
}

// Teams lists the active tolis
// @Summary List active teams
// @Tags public
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ToliResponse}
// @Router /teams [get]
func (c *PublicController) Teams(ctx *gin.Context) {
	tolis, err := c.toliService.ListTolis(ctx.Request.Context(), models.ToliStatusActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToToliResponses(tolis)))
}

// Staff lists the staff accounts
// @Summary List staff
// @Tags public
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.UserResponse}
// @Router /staff [get]
func (c *PublicController) Staff(ctx *gin.Context) {
	staff, err := c.userService.ListStaff(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToUserResponses(staff)))
}

// Contact accepts a public contact form submission
// @Summary Submit contact form
// @Tags public
// @Accept json
// @Produce json
// @Param request body dto.ContactFormRequest true "Contact submission"
// @Success 200 {object} dto.SuccessResponse
// @Router /contact [post]
func (c *PublicController) Contact(ctx *gin.Context) {
	var req dto.ContactFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.messageService.SubmitContactForm(ctx.Request.Context(), services.ContactFormInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Thank you, we received your message"})
}
