// Package routes wires the HTTP endpoints to their controllers.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dishaportal/disha-backend/internal/app/controllers"
	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	publicController *controllers.PublicController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", publicController.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/newsletters", publicController.Newsletters)
	v1.GET("/gallery", publicController.Gallery)
	v1.GET("/news", publicController.News)
	v1.GET("/teams", publicController.Teams)
	v1.GET("/staff", publicController.Staff)
	v1.POST("/contact", publicController.Contact)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.PUT("/profile", authController.UpdateProfile)
	}

	// --- Student routes ---
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/toli", studentController.CreateToli)
		student.GET("/toli", studentController.MyToli)

		student.POST("/programs", studentController.SubmitProgram)
		student.GET("/programs", studentController.MyPrograms)
		student.GET("/programs/:id/report", studentController.ProgramReport)
		student.GET("/programs/:id/report/download", studentController.DownloadProgramReport)
		student.GET("/programs/:id/newsletter", studentController.ProgramNewsletter)
		student.GET("/programs/:id/newsletter/download", studentController.DownloadProgramNewsletter)

		student.GET("/resources", studentController.Resources)
		student.GET("/instructions/active", studentController.ActiveInstruction)

		student.GET("/messages", studentController.Messages)
		student.PUT("/messages/:id/read", studentController.MarkMessageRead)
		student.GET("/notifications", studentController.Notifications)
		student.PUT("/notifications/:id/read", studentController.MarkNotificationRead)
	}

	// --- Admin routes ---
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff))
	{
		admin.GET("/students", adminController.ListStudents)
		admin.POST("/students", adminController.AddStudent)
		admin.GET("/students/unassigned", adminController.StudentsWithoutToli)

		admin.GET("/tolis", adminController.ListTolis)
		admin.GET("/tolis/:id", adminController.GetToli)
		admin.GET("/tolis/:id/programs", adminController.ListToliPrograms)
		admin.GET("/tolis/:id/analytics", adminController.ToliAnalytics)
		admin.PUT("/tolis/:id/status", adminController.UpdateToliStatus)
		admin.PUT("/tolis/:id/location", adminController.AssignLocation)
		admin.PUT("/tolis/:id/leader", adminController.AssignLeader)
		admin.POST("/tolis/:id/members", adminController.AddToliMember)
		admin.DELETE("/tolis/:id/members/:scholarNo", adminController.RemoveToliMember)
		admin.DELETE("/tolis/:id", adminController.DeleteToli)

		admin.GET("/programs", adminController.ListPrograms)
		admin.DELETE("/programs/:id", adminController.DeleteProgram)

		admin.GET("/analytics/dashboard", adminController.Dashboard)
		admin.GET("/analytics/programs", adminController.ProgramAnalytics)
		admin.GET("/analytics/tolis", adminController.ToliPerformance)
		admin.GET("/analytics/growth", adminController.GrowthTrend)
		admin.GET("/analytics/map", adminController.MapData)

		admin.POST("/resources", adminController.UploadResource)
		admin.DELETE("/resources/:id", adminController.DeleteResource)

		admin.POST("/instructions", adminController.PublishInstruction)
		admin.GET("/instructions", adminController.ListInstructions)

		admin.POST("/gallery", adminController.AddGalleryEntry)
		admin.DELETE("/gallery/:id", adminController.DeleteGalleryEntry)
		admin.POST("/news", adminController.PublishNews)
		admin.DELETE("/news/:id", adminController.DeleteNews)

		admin.POST("/messages", adminController.SendMessage)
	}
}
