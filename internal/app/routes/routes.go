package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oguzk/studenthub/internal/app/controllers"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.Use(authMiddleware.ActiveAccountRequired())
	{
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		authenticated.GET("/dashboard", dashboardController.GetDashboard)

		profile := authenticated.Group("/profile")
		{
			profile.POST("", profileController.CompleteProfile)
			profile.GET("", profileController.GetOwnProfile)
			profile.PUT("", profileController.UpdateOwnProfile)
			profile.GET("/courses", profileController.GetOwnCourses)
		}

		// Administrator-only routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.SuperuserRequired())
		{
			students := admin.Group("/students")
			{
				students.GET("", studentController.ListStudents)
				students.PUT("/:id", studentController.UpdateStudent)
				students.DELETE("/:id", studentController.DeleteStudent)
				students.GET("/:id/enrollments", studentController.GetStudentEnrollments)
				students.PUT("/:id/enrollments", studentController.UpdateEnrollmentStatuses)
			}

			courses := admin.Group("/courses")
			{
				courses.POST("", courseController.CreateCourse)
				courses.GET("", courseController.SearchCourses)
				courses.GET("/:id", courseController.GetCourse)
				courses.PUT("/:id", courseController.UpdateCourse)
				courses.DELETE("/:id", courseController.DeleteCourse)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
