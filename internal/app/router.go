package app

import (
	"time"

	"learning_portal_backend/docs"
	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/middleware"
	"learning_portal_backend/internal/model"
	"learning_portal_backend/pkg/monitoring"
	"learning_portal_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	auth := middleware.AuthMiddleware(cfg, a.services.auth)
	teacher := middleware.RoleMiddleware(model.Teacher)
	student := middleware.RoleMiddleware(model.Student)
	admin := middleware.RoleMiddleware(model.Admin)

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	users := api.Group("/users")
	if cfg.RateLimit.AuthMaxRequests > 0 && cfg.RateLimit.WindowMinutes > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		users.Use(security.RouteRateLimiter(cfg.RateLimit.AuthMaxRequests, window))
	}
	{
		users.POST("/register", c.auth.Register)
		users.POST("/login", c.auth.Login)
		users.POST("/forgot-password", c.auth.ForgotPassword)
		users.POST("/reset-password/:token", c.auth.ResetPassword)
		users.GET("/me", auth, c.auth.Me)
	}

	adminGroup := api.Group("/admin", auth, admin)
	{
		adminGroup.GET("/pending-teachers", c.admin.PendingTeachers)
		adminGroup.PUT("/approve/:id", c.admin.ApproveTeacher)
		adminGroup.DELETE("/decline/:id", c.admin.DeclineTeacher)
		adminGroup.PUT("/promote/:id", c.admin.PromoteTeacher)
		adminGroup.GET("/students", c.admin.Students)
		adminGroup.GET("/teachers", c.admin.Teachers)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.POST("", auth, teacher, c.course.CreateCourse)
		courses.GET("/mycourses", auth, teacher, c.course.MyCourses)
		courses.PUT("/:id", auth, teacher, c.course.UpdateCourse)
		courses.DELETE("/:id", auth, teacher, c.course.DeleteCourse)
		courses.GET("/:id/students", auth, teacher, c.course.CourseStudents)
	}

	enrollments := api.Group("/enrollments", auth)
	{
		enrollments.POST("/enroll", student, c.enrollment.Enroll)
		enrollments.GET("/my-courses", student, c.enrollment.MyCourses)
		enrollments.DELETE("/unenroll/:courseId", student, c.enrollment.Unenroll)
		enrollments.GET("/course/:courseId/students", teacher, c.enrollment.CourseStudents)
	}

	contents := api.Group("/course-content", auth)
	{
		contents.POST("", teacher, c.content.CreateContent)
		contents.GET("/:id", c.content.ListContents)
		contents.PUT("/:id", teacher, c.content.UpdateContent)
		contents.DELETE("/:id", teacher, c.content.DeleteContent)
	}

	progress := api.Group("/course-progress", auth, student)
	{
		progress.POST("/complete", c.progress.MarkComplete)
		progress.GET("/:courseId/completed", c.progress.Completed)
	}

	assignments := api.Group("/assignments", auth)
	{
		assignments.GET("/teacher-assignments", teacher, c.assignment.TeacherAssignments)
		assignments.POST("", teacher, c.assignment.CreateAssignment)
		assignments.GET("/:id", c.assignment.CourseAssignments)
		assignments.PUT("/:id", teacher, c.assignment.UpdateAssignment)
		assignments.DELETE("/:id", teacher, c.assignment.DeleteAssignment)
	}

	submissions := api.Group("/submissions", auth)
	{
		submissions.POST("/submit/:assignmentId", student, c.submission.Submit)
		submissions.GET("/submit/:assignmentId", student, c.submission.MySubmission)
		submissions.GET("/my-submissions", student, c.submission.MySubmissions)
		submissions.GET("/course/:courseId/assignments", student, c.submission.CourseAssignments)
		submissions.PUT("/grade/:submissionId", teacher, c.submission.Grade)
		submissions.GET("/assignment/:assignmentId", teacher, c.submission.AssignmentSubmissions)
		submissions.GET("/teacher/submissions", teacher, c.submission.TeacherSubmissions)
	}

	api.GET("/dashboard/dashboard-stats", auth, c.dashboard.Stats)

	messages := api.Group("/messages", auth)
	{
		messages.POST("/send", c.message.Send)
		messages.GET("/conversation/:userId/:courseId", c.message.Conversation)
		messages.GET("/conversations/:userId/:courseId", c.message.Conversation)
		messages.GET("/threads/:userId/:courseId", c.message.Threads)
	}

	notifications := api.Group("/notifications", auth)
	{
		notifications.GET("", c.notification.List)
		notifications.GET("/unread-count", c.notification.UnreadCount)
		notifications.PUT("/read-all", c.notification.MarkAllRead)
		notifications.PUT("/:id/read", c.notification.MarkRead)
	}

	api.POST("/profile/upload-image", auth, c.upload.UploadProfileImage)
	api.POST("/files", auth, c.upload.UploadFile)
}
